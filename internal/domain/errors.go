package domain

import "errors"

// Erros de domínio classificados na fronteira mais próxima da origem
// (cliente Meta, lookup público, sessão). Os handlers convertem cada um
// em mensagem amigável; nenhum deles derruba a sessão.
var (
	// ErrAuth indica credenciais inválidas ou expiradas na plataforma
	ErrAuth = errors.New("credenciais rejeitadas pela plataforma")

	// ErrRateLimited indica throttling da plataforma; o chamador deve
	// aguardar e tentar novamente
	ErrRateLimited = errors.New("limite de requisições da plataforma atingido")

	// ErrEmptyResult indica que não há dados para o período. Não é uma
	// falha: os chamadores tratam como resultado vazio válido
	ErrEmptyResult = errors.New("nenhum dado encontrado para o período")

	// ErrTimeout indica estouro do tempo limite em chamada externa
	ErrTimeout = errors.New("tempo limite excedido na chamada externa")

	// ErrAdNotFound indica que a URL não resolve para um anúncio público conhecido
	ErrAdNotFound = errors.New("anúncio público não encontrado")

	// ErrUnknownNiche indica nicho ausente na tabela de benchmarks
	ErrUnknownNiche = errors.New("nicho sem benchmark disponível")

	// ErrSessionNotFound indica sessão inexistente ou já destruída
	ErrSessionNotFound = errors.New("sessão não encontrada")

	// ErrSessionExpired indica sessão expirada
	ErrSessionExpired = errors.New("sessão expirada")

	// ErrInvalidCredentials indica credenciais incompletas na criação da sessão
	ErrInvalidCredentials = errors.New("credenciais incompletas")
)
