package diagnosing

import "github.com/vfg2006/ads-analyzer-api/internal/domain"

// Rule casa uma combinação de métrica, veredito e tendência com uma
// recomendação. Veredito ou tendência vazios casam com qualquer valor.
type Rule struct {
	Metric   string
	Verdict  domain.Verdict
	Trend    domain.Trend
	Severity domain.Severity
	Title    string
	Message  string
	Actions  []string
}

// Matches verifica se a regra se aplica ao veredito e tendência observados
func (r *Rule) Matches(verdict domain.Verdict, trend domain.Trend) bool {
	if r.Verdict != "" && r.Verdict != verdict {
		return false
	}
	if r.Trend != "" && r.Trend != trend {
		return false
	}
	return true
}

// rules é a tabela fixa de diagnóstico. As regras são avaliadas de forma
// independente e todas as que casarem disparam, na ordem da tabela.
var rules = []Rule{
	{
		Metric:   "ctr",
		Verdict:  domain.VerdictBelowAverage,
		Severity: domain.SeverityError,
		Title:    "CTR Baixo",
		Message:  "O CTR está abaixo do benchmark do nicho",
		Actions: []string{
			"Teste diferentes imagens/thumbnails no criativo",
			"Reduza o texto principal (ideal <125 caracteres)",
			"Posicione o CTA de forma mais destacada",
			"Teste diferentes cópias de texto",
		},
	},
	{
		Metric:   "ctr",
		Verdict:  domain.VerdictAboveAverage,
		Severity: domain.SeveritySuccess,
		Title:    "CTR Alto",
		Message:  "Excelente CTR, acima do benchmark do nicho",
		Actions: []string{
			"Aumente o orçamento para escalar este desempenho",
			"Replique a estratégia para públicos similares",
			"Documente as características deste anúncio",
		},
	},
	{
		Metric:   "ctr",
		Trend:    domain.TrendFalling,
		Severity: domain.SeverityWarning,
		Title:    "CTR em Queda",
		Message:  "O CTR vem caindo ao longo do período analisado",
		Actions: []string{
			"Atualize o criativo antes que a fadiga se acentue",
			"Revise a segmentação do público",
		},
	},
	{
		Metric:   "cpa",
		Verdict:  domain.VerdictBelowAverage,
		Severity: domain.SeverityError,
		Title:    "Custo Alto por Conversão",
		Message:  "O custo por conversão está acima da média do nicho",
		Actions: []string{
			"Otimize a landing page (taxa de conversão pode estar baixa)",
			"Ajuste a segmentação para públicos mais qualificados",
			"Teste diferentes objetivos de campanha",
			"Verifique a qualidade do tráfego",
		},
	},
	{
		Metric:   "cpa",
		Verdict:  domain.VerdictAboveAverage,
		Severity: domain.SeveritySuccess,
		Title:    "Custo por Conversão Saudável",
		Message:  "O custo por conversão está abaixo da média do nicho",
		Actions: []string{
			"Considere escalar o orçamento gradualmente",
			"Mantenha o monitoramento para preservar a eficiência",
		},
	},
	{
		Metric:   "cpa",
		Trend:    domain.TrendRising,
		Severity: domain.SeverityWarning,
		Title:    "Custo por Conversão Subindo",
		Message:  "O custo por conversão vem aumentando no período",
		Actions: []string{
			"Revise lances e orçamento antes de escalar",
			"Compare o desempenho entre conjuntos de anúncios",
		},
	},
	{
		Metric:   "roas",
		Verdict:  domain.VerdictBelowAverage,
		Severity: domain.SeverityError,
		Title:    "ROAS Baixo",
		Message:  "O retorno sobre o investimento está abaixo do benchmark",
		Actions: []string{
			"Priorize campanhas e públicos com histórico de conversão",
			"Revise o preço médio e o funil pós-clique",
		},
	},
	{
		Metric:   "roas",
		Verdict:  domain.VerdictAboveAverage,
		Severity: domain.SeveritySuccess,
		Title:    "ROAS Alto",
		Message:  "Retorno sobre o investimento acima do benchmark",
		Actions: []string{
			"Aumente o investimento nas campanhas vencedoras",
			"Teste públicos semelhantes aos convertidos",
		},
	},
}
