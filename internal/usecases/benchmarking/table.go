package benchmarking

import "github.com/vfg2006/ads-analyzer-api/internal/domain"

// benchmarksByNiche é a tabela estática de referências de mercado.
// CTR em fração (0.016 = 1.6%), CPA em reais, ROAS em múltiplo do gasto.
var benchmarksByNiche = map[string]domain.Benchmark{
	"ecommerce": {
		Niche:   "ecommerce",
		AvgCTR:  0.016,
		AvgCPA:  45.0,
		AvgROAS: 3.5,
	},
	"infoprodutos": {
		Niche:   "infoprodutos",
		AvgCTR:  0.019,
		AvgCPA:  38.0,
		AvgROAS: 4.2,
	},
	"servicos_locais": {
		Niche:   "servicos_locais",
		AvgCTR:  0.022,
		AvgCPA:  28.0,
		AvgROAS: 5.0,
	},
	"saude_beleza": {
		Niche:   "saude_beleza",
		AvgCTR:  0.018,
		AvgCPA:  42.0,
		AvgROAS: 3.8,
	},
	"educacao": {
		Niche:   "educacao",
		AvgCTR:  0.020,
		AvgCPA:  35.0,
		AvgROAS: 4.0,
	},
	"imobiliario": {
		Niche:   "imobiliario",
		AvgCTR:  0.011,
		AvgCPA:  80.0,
		AvgROAS: 6.0,
	},
	"financas": {
		Niche:   "financas",
		AvgCTR:  0.010,
		AvgCPA:  55.0,
		AvgROAS: 3.0,
	},
	"moda": {
		Niche:   "moda",
		AvgCTR:  0.017,
		AvgCPA:  40.0,
		AvgROAS: 3.6,
	},
}
