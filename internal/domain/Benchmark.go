package domain

// Benchmark é uma entrada estática de referência de mercado por nicho.
// Carregada na inicialização do processo, somente leitura.
type Benchmark struct {
	Niche   string  `json:"niche"`
	AvgCTR  float64 `json:"avg_ctr"`
	AvgCPA  float64 `json:"avg_cpa"`
	AvgROAS float64 `json:"avg_roas"`
}

// Verdict é o veredito qualitativo de uma métrica frente ao benchmark
type Verdict string

const (
	VerdictAboveAverage  Verdict = "above_average"
	VerdictWithinAverage Verdict = "within_average"
	VerdictBelowAverage  Verdict = "below_average"
	VerdictUnknown       Verdict = "unknown"
)

// BenchmarkVerdicts agrupa os vereditos por métrica para um nicho
type BenchmarkVerdicts struct {
	Niche string  `json:"niche"`
	CTR   Verdict `json:"ctr"`
	CPA   Verdict `json:"cpa"`
	ROAS  Verdict `json:"roas"`
}

// Unknown indica se nenhum benchmark foi encontrado para o nicho
func (v *BenchmarkVerdicts) Unknown() bool {
	return v == nil || (v.CTR == VerdictUnknown && v.CPA == VerdictUnknown && v.ROAS == VerdictUnknown)
}
