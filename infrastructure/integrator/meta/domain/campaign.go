package metadomain

// Campaign é o formato de campanha retornado pela API
type Campaign struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Objective  string `json:"objective"`
	Status     string `json:"status"`
	StartTime  string `json:"start_time"`
	StopTime   string `json:"stop_time"`
	BuyingType string `json:"buying_type"`
}

// AdSet é o formato de conjunto de anúncios retornado pela API.
// Orçamentos chegam como string em centavos.
type AdSet struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	DailyBudget      string `json:"daily_budget"`
	LifetimeBudget   string `json:"lifetime_budget"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	OptimizationGoal string `json:"optimization_goal"`
	BillingEvent     string `json:"billing_event"`
	BidStrategy      string `json:"bid_strategy"`
}

// Ad é o formato de anúncio retornado pela API
type Ad struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	CreatedTime string `json:"created_time"`
	AdSetID     string `json:"adset_id"`
	BidAmount   string `json:"bid_amount"`
}
