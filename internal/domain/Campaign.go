package domain

// Campaign é uma campanha da conta de anúncios
type Campaign struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Objective  string `json:"objective"`
	Status     string `json:"status"`
	StartTime  string `json:"start_time,omitempty"`
	StopTime   string `json:"stop_time,omitempty"`
	BuyingType string `json:"buying_type,omitempty"`
}

// AdSet é um conjunto de anúncios de uma campanha
type AdSet struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	DailyBudget      float64 `json:"daily_budget"`
	LifetimeBudget   float64 `json:"lifetime_budget"`
	StartTime        string  `json:"start_time,omitempty"`
	EndTime          string  `json:"end_time,omitempty"`
	OptimizationGoal string  `json:"optimization_goal,omitempty"`
	BillingEvent     string  `json:"billing_event,omitempty"`
	BidStrategy      string  `json:"bid_strategy,omitempty"`
}

// Ad é um anúncio individual de um conjunto
type Ad struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	CreatedTime string  `json:"created_time,omitempty"`
	AdSetID     string  `json:"adset_id,omitempty"`
	BidAmount   float64 `json:"bid_amount"`
}
