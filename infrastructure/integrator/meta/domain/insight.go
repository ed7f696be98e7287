package metadomain

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

// Action é um par tipo/valor retornado nos campos actions e action_values
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Tipos de ação contados como conversão e como receita. A API reporta
// compras em mais de um tipo dependendo da origem do evento.
var conversionActionTypes = map[string]bool{
	"conversion":                           true,
	"offsite_conversion":                   true,
	"offsite_conversion.fb_pixel_purchase": true,
	"purchase":                             true,
	"omni_purchase":                        true,
	"lead":                                 true,
}

var revenueActionTypes = map[string]bool{
	"offsite_conversion.fb_pixel_purchase": true,
	"purchase":                             true,
	"omni_purchase":                        true,
}

// InsightRow é uma linha de insights da API, um bucket diário quando a
// consulta usa time_increment=1. Os campos numéricos chegam como string.
type InsightRow struct {
	AccountID    string   `json:"account_id"`
	AccountName  string   `json:"account_name"`
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
	Impressions  string   `json:"impressions"`
	Reach        string   `json:"reach"`
	Clicks       string   `json:"clicks"`
	Spend        string   `json:"spend"`
	Frequency    string   `json:"frequency"`
	CTR          string   `json:"ctr"`
	Actions      []Action `json:"actions"`
	ActionValues []Action `json:"action_values"`
}

// ConversionsTotal soma as ações contadas como conversão
func (r *InsightRow) ConversionsTotal() int {
	total := 0.0
	for i := range r.Actions {
		action := r.Actions[i]
		if !conversionActionTypes[action.ActionType] {
			continue
		}

		value, err := strconv.ParseFloat(action.Value, 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"action_type":  action.ActionType,
				"action_value": action.Value,
			}).Warn("insights: erro ao converter valor da ação")
			continue
		}

		total += value
	}

	return int(total)
}

// RevenueTotal soma os valores de ação contados como receita (para ROAS)
func (r *InsightRow) RevenueTotal() float64 {
	total := 0.0
	for i := range r.ActionValues {
		action := r.ActionValues[i]
		if !revenueActionTypes[action.ActionType] {
			continue
		}

		value, err := strconv.ParseFloat(action.Value, 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"action_type":  action.ActionType,
				"action_value": action.Value,
			}).Warn("insights: erro ao converter valor de receita")
			continue
		}

		total += value
	}

	return total
}

// Paging é o cursor de paginação da API
type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}
