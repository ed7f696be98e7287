package metadomain

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

// DemographicRow é uma linha de insights com breakdown (age/gender ou
// country). Apenas um dos grupos de campos de breakdown vem preenchido.
type DemographicRow struct {
	Age         string   `json:"age,omitempty"`
	Gender      string   `json:"gender,omitempty"`
	Country     string   `json:"country,omitempty"`
	Impressions string   `json:"impressions"`
	Clicks      string   `json:"clicks"`
	Spend       string   `json:"spend"`
	Actions     []Action `json:"actions"`
}

// ConversionsTotal soma as ações contadas como conversão
func (r *DemographicRow) ConversionsTotal() int {
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
