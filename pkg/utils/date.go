package utils

import (
	"fmt"
	"time"
)

// Presets de período aceitos pela API, no formato da interface original
const (
	DatePresetLast7Days  = "last_7d"
	DatePresetLast30Days = "last_30d"
)

// Limite de 37 meses imposto pela API de relatórios do Meta
const maxRangeDays = 37 * 30

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ResolveDateRange resolve o período de análise a partir de um preset ou de
// datas explícitas. Intervalos maiores que o limite da plataforma são
// ajustados automaticamente, recuando a data inicial.
func ResolveDateRange(preset, startStr, endStr string, now time.Time) (*time.Time, *time.Time, error) {
	switch preset {
	case DatePresetLast7Days:
		start := now.AddDate(0, 0, -7)
		return &start, &now, nil
	case DatePresetLast30Days:
		start := now.AddDate(0, 0, -30)
		return &start, &now, nil
	case "":
		// Sem preset: exige datas explícitas
	default:
		return nil, nil, fmt.Errorf("date_preset inválido: %s", preset)
	}

	if startStr == "" || endStr == "" {
		// Sem preset e sem datas: últimos 30 dias
		start := now.AddDate(0, 0, -30)
		return &start, &now, nil
	}

	start, err := ParseDate(startStr)
	if err != nil {
		return nil, nil, err
	}

	end, err := ParseDate(endStr)
	if err != nil {
		return nil, nil, err
	}

	if end.Before(*start) {
		return nil, nil, fmt.Errorf("end_date anterior a start_date")
	}

	if end.Sub(*start).Hours() > float64(maxRangeDays*24) {
		clamped := end.AddDate(0, 0, -maxRangeDays)
		start = &clamped
	}

	return start, end, nil
}
