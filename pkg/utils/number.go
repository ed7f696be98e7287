package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeFloat converte o valor string da API para float64, retornando zero
// para valores vazios ou inválidos
func SafeFloat(value string) float64 {
	if value == "" {
		return 0
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}

	return f
}

// SafeInt converte o valor string da API para int, retornando zero para
// valores vazios ou inválidos. Valores fracionários são truncados.
func SafeInt(value string) int {
	if value == "" {
		return 0
	}

	i, err := strconv.Atoi(value)
	if err == nil {
		return i
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}

	return int(f)
}
