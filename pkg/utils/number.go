package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatBRL formata um valor monetário no padrão brasileiro: R$ 1.234,56
func FormatBRL(valor float64) string {
	negativo := valor < 0

	s := strconv.FormatFloat(math.Abs(valor), 'f', 2, 64)
	parts := strings.SplitN(s, ".", 2)
	inteiro, decimal := parts[0], parts[1]

	// Agrupa os milhares com ponto, da direita para a esquerda
	var b strings.Builder
	for i, d := range inteiro {
		if i > 0 && (len(inteiro)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	sinal := ""
	if negativo {
		sinal = "-"
	}

	return "R$ " + sinal + b.String() + "," + decimal
}
