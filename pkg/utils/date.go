package utils

import (
	"strings"
	"time"
)

// DateLayoutBR é o formato canônico das datas gravadas na planilha
const DateLayoutBR = "02/01/2006"

// Formatos alternativos aceitos na segunda passada de interpretação,
// todos com o dia antes do mês.
var lenientLayoutsBR = []string{
	"02/01/2006",
	"2/1/2006",
	"02/01/06",
	"2/1/06",
	"02-01-2006",
	"2-1-2006",
	"2006-01-02",
}

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

// ParseDateBR interpreta uma data no formato DD/MM/YYYY
func ParseDateBR(dateStr string) (time.Time, error) {
	return time.Parse(DateLayoutBR, strings.TrimSpace(dateStr))
}

// ParseDateBRLenient tenta os formatos alternativos com dia primeiro.
// Usada quando a passada estrita não reconhece nenhuma data do conjunto.
func ParseDateBRLenient(dateStr string) (time.Time, error) {
	trimmed := strings.TrimSpace(dateStr)

	var lastErr error
	for _, layout := range lenientLayoutsBR {
		t, err := time.Parse(layout, trimmed)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}

// FormatDateBR formata uma data como DD/MM/YYYY
func FormatDateBR(t time.Time) string {
	return t.Format(DateLayoutBR)
}
