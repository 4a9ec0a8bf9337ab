package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// WeekRangeSeparator separa início e fim nos períodos do resumo semanal ("2024-06-10~2024-06-16")
const WeekRangeSeparator = "~"

var ErrInvalidPeriod = errors.New("período inválido: use YYYY-MM-DD ou YYYY-MM-DD~YYYY-MM-DD")

// ParseDate aceita datas no formato YYYY-MM-DD. String vazia retorna a data zero.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// NormalizePeriod valida um período informado pelo operador: uma data YYYY-MM-DD (ranking)
// ou um intervalo de semana YYYY-MM-DD~YYYY-MM-DD (resumo semanal). Vazio continua vazio.
func NormalizePeriod(period string) (string, error) {
	period = strings.TrimSpace(period)
	if period == "" {
		return "", nil
	}

	parts := strings.Split(period, WeekRangeSeparator)
	if len(parts) > 2 {
		return "", fmt.Errorf("%w: %s", ErrInvalidPeriod, period)
	}

	dates := make([]string, 0, len(parts))
	for _, part := range parts {
		date, err := ParseDate(strings.TrimSpace(part))
		if err != nil || date.IsZero() {
			return "", fmt.Errorf("%w: %s", ErrInvalidPeriod, period)
		}
		dates = append(dates, date.Format(time.DateOnly))
	}

	if len(dates) == 2 && dates[1] < dates[0] {
		return "", fmt.Errorf("%w: %s", ErrInvalidPeriod, period)
	}

	return strings.Join(dates, WeekRangeSeparator), nil
}

// DatePart reduz valores vindos do banco ("2024-06-03", "2024-06-03T00:00:00Z",
// "2024-06-03 00:00:00") ao formato YYYY-MM-DD. Outros formatos voltam sem alteração.
func DatePart(value string) string {
	value = strings.TrimSpace(value)
	if len(value) < len(time.DateOnly) {
		return value
	}

	prefix := value[:len(time.DateOnly)]
	if _, err := time.Parse(time.DateOnly, prefix); err != nil {
		return value
	}

	return prefix
}
