package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Metric guarda uma métrica numérica opcional lida do banco (downloads, receita).
// Valores não numéricos são preservados em Raw para exibição.
type Metric struct {
	Number  decimal.Decimal
	Raw     string
	Valid   bool
	Numeric bool
}

// NewMetric cria uma métrica numérica válida
func NewMetric(value decimal.Decimal) Metric {
	return Metric{Number: value, Valid: true, Numeric: true}
}

// Scan implementa sql.Scanner
func (m *Metric) Scan(src any) error {
	*m = Metric{}

	switch v := src.(type) {
	case nil:
		return nil
	case int64:
		*m = NewMetric(decimal.NewFromInt(v))
	case float64:
		*m = NewMetric(decimal.NewFromFloat(v))
	case []byte:
		m.fromString(string(v))
	case string:
		m.fromString(v)
	default:
		m.fromString(fmt.Sprint(v))
	}

	return nil
}

func (m *Metric) fromString(s string) {
	m.Valid = true
	m.Raw = s
	if d, err := decimal.NewFromString(strings.TrimSpace(s)); err == nil {
		m.Number = d
		m.Numeric = true
	}
}

// Any devolve nil, decimal.Decimal ou o texto original, no formato aceito pelos formatadores
func (m Metric) Any() any {
	if !m.Valid {
		return nil
	}
	if m.Numeric {
		return m.Number
	}
	return m.Raw
}

// MarshalJSON expõe a métrica como número, texto ou null
func (m Metric) MarshalJSON() ([]byte, error) {
	switch {
	case !m.Valid:
		return []byte("null"), nil
	case m.Numeric:
		return []byte(m.Number.String()), nil
	default:
		return []byte(fmt.Sprintf("%q", m.Raw)), nil
	}
}

// String devolve o valor bruto para exportação (vazio quando ausente)
func (m Metric) String() string {
	switch {
	case !m.Valid:
		return ""
	case m.Numeric:
		return m.Number.String()
	default:
		return m.Raw
	}
}
