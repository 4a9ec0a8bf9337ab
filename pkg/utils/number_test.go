package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	var nilPtr *int64
	n := int64(25000)

	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "Valor ausente", input: nil, expected: "—"},
		{name: "Ponteiro nulo", input: nilPtr, expected: "—"},
		{name: "Zero", input: 0, expected: "0"},
		{name: "Abaixo de mil", input: 999, expected: "999"},
		{name: "Separador de milhar", input: int64(9999), expected: "9,999"},
		{name: "Exatamente dez mil", input: 10000, expected: "1.00万"},
		{name: "Acima de dez mil", input: 123456, expected: "12.35万"},
		{name: "Ponteiro válido", input: &n, expected: "2.50万"},
		{name: "Decimal", input: decimal.NewFromInt(1500), expected: "1,500"},
		{name: "Float é truncado", input: 1234.9, expected: "1,234"},
		{name: "Texto numérico", input: " 4321 ", expected: "4,321"},
		{name: "Texto não numérico", input: "n/a", expected: "n/a"},
		{name: "Texto decimal volta como texto", input: "12.5", expected: "12.5"},
		{name: "NullDecimal inválido", input: decimal.NullDecimal{}, expected: "—"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCount(tt.input))
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "Valor ausente", input: nil, expected: "—"},
		{name: "Zero", input: 0.0, expected: "$0"},
		{name: "Separador de milhar", input: 1234.0, expected: "$1,234"},
		{name: "Inteiro", input: 5000, expected: "$5,000"},
		{name: "Acima de dez mil", input: 98700.0, expected: "$9.87万"},
		{name: "Decimal acima de dez mil", input: decimal.RequireFromString("250000"), expected: "$25.00万"},
		{name: "Texto numérico", input: "20000", expected: "$2.00万"},
		{name: "Texto não numérico", input: "unknown", expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.input))
		})
	}
}

func TestFormatCount_AboveThresholdMatchesDivision(t *testing.T) {
	for _, n := range []int64{10000, 10001, 55555, 1000000, 987654321} {
		expected := decimal.NewFromFloat(float64(n) / 10000).StringFixed(2)
		assert.Equal(t, expected+"万", FormatCount(n), "n=%d", n)
	}
}
