package utils

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// Placeholder exibido quando o valor está ausente
	Placeholder = "—"

	// TenThousandUnit é o sufixo de "dez mil" usado nos relatórios
	TenThousandUnit = "万"

	// CurrencySymbol prefixa os valores de receita
	CurrencySymbol = "$"

	tenThousand = 10000
)

var printer = message.NewPrinter(language.English)

// FormatCount formata contagens (downloads): acima de dez mil usa o sufixo 万 com duas casas,
// abaixo disso usa separador de milhar. Entradas não numéricas voltam como texto.
func FormatCount(v any) string {
	if isNil(v) {
		return Placeholder
	}

	n, ok := toInt(v)
	if !ok {
		return rawString(v)
	}

	if n >= tenThousand {
		return strconv.FormatFloat(float64(n)/tenThousand, 'f', 2, 64) + TenThousandUnit
	}

	return printer.Sprintf("%d", n)
}

// FormatCurrency formata receitas com o mesmo limite de FormatCount, prefixadas pelo símbolo da moeda.
func FormatCurrency(v any) string {
	if isNil(v) {
		return Placeholder
	}

	r, ok := toFloat(v)
	if !ok {
		return rawString(v)
	}

	if r >= tenThousand {
		return CurrencySymbol + strconv.FormatFloat(r/tenThousand, 'f', 2, 64) + TenThousandUnit
	}

	return CurrencySymbol + printer.Sprintf("%.0f", r)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	switch t := v.(type) {
	case decimal.NullDecimal:
		return !t.Valid
	case *decimal.Decimal:
		return t == nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		return rv.IsNil()
	}

	return false
}

func deref(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return rv.Elem().Interface()
	}
	return v
}

func toInt(v any) (int64, bool) {
	switch t := deref(v).(type) {
	case int:
		return int64(t), true
	case int8:
		return int64(t), true
	case int16:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case uint:
		return int64(t), true
	case uint8:
		return int64(t), true
	case uint16:
		return int64(t), true
	case uint32:
		return int64(t), true
	case uint64:
		if t > math.MaxInt64 {
			return 0, false
		}
		return int64(t), true
	case float32:
		return truncFloat(float64(t))
	case float64:
		return truncFloat(t)
	case decimal.Decimal:
		return t.IntPart(), true
	case decimal.NullDecimal:
		return t.Decimal.IntPart(), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		return n, err == nil
	case []byte:
		n, err := strconv.ParseInt(strings.TrimSpace(string(t)), 10, 64)
		return n, err == nil
	}
	return 0, false
}

func truncFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

func toFloat(v any) (float64, bool) {
	switch t := deref(v).(type) {
	case float32:
		return float64(t), true
	case float64:
		return t, !math.IsNaN(t) && !math.IsInf(t, 0)
	case decimal.Decimal:
		return t.InexactFloat64(), true
	case decimal.NullDecimal:
		return t.Decimal.InexactFloat64(), true
	case string:
		return parseFloat(t)
	case []byte:
		return parseFloat(string(t))
	}

	if n, ok := toInt(v); ok {
		return float64(n), true
	}
	return 0, false
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func rawString(v any) string {
	switch t := deref(v).(type) {
	case string:
		return t
	case []byte:
		return string(t)
	}
	return fmt.Sprint(deref(v))
}
