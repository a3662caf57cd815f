package calc_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceasahub/intake-api/pkg/calc"
)

// Operaciones básicas con precedencia estándar.
func TestEval_Precedencia(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"2+3", "5"},
		{"2+3*4", "14"},
		{"(2+3)*4", "20"},
		{"10-4-3", "3"},
		{"10/4", "2.5"},
		{"-5+2", "-3"},
		{"-(2+3)", "-5"},
		{"1.5*2", "3"},
		{"1,5+1,5", "3"}, // coma decimal
	}
	for _, tc := range cases {
		got, err := calc.Eval(tc.expr)
		require.NoError(t, err, "expresión %q", tc.expr)
		assert.True(t, got.Equal(mustDecimal(t, tc.want)),
			"expresión %q: esperado %s, obtenido %s", tc.expr, tc.want, got)
	}
}

// División por cero debe devolver error, no pánico.
func TestEval_DivisionPorCero(t *testing.T) {
	_, err := calc.Eval("10/0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "división por cero")

	_, err = calc.Eval("1/(2-2)")
	require.Error(t, err)
}

// Todo lo que esté fuera de la gramática se rechaza: la calculadora nunca
// debe comportarse como un evaluador genérico.
func TestEval_EntradaFueraDeGramatica(t *testing.T) {
	for _, expr := range []string{
		"",
		"   ",
		"2+",
		"(2+3",
		"2**3",
		"abc",
		"__import__('os')",
		"2;3",
		"1.2.3",
	} {
		_, err := calc.Eval(expr)
		assert.Error(t, err, "la expresión %q debería ser rechazada", expr)
	}
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return v
}
