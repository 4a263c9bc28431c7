package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		present bool
		want    string
		wantErr bool
	}{
		{"ausente", "", false, "0", false},
		{"vacio", "", true, "0", false},
		{"entero", "25", true, "25", false},
		{"decimal", "2.5", true, "2.5", false},
		{"con separador de miles", "1,250", true, "1250", false},
		{"con unidad pegada", "30 pcs", true, "30", false},
		{"sin digitos", "N/A", true, "", true},
		{"puntos multiples", "1.2.3", true, "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseQuantity(tc.raw, tc.present)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			want, perr := decimal.NewFromString(tc.want)
			require.NoError(t, perr)
			assert.True(t, got.Equal(want), "esperado %s, obtenido %s", want, got)
		})
	}
}

func TestResolveColumn_PrioridadDeAlias(t *testing.T) {
	row := map[string]interface{}{
		"Qty":      "5",
		"Stock In": "9",
	}
	// "Stock In" va antes que "Qty" en la lista de alias.
	got, ok := resolveColumn(row, stockInAliases)
	require.True(t, ok)
	assert.Equal(t, "9", got)
}

func TestResolveColumn_Caseless(t *testing.T) {
	row := map[string]interface{}{"DESCRIPTION": "Cable THW"}
	got, ok := resolveColumn(row, descriptionAliases)
	require.True(t, ok)
	assert.Equal(t, "Cable THW", got)
}

func TestResolveColumn_ValorNumericoDeCelda(t *testing.T) {
	// Las celdas numéricas de la hoja llegan como float64 vía JSON.
	row := map[string]interface{}{"Stock In": float64(12)}
	got, ok := resolveColumn(row, stockInAliases)
	require.True(t, ok)
	assert.Equal(t, "12", got)
}

func TestResolveColumn_SinValor(t *testing.T) {
	row := map[string]interface{}{"Unit": nil, "Otra": "x"}
	_, ok := resolveColumn(row, unitAliases)
	assert.False(t, ok)
}
