package inventory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// Las filas llegan como mapa encabezado -> valor, con nombres de columna
// heterogéneos. La resolución es por lista priorizada de alias: gana el
// primer alias con valor, primero por llave exacta y luego por comparación
// caseless (Fold, porque los encabezados localizados no son ASCII).

var descriptionAliases = []string{
	"Description", "Product", "Item", "Name", "បរិយាយ", "ឈ្មោះ",
}

var unitAliases = []string{
	"Unit", "UOM", "Unit of Measure", "ឯកតា",
}

var stockInAliases = []string{
	"Stock In", "StockIn", "Stock_In", "Stock", "Qty", "Quantity",
	"Initial Stock", "Stock ចូល", "Stock ទទួល",
}

var stockOutAliases = []string{
	"Stock Out", "StockOut", "Stock_Out", "Stock ចេញ", "Stock ប្រើ",
}

var fold = cases.Fold()

// resolveColumn busca el valor de una columna por alias priorizado.
// Devuelve el valor como string con espacios recortados; ok es false si
// ningún alias tiene valor (nil o cadena vacía no cuentan como valor).
func resolveColumn(row map[string]interface{}, aliases []string) (string, bool) {
	for _, alias := range aliases {
		if v, found := row[alias]; found {
			if s, ok := scalarToString(v); ok {
				return s, true
			}
		}
	}
	// Segunda pasada caseless. Las llaves del mapa se recorren ordenadas
	// para que el resultado no dependa del orden de iteración de Go.
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, alias := range aliases {
		folded := fold.String(alias)
		for _, k := range keys {
			if fold.String(k) == folded {
				if s, ok := scalarToString(row[k]); ok {
					return s, true
				}
			}
		}
	}
	return "", false
}

// scalarToString normaliza el valor de una celda a string recortado.
// nil y cadena vacía se tratan como columna ausente.
func scalarToString(v interface{}) (string, bool) {
	if v == nil {
		return "", false
	}
	var s string
	switch val := v.(type) {
	case string:
		s = val
	case float64:
		s = decimal.NewFromFloat(val).String()
	case int:
		s = fmt.Sprintf("%d", val)
	case bool:
		return "", false
	default:
		s = fmt.Sprintf("%v", val)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

// parseQuantity convierte el valor crudo de una celda de stock a decimal.
// Contrato (dos desenlaces distintos, no confundirlos):
//   - ausente / cadena vacía        -> 0, sin error (resultado válido)
//   - numérico                      -> clamp a >= 0
//   - string con basura recuperable -> se eliminan caracteres no numéricos
//     ("1,250 pcs" -> 1250) y se parsea
//   - string sin ningún dígito o no parseable ("N/A", "1.2.3") -> error,
//     la fila se salta con error registrado
func parseQuantity(raw string, present bool) (decimal.Decimal, error) {
	if !present || raw == "" {
		return decimal.Zero, nil
	}

	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return decimal.Decimal{}, fmt.Errorf("sin dígitos en %q", raw)
	}
	n, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("valor no numérico %q", raw)
	}
	if n.IsNegative() {
		n = decimal.Zero
	}
	return n, nil
}
