package present

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/saturnines/product-search/pkg/transform"
)

// NoResultsMessage is printed instead of records when there are none.
const NoResultsMessage = "No products found matching the provided name."

// Print writes one line per record, or NoResultsMessage for an empty slice.
func Print(w io.Writer, records []transform.VariantRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, NoResultsMessage)
		return err
	}

	for _, r := range records {
		if _, err := fmt.Fprintln(w, FormatLine(r)); err != nil {
			return err
		}
	}
	return nil
}

// FormatLine renders "<product> - <variant> - price $<price>".
func FormatLine(r transform.VariantRecord) string {
	return fmt.Sprintf("%s - %s - price $%s", r.ProductTitle, r.VariantTitle, FormatPrice(r.Price))
}

// FormatPrice renders the shortest decimal that round-trips: 10, 12.5,
// 0.1. Very large or very small magnitudes use exponent form (1e+21).
func FormatPrice(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		// Go pads the exponent to two digits ("1e-07"); drop the padding.
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		exp = strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + exp
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
