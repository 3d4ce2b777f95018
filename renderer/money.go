package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/Rudhira-web/tracker"
)

// Money renders an amount in the display currency, "$1,234.50" style. With no
// currency configured it falls back to the plain two-decimal form.
func Money(a tracker.Amount, currency string) string {
	if currency == "" {
		return a.String()
	}
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	dec := a.Decimal().Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}
