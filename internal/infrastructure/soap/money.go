package soap

import (
	"fmt"
	"math"
	"strings"

	"payment_gateway_client/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// FormatAmount renders minor units as decimal text scaled by the currency's
// exponent: EUR 1050 -> "10.50", JPY 100 -> "100".
func FormatAmount(a entities.Amount) string {
	exp := entities.MinorUnits(a.Currency)
	return decimal.New(a.Value, -exp).StringFixed(exp)
}

// ParseAmount converts decimal text back to minor units. Text carrying more
// precision than the currency allows is rejected rather than rounded.
func ParseAmount(currency, text string) (entities.Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return entities.Amount{}, fmt.Errorf("invalid amount %q: %w", text, err)
	}
	exp := entities.MinorUnits(currency)
	minor := d.Shift(exp)
	if !minor.IsInteger() {
		return entities.Amount{}, fmt.Errorf("amount %q has more than %d decimals for %s", text, exp, currency)
	}
	if minor.IsNegative() {
		return entities.Amount{}, fmt.Errorf("amount %q is negative", text)
	}
	if minor.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return entities.Amount{}, fmt.Errorf("amount %q exceeds the minor-unit range for %s", text, currency)
	}
	return entities.NewAmount(currency, minor.IntPart()), nil
}

// AmountNode builds a currency/value element in protocol order.
func AmountNode(name string, a entities.Amount) *Node {
	return &Node{
		Name: name,
		Children: []*Node{
			{Name: "currency", Text: a.Currency, Common: true},
			{Name: "value", Text: FormatAmount(a), Common: true},
		},
	}
}

// ParseAmountNode reads a currency/value element.
func ParseAmountNode(n *Node) (entities.Amount, error) {
	currency, ok := n.Value("currency")
	if !ok {
		return entities.Amount{}, fmt.Errorf("amount without currency")
	}
	value, ok := n.Value("value")
	if !ok {
		return entities.Amount{}, fmt.Errorf("amount without value")
	}
	return ParseAmount(currency, value)
}
