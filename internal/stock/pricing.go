package stock

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/osse101/SpaceBot_Go/internal/domain"
)

var (
	maxCredits = decimal.NewFromInt(math.MaxInt64)
	// maxPrice is the first price the stocks.price NUMERIC(20,4) column cannot hold
	maxPrice = decimal.New(1, MaxPriceDigits)
)

// buyCost is the credits charged for qty shares, rounded up
func buyCost(price decimal.Decimal, qty int64) (int64, error) {
	return toCredits(price.Mul(decimal.NewFromInt(qty)).Ceil())
}

// sellProceeds is the credits paid for qty shares, rounded down
func sellProceeds(price decimal.Decimal, qty int64) (int64, error) {
	return toCredits(price.Mul(decimal.NewFromInt(qty)).Floor())
}

// toCredits refuses totals an int64 balance cannot represent
func toCredits(total decimal.Decimal) (int64, error) {
	if total.GreaterThan(maxCredits) {
		return 0, fmt.Errorf(ErrMsgTradeTooLargeFmt, total.String(), domain.ErrInvalidAmount)
	}
	return total.IntPart(), nil
}

// checkPrice rejects prices beyond what storage can hold
func checkPrice(p decimal.Decimal) error {
	if !p.LessThan(maxPrice) {
		return fmt.Errorf(ErrMsgPriceTooLargeFmt, p.String(), domain.ErrInvalidAmount)
	}
	return nil
}

// impactPrice applies the per-share price impact of a trade. Buys push the price up, sells
// push it down, and the result never drops below zero.
func impactPrice(price, rate decimal.Decimal, qty int64, buy bool) decimal.Decimal {
	step := rate.Mul(decimal.NewFromInt(qty))
	factor := decimal.NewFromInt(1).Add(step)
	if !buy {
		factor = decimal.NewFromInt(1).Sub(step)
	}
	return clampPrice(price.Mul(factor))
}

// driftPrice shifts the price by delta credits, floored at zero and held below maxPrice
func driftPrice(price decimal.Decimal, delta float64) decimal.Decimal {
	p := clampPrice(price.Add(decimal.NewFromFloat(delta)))
	if checkPrice(p) != nil {
		return price
	}
	return p
}

func clampPrice(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	return p.Round(PriceScale)
}
