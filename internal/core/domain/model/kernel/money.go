package kernel

import (
	"errors"
	"fmt"
	"regexp"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	// MoneyScale is the number of fractional digits a currency amount may carry.
	MoneyScale = 2

	// MaxMoneyAmount is the largest amount a numeric(10,2) column can hold.
	MaxMoneyAmount = "99999999.99"

	maxIntegerDigits  = 8
	maxFractionDigits = 16
)

var moneyLiteral = regexp.MustCompile(`^[0-9]{1,32}(\.[0-9]{1,16})?$`)

// ErrMoneyIsNotConstructed is returned when validating a zero Money value.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney, MoneyFromString or ZeroMoney")

// Money is a non-negative currency amount with at most MoneyScale fractional
// digits. Arithmetic is exact: amounts are never converted to float64 except
// by callers formatting them for display.
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney wraps amount after checking it is non-negative, fits MoneyScale
// and does not exceed MaxMoneyAmount.
//
// The exponent is bounded before any rescaling, so amounts such as 1e99999999
// are rejected without expanding them.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsZero() {
		return ZeroMoney(), nil
	}
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", errors.New("amount is negative"))
	}
	if amount.Exponent() < -maxFractionDigits {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("more than %d decimal places", MoneyScale),
		)
	}
	if amount.NumDigits()+int(amount.Exponent()) > maxIntegerDigits {
		value := fmt.Sprintf("%se%d", amount.Coefficient(), amount.Exponent())
		return Money{}, errs.NewValueIsOutOfRangeError("amount", value, "0.00", MaxMoneyAmount)
	}
	if !amount.Equal(amount.Round(MoneyScale)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s has more than %d decimal places", amount, MoneyScale),
		)
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromString parses a plain decimal literal such as "9.50". Signs,
// exponents and thousand separators are rejected.
func MoneyFromString(s string) (Money, error) {
	if !moneyLiteral.MatchString(s) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", errors.New("not a decimal number"))
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", errors.New("not a decimal number"))
	}
	return NewMoney(amount)
}

// MustMoney is MoneyFromString for literals known to be valid.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoney returns an amount of 0.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Validate reports whether m was built by a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Mul returns m × quantity. Quantities are positive in every caller.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), guard: guard.NewConstructorGuard()}
}

// IsEqual compares amounts numerically, so 9.5 equals 9.50.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal exposes the amount for persistence.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String formats the amount with exactly MoneyScale fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}
