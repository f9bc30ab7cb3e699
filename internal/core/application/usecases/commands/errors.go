package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// parsePrice reads a price literal and reports failures against the price
// field. Amounts the price column cannot hold are out of range.
func parsePrice(s string) (kernel.Money, error) {
	price, err := kernel.MoneyFromString(s)
	switch {
	case err == nil:
		return price, nil
	case errors.Is(err, errs.ErrValueIsOutOfRange):
		return kernel.Money{}, errs.NewValueIsOutOfRangeErrorWithCause("price", s, "0.00", kernel.MaxMoneyAmount, err)
	default:
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
}

// validation wraps field errors of a domain constructor into one
// errs.ValidationError. Errors without field information pass through.
func validation(err error) error {
	if err == nil {
		return nil
	}
	var ve *errs.ValidationError
	if errors.As(err, &ve) {
		return err
	}
	if errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) {
		return errs.NewValidationError(err)
	}
	return err
}
