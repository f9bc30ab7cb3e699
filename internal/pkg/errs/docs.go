// Package errs provides the error taxonomy of the restaurant service.
//
// Field level errors:
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsInvalidError: a value breaks a domain rule
//   - ValueIsOutOfRangeError: a value is outside its bounds
//
// Operation level errors, each mapped to one status by the HTTP adapter:
//   - ValidationError: malformed input, lists every offending field
//   - ObjectNotFoundError: a referenced entity does not exist
//   - InvalidTransitionError: the order state machine rejects the action
//   - ForbiddenError: the caller may not perform the operation; the message
//     is always the bare "forbidden"
//
// Every type pairs with a sentinel (ErrValueIsRequired, ErrValidation, ...)
// returned by Unwrap, so callers classify errors with errors.Is and read the
// details with errors.As.
package errs
