package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every failed response.
type Error struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// NewErrorHandler maps use case errors onto status codes. Forbidden responses
// never carry the cause, and unexpected errors are logged and reported as 500.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http")
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		body := mapError(err)
		if body.Code == http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request error",
				"method", c.Request().Method, "path", c.Path(), "error", err)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(body.Code)
		} else {
			writeErr = c.JSON(body.Code, body)
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}

func mapError(err error) Error {
	var (
		httpErr       *echo.HTTPError
		validationErr *errs.ValidationError
	)

	switch {
	case errors.As(err, &httpErr):
		return Error{Code: httpErr.Code, Message: fmt.Sprint(httpErr.Message)}
	case errors.As(err, &validationErr):
		return Error{Code: http.StatusBadRequest, Message: validationErr.Error(), Fields: validationErr.Fields}
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		ve := errs.NewValidationError(err)
		return Error{Code: http.StatusBadRequest, Message: ve.Error(), Fields: ve.Fields}
	case errors.Is(err, errs.ErrForbidden):
		return Error{Code: http.StatusForbidden, Message: errs.ErrForbidden.Error()}
	case errors.Is(err, errs.ErrObjectNotFound):
		return Error{Code: http.StatusNotFound, Message: err.Error()}
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, cart.ErrItemUnavailable),
		errors.Is(err, cart.ErrEmptyCart):
		return Error{Code: http.StatusConflict, Message: err.Error()}
	default:
		return Error{Code: http.StatusInternalServerError, Message: http.StatusText(http.StatusInternalServerError)}
	}
}

// invalidParam reports a malformed parameter or body field.
func invalidParam(name string, cause error) error {
	return errs.NewValidationError(errs.NewValueIsInvalidErrorWithCause(name, cause))
}

func badRequestBody(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
}
