package http

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// NewRequestValidator checks each request against the operation the OpenAPI
// document declares for it. Path and query parameters and JSON bodies that do
// not match are rejected with a 400 naming the offending field. Requests the
// document does not describe pass through.
//
// Bearer tokens are checked by Authenticator.Middleware, which must run first.
func NewRequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}
	options := &openapi3filter.Options{
		AuthenticationFunc:  openapi3filter.NoopAuthenticationFunc,
		SkipSettingDefaults: true,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return requestError(err)
			}
			return next(c)
		}
	}, nil
}

func requestError(err error) error {
	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) {
		return echo.NewHTTPError(http.StatusBadRequest, "request does not match the API").SetInternal(err)
	}

	var schemaErr *openapi3.SchemaError
	hasSchemaErr := errors.As(reqErr.Err, &schemaErr)

	switch {
	case reqErr.Parameter != nil && hasSchemaErr:
		return invalidParam(reqErr.Parameter.Name, errors.New(schemaErr.Reason))
	case reqErr.Parameter != nil:
		return invalidParam(reqErr.Parameter.Name, err)
	case hasSchemaErr && len(schemaErr.JSONPointer()) > 0:
		return invalidParam(schemaErr.JSONPointer()[0], errors.New(schemaErr.Reason))
	default:
		return badRequestBody(err)
	}
}
