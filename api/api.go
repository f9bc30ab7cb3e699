// Package api carries the OpenAPI document of the HTTP API. The document is
// embedded in the binary, validated on load and registered with swag so the
// documentation route serves the same contract the request validator checks.
package api

import (
	"context"
	_ "embed"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var document []byte

// Load parses the embedded document and validates it. Every call returns a
// new *openapi3.T.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, err
	}
	return doc, nil
}

// jsonDoc renders the document once for the documentation UI. An invalid
// document renders as an empty string; Load reports the error at startup.
var jsonDoc = sync.OnceValue(func() string {
	doc, err := Load(context.Background())
	if err != nil {
		return ""
	}
	raw, err := doc.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(raw)
})

type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string {
	return jsonDoc()
}

func init() {
	swag.Register(swag.Name, swaggerDoc{})
}
