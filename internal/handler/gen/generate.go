// Package gen holds the HTTP bindings for openapi/openapi.yaml: the wire
// models, the chi router and the strict server interface the handler package
// implements. api.gen.go is produced by oapi-codegen; edit the API
// description and regenerate rather than editing it by hand.
package gen

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config cfg.yaml ../../../openapi/openapi.yaml
