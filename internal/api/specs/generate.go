// Package specs holds the OpenAPI documents of the HTTP API and the servers
// generated from them.
package specs

//go:generate go run github.com/ogen-go/ogen/cmd/ogen --config ogen.yml --target v1specs --package v1specs --clean v1.yaml
