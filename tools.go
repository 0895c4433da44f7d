//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: mocks for the watch service tests
//   (go generate ./internal/service/...)
// - github.com/pressly/goose/v3/cmd/goose: declared via the go.mod tool directive
