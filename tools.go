//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// mockgen is invoked through `go generate` and is tracked here so that
// go.mod and go.sum stay in sync on a fresh checkout.
package tweet_lab

import (
	_ "go.uber.org/mock/mockgen"
)
