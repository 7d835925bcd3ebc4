//go:build tools
// +build tools

// Package tools pins the generators used by go:generate.
package main

import (
	_ "go.uber.org/mock/mockgen"
)
