//go:build tools
// +build tools

// Package tools provides build tools necessary for seedgen.
package tools

// Put only installable tools into this list.
import (
	_ "github.com/golang/mock/mockgen"
)
