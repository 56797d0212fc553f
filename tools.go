//go:build tools
// +build tools

package bench

import (
	_ "honnef.co/go/tools/cmd/staticcheck"
)
