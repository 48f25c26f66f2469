//go:build assert_enabled

package main

import (
	"fmt"
	"runtime"
)

// Assert panics with the location of the failed check. Builds without the
// assert_enabled tag skip the checks.
func Assert(condition bool) {
	if !condition {
		_, file, line, _ := runtime.Caller(1)
		panic(fmt.Sprintf("assert failed at %s:%d", file, line))
	}
}
