//go:build js
// +build js

package shell

import (
	"fmt"

	"github.com/gopherjs/gopherjs/js"
)

var EnableDebug = true

// Debug logs to the browser console if debug mode is enabled.
func Debug(args ...interface{}) {
	if EnableDebug {
		js.Global.Get("console").Call("log", args...)
	}
}

// Debugf formats and logs to the browser console if debug mode is enabled.
func Debugf(format string, args ...interface{}) {
	if EnableDebug {
		js.Global.Get("console").Call("log", fmt.Sprintf(format, args...))
	}
}

// DebugWarn logs a warning to the browser console if debug mode is enabled.
func DebugWarn(args ...interface{}) {
	if EnableDebug {
		js.Global.Get("console").Call("warn", args...)
	}
}
