//go:build !debug

package gvdfortune

// logDebugf is a no-op outside of debug builds (see log_debug.go).
func logDebugf(format string, v ...interface{}) {}
