//go:build !debug
// +build !debug

package raycast

func DebugLog(format string, args ...interface{})     {}
func DebugLogOnce(format string, args ...interface{}) {}
