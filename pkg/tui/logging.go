package tui

import "github.com/charmbracelet/log"

var debugLogging = false

// debug logs msg with optional key/value pairs if debugLogging is enabled
func debug(msg string, keyvals ...interface{}) {
	if !debugLogging {
		return
	}
	log.Debug(msg, keyvals...)
}
