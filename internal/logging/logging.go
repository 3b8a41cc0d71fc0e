package logging

import "log"

// Prefix tags every debug line written by thash.
const Prefix = "[thash] "

// Debugf logs through the standard logger when enabled is true.
func Debugf(enabled bool, format string, args ...interface{}) {
	if !enabled {
		return
	}
	log.Printf(Prefix+format, args...)
}
