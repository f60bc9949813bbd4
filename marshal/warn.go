package marshal

import "log"

// Warnf is called when FromTagFmt skips an unrecognized map key. It is a
// package variable, not a parameter threaded through every FromTagFmt
// call, so existing call sites are unaffected by adding diagnostics.
// client.Client.Authorize reassigns it on every call to route warnings
// through that Client's own log sink; since Warnf is process-wide, the
// most recently calling Client wins when more than one is in use.
var Warnf = func(format string, args ...any) {
	log.Printf("marshal: "+format, args...)
}
