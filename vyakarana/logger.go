package vyakarana

import "github.com/rs/zerolog"

// logger is the package-level logger of vyakarana.
var logger zerolog.Logger

func init() {
	logger = zerolog.Nop()
}

// SetLogger installs l as the package-level logger used by every Derive*
// call. Callers that want visibility into branch exploration and
// invariant-violation recovery should call this once at startup.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// GetLogger returns the current package-level logger.
func GetLogger() zerolog.Logger {
	return logger
}
