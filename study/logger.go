package study

import "log"

// Logger is the sink for progress notices emitted by this package.
// It matches the stdlib log Logger for Printf/Println.
type Logger interface {
	Printf(string, ...any)
	Println(...any)
}

var logSink Logger = log.Default()

// SetLogger replaces the progress sink. Passing nil restores the default
// stdlib logger.
func SetLogger(l Logger) {
	if l == nil {
		logSink = log.Default()
		return
	}
	logSink = l
}
