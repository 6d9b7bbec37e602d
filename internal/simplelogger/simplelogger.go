// Package simplelogger appends printf-style debug lines to the file named by ANNOTEXT_LOG_FILE. Without that variable every call is a no-op, so logging can stay in
// hot paths of the CLI.
package simplelogger

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"time"
)

// EnvVar names the log file.
const EnvVar = "ANNOTEXT_LOG_FILE"

var mu sync.Mutex

// Log appends one formatted line to the log file. A trailing newline is added if missing. Failures to open or write the file are ignored.
func Log(format string, args ...any) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return
	}

	var b bytes.Buffer
	_, _ = fmt.Fprintf(&b, format, args...)
	if b.Len() == 0 || b.Bytes()[b.Len()-1] != '\n' {
		_ = b.WriteByte('\n')
	}

	mu.Lock()
	defer mu.Unlock()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.Write(b.Bytes())
}

// Timed logs "<what> started" and returns a func that logs "<what> done in <duration>". Use as: defer simplelogger.Timed("diff")().
func Timed(what string) func() {
	if os.Getenv(EnvVar) == "" {
		return func() {}
	}
	start := time.Now()
	Log("%s started", what)
	return func() {
		Log("%s done in %s", what, time.Since(start).Round(time.Microsecond))
	}
}
