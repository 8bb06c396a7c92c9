package framework

import (
	"fmt"
	"io"
	"sync"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// Logger is the minimal logging interface used throughout the harness. The standard *log.Logger
// and *logrus.Logger both satisfy it.
type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

func NullLogger() Logger { return nullLogger{} }

type prefixLogger struct {
	logger Logger
	prefix string
}

func (p prefixLogger) Printf(message string, args ...interface{}) {
	p.logger.Printf("%s%s", p.prefix, fmt.Sprintf(message, args...))
}

// LoggerWithPrefix returns a Logger that adds the prefix to each message before passing it on.
func LoggerWithPrefix(logger Logger, prefix string) Logger {
	if logger == nil {
		return NullLogger()
	}
	return prefixLogger{logger: logger, prefix: prefix}
}

// DebugMessage is one line of a test's debug log: a step the test took, or something the
// browser page reported.
type DebugMessage struct {
	Time    time.Time
	Message string
}

func (m DebugMessage) String() string {
	return fmt.Sprintf("[%s] %s", m.Time.Format(timestampFormat), m.Message)
}

// CapturedOutput is the debug log of one test, in the order it was written.
type CapturedOutput []DebugMessage

// Dump writes each message on its own line after the prefix.
func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	for _, m := range output {
		fmt.Fprintf(dest, "%s%s\n", prefix, m)
	}
}

// CapturingLogger keeps a test's debug log in memory so it can be shown only if the test fails.
// Browser event listeners write to it from their own goroutines.
type CapturingLogger struct {
	output []DebugMessage
	lock   sync.Mutex
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	m := DebugMessage{Time: time.Now(), Message: fmt.Sprintf(message, args...)}
	l.lock.Lock()
	l.output = append(l.output, m)
	l.lock.Unlock()
}

// Output returns a copy of everything logged so far.
func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	defer l.lock.Unlock()
	return append(CapturedOutput(nil), l.output...)
}
