package logger

import (
	"log"
	"os"
)

// Logger is the minimal leveled interface injected into components that talk
// to the network (gateway, poller). Components log at well-defined points:
// request start, response, error.
type Logger interface {
	Debugf(format string, a ...interface{})
	Infof(format string, a ...interface{})
	Warnf(format string, a ...interface{})
	Errorf(format string, a ...interface{})
}

type stdLogger struct {
	l *log.Logger
}

// New returns a Logger backed by the standard library log package, writing
// to stderr with the given prefix (e.g. "[asaas]").
func New(prefix string) Logger {
	return &stdLogger{l: log.New(os.Stderr, prefix+" ", log.LstdFlags)}
}

func (s *stdLogger) Debugf(format string, a ...interface{}) { s.l.Printf("DEBUG "+format, a...) }
func (s *stdLogger) Infof(format string, a ...interface{})  { s.l.Printf("INFO "+format, a...) }
func (s *stdLogger) Warnf(format string, a ...interface{})  { s.l.Printf("WARN "+format, a...) }
func (s *stdLogger) Errorf(format string, a ...interface{}) { s.l.Printf("ERROR "+format, a...) }

// Nop discards everything. Used by tests.
func Nop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
