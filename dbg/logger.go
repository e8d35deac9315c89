package dbg

import (
	"fmt"
	"io"
	"log"

	"github.com/logrusorgru/aurora"
)

type Level int

const (
	LevelTrace Level = iota
	LevelInfo
	LevelWarn
)

// Logger prints one line per event, with a coloured level tag. The zero value
// and a nil *Logger both discard everything, so library code can log
// unconditionally.
type Logger struct {
	out   *log.Logger
	au    aurora.Aurora
	level Level
}

func NewLogger(w io.Writer, level Level, color bool) *Logger {
	return &Logger{
		out:   log.New(w, "", log.Ltime|log.Lmicroseconds),
		au:    aurora.NewAurora(color),
		level: level,
	}
}

func (l *Logger) enabled(level Level) bool {
	return l != nil && l.out != nil && level >= l.level
}

func (l *Logger) tag(level Level) string {
	switch level {
	case LevelTrace:
		return l.au.Cyan("trace").String()
	case LevelInfo:
		return l.au.Green("info ").String()
	default:
		return l.au.Red("warn ").String()
	}
}

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	if !l.enabled(level) {
		return
	}
	l.out.Printf("%s %s", l.tag(level), fmt.Sprintf(format, args...))
}

func (l *Logger) Tracef(format string, args ...interface{}) {
	l.logf(LevelTrace, format, args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(LevelInfo, format, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(LevelWarn, format, args...)
}

// The readable name of obj, highlighted for log output. A nil or discarding
// logger prints nothing, so it returns "" without naming obj at all.
func (l *Logger) Name(obj interface{}) string {
	if l == nil || l.out == nil {
		return ""
	}
	return l.au.Bold(Name(obj)).String()
}
