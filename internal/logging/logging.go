// Package logging is a small leveled logger that prints a timestamp, a colored
// level tag, the message and the source location of the call.
//
// A *Logger satisfies flatten.Logger, so the iterator's debug events can be
// routed to it.
package logging

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"

	"github.com/arloliu/jflat/internal/options"
)

// Level is a log verbosity; a message is printed when its level is at most the
// logger's level.
type Level int32

const (
	Off Level = iota
	Fatal
	Error
	Warn
	Info
	Debug
	Trace
)

// LevelNames are the textual names of the levels, indexed by Level.
var LevelNames = []string{"off", "fatal", "error", "warn", "info", "debug", "trace"}

func (l Level) String() string {
	if l < Off || int(l) >= len(LevelNames) {
		return "unknown"
	}

	return LevelNames[l]
}

// ParseLevel returns the level named s, case-insensitively.
func ParseLevel(s string) (Level, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range LevelNames {
		if s == name {
			return Level(i), true
		}
	}

	return Info, false
}

type levelSpec struct {
	tag   string
	color *color.Color
}

var levelSpecs = [...]levelSpec{
	Off:   {"", nil},
	Fatal: {"FTL", color.New(color.BgRed, color.FgHiWhite)},
	Error: {"ERR", color.New(color.FgHiRed)},
	Warn:  {"WRN", color.New(color.FgHiYellow)},
	Info:  {"INF", color.New(color.FgHiGreen)},
	Debug: {"DBG", color.New(color.FgHiBlue)},
	Trace: {"TRC", color.New(color.FgHiMagenta)},
}

var msgColor = color.New(color.FgBlue)

const timeFormat = "2006-01-02T15:04:05.000Z07:00 "

type config struct {
	noColor bool
	noTime  bool
}

// Option configures a Logger.
type Option = options.Option[*config]

// WithoutColor prints plain level tags and locations.
func WithoutColor() Option {
	return options.NoError(func(c *config) { c.noColor = true })
}

// WithoutTimestamp omits the timestamp prefix.
func WithoutTimestamp() Option {
	return options.NoError(func(c *config) { c.noTime = true })
}

// Logger writes leveled messages to an io.Writer. It is safe for concurrent use.
type Logger struct {
	mu    sync.Mutex
	w     io.Writer
	level atomic.Int32
	cfg   config
}

// New creates a logger printing messages up to level to w.
func New(w io.Writer, level Level, opts ...Option) *Logger {
	l := &Logger{w: w}
	_ = options.Apply(&l.cfg, opts...)
	l.level.Store(int32(level))

	return l
}

// SetLevel changes the verbosity.
func (l *Logger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

// Level returns the current verbosity.
func (l *Logger) Level() Level {
	return Level(l.level.Load())
}

// Enabled reports whether messages at level are printed.
func (l *Logger) Enabled(level Level) bool {
	return level > Off && level <= l.Level()
}

func (l *Logger) Fatalf(format string, a ...any) { l.print(Fatal, fmt.Sprintf(format, a...)) }
func (l *Logger) Errorf(format string, a ...any) { l.print(Error, fmt.Sprintf(format, a...)) }
func (l *Logger) Warnf(format string, a ...any)  { l.print(Warn, fmt.Sprintf(format, a...)) }
func (l *Logger) Infof(format string, a ...any)  { l.print(Info, fmt.Sprintf(format, a...)) }
func (l *Logger) Debugf(format string, a ...any) { l.print(Debug, fmt.Sprintf(format, a...)) }
func (l *Logger) Tracef(format string, a ...any) { l.print(Trace, fmt.Sprintf(format, a...)) }

// Dump prints a spew dump of a at level. The dump is only computed when the
// level is enabled.
func (l *Logger) Dump(level Level, a ...any) {
	if !l.Enabled(level) {
		return
	}
	l.print(level, spew.Sdump(a...))
}

// Check prints err at Error level and reports whether it was non-nil.
func (l *Logger) Check(err error) bool {
	if err == nil {
		return false
	}
	l.print(Error, err.Error())

	return true
}

// print must be called directly by an exported method: location skips print
// and that method.
func (l *Logger) print(level Level, msg string) {
	if !l.Enabled(level) {
		return
	}

	loc := location(3)
	tag := levelSpecs[level].tag
	var ts string
	if !l.cfg.noTime {
		ts = time.Now().Format(timeFormat)
	}
	if !l.cfg.noColor {
		tag = levelSpecs[level].color.Sprint(tag)
		loc = msgColor.Sprint(loc)
		ts = msgColor.Sprint(ts)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s%s %s %s\n", ts, tag, strings.TrimRight(msg, "\n"), loc)
}

// location returns "file:line" of the caller skip frames up.
func location(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "?"
	}

	return fmt.Sprintf("%s:%d", file, line)
}
