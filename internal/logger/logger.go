package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

var GlobalLogger = New(false, false, true)

const (
	IconError   = "✗"
	IconWarning = "⚠"
	IconVerbose = "…"
	IconDebug   = "»"
)

type Logger struct {
	verbose      bool
	debug        bool
	colors       bool
	output       io.Writer
	verboseColor *color.Color
	errorColor   *color.Color
	warnColor    *color.Color
	debugColor   *color.Color
	mutex        sync.Mutex
}

// New creates a configured logger instance
func New(verbose bool, debug bool, useColors bool) *Logger {
	if noColor := os.Getenv("NO_COLOR") != ""; noColor {
		useColors = false
	}

	return &Logger{
		verbose:      verbose,
		debug:        debug,
		colors:       useColors,
		output:       os.Stdout,
		verboseColor: color.New(color.FgCyan),
		errorColor:   color.New(color.FgRed, color.Bold),
		warnColor:    color.New(color.FgYellow, color.Bold),
		debugColor:   color.New(color.Faint, color.FgBlue),
	}
}

// isTerminal checks if the writer is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && (fi.Mode()&os.ModeCharDevice) != 0
}

func (l *Logger) SetVerbose(v bool) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.verbose = v
}

func (l *Logger) SetDebug(d bool) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.debug = d
}

// SetColors toggles colored output explicitly, e.g. for --no-color.
func (l *Logger) SetColors(enabled bool) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.colors = enabled
}

// SetOutput changes the output writer
func (l *Logger) SetOutput(w io.Writer) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.output = w

	// Only check terminal if colors were enabled
	if l.colors {
		l.colors = isTerminal(w)
	}
}

// Debugf prints formatted debug message when debug enabled
func (l *Logger) Debugf(format string, v ...interface{}) {
	if !l.debug {
		return
	}
	msg := fmt.Sprintf(format, v...)
	timestamp := time.Now().Format("15:04:05.000")
	if l.colors {
		l.debugColor.Printf("%s %s [DEBUG] %s\n", IconDebug, timestamp, msg)
	} else {
		fmt.Fprintf(l.output, "%s [DEBUG] %s\n", timestamp, msg)
	}
}

// Verbosef prints formatted verbose message when verbose enabled
func (l *Logger) Verbosef(format string, v ...interface{}) {
	if !l.verbose {
		return
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()
	msg := fmt.Sprintf(format, v...)
	if l.colors {
		l.verboseColor.Printf("%s [INFO] %s\n", IconVerbose, msg)
	} else {
		fmt.Fprintf(l.output, "%s [INFO] %s\n", IconVerbose, msg)
	}
}

// Errorf prints error message
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	msg := fmt.Sprintf(format, v...)
	writer := l.output

	if l.output == os.Stdout {
		writer = os.Stderr
	}

	if l.colors {
		l.errorColor.Fprintf(writer, "%s [ERROR] %s\n", IconError, msg)
	} else {
		fmt.Fprintf(writer, "[ERROR] %s\n", msg)
	}
}

// Warnf prints warning message
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	msg := fmt.Sprintf(format, v...)
	if l.colors {
		l.warnColor.Printf("%s [WARN] %s\n", IconWarning, msg)
	} else {
		fmt.Fprintf(l.output, "%s [WARN] %s\n", IconWarning, msg)
	}
}

// Printf prints normal formatted message
func (l *Logger) Printf(format string, v ...interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	fmt.Fprintf(l.output, format, v...)
}
