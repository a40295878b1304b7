package logger

import (
	"TUI_video_browser/internal/core/ports"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

type LogData struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Component string `json:"component,omitempty"`
	File      string `json:"file"`
	Function  string `json:"function"`
	Line      int    `json:"line"`
	Message   string `json:"message"`
	Err       string `json:"err,omitempty"`
}

// sink is shared by every logger derived through With, so they all write to
// the same file under the same lock.
type sink struct {
	mu      sync.Mutex
	out     io.WriteCloser
	encoder *json.Encoder
}

type fileLogger struct {
	sink      *sink
	component string
}

// NewFileLogger opens <logDir>/<logPrefix>_<timestamp>.json and writes one JSON object per entry.
func NewFileLogger(logDir, logPrefix string) (ports.LoggerPort, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory '%s': %w", logDir, err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFilePath := filepath.Join(logDir, fmt.Sprintf("%s_%s.json", logPrefix, timestamp))

	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file '%s': %w", logFilePath, err)
	}

	return NewWriterLogger(file), nil
}

// NewWriterLogger logs to an arbitrary writer. Close closes the writer.
func NewWriterLogger(w io.WriteCloser) ports.LoggerPort {
	return &fileLogger{
		sink: &sink{out: w, encoder: json.NewEncoder(w)},
	}
}

func (l *fileLogger) With(component string) ports.LoggerPort {
	if l.component != "" {
		component = l.component + "." + component
	}
	return &fileLogger{sink: l.sink, component: component}
}

func (l *fileLogger) write(level string, msg string, errIn error) {
	// skip write, the level method and the caller's frame
	pc, filePath, line, ok := runtime.Caller(2)

	entry := LogData{
		Timestamp: time.Now().Format(time.RFC3339),
		Level:     level,
		Component: l.component,
		File:      "???",
		Function:  "???",
		Message:   msg,
	}
	if ok {
		entry.File = filepath.Base(filePath)
		entry.Line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			parts := strings.Split(fn.Name(), ".")
			entry.Function = parts[len(parts)-1]
		}
	}
	if errIn != nil {
		entry.Err = errIn.Error()
	}

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	if l.sink.out == nil {
		return
	}
	if err := l.sink.encoder.Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}

func (l *fileLogger) Info(msg string) {
	l.write("INFO", msg, nil)
}

func (l *fileLogger) Error(msg string, err error) {
	l.write("ERROR", msg, err)
}

func (l *fileLogger) Warning(msg string) {
	l.write("WARNING", msg, nil)
}

func (l *fileLogger) Close() {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	if l.sink.out != nil {
		if err := l.sink.out.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
		l.sink.out = nil
	}
}

type nopLogger struct{}

// NewNopLogger discards everything.
func NewNopLogger() ports.LoggerPort { return nopLogger{} }

func (nopLogger) Info(string) {}
func (nopLogger) Error(string, error) {}
func (nopLogger) Warning(string) {}
func (n nopLogger) With(string) ports.LoggerPort { return n }
func (nopLogger) Close() {}
