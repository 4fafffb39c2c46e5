package common

import (
	"fmt"
	"io"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger interface {
	Log(message string)
}

const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
	logMaxAgeDays = 28
	logTimeLayout = "2006-01-02 15:04:05.000"
)

type fileLogger struct {
	mutex  sync.Mutex
	writer io.Writer
}

// NewFileLogger logs to the file specified by `path`, rotating it once it grows too large. If the file is unavailable,
// writes to the console.
func NewFileLogger(path string) Logger {
	return &fileLogger{
		writer: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAgeDays,
			LocalTime:  true,
		},
	}
}

// NewWriterLogger logs to an arbitrary writer. Mostly useful in tests.
func NewWriterLogger(writer io.Writer) Logger {
	return &fileLogger{writer: writer}
}

func (f *fileLogger) Log(message string) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	line := fmt.Sprintf("%s %s\n", time.Now().Format(logTimeLayout), message)
	_, err := io.WriteString(f.writer, line)
	if err != nil {
		fmt.Printf("Error: %s. Logging switched to console.\n", err.Error())
		fmt.Print(line)
	}
}

type nopLogger struct{}

// NewNopLogger discards everything.
func NewNopLogger() Logger {
	return nopLogger{}
}

func (nopLogger) Log(string) {}
