// Package notify доставляет пользователю короткие уведомления об исходе операций.
package notify

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

// Writer печатает уведомления в поток вывода CLI.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (n *Writer) Success(msg string) { n.print("ok", msg) }
func (n *Writer) Error(msg string)   { n.print("error", msg) }

func (n *Writer) print(level, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.w, "[%s] %s\n", level, msg)
}

// Logger пишет уведомления в журнал. Используется там, где нет терминала.
type Logger struct {
	log *zap.SugaredLogger
}

func NewLogger(log *zap.SugaredLogger) Logger {
	return Logger{log: log}
}

func (n Logger) Success(msg string) { n.log.Infow("notify", "message", msg) }
func (n Logger) Error(msg string)   { n.log.Warnw("notify", "message", msg) }

// Multi рассылает уведомление всем получателям.
type Multi []interface {
	Success(string)
	Error(string)
}

func (m Multi) Success(msg string) {
	for _, n := range m {
		n.Success(msg)
	}
}

func (m Multi) Error(msg string) {
	for _, n := range m {
		n.Error(msg)
	}
}
