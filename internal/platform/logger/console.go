package logger

import (
	"io"
	"os"
	"sync"
)

const ConsolePrefix = "[LOG]: "

// Console writes each message on its own line behind ConsolePrefix. Log has
// no error return; the first failed write is kept and reported by Err.
type Console struct {
	out io.Writer

	mu  sync.Mutex
	err error
}

func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	return &Console{out: out}
}

func (c *Console) Log(message string) {
	_, err := io.WriteString(c.out, ConsolePrefix+message+"\n")
	if err == nil {
		return
	}
	c.mu.Lock()
	if c.err == nil {
		c.err = err
	}
	c.mu.Unlock()
}

func (c *Console) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}
