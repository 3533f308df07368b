package terminal

import (
	"fmt"
	"sync"
	"time"
)

const spinner = `|/-\`

// Operation represents a long running operation with a spinner. Not
// meant for concurrent use: interleaved spinners would garble the
// line, use Info/Error from worker goroutines instead.
type Operation struct {
	done chan struct{}
	once sync.Once
}

// NewOperation starts a long running operation
func NewOperation(format string, a ...interface{}) *Operation {
	o := &Operation{done: make(chan struct{})}
	frames := []rune(spinner)

	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		pos := 0

		for {
			select {
			case <-o.done:
				return
			case <-ticker.C:
				fmt.Printf("\r  %s%s%s %s ", yellow, fmt.Sprintf(format, a...), reset, string(frames[pos%len(frames)]))
				pos++
			}
		}
	}()

	return o
}

// Success informs that the operation finished.
func (o *Operation) Success(format string, a ...interface{}) {
	o.finish("✓", green, format, a...)
}

// Error informs that the operation failed.
func (o *Operation) Error(err error, format string, a ...interface{}) {
	message := format
	if err != nil {
		message = fmt.Sprintf("%s [%s]", format, err)
	}
	o.finish("✗", red, message, a...)
}

func (o *Operation) finish(symbol string, color string, format string, a ...interface{}) {
	o.once.Do(func() { close(o.done) })

	fmt.Printf("\033[2K")
	fmt.Printf("\r%s %s%s%s \n", symbol, color, fmt.Sprintf(format, a...), reset)
}
