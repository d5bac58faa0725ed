// Package runner supervises the line-processing loop that drives a
// dispatch.Dispatcher: a single tomb-managed goroutine reads lines,
// dispatches each synchronously, and writes out every result line.
//
// Grounded on internal/worker.go's WorkerPool/tomb pattern — the pool
// itself cannot survive verbatim, since spec.md §5 requires the matching
// core be driven by one sequential caller with no concurrency inside it,
// but the tomb-supervised goroutine watching t.Dying() is retained as the
// run loop's supervisor, so SIGINT/SIGTERM during a long replay stops
// cleanly between actions rather than mid-line.
package runner

import (
	"bufio"
	"fmt"
	"io"

	"simplecross/internal/dispatch"

	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"
)

// Run reads newline-delimited action lines from in, dispatches each
// through d, and writes every result line to out. It returns when in
// reaches EOF, t is asked to die, or a read/write error occurs.
func Run(t *tomb.Tomb, d *dispatch.Dispatcher, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	writer := bufio.NewWriter(out)

	lineNo := 0
	for scanner.Scan() {
		select {
		case <-t.Dying():
			log.Info().Int("linesProcessed", lineNo).Msg("interrupted, stopping after in-flight action")
			return writer.Flush()
		default:
		}

		lineNo++
		for _, result := range d.Dispatch(scanner.Text()) {
			if _, err := fmt.Fprintln(writer, result); err != nil {
				return err
			}
		}
	}

	if err := writer.Flush(); err != nil {
		return err
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	stats := d.Stats()
	log.Info().
		Int("linesProcessed", lineNo).
		Int("symbols", stats.Symbols).
		Int("restingOrders", stats.RestingOrders).
		Uint64("openQuantity", stats.OpenQuantity).
		Msg("reached end of input")
	return nil
}
