// Command simplecross replays a file of SimpleCross action lines through
// the matching engine and writes the resulting fill/cancel/snapshot/error
// lines to stdout (spec.md §6).
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"simplecross/internal/dispatch"
	"simplecross/internal/engine"
	"simplecross/internal/runner"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"
)

func main() {
	os.Exit(run())
}

func run() int {
	inputPath := flag.String("input", "actions.txt", "path to the action file to replay; '-' reads stdin")
	flag.Parse()

	runID := uuid.New().String()
	log.Logger = log.With().Str("run_id", runID).Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	in, closeIn, err := openInput(*inputPath)
	if err != nil {
		log.Error().Err(err).Str("path", *inputPath).Msg("unable to open input")
		return 1
	}
	defer closeIn()

	eng := engine.New()
	d := dispatch.New(eng)

	t, tombCtx := tomb.WithContext(ctx)
	t.Go(func() error {
		err := runner.Run(t, d, in, os.Stdout)
		// Kill the tomb so the watcher below returns and t.Wait completes
		// on clean EOF as well as on a signal.
		t.Kill(err)
		return err
	})
	t.Go(func() error {
		<-tombCtx.Done()
		t.Kill(nil)
		return nil
	})

	log.Info().Str("path", *inputPath).Msg("simplecross starting")
	if err := t.Wait(); err != nil {
		log.Error().Err(err).Msg("simplecross exited with error")
		return 1
	}
	log.Info().Msg("simplecross shutting down")
	return 0
}

// openInput opens the action source named by path. "-" reads stdin, as
// the §6-sanctioned extension ("or, if extended, from standard input").
func openInput(path string) (io.Reader, func() error, error) {
	if path == "-" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
