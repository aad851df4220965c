// Command seriescoord resolves chart fixtures to coordinates from the shell.
//
// It reads a TOML or JSON chart, prepares its stacked series against the
// coordinate system, places its markers and completes its hierarchy:
//
//	seriescoord points examples/charts/balance.toml
//	seriescoord tree examples/charts/rose.json -o rose.svg
//	seriescoord explore examples/charts/balance.toml
//
// Exit status is 0 on success, 2 when the fixture or flags are rejected,
// 130 when interrupted and 1 otherwise.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/seriescoord/internal/cli"
	sterrors "github.com/matzehuels/seriescoord/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.New(os.Stderr, cli.LogInfo).RootCommand().ExecuteContext(ctx)
	cancel()
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	switch sterrors.GetCode(err) {
	case sterrors.ErrCodeInvalidInput, sterrors.ErrCodeInvalidFormat, sterrors.ErrCodeInvalidAxis,
		sterrors.ErrCodeInvalidOrigin, sterrors.ErrCodeInvalidPath, sterrors.ErrCodeNotFound:
		return 2
	}
	return 1
}
