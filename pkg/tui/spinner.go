package tui

import (
	"context"
	"os"

	"schgen/pkg/logging"

	"github.com/charmbracelet/huh/spinner"
)

// Spin runs action behind a spinner and returns its error. It always
// waits for action to return; dismissing the spinner cancels the context
// handed to action. Without a terminal on stdout the action runs plainly.
func Spin(ctx context.Context, title string, action func(ctx context.Context) error) error {
	actionCtx, cancelAction := context.WithCancel(ctx)
	defer cancelAction()

	// The spinner draws on stdout, which may be carrying the document.
	if !logging.IsTerminal(os.Stdout) {
		return action(actionCtx)
	}

	spinCtx, stopSpin := context.WithCancel(ctx)
	defer stopSpin()
	done := make(chan error, 1)
	go func() {
		done <- action(actionCtx)
		stopSpin()
	}()

	if err := spinner.New().Title(title).Context(spinCtx).Run(); err != nil {
		cancelAction()
	}
	return <-done
}
