package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/OpticalFlyer/pong/session"
	"github.com/OpticalFlyer/pong/terminal"
)

func runTerminal(ctx context.Context, sess *session.Session, log *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal screen: %w", err)
	}
	defer screen.Fini()

	return terminal.Run(ctx, screen, sess, log)
}
