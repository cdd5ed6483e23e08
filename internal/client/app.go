// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/tui"
	"github.com/MKhiriev/go-pickup/internal/workers"
)

var ErrNoUI = errors.New("ui is not configured")

var _ Client = (*App)(nil)

type App struct {
	ui      UI
	workers *workers.Workers
	logger  *logger.Logger
}

func NewApp(ui UI, background *workers.Workers, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}
	if background == nil {
		background = workers.NewWorkers()
	}

	return &App{ui: ui, workers: background, logger: logger}, nil
}

// Run starts the background workers and blocks until the UI exits or the
// process receives SIGTERM or SIGQUIT. Ctrl+C belongs to the UI.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.workers.Start(ctx)
	defer a.workers.Stop()

	err := a.ui.Run(ctx)
	switch {
	case errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Str("func", "*App.Run").Msg("user quit")
		return nil
	case errors.Is(err, context.Canceled) && ctx.Err() != nil:
		a.logger.Info().Str("func", "*App.Run").Msg("stopped by signal")
		return nil
	case err != nil:
		a.logger.Err(err).Str("func", "*App.Run").Msg("ui stopped with error")
		return err
	}

	return nil
}
