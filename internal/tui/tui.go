// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal client: upcoming games with their live
// rosters, communities, chat threads, participation goals and the profile.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pickup/internal/livelist"
	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/service"
	"github.com/MKhiriev/go-pickup/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Registry keeps the live lists on screen refreshed in the background.
type Registry interface {
	Register(list livelist.Focuser) (unregister func())
}

type TUI struct {
	services  *service.ClientServices
	registry  Registry
	buildInfo models.BuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, registry Registry, buildInfo models.BuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, ErrNoServices
	}

	return &TUI{
		services:  services,
		registry:  registry,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run resolves the session and blocks until the user quits. Quitting with q
// or ctrl+c returns ErrUserQuit.
func (t *TUI) Run(ctx context.Context) error {
	session, err := t.services.SessionService.Session(ctx)
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("failed to resolve session")
		return fmt.Errorf("resolve session: %w", err)
	}

	uiCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := newAppModel(uiCtx, t.services, t.registry, session, t.buildInfo, t.logger)
	defer model.lists.closeAll()

	t.logger.Info().Str("func", "*TUI.Run").Str("user_id", session.UserID).Msg("starting ui")

	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(uiCtx)).Run()
	if runErr != nil {
		if errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
