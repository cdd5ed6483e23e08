// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-pickup/internal/livelist"
	"github.com/MKhiriev/go-pickup/internal/service"
)

var (
	ErrUserQuit   = errors.New("user quit")
	ErrNoServices = errors.New("client services are not configured")

	errGameIsFull = errors.New("no open spots left")
)

// userMessage turns err into the text shown in the error overlay.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, errGameIsFull):
		return "Свободных мест нет"
	case errors.Is(err, livelist.ErrEmptyMessage):
		return "Пустое сообщение"
	case errors.Is(err, service.ErrAlreadyExists):
		return "Запись уже существует"
	case errors.Is(err, service.ErrParentNotFound), errors.Is(err, service.ErrNotFound):
		return "Запись не найдена или была удалена"
	case errors.Is(err, service.ErrAccessDenied):
		return "Недостаточно прав"
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Токен недействителен или истёк"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Некорректные данные: " + err.Error()
	case errors.Is(err, service.ErrServerUnavailable):
		return "Сервер недоступен"
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
