// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT used as the bearer credential of both REST and realtime
// requests. The subject claim is the user id.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact serialized form.
	SignedString string `json:"-"`

	// UserID is the parsed subject claim.
	UserID string `json:"-"`
}

// GetUserID returns the subject claim.
func (t *Token) GetUserID() (string, error) {
	userID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if userID == "" {
		return "", errors.New("empty subject")
	}

	return userID, nil
}

func (t *Token) String() string {
	return t.SignedString
}
