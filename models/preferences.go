// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Preferences holds the per-user profile settings. There is at most one row
// per user.
type Preferences struct {
	UserID        string    `json:"user_id"`
	DisplayName   string    `json:"display_name"`
	Sports        SportList `json:"sports"`
	SkillLevel    int       `json:"skill_level"`
	MaxDistanceKM int       `json:"max_distance_km"`
	Notifications bool      `json:"notifications"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ID returns the owner's user identifier.
func (p Preferences) ID() string {
	return p.UserID
}

// SportList is stored as a single comma separated column and travels over the
// wire in the same form.
type SportList []string

// MarshalJSON encodes the list as "football,tennis".
func (s SportList) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.Join(s, ","))
}

// UnmarshalJSON accepts both the comma separated form and a JSON array.
func (s *SportList) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*s = list
		return nil
	}

	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*s = ParseSportList(raw)
	return nil
}

// ParseSportList splits a comma separated list, dropping blanks.
func ParseSportList(raw string) SportList {
	out := SportList{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String joins the list back into its stored form.
func (s SportList) String() string {
	return strings.Join(s, ",")
}
