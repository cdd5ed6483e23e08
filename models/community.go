// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Community groups players around a sport. CreatorID is the privileged member.
type Community struct {
	CommunityID string    `json:"id"`
	CreatorID   string    `json:"creator_id"`
	Name        string    `json:"name"`
	Sport       string    `json:"sport"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ID returns the community identifier.
func (c Community) ID() string {
	return c.CommunityID
}

// Member is a single row of a community's member roster.
type Member struct {
	CommunityID string    `json:"community_id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	JoinedAt    time.Time `json:"joined_at"`
}

// ID returns the member's user identifier.
func (m Member) ID() string {
	return m.UserID
}
