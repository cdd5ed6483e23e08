// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session describes the acting user of a client process.
type Session struct {
	UserID      string
	DisplayName string
	SkillLevel  int
}
