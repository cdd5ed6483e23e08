// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BuildInfo carries linker-injected build metadata. The server exposes it on
// the version endpoint and both binaries print it at startup.
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewBuildInfo fills unset values with "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	orNA := func(v string) string {
		if v == "" {
			return "N/A"
		}
		return v
	}

	return BuildInfo{Version: orNA(version), Date: orNA(date), Commit: orNA(commit)}
}
