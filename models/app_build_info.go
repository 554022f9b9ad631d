// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries immutable build-time metadata embedded into the
// server binary by linker flags. Exposed via the public version endpoint.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewAppBuildInfo constructs [AppBuildInfo], replacing empty values with "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNA(buildVersion),
		Date:    orNA(buildDate),
		Commit:  orNA(buildCommit),
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
