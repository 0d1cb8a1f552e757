// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// UnknownBuildValue replaces build metadata that was not stamped at link time.
const UnknownBuildValue = "N/A"

// AppBuildInfo is the metadata injected into cmd/server and cmd/client with
// -ldflags "-X main.buildVersion=...".
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo trims the values and replaces empty ones with
// [UnknownBuildValue].
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

// HasVersion reports whether a real version was stamped into the binary.
func (a AppBuildInfo) HasVersion() bool {
	return a.Version != "" && a.Version != UnknownBuildValue
}

// String renders the banner printed by both binaries on start.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", a.Version, a.Date, a.Commit)
}

func orUnknown(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return UnknownBuildValue
	}
	return v
}
