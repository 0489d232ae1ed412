// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds values shared by the binaries that are not owned by
// any single internal package.
package models

import "strings"

// notAvailable stands in for build fields the linker did not set.
const notAvailable = "N/A"

// AppBuildInfo is the build metadata injected with -ldflags -X.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: strings.TrimSpace(buildVersion),
		buildDate:    strings.TrimSpace(buildDate),
		buildCommit:  strings.TrimSpace(buildCommit),
	}
}

// BuildVersion returns the release version, or "N/A".
func (a AppBuildInfo) BuildVersion() string {
	return orNotAvailable(a.buildVersion)
}

// BuildDate returns the build timestamp, or "N/A".
func (a AppBuildInfo) BuildDate() string {
	return orNotAvailable(a.buildDate)
}

// BuildCommit returns the source commit, or "N/A".
func (a AppBuildInfo) BuildCommit() string {
	return orNotAvailable(a.buildCommit)
}

// String renders the one-line form shown in the prompt footer, e.g.
// "go-page-gate v1.2.0 (3f2a9c1, 2026-10-01)".
func (a AppBuildInfo) String() string {
	return "go-page-gate " + a.BuildVersion() + " (" + a.BuildCommit() + ", " + a.BuildDate() + ")"
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
