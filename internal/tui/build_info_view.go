// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/progress-sync/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, supportedVersion int) string {
	var b strings.Builder

	b.WriteString("Application: progress-sync\n")
	b.WriteString("Version: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.BuildCommit())
	b.WriteString("\n")
	b.WriteString("Data schema: v")
	b.WriteString(strconv.Itoa(supportedVersion))

	return renderPage("ABOUT", b.String(), "esc: back")
}
