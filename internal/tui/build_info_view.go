// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

// renderBuildInfoWindow shows the client build and, when known, the server
// version.
func renderBuildInfoWindow(info models.AppBuildInfo, serverVersion string) string {
	var b strings.Builder

	b.WriteString("Название приложения: go-note-keeper\n")
	b.WriteString("Версия: ")
	b.WriteString(info.Version)
	b.WriteString("\n")
	b.WriteString("Дата: ")
	b.WriteString(info.Date)
	b.WriteString("\n")
	b.WriteString("Коммит: ")
	b.WriteString(info.Commit)

	if serverVersion != "" {
		b.WriteString("\nВерсия сервера: ")
		b.WriteString(serverVersion)
	}

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", b.String(), "esc: назад")
}
