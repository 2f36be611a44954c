package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/ventmap/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage turns an error into a one-line message for the status bar.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if !errors.As(err, &oe) {
		return "Unexpected error (see logs)"
	}

	base := "input"
	if strings.TrimSpace(oe.Path) != "" {
		base = filepath.Base(oe.Path)
	}

	switch oe.Kind {
	case domain.KindNotFound:
		return "Input not found: " + base

	case domain.KindInvalidSegment:
		if line := extractLine(err.Error()); line != "" {
			return "Invalid segment at " + base + " line " + line + " (not horizontal, vertical or 45°)"
		}
		return "Invalid segment in " + base

	case domain.KindParse:
		if line := extractLine(err.Error()); line != "" {
			return "Cannot parse " + base + " line " + line
		}
		return "Cannot parse " + base

	case domain.KindInvalidConfig:
		if strings.Contains(oe.Op, "diagram") {
			return "Diagram too large (raise diagram.max_size)"
		}
		return "Invalid config"

	default:
		return "Unexpected error (see logs)"
	}
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
