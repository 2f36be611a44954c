package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/ventmap/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderStats(r domain.SolveReport, v domain.Variant) string {
	diag := "without diagonals"
	if v.IncludeDiagonals() {
		diag = "with diagonals"
	}
	return fmt.Sprintf("part %d (%s) • %d/%d segments • %d points • %d overlaps (>= %d) • %s",
		v.Part(), diag,
		r.SegmentsUsed, r.SegmentsTotal,
		r.PointsCovered, r.Overlaps, r.Threshold,
		r.Duration(),
	)
}
