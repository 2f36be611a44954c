package segmentfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aalvaropc/ventmap/internal/domain"
)

const arrow = "->"

// Parse reads one segment per line in the form "x1,y1 -> x2,y2". Blank lines
// are skipped. The first malformed or invalid line aborts parsing; the error
// names the 1-based line number and the raw text.
func Parse(r io.Reader) ([]domain.Segment, error) {
	var out []domain.Segment

	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		raw := strings.TrimRight(sc.Text(), "\r")
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		seg, err := ParseLine(line)
		if err != nil {
			kind := domain.KindParse
			if domain.IsKind(err, domain.KindInvalidSegment) {
				kind = domain.KindInvalidSegment
			}
			return nil, &domain.OpError{
				Op:   "segmentfile.parse",
				Kind: kind,
				Err:  fmt.Errorf("line %d %q: %w", n, raw, err),
			}
		}
		out = append(out, seg)
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{
			Op:   "segmentfile.read",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	return out, nil
}

// ParseLine parses a single trimmed "x1,y1 -> x2,y2" line.
func ParseLine(line string) (domain.Segment, error) {
	left, right, ok := strings.Cut(line, arrow)
	if !ok {
		return domain.Segment{}, fmt.Errorf("missing %q: %w", arrow, domain.ErrParse)
	}

	from, err := parsePoint(left)
	if err != nil {
		return domain.Segment{}, err
	}
	to, err := parsePoint(right)
	if err != nil {
		return domain.Segment{}, err
	}
	return domain.NewSegment(from, to)
}

func parsePoint(s string) (domain.Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return domain.Point{}, fmt.Errorf("point %q: expected x,y: %w", strings.TrimSpace(s), domain.ErrParse)
	}
	x, err := parseCoord(xs)
	if err != nil {
		return domain.Point{}, err
	}
	y, err := parseCoord(ys)
	if err != nil {
		return domain.Point{}, err
	}
	return domain.Pt(x, y), nil
}

func parseCoord(s string) (int, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			err = ne.Err
		}
		return 0, fmt.Errorf("coordinate %q: %v: %w", s, err, domain.ErrParse)
	}
	return int(v), nil
}
