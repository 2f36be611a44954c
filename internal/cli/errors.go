package cli

import (
	"errors"

	"github.com/aalvaropc/ventmap/internal/domain"
)

// userMessage is what Execute prints before exiting non-zero. Parse and
// segment errors already name the file, line number and raw text.
func userMessage(err error) string {
	msg := "error: " + err.Error()

	var oe *domain.OpError
	if errors.As(err, &oe) && oe.Kind == domain.KindNotFound && oe.Op != "workspacefinder.findroot" {
		msg += "\n(tip: run `ventmap init` to create a workspace with an example input)"
	}
	return msg
}
