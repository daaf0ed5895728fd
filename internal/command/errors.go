package command

import (
	"errors"

	"github.com/vk/contactbook/internal/contact"
)

// ErrIncompleteInput is returned by handlers invoked with too few arguments.
var ErrIncompleteInput = errors.New("incomplete input")

const (
	msgIncomplete     = "Incomplete input. Please provide all required arguments."
	msgInvalidCommand = "Invalid command."
)

// Render converts an error returned by a handler into the reply shown to the
// user.
func Render(err error) string {
	var (
		vErr  *contact.ValidationError
		nfErr *contact.NotFoundError
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrIncompleteInput):
		return msgIncomplete
	case errors.As(err, &vErr):
		return vErr.Error()
	case errors.As(err, &nfErr):
		return nfErr.Error()
	default:
		return "Error: " + err.Error()
	}
}
