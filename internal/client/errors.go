package client

import (
	"errors"

	"github.com/MKhiriev/go-silk-reader/models"
)

var (
	// ErrUsage is returned when no command is given.
	ErrUsage = errors.New("no command given")

	// ErrUnknownCommand is returned for a command name App does not know.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingFile is returned when a command needs a file argument and
	// none was given.
	ErrMissingFile = errors.New("missing file argument")
)

// FormatError renders err as "<Kind>: <message>". Kind is the decode error
// class when err is one, "Error" otherwise.
func FormatError(err error) string {
	kind := models.ErrorKind(err)
	if kind == "" {
		kind = "Error"
	}
	return kind + ": " + err.Error()
}
