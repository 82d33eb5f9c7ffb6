package models

import (
	"errors"
	"fmt"
	"strings"
)

// ExportFormat selects the serialization of an exported document.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportYAML ExportFormat = "yaml"
)

// ErrUnknownExportFormat is returned by ParseExportFormat for anything other
// than json or yaml.
var ErrUnknownExportFormat = errors.New("unknown export format")

// ParseExportFormat maps a user supplied name to an ExportFormat. The empty
// string selects JSON; "yml" is accepted as an alias.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return ExportJSON, nil
	case "yaml", "yml":
		return ExportYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownExportFormat, s)
	}
}

// ContentType returns the MIME type served for the format.
func (f ExportFormat) ContentType() string {
	if f == ExportYAML {
		return "application/yaml"
	}
	return "application/json"
}
