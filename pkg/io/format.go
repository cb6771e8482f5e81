package io

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/techradar/pkg/errors"
)

// Supported file formats.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FormatFromPath infers the file format from the extension of path.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer format of %s (use .toml, .json, .yaml or .yml)", path)
	}
}

func normalizeFormat(format string) string {
	f := strings.ToLower(strings.TrimPrefix(format, "."))
	if f == "yml" {
		return FormatYAML
	}
	return f
}
