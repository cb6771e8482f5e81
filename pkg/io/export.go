package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/layout"
)

// WriteLayoutJSON encodes the exported form of l as indented JSON.
// The output can be read back with [ReadDocument].
func WriteLayoutJSON(l layout.Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l.Export()); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode layout")
	}
	return nil
}

// ExportLayoutJSON writes l to a JSON file at path.
func ExportLayoutJSON(l layout.Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", path)
	}
	if err := WriteLayoutJSON(l, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
