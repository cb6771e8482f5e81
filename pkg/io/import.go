package io

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/layout"
	"github.com/matzehuels/techradar/pkg/radar"
)

// ReadDefinition decodes a radar definition from r in the given format
// ("toml", "json" or "yaml") and validates it.
//
// The definition's options are returned as written; merge them onto the
// defaults with [radar.Definition.ResolvedOptions].
func ReadDefinition(r io.Reader, format string) (radar.Definition, error) {
	var def radar.Definition
	if err := decode(r, format, &def); err != nil {
		return radar.Definition{}, err
	}
	if err := def.Validate(); err != nil {
		return radar.Definition{}, err
	}
	return def, nil
}

// ImportDefinition reads the definition file at path, choosing the decoder
// from its extension.
func ImportDefinition(path string) (radar.Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return radar.Definition{}, err
	}
	f, err := open(path)
	if err != nil {
		return radar.Definition{}, err
	}
	defer f.Close()

	def, err := ReadDefinition(f, format)
	if err != nil {
		return radar.Definition{}, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return def, nil
}

// ReadBlips decodes a JSON or YAML array of blips from r and checks their
// ids.
func ReadBlips(r io.Reader, format string) ([]radar.Blip, error) {
	if f := normalizeFormat(format); f != FormatJSON && f != FormatYAML {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "blip lists must be json or yaml, got %q", format)
	}
	var blips []radar.Blip
	if err := decode(r, format, &blips); err != nil {
		return nil, err
	}
	if err := radar.ValidateBlips(blips); err != nil {
		return nil, err
	}
	return blips, nil
}

// ImportBlips reads the blip list at path, choosing the decoder from its
// extension.
func ImportBlips(path string) ([]radar.Blip, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	blips, err := ReadBlips(f, format)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return blips, nil
}

// ReadDocument decodes an exported layout document from r.
func ReadDocument(r io.Reader) (layout.Document, error) {
	var doc layout.Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return layout.Document{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode layout")
	}
	return doc, nil
}

// ImportDocument reads an exported layout document from path.
func ImportDocument(path string) (layout.Document, error) {
	f, err := open(path)
	if err != nil {
		return layout.Document{}, err
	}
	defer f.Close()
	return ReadDocument(f)
}

func decode(r io.Reader, format string, v any) error {
	var err error
	switch normalizeFormat(format) {
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(v)
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(v)
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(v)
		if stderrors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode %s", normalizeFormat(format))
	}
	return nil
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "%s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	return f, nil
}
