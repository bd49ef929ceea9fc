package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// maxPresetSize is the maximum allowed size for a preset YAML file.
const maxPresetSize = 1 << 20 // 1MB

// LoadPreset reads Options from a YAML preset file. Unknown keys are
// rejected so that typos do not silently fall back to defaults.
func LoadPreset(path string) (Options, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Options{}, fmt.Errorf("open preset: %w", err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, maxPresetSize+1))
	if err != nil {
		return Options{}, fmt.Errorf("read preset: %w", err)
	}
	if len(data) > maxPresetSize {
		return Options{}, fmt.Errorf("%w: %s exceeds %d bytes", ErrPresetTooLarge, path, maxPresetSize)
	}
	return ParsePreset(data)
}

// ParsePreset decodes Options from YAML bytes. An empty document yields
// empty Options.
func ParsePreset(data []byte) (Options, error) {
	var opts Options
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		if errors.Is(err, io.EOF) {
			return Options{}, nil
		}
		return Options{}, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return opts, nil
}
