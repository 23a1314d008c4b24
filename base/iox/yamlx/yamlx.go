// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx provides helpers for opening and saving YAML files.
package yamlx

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"widgetzero.org/wz/base/errors"
)

// Open reads the given object from the given YAML file.
func Open(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err)
	}
	defer f.Close()
	if err := Read(v, f); err != nil {
		return errors.Errorf("yamlx.Open %q: %w", filename, err)
	}
	return nil
}

// Read reads the given object from the given reader.
func Read(v any, reader io.Reader) error {
	return yaml.NewDecoder(reader).Decode(v)
}

// ReadBytes reads the given object from the given bytes.
func ReadBytes(v any, data []byte) error {
	return yaml.Unmarshal(data, v)
}

// Save writes the given object to the given YAML file.
func Save(v any, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err)
	}
	defer f.Close()
	return Write(v, f)
}

// Write writes the given object as YAML to the given writer.
func Write(v any, writer io.Writer) error {
	enc := yaml.NewEncoder(writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// WriteBytes returns the given object encoded as YAML.
func WriteBytes(v any) ([]byte, error) {
	var b bytes.Buffer
	err := Write(v, &b)
	return b.Bytes(), err
}
