// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonx provides helpers for opening and saving JSON files.
package jsonx

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"widgetzero.org/wz/base/errors"
)

// Open reads the given object from the given JSON file.
func Open(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err)
	}
	defer f.Close()
	if err := Read(v, f); err != nil {
		return errors.Errorf("jsonx.Open %q: %w", filename, err)
	}
	return nil
}

// Read reads the given object from the given reader.
func Read(v any, reader io.Reader) error {
	return json.NewDecoder(reader).Decode(v)
}

// ReadBytes reads the given object from the given bytes.
func ReadBytes(v any, data []byte) error {
	return json.Unmarshal(data, v)
}

// Save writes the given object to the given JSON file, indented.
func Save(v any, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err)
	}
	defer f.Close()
	return Write(v, f)
}

// Write writes the given object as indented JSON to the given writer.
func Write(v any, writer io.Writer) error {
	enc := json.NewEncoder(writer)
	enc.SetIndent("", "\t")
	return enc.Encode(v)
}

// WriteBytes returns the given object encoded as indented JSON.
func WriteBytes(v any) ([]byte, error) {
	var b bytes.Buffer
	err := Write(v, &b)
	return b.Bytes(), err
}
