// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx provides helpers for opening and saving TOML files.
package tomlx

import (
	"bytes"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"widgetzero.org/wz/base/errors"
)

// Open reads the given object from the given TOML file.
// Fields not present in the file keep their current values.
func Open(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err)
	}
	defer f.Close()
	if err := Read(v, f); err != nil {
		return errors.Errorf("tomlx.Open %q: %w", filename, err)
	}
	return nil
}

// OpenFiles reads the given object from the given TOML files in order,
// so that later files override settings in earlier ones.
func OpenFiles(v any, filenames ...string) error {
	var errs []error
	for _, fn := range filenames {
		if err := Open(v, fn); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Read reads the given object from the given reader.
func Read(v any, reader io.Reader) error {
	return toml.NewDecoder(reader).Decode(v)
}

// ReadBytes reads the given object from the given bytes.
func ReadBytes(v any, data []byte) error {
	return Read(v, bytes.NewReader(data))
}

// Save writes the given object to the given TOML file.
func Save(v any, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err)
	}
	defer f.Close()
	return Write(v, f)
}

// Write writes the given object as TOML to the given writer.
func Write(v any, writer io.Writer) error {
	return toml.NewEncoder(writer).Encode(v)
}

// WriteBytes returns the given object encoded as TOML.
func WriteBytes(v any) ([]byte, error) {
	var b bytes.Buffer
	err := Write(v, &b)
	return b.Bytes(), err
}
