// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides context-wrapped error handling on top of
// the standard errors package. Errors created here carry the call site
// they were created at, and the Log helpers report them through slog.
package errors

import (
	"errors"
	"fmt"
)

// Error is an error carrying the call site it was created at.
type Error struct {
	Base   error
	Caller string
}

// Wrap wraps the given error with the caller of Wrap.
// It returns nil if the given error is nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Base: err, Caller: callerInfo(2)}
}

// New returns a new wrapped error with the given text.
// It is the equivalent of [errors.New].
func New(text string) error {
	return &Error{Base: errors.New(text), Caller: callerInfo(2)}
}

// Errorf returns a new wrapped error with the given format and arguments.
// It is the equivalent of [fmt.Errorf], so %w verbs are supported.
func Errorf(format string, a ...any) error {
	return &Error{Base: fmt.Errorf(format, a...), Caller: callerInfo(2)}
}

func (e *Error) Error() string {
	if !Debug || e.Caller == "" {
		return e.Base.Error()
	}
	return e.Base.Error() + " (" + e.Caller + ")"
}

// Unwrap returns the underlying base error.
func (e *Error) Unwrap() error {
	return e.Base
}

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// As is [errors.As].
func As(err error, target any) bool { return errors.As(err, target) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
