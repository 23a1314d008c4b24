// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keymap maps key chords to the abstract functions that
// widgets perform on key presses, such as moving the cursor.
package keymap

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/mobile/event/key"

	"widgetzero.org/wz/base/errors"
)

// Functions are the functions that keyboard events can perform.
type Functions int32

const (
	None Functions = iota
	MoveUp
	MoveDown
	MoveRight
	MoveLeft
	PageUp
	PageDown
	Home
	End
	FocusNext
	FocusPrevious
	SelectItem
	Abort
	Backspace
	Delete

	// Kill deletes from the cursor to the end of the line.
	Kill
	functionsN
)

var functionNames = [functionsN]string{
	"None", "MoveUp", "MoveDown", "MoveRight", "MoveLeft", "PageUp", "PageDown",
	"Home", "End", "FocusNext", "FocusPrevious", "SelectItem", "Abort",
	"Backspace", "Delete", "Kill",
}

func (f Functions) String() string {
	if f < 0 || f >= functionsN {
		return fmt.Sprintf("Functions(%d)", int32(f))
	}
	return functionNames[f]
}

// ParseFunctions returns the function with the given name,
// matched case-insensitively.
func ParseFunctions(s string) (Functions, error) {
	for i, n := range functionNames {
		if strings.EqualFold(n, s) {
			return Functions(i), nil
		}
	}
	return None, errors.Errorf("keymap: unknown function %q", s)
}

// Chord is a key with its modifiers in the canonical string form
// "Shift+Control+Alt+Meta+Key", with only the modifiers that are set
// and the key named after its [key.Code] without the Code prefix,
// for example "Control+LeftArrow".
type Chord string

// modifierNames are the modifiers in chord order.
var modifierNames = []struct {
	mod  key.Modifiers
	name string
}{
	{key.ModShift, "Shift"},
	{key.ModControl, "Control"},
	{key.ModAlt, "Alt"},
	{key.ModMeta, "Meta"},
}

// NewChord returns the chord of the given key and modifiers.
func NewChord(code key.Code, mods key.Modifiers) Chord {
	var sb strings.Builder
	for _, mn := range modifierNames {
		if mods&mn.mod != 0 {
			sb.WriteString(mn.name)
			sb.WriteByte('+')
		}
	}
	sb.WriteString(strings.TrimPrefix(code.String(), "Code"))
	return Chord(sb.String())
}

// Map is a map between key chords and functions.
type Map map[Chord]Functions

// Default is the default map, with emacs-style navigation
// in addition to the arrow keys.
var Default = Map{
	"UpArrow":           MoveUp,
	"Control+P":         MoveUp,
	"DownArrow":         MoveDown,
	"Control+N":         MoveDown,
	"RightArrow":        MoveRight,
	"Control+F":         MoveRight,
	"LeftArrow":         MoveLeft,
	"Control+B":         MoveLeft,
	"PageUp":            PageUp,
	"Control+UpArrow":   PageUp,
	"Control+U":         PageUp,
	"PageDown":          PageDown,
	"Control+DownArrow": PageDown,
	"Alt+V":             PageDown,
	"Home":              Home,
	"Control+A":         Home,
	"Meta+LeftArrow":    Home,
	"End":               End,
	"Control+E":         End,
	"Meta+RightArrow":   End,
	"Tab":               FocusNext,
	"Shift+Tab":         FocusPrevious,
	"ReturnEnter":       SelectItem,
	"KeypadEnter":       SelectItem,
	"Escape":            Abort,
	"Control+G":         Abort,
	"DeleteBackspace":   Backspace,
	"Control+H":         Backspace,
	"DeleteForward":     Delete,
	"Control+D":         Delete,
	"Control+K":         Kill,
}

// Of returns the function of the given key and modifiers, or [None].
func (m Map) Of(code key.Code, mods key.Modifiers) Functions {
	return m[NewChord(code, mods)]
}

// Chords returns the chords mapped to the given function, sorted.
func (m Map) Chords(f Functions) []Chord {
	var cs []Chord
	for c, cf := range m {
		if cf == f {
			cs = append(cs, c)
		}
	}
	slices.Sort(cs)
	return cs
}

// Merge returns a copy of the map with the given overrides applied.
// The overrides map chords to function names; the name "None"
// removes the chord.
func (m Map) Merge(overrides map[string]string) (Map, error) {
	res := make(Map, len(m)+len(overrides))
	for c, f := range m {
		res[c] = f
	}
	var errs []error
	for c, name := range overrides {
		f, err := ParseFunctions(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if f == None {
			delete(res, Chord(c))
			continue
		}
		res[Chord(c)] = f
	}
	return res, errors.Join(errs...)
}
