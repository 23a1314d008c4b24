// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListenersRegistrationOrder(t *testing.T) {
	var ls Listeners
	var calls []string
	ls.Add(ButtonClicked, func(e *Event) { calls = append(calls, "first") })
	ls.Add(ListItemSelected, func(e *Event) { calls = append(calls, "list") })
	ls.Add(ButtonClicked, func(e *Event) { calls = append(calls, "second") })

	ls.Call(New(ButtonClicked, nil))
	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, 2, ls.Len(ButtonClicked))

	calls = nil
	ls.Call(New(ScrollerValueChanged, nil))
	assert.Empty(t, calls)
}

func TestNilListenersCall(t *testing.T) {
	var ls Listeners
	assert.NotPanics(t, func() { ls.Call(New(ButtonPressed, nil)) })
}

func TestTypesString(t *testing.T) {
	assert.Equal(t, "TabBarTabChanged", TabBarTabChanged.String())
	assert.Equal(t, "Types(99)", Types(99).String())
	assert.Len(t, TypesValues(), int(typesN))
}
