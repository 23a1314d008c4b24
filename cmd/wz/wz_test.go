// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"widgetzero.org/wz/base/logx"
	"widgetzero.org/wz/config"
)

const testScene = `
width: 800
height: 600
widgets:
  - type: stack-layout
    name: column
    rect: [10, 10, 200, 100]
    spacing: 10
    children:
      - type: button
        name: ok
        text: OK
      - type: label
        name: note
        text: hidden
        hidden: true
  - type: window
    name: tools
    title: Tools
    rect: [300, 200, 200, 150]
    children:
      - type: label
        name: hello
        text: hello
`

// run runs the wz command with the given arguments on a scene file
// holding testScene, and returns its output and log.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	old := logx.UserLevel
	oldLog := slog.Default()
	t.Cleanup(func() {
		logx.UserLevel = old
		slog.SetDefault(oldLog)
	})

	dir := t.TempDir()
	fn := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(fn, []byte(testScene), 0o644))
	cfn := filepath.Join(dir, "config.toml")
	require.NoError(t, config.Default().Save(cfn))

	for i, a := range args {
		if a == "SCENE" {
			args[i] = fn
		}
	}
	var out, errs bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errs)
	cmd.SetArgs(append([]string{"-c", cfn}, args...))
	err := cmd.Execute()
	return out.String(), errs.String(), err
}

func TestLayout(t *testing.T) {
	out, _, err := run(t, "layout", "SCENE")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "main-window"), lines[0])
	assert.Contains(t, out, "  column stack-layout {10 10 200 100}")
	assert.Contains(t, out, "ok button {10 10 30 21}")
	assert.NotContains(t, out, "note")
	assert.Contains(t, out, "tools window {300 200 200 150}")

	out, _, err = run(t, "layout", "--all", "SCENE")
	require.NoError(t, err)
	assert.Contains(t, out, "note label")
	assert.Contains(t, out, "hidden")
}

func TestDraw(t *testing.T) {
	out, _, err := run(t, "draw", "SCENE")
	require.NoError(t, err)
	ok := strings.Index(out, "Button ok")
	win := strings.Index(out, "Window tools")
	hello := strings.Index(out, "Label hello")
	require.GreaterOrEqual(t, ok, 0)
	require.GreaterOrEqual(t, win, 0)
	require.GreaterOrEqual(t, hello, 0)
	assert.Less(t, ok, win, "windows are drawn over the content")
	assert.Less(t, win, hello)
	assert.NotContains(t, out, "note")
}

func TestDock(t *testing.T) {
	out, _, err := run(t, "dock", "SCENE", "tools", "west")
	require.NoError(t, err)
	assert.Contains(t, out, "content frame {200 0 600 600}")
	assert.Contains(t, out, "hello label")
	assert.NotContains(t, out, "tools window")

	out, _, err = run(t, "dock", "--undock", "SCENE", "tools", "north")
	require.NoError(t, err)
	assert.Contains(t, out, "Tools round-trips at {300 200 200 150}")

	_, _, err = run(t, "dock", "SCENE", "column", "west")
	assert.ErrorContains(t, err, `no window named "column"`)
	_, _, err = run(t, "dock", "SCENE", "tools", "up")
	assert.ErrorContains(t, err, `unknown dock edge "up"`)
}

func TestVerbosity(t *testing.T) {
	_, log, err := run(t, "-v", "layout", "SCENE")
	require.NoError(t, err)
	assert.Contains(t, log, "opened scene")
	assert.Equal(t, slog.LevelInfo, logx.UserLevel)

	_, log, err = run(t, "layout", "SCENE")
	require.NoError(t, err)
	assert.NotContains(t, log, "opened scene")
	assert.Equal(t, slog.LevelWarn, logx.UserLevel)
}

func TestMissingScene(t *testing.T) {
	_, _, err := run(t, "layout", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
	_, _, err = run(t, "layout")
	assert.Error(t, err)
}
