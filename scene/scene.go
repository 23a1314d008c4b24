// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene builds widget trees from declarative descriptions
// stored as YAML, TOML or JSON.
//
// A scene file describes the size of the main window and its widgets:
//
//	width: 800
//	height: 600
//	widgets:
//	  - type: stack-layout
//	    rect: [0, 0, 200, 100]
//	    spacing: 10
//	    children:
//	      - type: button
//	        text: OK
//	  - type: window
//	    title: Tools
//	    rect: [300, 200, 200, 150]
//	    dock: west
//
// Type names are matched in kebab case, so "StackLayout", "stack_layout"
// and "stack-layout" all name a [core.StackLayout].
package scene

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/iancoleman/strcase"

	"widgetzero.org/wz/base/errors"
	"widgetzero.org/wz/base/iox/jsonx"
	"widgetzero.org/wz/base/iox/tomlx"
	"widgetzero.org/wz/base/iox/yamlx"
	"widgetzero.org/wz/config"
	"widgetzero.org/wz/core"
	"widgetzero.org/wz/geom"
	"widgetzero.org/wz/styles"
)

// Scene is the description of a main window and its widgets.
type Scene struct {
	Width   int     `json:"width" yaml:"width" toml:"width"`
	Height  int     `json:"height" yaml:"height" toml:"height"`
	Widgets []*Node `json:"widgets" yaml:"widgets" toml:"widgets"`
}

// Node is the description of one widget and its children.
// Fields that do not apply to the type of the widget are ignored.
type Node struct {

	// Type is the widget type, for example "button" or "stack-layout".
	Type string `json:"type" yaml:"type" toml:"type"`

	// Name is the tree name of the widget. The default is the
	// kebab-case type name followed by the index in the parent.
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`

	// Text is the text of labels, buttons and text edits.
	Text string `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`

	// Title is the title of windows, group boxes and tabbed pages.
	Title string `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`

	// Items are the items of lists and combos.
	Items []string `json:"items,omitempty" yaml:"items,omitempty" toml:"items,omitempty"`

	// Selected is the selected item of lists and combos, or the
	// selected tab of a tabbed widget.
	Selected *int `json:"selected,omitempty" yaml:"selected,omitempty" toml:"selected,omitempty"`

	// Checked is the state of checkboxes and radio buttons.
	Checked bool `json:"checked,omitempty" yaml:"checked,omitempty" toml:"checked,omitempty"`

	// Direction is "vertical" or "horizontal", for stack layouts
	// and scrollers.
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty" toml:"direction,omitempty"`

	// Spacing is the space between the children of a stack layout.
	Spacing int `json:"spacing,omitempty" yaml:"spacing,omitempty" toml:"spacing,omitempty"`

	// Value, Step and Max are the scroller values.
	Value int `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	Step  int `json:"step,omitempty" yaml:"step,omitempty" toml:"step,omitempty"`
	Max   int `json:"max,omitempty" yaml:"max,omitempty" toml:"max,omitempty"`

	// MaxLength is the maximum number of characters of a text edit.
	MaxLength int `json:"maxLength,omitempty" yaml:"maxLength,omitempty" toml:"maxLength,omitempty"`

	// Rect is [x, y, w, h] relative to the parent.
	Rect []int `json:"rect,omitempty" yaml:"rect,omitempty" toml:"rect,omitempty"`

	// Position is [x, y] relative to the parent.
	Position []int `json:"position,omitempty" yaml:"position,omitempty" toml:"position,omitempty"`

	// Size is [w, h]. A zero dimension keeps the measured size.
	Size []int `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty"`

	// Margin is [all], [vertical, horizontal] or [top, right, bottom, left].
	Margin []int `json:"margin,omitempty" yaml:"margin,omitempty" toml:"margin,omitempty"`

	// Stretch is parsed with [styles.ParseStretch], for example "width".
	Stretch string `json:"stretch,omitempty" yaml:"stretch,omitempty" toml:"stretch,omitempty"`

	// Align is parsed with [styles.ParseAlign], for example "center|middle".
	Align string `json:"align,omitempty" yaml:"align,omitempty" toml:"align,omitempty"`

	DrawPriority int `json:"drawPriority,omitempty" yaml:"drawPriority,omitempty" toml:"drawPriority,omitempty"`

	// Hidden hides the widget.
	Hidden bool `json:"hidden,omitempty" yaml:"hidden,omitempty" toml:"hidden,omitempty"`

	// Dock is the edge that a top-level window is docked at.
	Dock string `json:"dock,omitempty" yaml:"dock,omitempty" toml:"dock,omitempty"`

	Children []*Node `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// Formats are the file formats that a scene can be read from,
// keyed by file extension.
var Formats = map[string]func(v any, r io.Reader) error{
	".yaml": yamlx.Read,
	".yml":  yamlx.Read,
	".toml": tomlx.Read,
	".json": jsonx.Read,
}

// Open reads the scene in the given file, in the format given by
// its extension.
func Open(filename string) (*Scene, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	read, ok := Formats[ext]
	if !ok {
		return nil, errors.Errorf("scene.Open %q: unknown file format %q", filename, ext)
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err)
	}
	defer f.Close()
	s := &Scene{}
	if err := read(s, f); err != nil {
		return nil, errors.Errorf("scene.Open %q: %w", filename, err)
	}
	return s, nil
}

// Read reads a scene in the format of the given file extension,
// for example ".yaml".
func Read(r io.Reader, ext string) (*Scene, error) {
	read, ok := Formats[strings.ToLower(ext)]
	if !ok {
		return nil, errors.Errorf("scene.Read: unknown file format %q", ext)
	}
	s := &Scene{}
	if err := read(s, r); err != nil {
		return nil, errors.Wrap(err)
	}
	return s, nil
}

// Build returns a new main window drawing with the given renderer,
// holding the widgets of the scene. A nil config uses [config.Default].
// Windows with a dock edge are docked once all widgets are built.
func (s *Scene) Build(r core.Renderer, cfg *config.Config) (*core.MainWindow, error) {
	mw := core.NewMainWindow(r, cfg)
	if s.Width > 0 || s.Height > 0 {
		mw.SetSize(s.Width, s.Height)
	}
	type docking struct {
		w    *core.Window
		edge core.DockEdge
	}
	var docks []docking
	for _, n := range s.Widgets {
		w, err := build(mw.Add, n, true)
		if err != nil {
			mw.Destroy()
			return nil, err
		}
		if n.Dock == "" {
			continue
		}
		win, ok := w.(*core.Window)
		if !ok {
			mw.Destroy()
			return nil, errors.Errorf("scene: %s %q cannot be docked, only windows can", n.Type, n.Name)
		}
		edge, ok := core.ParseDockEdge(n.Dock)
		if !ok || edge == core.DockNone {
			mw.Destroy()
			return nil, errors.Errorf("scene: unknown dock edge %q", n.Dock)
		}
		docks = append(docks, docking{win, edge})
	}
	for _, d := range docks {
		slog.Debug("scene: docking window", "title", d.w.Title(), "edge", d.edge)
		mw.DockWindow(d.w, d.edge)
	}
	return mw, nil
}

// TypeName returns the kebab-case name that the given type name is
// matched as.
func TypeName(typ string) string {
	return strcase.ToKebab(strings.TrimSpace(typ))
}

// kind describes how to create one type of widget.
type kind struct {

	// new returns a new widget for the node.
	new func(n *Node) (core.Widget, error)

	// add returns the function adding children to the widget,
	// or nil if it does not accept children.
	add func(w core.Widget) func(child core.Widget)
}

// addTo is the add function of widgets embedding [core.WidgetBase]
// that accept children directly.
func addTo(w core.Widget) func(child core.Widget) { return w.AsWidget().Add }

// Kinds are the widget types that scenes can create, keyed by
// their [TypeName].
var Kinds = map[string]kind{
	"frame": {
		new: func(n *Node) (core.Widget, error) { return core.NewFrame(), nil },
		add: addTo,
	},
	"stack-layout": {
		new: func(n *Node) (core.Widget, error) {
			dir, err := parseDirection(n.Direction)
			if err != nil {
				return nil, err
			}
			sl := core.NewStackLayout(dir)
			sl.SetSpacing(n.Spacing)
			return sl, nil
		},
		add: addTo,
	},
	"group-box": {
		new: func(n *Node) (core.Widget, error) { return core.NewGroupBox(n.Title), nil },
		add: func(w core.Widget) func(child core.Widget) { return w.(*core.GroupBox).Add },
	},
	"window": {
		new: func(n *Node) (core.Widget, error) { return core.NewWindow(n.Title), nil },
		add: func(w core.Widget) func(child core.Widget) { return w.(*core.Window).Add },
	},
	"tabbed": {
		new: func(n *Node) (core.Widget, error) { return core.NewTabbed(), nil },
	},
	"spacer": {
		new: func(n *Node) (core.Widget, error) { return core.NewSpacer(0, 0), nil },
	},
	"label": {
		new: func(n *Node) (core.Widget, error) { return core.NewLabel(n.Text), nil },
	},
	"button": {
		new: func(n *Node) (core.Widget, error) { return core.NewButton(n.Text), nil },
	},
	"checkbox": {
		new: func(n *Node) (core.Widget, error) {
			c := core.NewCheckbox(n.Text)
			c.SetChecked(n.Checked)
			return c, nil
		},
	},
	"radio-button": {
		new: func(n *Node) (core.Widget, error) { return core.NewRadioButton(n.Text), nil },
	},
	"scroller": {
		new: func(n *Node) (core.Widget, error) {
			dir, err := parseDirection(n.Direction)
			if err != nil {
				return nil, err
			}
			return core.NewScroller(dir, n.Value, n.Step, n.Max), nil
		},
	},
	"list": {
		new: func(n *Node) (core.Widget, error) {
			l := core.NewList(n.Items...)
			if n.Selected != nil {
				l.SetSelected(*n.Selected)
			}
			return l, nil
		},
	},
	"combo": {
		new: func(n *Node) (core.Widget, error) {
			c := core.NewCombo(n.Items...)
			if n.Selected != nil {
				c.SetSelected(*n.Selected)
			}
			return c, nil
		},
	},
	"text-edit": {
		new: func(n *Node) (core.Widget, error) {
			te := core.NewTextEdit(n.Text)
			if n.MaxLength > 0 {
				te.SetMaxLength(n.MaxLength)
				te.SetText(n.Text)
			}
			return te, nil
		},
	},
}

func parseDirection(s string) (styles.Directions, error) {
	switch strings.ToLower(s) {
	case "", "vertical":
		return styles.Vertical, nil
	case "horizontal":
		return styles.Horizontal, nil
	}
	return styles.Vertical, errors.Errorf("scene: unknown direction %q", s)
}

// build creates the widget described by n, adds it with the given
// function and builds its children. Windows can only be built at
// the top level of a scene.
func build(add func(child core.Widget), n *Node, topLevel bool) (core.Widget, error) {
	typ := TypeName(n.Type)
	k, ok := Kinds[typ]
	if !ok {
		return nil, errors.Errorf("scene: unknown widget type %q", n.Type)
	}
	if typ == "window" && !topLevel {
		return nil, errors.Errorf("scene: window %q must be at the top level", n.Title)
	}
	if len(n.Children) > 0 && k.add == nil && typ != "tabbed" {
		return nil, errors.Errorf("scene: %s cannot have children", typ)
	}
	w, err := k.new(n)
	if err != nil {
		return nil, err
	}
	if n.Name != "" {
		w.AsTree().SetName(n.Name)
	}
	add(w)
	if err := configure(w, n); err != nil {
		return w, err
	}
	if tb, ok := w.(*core.Tabbed); ok {
		return w, buildPages(tb, n)
	}
	for _, c := range n.Children {
		if _, err := build(k.add(w), c, false); err != nil {
			return w, err
		}
	}
	return w, nil
}

// buildPages adds a tab to tb for each child of n, which must be
// of type "page". The children of each page go to its [core.TabPage].
func buildPages(tb *core.Tabbed, n *Node) error {
	for _, pn := range n.Children {
		if TypeName(pn.Type) != "page" {
			return errors.Errorf("scene: tabbed children must be pages, not %q", pn.Type)
		}
		_, page := tb.AddTab(pn.Title)
		if pn.Name != "" {
			page.SetName(pn.Name)
		}
		for _, c := range pn.Children {
			if _, err := build(page.Add, c, false); err != nil {
				return err
			}
		}
	}
	if n.Selected != nil {
		tabs := tb.TabBar().Tabs()
		if *n.Selected < 0 || *n.Selected >= len(tabs) {
			return errors.Errorf("scene: selected tab %d out of range [0, %d)", *n.Selected, len(tabs))
		}
		tb.SelectTab(tabs[*n.Selected])
	}
	return nil
}

// configure applies the layout properties of n to w. It runs after
// w is attached, so that radio buttons see their group.
func configure(w core.Widget, n *Node) error {
	wb := w.AsWidget()
	switch len(n.Rect) {
	case 0:
	case 4:
		wb.SetSize(n.Rect[2], n.Rect[3])
		wb.SetPosition(n.Rect[0], n.Rect[1])
	default:
		return errors.Errorf("scene: rect needs 4 values, got %v", n.Rect)
	}
	if len(n.Size) > 0 {
		if len(n.Size) != 2 {
			return errors.Errorf("scene: size needs 2 values, got %v", n.Size)
		}
		wb.SetSize(n.Size[0], n.Size[1])
	}
	if len(n.Position) > 0 {
		if len(n.Position) != 2 {
			return errors.Errorf("scene: position needs 2 values, got %v", n.Position)
		}
		wb.SetPosition(n.Position[0], n.Position[1])
	}
	if len(n.Margin) > 0 {
		m, err := parseMargin(n.Margin)
		if err != nil {
			return err
		}
		wb.SetMargin(m)
	}
	if n.Stretch != "" {
		st, ok := styles.ParseStretch(n.Stretch)
		if !ok {
			return errors.Errorf("scene: unknown stretch %q", n.Stretch)
		}
		wb.SetStretch(st)
	}
	if n.Align != "" {
		al, ok := styles.ParseAlign(n.Align)
		if !ok {
			return errors.Errorf("scene: unknown align %q", n.Align)
		}
		wb.SetAlign(al)
	}
	if n.DrawPriority != 0 {
		wb.SetDrawPriority(n.DrawPriority)
	}
	if rb, ok := w.(*core.RadioButton); ok && n.Checked {
		rb.SetChecked(true)
	}
	if n.Hidden {
		w.SetVisible(false)
	}
	return nil
}

func parseMargin(v []int) (geom.Border, error) {
	switch len(v) {
	case 1:
		return geom.Uniform(v[0]), nil
	case 2:
		return geom.Border{Top: v[0], Right: v[1], Bottom: v[0], Left: v[1]}, nil
	case 4:
		return geom.Border{Top: v[0], Right: v[1], Bottom: v[2], Left: v[3]}, nil
	}
	return geom.Border{}, errors.Errorf("scene: margin needs 1, 2 or 4 values, got %v", v)
}

// Find returns the first widget with the given name under root,
// in depth-first order, or nil.
func Find(root core.Widget, name string) core.Widget {
	var found core.Widget
	root.AsWidget().WidgetWalkDown(func(cw core.Widget, cwb *core.WidgetBase) bool {
		if found != nil {
			return false
		}
		if cwb.Name == name {
			found = cw
			return false
		}
		return true
	})
	return found
}
