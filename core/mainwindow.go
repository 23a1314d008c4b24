// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"log/slog"
	"slices"

	"widgetzero.org/wz/base/errors"
	"widgetzero.org/wz/config"
	"widgetzero.org/wz/events"
	"widgetzero.org/wz/geom"
	"widgetzero.org/wz/keymap"
	"widgetzero.org/wz/tree"
)

// MainWindow is the root of a widget tree. It owns the renderer and the
// configuration, receives all input (see input.go), hosts the floating
// [Window]s and the four dock areas, and places all other widgets in
// its content area.
type MainWindow struct {
	WidgetBase

	renderer Renderer
	cfg      *config.Config
	keyMap   keymap.Map

	// content is the area left after the dock areas, which hosts
	// all the non-window children.
	content *Frame

	dockTabs    [dockEdgesN]*DockTabs
	dockIcons   [dockEdgesN]*dockIcon
	dockPreview *dockPreview

	// dragWindow is the window currently dragged by its header, and
	// dockPreviewEdge the edge it would dock to if released.
	dragWindow      *Window
	dockPreviewEdge DockEdge

	eventCallback func(e *events.Event)

	lockStack     []Widget
	keyboardFocus Widget

	// focusClaimed is set when a widget takes the keyboard
	// focus during the current mouse button event.
	focusClaimed bool

	// mouse is the last known mouse position.
	mouse geom.Position

	// dispatching is the depth of input entry points being run;
	// deferred functions run when it drops back to zero.
	dispatching int
	deferred    []func()
}

// defaultConfig is used by widgets that are not attached to a main window.
var defaultConfig = config.Default()

// NewMainWindow returns a new main window drawing with the given
// renderer. A nil config uses [config.Default].
func NewMainWindow(r Renderer, cfg *config.Config) *MainWindow {
	if cfg == nil {
		cfg = config.Default()
	}
	mw := &MainWindow{renderer: r, cfg: cfg, dockPreviewEdge: DockNone}
	km, err := keymap.Default.Merge(cfg.KeyMap)
	errors.Log(err)
	mw.keyMap = km
	initWidget(mw)
	mw.mainWindow = mw
	mw.SetName("main-window")

	mw.content = NewFrame()
	addPart(mw, mw.content, "content")
	for e := range DockEdge(dockEdgesN) {
		dt := newDockTabs(e)
		dt.setHidden(true)
		addPart(mw, dt, "dock-tabs-"+e.String())
		mw.dockTabs[e] = dt
	}
	for e := range DockEdge(dockEdgesN) {
		di := newDockIcon(e)
		di.setHidden(true)
		addPart(mw, di, "dock-icon-"+e.String())
		mw.dockIcons[e] = di
	}
	mw.dockPreview = newDockPreview()
	mw.dockPreview.setHidden(true)
	addPart(mw, mw.dockPreview, "dock-preview")
	return mw
}

// Renderer returns the renderer of the main window.
func (mw *MainWindow) Renderer() Renderer { return mw.renderer }

// Config returns the configuration of the main window.
func (mw *MainWindow) Config() *config.Config { return mw.cfg }

// KeyMap returns the key map used by the widgets of the main window:
// the default map with the overrides of the config applied.
func (mw *MainWindow) KeyMap() keymap.Map { return mw.keyMap }

// Content returns the frame hosting the non-window children.
func (mw *MainWindow) Content() *Frame { return mw.content }

// SetEventCallback sets the function that receives every event sent by
// the widgets of the main window, before the handlers of the widget
// that sent it.
func (mw *MainWindow) SetEventCallback(fun func(e *events.Event)) {
	mw.eventCallback = fun
}

// Add adds a floating [Window] on top of the other windows, or adds
// any other widget to the content area.
func (mw *MainWindow) Add(child Widget) {
	w, ok := child.(*Window)
	if !ok {
		attach(mw.content, child)
		return
	}
	attach(mw, w)
	mw.raiseWindow(w)
}

// Remove removes a floating [Window] or a child of the content area.
func (mw *MainWindow) Remove(child Widget) {
	if _, ok := child.(*Window); ok {
		detach(mw, child)
		return
	}
	detach(mw.content, child)
}

func (mw *MainWindow) canAddChild(child Widget) bool {
	_, ok := child.(*Window)
	return ok
}

func (mw *MainWindow) SetRect(r geom.Rect) {
	mw.rect = r
	mw.layout()
}

// layout places the dock areas, the content area and the dock icons.
// Floating windows keep their positions.
func (mw *MainWindow) layout() {
	rects, content := mw.dockRects(DockNone)
	for e, dt := range mw.dockTabs {
		dt.setHidden(dt.NumTabs() == 0)
		dt.SetRect(rects[e])
	}
	mw.content.SetRect(content)

	sz := mw.cfg.Metrics.DockIconSize
	w, h := mw.rect.W, mw.rect.H
	const inset = 8
	mw.dockIcons[DockNorth].SetRect(geom.R((w-sz)/2, inset, sz, sz))
	mw.dockIcons[DockSouth].SetRect(geom.R((w-sz)/2, h-sz-inset, sz, sz))
	mw.dockIcons[DockEast].SetRect(geom.R(w-sz-inset, (h-sz)/2, sz, sz))
	mw.dockIcons[DockWest].SetRect(geom.R(inset, (h-sz)/2, sz, sz))

	if mw.dockPreviewEdge != DockNone {
		mw.dockPreview.SetRect(mw.dockRect(mw.dockPreviewEdge))
	}
}

// dockSize returns the extent of the dock area of the given edge
// across the edge, limited to half of the main window.
func (mw *MainWindow) dockSize(e DockEdge) int {
	size := mw.cfg.Dock.Size
	if e == DockNorth || e == DockSouth {
		return min(size, mw.rect.H/2)
	}
	return min(size, mw.rect.W/2)
}

// dockRects returns the parent-relative rects of the four dock areas
// and of the content area. An edge without docked windows has an empty
// area, unless it is the given extra edge, which is computed as if a
// window was docked there.
//
// The north and south areas span the full width of the main window,
// the west and east areas the height between them.
func (mw *MainWindow) dockRects(extra DockEdge) (rects [dockEdgesN]geom.Rect, content geom.Rect) {
	var sizes [dockEdgesN]int
	for e, dt := range mw.dockTabs {
		if dt.NumTabs() > 0 || DockEdge(e) == extra {
			sizes[e] = mw.dockSize(DockEdge(e))
		}
	}
	w, h := mw.rect.W, mw.rect.H
	n, s, ea, we := sizes[DockNorth], sizes[DockSouth], sizes[DockEast], sizes[DockWest]
	mid := h - n - s
	rects[DockNorth] = geom.R(0, 0, w, n)
	rects[DockSouth] = geom.R(0, h-s, w, s)
	rects[DockWest] = geom.R(0, n, we, mid)
	rects[DockEast] = geom.R(w-ea, n, ea, mid)
	content = geom.R(we, n, w-we-ea, mid)
	return
}

// dockRect returns the parent-relative rect a window docked at the given edge would occupy.
func (mw *MainWindow) dockRect(e DockEdge) geom.Rect {
	rects, _ := mw.dockRects(e)
	return rects[e]
}

// DockTabs returns the tabs of the windows docked at the given edge.
func (mw *MainWindow) DockTabs(e DockEdge) *DockTabs {
	return mw.dockTabs[e]
}

// Windows returns the floating windows, from the bottom one to the top one.
func (mw *MainWindow) Windows() []*Window {
	var ws []*Window
	for _, c := range mw.Children {
		if w, ok := c.(*Window); ok {
			ws = append(ws, w)
		}
	}
	slices.SortStableFunc(ws, func(a, b *Window) int {
		return a.drawPriority - b.drawPriority
	})
	return ws
}

// TopWindow returns the floating window drawn above all the others, or nil.
func (mw *MainWindow) TopWindow() *Window {
	ws := mw.Windows()
	if len(ws) == 0 {
		return nil
	}
	return ws[len(ws)-1]
}

// raiseWindow puts the given floating window on top of the others by
// packing the draw priorities of all the windows in window order.
func (mw *MainWindow) raiseWindow(w *Window) {
	ws := mw.Windows()
	if len(ws) > 0 && ws[len(ws)-1] == w && w.drawPriority >= DrawPriorityWindowStart {
		return
	}
	ws = slices.DeleteFunc(ws, func(o *Window) bool { return o == w })
	ws = append(ws, w)
	if len(ws) > DrawPriorityWindowEnd-DrawPriorityWindowStart+1 {
		slog.Warn("too many floating windows for the window draw priorities", "windows", len(ws))
	}
	for i, o := range ws {
		o.SetDrawPriority(min(DrawPriorityWindowStart+i, DrawPriorityWindowEnd))
	}
	slog.Debug("raised window", "window", w.Path(), "priority", w.drawPriority)
}

// hoverWindowAt returns the topmost visible floating window containing
// the given absolute point, or nil.
func (mw *MainWindow) hoverWindowAt(p geom.Position) *Window {
	var top *Window
	for _, w := range mw.Windows() {
		if w.IsVisible() && w.Rect().Contains(p) {
			top = w
		}
	}
	return top
}

// Render draws the whole tree with the renderer of the main window.
func (mw *MainWindow) Render() {
	DrawTree(mw.renderer, mw)
}

// Update calls [Widget.Update] on every displayed widget. It is meant
// to be called once per frame.
func (mw *MainWindow) Update() {
	var update func(w Widget)
	update = func(w Widget) {
		wb := w.AsWidget()
		if !wb.IsVisible() {
			return
		}
		if w != Widget(mw) {
			w.Update()
		}
		for _, c := range wb.childWidgets() {
			update(c)
		}
	}
	update(mw)
}

// forgetWidget removes every reference the main window keeps to the
// given widget or any of its descendants: input locks, keyboard focus
// and window drag state.
func (mw *MainWindow) forgetWidget(w Widget) {
	under := func(o Widget) bool {
		return o != nil && o.AsWidget().This != nil && tree.IsAncestor(w, o)
	}
	mw.lockStack = slices.DeleteFunc(mw.lockStack, func(o Widget) bool {
		return o.AsWidget().This == nil || under(o)
	})
	if under(mw.keyboardFocus) {
		mw.keyboardFocus = nil
	}
	if mw.dragWindow != nil && under(mw.dragWindow) {
		mw.cancelWindowDrag()
	}
}

func (mw *MainWindow) String() string {
	return fmt.Sprintf("%s %v", mw.Name, mw.rect)
}
