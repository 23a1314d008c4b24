// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"log/slog"

	"widgetzero.org/wz/events"
	"widgetzero.org/wz/geom"
	"widgetzero.org/wz/tree"
)

// Docking:
//
// A window is either floating (a child of the main window) or docked at
// one of the four edges of the main window, as a tab of the [DockTabs] of
// that edge. While a floating window is dragged by its header, moving the
// mouse into the strip along an edge ([config.Dock.StripWidth] wide) or
// over the dock icon of an edge shows a preview of the area the window
// would occupy. Releasing the mouse there docks the window: its content
// moves into a new tab page and the window itself is destroyed. Dragging
// a docked tab away from its tab bar undocks it into a new floating
// window, which keeps being dragged.

// DockEdge is an edge of the main window windows can be docked to.
type DockEdge int32

const (
	// DockNone means no edge.
	DockNone DockEdge = iota - 1
	DockNorth
	DockSouth
	DockEast
	DockWest

	dockEdgesN = 4
)

var dockEdgeNames = [dockEdgesN]string{"north", "south", "east", "west"}

func (e DockEdge) String() string {
	if e < 0 || e >= dockEdgesN {
		return "none"
	}
	return dockEdgeNames[e]
}

// ParseDockEdge returns the edge with the given name.
func ParseDockEdge(s string) (DockEdge, bool) {
	for i, n := range dockEdgeNames {
		if n == s {
			return DockEdge(i), true
		}
	}
	return DockNone, false
}

// EventDockEdge returns the dock edge of an [events.WindowDocked] or
// [events.WindowUndocked] event.
func EventDockEdge(e *events.Event) DockEdge {
	return DockEdge(e.Edge)
}

// DockTabs holds the windows docked at one edge of the main window,
// one tab each.
type DockTabs struct {
	Tabbed
	edge DockEdge
}

func newDockTabs(edge DockEdge) *DockTabs {
	dt := &DockTabs{edge: edge}
	initWidget(dt)
	return dt
}

// Edge returns the edge of the main window the tabs are docked at.
func (dt *DockTabs) Edge() DockEdge { return dt.edge }

// dockIcon is shown at an edge of the main window while a window is
// dragged. Dropping the window on it docks the window at that edge.
type dockIcon struct {
	WidgetBase
	edge DockEdge
}

func newDockIcon(edge DockEdge) *dockIcon {
	di := &dockIcon{edge: edge}
	initWidget(di)
	di.SetDrawPriority(DrawPriorityDockIcon)
	return di
}

func (di *dockIcon) Draw(r Renderer, clip geom.Rect) {
	r.DrawDockIcon(di.edge, di.Rect(), clip)
}

// dockPreview shows the area a dragged window would occupy if docked.
type dockPreview struct {
	WidgetBase
}

func newDockPreview() *dockPreview {
	dp := &dockPreview{}
	initWidget(dp)
	dp.SetDrawPriority(DrawPriorityDockPreview)
	return dp
}

func (dp *dockPreview) Draw(r Renderer, clip geom.Rect) {
	r.DrawDockPreview(dp.Rect(), clip)
}

// DockPreviewEdge returns the edge the window being dragged would
// dock to if released now, or [DockNone].
func (mw *MainWindow) DockPreviewEdge() DockEdge {
	return mw.dockPreviewEdge
}

// beginWindowDrag is called when the given window starts being dragged.
func (mw *MainWindow) beginWindowDrag(w *Window) {
	mw.dragWindow = w
	mw.dockPreviewEdge = DockNone
	if mw.cfg.Dock.ShowIcons {
		for _, di := range mw.dockIcons {
			di.setHidden(false)
		}
	}
}

// updateWindowDrag is called when the dragged window moves with the
// mouse at the given absolute point. It shows or hides the dock preview.
func (mw *MainWindow) updateWindowDrag(w *Window, p geom.Position) {
	edge := mw.dockEdgeAt(p)
	if edge == mw.dockPreviewEdge {
		return
	}
	mw.dockPreviewEdge = edge
	if edge == DockNone {
		mw.dockPreview.setHidden(true)
		return
	}
	mw.dockPreview.SetRect(mw.dockRect(edge))
	mw.dockPreview.setHidden(false)
	slog.Debug("dock preview", "window", w.Path(), "edge", edge)
}

// endWindowDrag is called when the dragged window is released. If it
// was over a dock preview, it is docked after the current input event.
func (mw *MainWindow) endWindowDrag(w *Window) {
	edge := mw.dockPreviewEdge
	mw.cancelWindowDrag()
	if edge == DockNone {
		return
	}
	mw.Defer(func() {
		if w.This != nil && w.Parent == mw.This {
			mw.DockWindow(w, edge)
		}
	})
}

// cancelWindowDrag hides the dock icons and preview.
func (mw *MainWindow) cancelWindowDrag() {
	mw.dragWindow = nil
	mw.dockPreviewEdge = DockNone
	mw.dockPreview.setHidden(true)
	for _, di := range mw.dockIcons {
		di.setHidden(true)
	}
}

// dockEdgeAt returns the edge a window dragged with the mouse at the
// given absolute point would dock to: the edge of the dock icon under
// the point, or else the nearest edge whose strip contains the point.
func (mw *MainWindow) dockEdgeAt(p geom.Position) DockEdge {
	r := mw.Rect()
	if !r.Contains(p) {
		return DockNone
	}
	for e, di := range mw.dockIcons {
		if di.IsVisible() && di.Rect().Contains(p) {
			return DockEdge(e)
		}
	}
	dist := [dockEdgesN]int{
		DockNorth: p.Y - r.Y,
		DockSouth: r.Bottom() - 1 - p.Y,
		DockEast:  r.Right() - 1 - p.X,
		DockWest:  p.X - r.X,
	}
	edge, best := DockNone, mw.cfg.Dock.StripWidth
	for e, d := range dist {
		if d < best {
			edge, best = DockEdge(e), d
		}
	}
	return edge
}

// DockWindow docks the given floating window at the given edge. The
// children of the window move to a new tab page titled after the window,
// and the window is destroyed. It returns the new page.
func (mw *MainWindow) DockWindow(w *Window, edge DockEdge) *TabPage {
	if w.Parent != mw.This {
		panic(fmt.Sprintf("core: %v is not a floating window of %v", w, mw))
	}
	if edge < 0 || edge >= dockEdgesN {
		panic(fmt.Sprintf("core: invalid dock edge %d", edge))
	}
	title := w.title
	dt := mw.dockTabs[edge]
	tab, page := dt.AddTab(title)
	page.undockSize = w.Size()
	for _, c := range w.content.childWidgets() {
		tree.MoveToParent(c, page)
	}
	w.Destroy()
	dt.SelectTab(tab)
	mw.layout()

	slog.Debug("docked window", "window", title, "edge", edge)
	e := mw.newEvent(events.WindowDocked)
	e.Tab = tab
	e.Text = title
	e.Edge = int(edge)
	mw.send(e)
	return page
}

// UndockTab turns the given docked tab back into a floating window
// centered horizontally on the given absolute point, with the point in
// its header. The tab and its page are removed. It returns the new window.
func (mw *MainWindow) UndockTab(tab *TabButton, p geom.Position) *Window {
	dt := tab.dockTabs()
	if dt == nil || dt.mainWindow != mw {
		panic(fmt.Sprintf("core: %v is not a docked tab of %v", tab, mw))
	}
	page := tab.page
	title := tab.text
	w := NewWindow(title)
	size := page.undockSize
	if size.W <= 0 || size.H <= 0 {
		size = geom.Sz(mw.cfg.Dock.Size, mw.cfg.Dock.Size)
	}
	w.SetSize(size.W, size.H)
	mw.Add(w)
	for _, c := range page.childWidgets() {
		tree.MoveToParent(c, w.content)
	}
	w.content.refreshRect()
	rel := p.Sub(mw.Rect().Pos())
	w.SetPosition(rel.X-size.W/2, rel.Y-w.config().Metrics.WindowBorder-w.HeaderHeight()/2)
	dt.RemoveTab(tab)
	mw.layout()

	slog.Debug("undocked window", "window", title, "edge", dt.edge)
	e := mw.newEvent(events.WindowUndocked)
	e.Window = w
	e.Text = title
	e.Edge = int(dt.edge)
	mw.send(e)
	return w
}
