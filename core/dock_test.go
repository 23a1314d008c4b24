// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mobile/event/mouse"

	"widgetzero.org/wz/events"
	"widgetzero.org/wz/geom"
	"widgetzero.org/wz/styles"
)

func newDockTestWindow(mw *MainWindow) (*Window, *Label) {
	w := NewWindow("tools")
	w.SetSize(200, 150)
	w.SetPosition(300, 200)
	mw.Add(w)
	l := NewLabel("hello")
	w.Add(l)
	return w, l
}

func TestDockEdgeString(t *testing.T) {
	for _, e := range []DockEdge{DockNorth, DockSouth, DockEast, DockWest} {
		got, ok := ParseDockEdge(e.String())
		assert.True(t, ok)
		assert.Equal(t, e, got)
	}
	assert.Equal(t, "none", DockNone.String())
	_, ok := ParseDockEdge("middle")
	assert.False(t, ok)
}

func TestDockRoundTrip(t *testing.T) {
	contents := map[DockEdge]geom.Rect{
		DockNorth: geom.R(0, 200, 800, 400),
		DockSouth: geom.R(0, 0, 800, 400),
		DockEast:  geom.R(0, 0, 600, 600),
		DockWest:  geom.R(200, 0, 600, 600),
	}
	for edge, content := range contents {
		t.Run(edge.String(), func(t *testing.T) {
			mw, _ := newTestMainWindow()
			var evs []*events.Event
			mw.SetEventCallback(func(e *events.Event) {
				if e.Type == events.WindowDocked || e.Type == events.WindowUndocked {
					evs = append(evs, e)
				}
			})
			w, l := newDockTestWindow(mw)
			sl := NewStackLayout(styles.Vertical)
			sl.SetStretch(styles.StretchBoth)
			sl.SetMargin(geom.Uniform(3))
			inner := NewButton("inner")
			sl.Add(inner)
			w.Add(sl)
			before := map[Widget]geom.Rect{}
			for _, cw := range []Widget{l, sl, inner} {
				before[cw] = cw.AsWidget().RelativeRect()
			}

			page := mw.DockWindow(w, edge)
			dt := mw.DockTabs(edge)
			assert.Equal(t, 1, dt.NumTabs())
			assert.Equal(t, page, dt.SelectedPage())
			assert.Equal(t, "tools", dt.TabBar().Tabs()[0].Text())
			assert.Equal(t, page, l.Parent)
			assert.Nil(t, l.Window())
			assert.Equal(t, mw, l.MainWindow())
			assert.Empty(t, mw.Windows())
			assert.True(t, w.IsDestroyed())
			assert.True(t, dt.IsVisible())
			assert.Equal(t, content, mw.Content().RelativeRect())
			require.Len(t, evs, 1)
			assert.Equal(t, events.WindowDocked, evs[0].Type)
			assert.Equal(t, "tools", evs[0].Text)
			assert.Equal(t, edge, EventDockEdge(evs[0]))

			nw := mw.UndockTab(dt.TabBar().Tabs()[0], geom.Pos(400, 300))
			assert.Equal(t, "tools", nw.Title())
			assert.Equal(t, geom.Sz(200, 150), nw.Size())
			assert.Equal(t, nw.Content(), l.Parent)
			assert.Equal(t, nw, l.Window())
			assert.Equal(t, 0, dt.NumTabs())
			assert.False(t, dt.IsVisible())
			assert.Equal(t, []*Window{nw}, mw.Windows())
			assert.True(t, nw.HeaderRect().Contains(geom.Pos(400, 300)))
			assert.Equal(t, geom.R(0, 0, 800, 600), mw.Content().RelativeRect())
			require.Len(t, evs, 2)
			assert.Equal(t, events.WindowUndocked, evs[1].Type)
			assert.Equal(t, nw, evs[1].Window)
			assert.Equal(t, edge, EventDockEdge(evs[1]))

			// the content comes back where it was
			assert.Equal(t, nw.Content(), sl.Parent)
			assert.Equal(t, sl, inner.Parent)
			for cw, r := range before {
				assert.Equal(t, r, cw.AsWidget().RelativeRect(), cw.AsWidget().Name)
			}
		})
	}
}

func TestDockAreas(t *testing.T) {
	mw, _ := newTestMainWindow()
	for _, e := range []DockEdge{DockNorth, DockWest, DockEast, DockSouth} {
		w, _ := newDockTestWindow(mw)
		mw.DockWindow(w, e)
	}
	assert.Equal(t, geom.R(0, 0, 800, 200), mw.DockTabs(DockNorth).RelativeRect())
	assert.Equal(t, geom.R(0, 400, 800, 200), mw.DockTabs(DockSouth).RelativeRect())
	assert.Equal(t, geom.R(0, 200, 200, 200), mw.DockTabs(DockWest).RelativeRect())
	assert.Equal(t, geom.R(600, 200, 200, 200), mw.DockTabs(DockEast).RelativeRect())
	assert.Equal(t, geom.R(200, 200, 400, 200), mw.Content().RelativeRect())

	// a second window docked at the same edge adds a tab
	w, _ := newDockTestWindow(mw)
	page := mw.DockWindow(w, DockWest)
	assert.Equal(t, 2, mw.DockTabs(DockWest).NumTabs())
	assert.Equal(t, page, mw.DockTabs(DockWest).SelectedPage())
	assert.False(t, mw.DockTabs(DockWest).Pages()[0].IsVisible())
}

func TestDockByDragging(t *testing.T) {
	mw, rr := newTestMainWindow()
	var docked *events.Event
	mw.SetEventCallback(func(e *events.Event) {
		if e.Type == events.WindowDocked {
			docked = e
		}
	})
	w, l := newDockTestWindow(mw)
	other := NewWindow("other")
	other.SetSize(100, 100)
	mw.Add(other)
	mw.raiseWindow(w)

	mw.MouseMove(400, 210, 0, 0)
	mw.MouseButtonDown(mouse.ButtonLeft, 400, 210)
	assert.True(t, w.IsDragging())
	assert.Equal(t, Widget(w), mw.LockedInputWidget())

	mw.MouseMove(10, 210, -390, 0)
	assert.Equal(t, geom.Pos(-90, 200), w.Position())
	assert.Equal(t, DockWest, mw.DockPreviewEdge())

	mw.Render()
	assert.Contains(t, rr.Names(), "DockIcon-west")
	assert.Equal(t, "DockPreview", rr.Names()[len(rr.Names())-1])
	call := rr.Calls[len(rr.Calls)-1]
	assert.Equal(t, geom.R(0, 0, 200, 600), call.Rect)

	mw.MouseButtonUp(mouse.ButtonLeft, 10, 210)
	require.NotNil(t, docked)
	dt := mw.DockTabs(DockWest)
	assert.Equal(t, 1, dt.NumTabs())
	assert.Equal(t, []*Window{other}, mw.Windows())
	assert.Equal(t, dt.SelectedPage(), l.Parent)
	assert.Equal(t, DockNone, mw.DockPreviewEdge())
	assert.Nil(t, mw.LockedInputWidget())

	rr.Reset()
	mw.Render()
	assert.NotContains(t, rr.Names(), "DockPreview")
	assert.NotContains(t, rr.Names(), "DockIcon-west")
}

func TestDockOnIcon(t *testing.T) {
	mw, _ := newTestMainWindow()
	w, _ := newDockTestWindow(mw)

	mw.MouseMove(400, 210, 0, 0)
	mw.MouseButtonDown(mouse.ButtonLeft, 400, 210)
	// the north icon is centered at the top edge, outside of the strip
	mw.MouseMove(400, 40, 0, -170)
	assert.Equal(t, DockNorth, mw.DockPreviewEdge())
	mw.MouseButtonUp(mouse.ButtonLeft, 400, 40)

	assert.True(t, w.IsDestroyed())
	assert.Equal(t, 1, mw.DockTabs(DockNorth).NumTabs())
}

func TestDockCancel(t *testing.T) {
	mw, _ := newTestMainWindow()
	w, _ := newDockTestWindow(mw)

	mw.MouseMove(400, 210, 0, 0)
	mw.MouseButtonDown(mouse.ButtonLeft, 400, 210)
	mw.MouseMove(10, 210, -390, 0)
	assert.Equal(t, DockWest, mw.DockPreviewEdge())
	mw.MouseMove(400, 300, 390, 90)
	assert.Equal(t, DockNone, mw.DockPreviewEdge())
	mw.MouseButtonUp(mouse.ButtonLeft, 400, 300)

	assert.False(t, w.IsDragging())
	assert.False(t, w.IsDestroyed())
	assert.Equal(t, []*Window{w}, mw.Windows())
	assert.Equal(t, geom.Pos(300, 290), w.Position())
	for e := range DockEdge(dockEdgesN) {
		assert.Equal(t, 0, mw.DockTabs(e).NumTabs())
	}
}

func TestDockDisabledIcons(t *testing.T) {
	mw, rr := newTestMainWindow()
	mw.Config().Dock.ShowIcons = false
	newDockTestWindow(mw)

	mw.MouseMove(400, 210, 0, 0)
	mw.MouseButtonDown(mouse.ButtonLeft, 400, 210)
	mw.MouseMove(400, 40, 0, -170)
	assert.Equal(t, DockNone, mw.DockPreviewEdge())
	mw.Render()
	assert.NotContains(t, rr.Names(), "DockIcon-north")
	mw.MouseButtonUp(mouse.ButtonLeft, 400, 40)
}

func TestUndockByDragging(t *testing.T) {
	mw, _ := newTestMainWindow()
	w, l := newDockTestWindow(mw)
	mw.DockWindow(w, DockWest)
	dt := mw.DockTabs(DockWest)
	tab := dt.TabBar().Tabs()[0]

	x, y := center(tab)
	mw.MouseMove(x, y, 0, 0)
	mw.MouseButtonDown(mouse.ButtonLeft, x, y)
	assert.Equal(t, Widget(tab), mw.LockedInputWidget())

	// still within the undock distance
	mw.MouseMove(x, y+20, 0, 20)
	assert.Equal(t, 1, dt.NumTabs())

	mw.MouseMove(x+300, y+100, 300, 80)
	assert.Equal(t, 0, dt.NumTabs())
	ws := mw.Windows()
	require.Len(t, ws, 1)
	nw := ws[0]
	assert.Equal(t, nw.Content(), l.Parent)
	assert.True(t, nw.IsDragging())
	assert.Equal(t, Widget(nw), mw.LockedInputWidget())

	mw.MouseMove(x+350, y+120, 50, 20)
	assert.True(t, nw.HeaderRect().Contains(geom.Pos(x+350, y+120)))
	mw.MouseButtonUp(mouse.ButtonLeft, x+350, y+120)
	assert.False(t, nw.IsDragging())
	assert.Equal(t, []*Window{nw}, mw.Windows())
	assert.Nil(t, mw.LockedInputWidget())
}

func TestDockTabRelease(t *testing.T) {
	mw, _ := newTestMainWindow()
	w, _ := newDockTestWindow(mw)
	mw.DockWindow(w, DockEast)
	tab := mw.DockTabs(DockEast).TabBar().Tabs()[0]

	clickOn(mw, tab)
	assert.Nil(t, mw.LockedInputWidget())
	assert.Equal(t, 1, mw.DockTabs(DockEast).NumTabs())
}

func TestDockWindowPanics(t *testing.T) {
	mw, _ := newTestMainWindow()
	w := NewWindow("loose")
	assert.Panics(t, func() { mw.DockWindow(w, DockWest) })
	mw.Add(w)
	assert.Panics(t, func() { mw.DockWindow(w, DockNone) })

	tb := NewTabbed()
	mw.Add(tb)
	tab, _ := tb.AddTab("plain")
	assert.Panics(t, func() { mw.UndockTab(tab, geom.Pos(0, 0)) })
}

func TestDestroyDraggedWindow(t *testing.T) {
	mw, _ := newTestMainWindow()
	w, _ := newDockTestWindow(mw)
	mw.MouseMove(400, 210, 0, 0)
	mw.MouseButtonDown(mouse.ButtonLeft, 400, 210)
	mw.MouseMove(10, 210, -390, 0)
	assert.Equal(t, DockWest, mw.DockPreviewEdge())

	w.Destroy()
	assert.Nil(t, mw.LockedInputWidget())
	assert.Equal(t, DockNone, mw.DockPreviewEdge())
	assert.Empty(t, mw.Windows())
	mw.MouseButtonUp(mouse.ButtonLeft, 10, 210)
	assert.Equal(t, 0, mw.DockTabs(DockWest).NumTabs())
}
