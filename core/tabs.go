// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"slices"

	"golang.org/x/mobile/event/mouse"
	"widgetzero.org/wz/events"
	"widgetzero.org/wz/geom"
)

// Tabbed shows one page at a time, selected by a [TabBar] above the pages.
type Tabbed struct {
	WidgetBase
	tabBar *TabBar
}

// NewTabbed returns a new [Tabbed] without tabs.
func NewTabbed() *Tabbed {
	t := &Tabbed{}
	initWidget(t)
	return t
}

func (t *Tabbed) Init() {
	t.WidgetBase.Init()
	t.tabBar = NewTabBar()
	addPart(t, t.tabBar, "tab-bar")
	t.tabBar.On(events.TabBarTabChanged, func(e *events.Event) {
		t.updatePages()
	})
}

// TabBar returns the tab bar.
func (t *Tabbed) TabBar() *TabBar { return t.tabBar }

// NumTabs returns the number of tabs.
func (t *Tabbed) NumTabs() int { return t.tabBar.NumChildren() }

// AddTab adds a tab with the given label and its page, and returns them.
// The first tab added is selected.
func (t *Tabbed) AddTab(label string) (*TabButton, *TabPage) {
	page := NewTabPage()
	page.setHidden(true)
	t.AddChild(page)
	tab := t.tabBar.addTab(label, page)
	t.updatePages()
	t.refreshRect()
	return tab, page
}

// RemoveTab removes the given tab and destroys its page.
func (t *Tabbed) RemoveTab(tab *TabButton) {
	page := tab.page
	t.tabBar.RemoveTab(tab)
	if page != nil {
		page.Destroy()
	}
	t.updatePages()
}

// SelectTab selects the given tab and shows its page.
func (t *Tabbed) SelectTab(tab *TabButton) {
	t.tabBar.SelectTab(tab)
}

// SelectedPage returns the page of the selected tab, or nil.
func (t *Tabbed) SelectedPage() *TabPage {
	if tab := t.tabBar.selected; tab != nil {
		return tab.page
	}
	return nil
}

// Pages returns the pages in tab order.
func (t *Tabbed) Pages() []*TabPage {
	var ps []*TabPage
	for _, tab := range t.tabBar.Tabs() {
		ps = append(ps, tab.page)
	}
	return ps
}

// updatePages shows the page of the selected tab and hides the others.
func (t *Tabbed) updatePages() {
	sel := t.SelectedPage()
	for _, c := range t.Children {
		if p, ok := c.(*TabPage); ok {
			p.setHidden(p != sel)
		}
	}
}

func (t *Tabbed) SetRect(r geom.Rect) {
	t.rect = r
	bh := t.tabBar.rect.H
	t.tabBar.SetRect(geom.R(0, 0, r.W, bh))
	for _, c := range t.Children {
		if p, ok := c.(*TabPage); ok {
			p.SetRect(geom.R(0, bh, r.W, r.H-bh))
		}
	}
}

// TabBar is a row of [TabButton]s, one of which is selected.
type TabBar struct {
	WidgetBase
	selected *TabButton
}

// NewTabBar returns a new [TabBar] without tabs.
func NewTabBar() *TabBar {
	tb := &TabBar{}
	initWidget(tb)
	return tb
}

// Tabs returns the tab buttons in order.
func (tb *TabBar) Tabs() []*TabButton {
	tabs := make([]*TabButton, 0, len(tb.Children))
	for _, c := range tb.Children {
		tabs = append(tabs, c.(*TabButton))
	}
	return tabs
}

// SelectedTab returns the selected tab, or nil.
func (tb *TabBar) SelectedTab() *TabButton { return tb.selected }

// AddTab adds a tab button with the given label. The first tab added is selected.
func (tb *TabBar) AddTab(label string) *TabButton {
	return tb.addTab(label, nil)
}

func (tb *TabBar) addTab(label string, page *TabPage) *TabButton {
	tab := NewTabButton(label)
	tab.page = page
	tb.AddChild(tab)
	tb.refreshRect()

	e := tb.newEvent(events.TabBarTabAdded)
	e.Tab = tab
	e.Index = tab.IndexInParent()
	tb.send(e)
	if tb.selected == nil {
		tb.SelectTab(tab)
	}
	return tab
}

// RemoveTab removes and destroys the given tab. If it was selected,
// the next tab (or else the previous one) is selected.
func (tb *TabBar) RemoveTab(tab *TabButton) {
	idx := tab.IndexInParent()
	if tab.Parent != tb.This || idx < 0 {
		panic(fmt.Sprintf("core: %v is not a tab of %v", tab, tb))
	}
	e := tb.newEvent(events.TabBarTabRemoved)
	e.Tab = tab
	e.Index = idx
	tb.send(e)

	wasSelected := tb.selected == tab
	tab.Destroy()
	if wasSelected {
		tb.selected = nil
		if n := tb.NumChildren(); n > 0 {
			tb.SelectTab(tb.Child(min(idx, n-1)).(*TabButton))
		} else {
			tb.send(tb.tabChangedEvent(idx, -1, nil))
		}
	}
}

// SelectTab selects the given tab, sending [events.TabBarTabChanged]
// if the selection changes.
func (tb *TabBar) SelectTab(tab *TabButton) {
	if tab == tb.selected {
		return
	}
	if tab.Parent != tb.This {
		panic(fmt.Sprintf("core: %v is not a tab of %v", tab, tb))
	}
	old := -1
	if tb.selected != nil {
		old = tb.selected.IndexInParent()
	}
	tb.selected = tab
	tb.send(tb.tabChangedEvent(old, tab.IndexInParent(), tab))
}

func (tb *TabBar) tabChangedEvent(old, cur int, tab *TabButton) *events.Event {
	e := tb.newEvent(events.TabBarTabChanged)
	e.OldValue = old
	e.NewValue = cur
	e.Index = cur
	if tab != nil {
		e.Tab = tab
	}
	return e
}

func (tb *TabBar) Measure() geom.Size {
	m := tb.config().Metrics
	return geom.Sz(0, tb.lineHeight()+2*m.TabPaddingY)
}

// SetRect places the tabs from left to right at their measured widths.
func (tb *TabBar) SetRect(r geom.Rect) {
	tb.rect = r
	x := 0
	for _, tab := range tb.Tabs() {
		tab.SetRect(geom.R(x, 0, tab.rect.W, r.H))
		x += tab.rect.W
	}
}

// TabButton is a tab of a [TabBar]. Pressing it selects it. A tab
// docked at an edge of the main window can be dragged away from its
// bar to undock it.
type TabButton struct {
	Button
	page *TabPage
}

// NewTabButton returns a new [TabButton] with the given label.
func NewTabButton(label string) *TabButton {
	tb := &TabButton{}
	tb.text = label
	initWidget(tb)
	return tb
}

// Page returns the page shown by the tab, or nil.
func (tb *TabButton) Page() *TabPage { return tb.page }

// IsSelected returns whether the tab is the selected tab of its bar.
func (tb *TabButton) IsSelected() bool {
	bar := tb.tabBar()
	return bar != nil && bar.selected == tb
}

func (tb *TabButton) tabBar() *TabBar {
	bar, _ := tb.Parent.(*TabBar)
	return bar
}

// dockTabs returns the dock tabs the tab belongs to, or nil if it is
// not docked.
func (tb *TabButton) dockTabs() *DockTabs {
	bar := tb.tabBar()
	if bar == nil {
		return nil
	}
	dt, _ := bar.Parent.(*DockTabs)
	return dt
}

func (tb *TabButton) Measure() geom.Size {
	m := tb.config().Metrics
	ts := tb.measureText(tb.text)
	return geom.Sz(ts.W+2*m.TabPaddingX, tb.lineHeight()+2*m.TabPaddingY)
}

func (tb *TabButton) Draw(r Renderer, clip geom.Rect) {
	r.DrawTabButton(tb, clip)
}

func (tb *TabButton) MouseButtonDown(button mouse.Button, x, y int) {
	if button != mouse.ButtonLeft || !tb.hover {
		return
	}
	if bar := tb.tabBar(); bar != nil {
		bar.SelectTab(tb)
	}
	if tb.dockTabs() != nil && tb.mainWindow != nil {
		tb.pressed = true
		tb.mainWindow.PushLockInput(tb.this())
	}
}

// MouseMove undocks the tab once it is dragged further than
// [config.Dock.UndockDistance] from its tab bar.
func (tb *TabButton) MouseMove(x, y, dx, dy int) {
	if !tb.pressed {
		return
	}
	mw := tb.mainWindow
	if distanceOutside(tb.tabBar().Rect(), geom.Pos(x, y)) <= tb.config().Dock.UndockDistance {
		return
	}
	tb.pressed = false
	mw.PopLockInput(tb.this())
	p := geom.Pos(x, y)
	tb.Defer(func() {
		if tb.This == nil {
			return
		}
		w := mw.UndockTab(tb, p)
		w.beginDrag(p)
	})
}

func (tb *TabButton) MouseButtonUp(button mouse.Button, x, y int) {
	if button != mouse.ButtonLeft || !tb.pressed {
		return
	}
	tb.pressed = false
	tb.mainWindow.PopLockInput(tb.this())
}

// distanceOutside returns the distance of the point to the rect along the
// axis where it is furthest outside, or 0 if the point is inside.
func distanceOutside(r geom.Rect, p geom.Position) int {
	return slices.Max([]int{0, r.X - p.X, p.X - (r.Right() - 1), r.Y - p.Y, p.Y - (r.Bottom() - 1)})
}

// TabPage is the page of a tab of a [Tabbed]. It places its children
// like a [Frame].
type TabPage struct {
	WidgetBase

	// undockSize is the size of the window a docked page came
	// from, used when it is undocked.
	undockSize geom.Size
}

// NewTabPage returns a new [TabPage].
func NewTabPage() *TabPage {
	tp := &TabPage{}
	initWidget(tp)
	return tp
}

func (tp *TabPage) SetRect(r geom.Rect) {
	tp.rect = r
	placeChildren(&tp.WidgetBase)
}

func (tp *TabPage) canAddChild(child Widget) bool {
	return isPlainChild(child)
}

func (tp *TabPage) Draw(r Renderer, clip geom.Rect) {
	r.DrawTabPage(tp, clip)
}

func (tp *TabPage) ChildrenClipRect() (geom.Rect, bool) {
	return tp.Rect(), true
}
