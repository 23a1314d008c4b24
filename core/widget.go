// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core provides the widgets of WidgetZero, together with the
// stack layout engine, the draw priority scheduler, input dispatch and
// window docking.
package core

import (
	"fmt"
	"slices"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
	"widgetzero.org/wz/config"
	"widgetzero.org/wz/events"
	"widgetzero.org/wz/geom"
	"widgetzero.org/wz/keymap"
	"widgetzero.org/wz/styles"
	"widgetzero.org/wz/tree"
)

// Widget is the interface that all WidgetZero widgets satisfy.
// The core widget functionality is defined on [WidgetBase],
// and all higher-level widget types must embed it. This
// interface only contains the methods that higher-level
// widget types may need to override; [WidgetBase] supplies
// a default for each of them, so a widget that does not
// override a method simply skips that behavior.
type Widget interface {
	tree.Node

	// AsWidget returns the [WidgetBase] of this Widget. Most
	// core widget functionality is implemented on [WidgetBase].
	AsWidget() *WidgetBase

	// Draw draws the widget using the given renderer. The clip rect
	// is in absolute coordinates. It is called by [DrawTree] once per
	// frame, in the pass matching the widget's effective draw priority.
	Draw(r Renderer, clip geom.Rect)

	// SetRect sets the parent-relative rect of the widget. Widgets that
	// arrange children (layouts, windows, lists) override it to
	// recompute their children whenever their own rect changes.
	SetRect(r geom.Rect)

	// Measure returns the natural size of the widget, typically
	// derived from [Renderer.MeasureText]. A zero dimension means
	// the widget has no natural size on that axis.
	Measure() geom.Size

	// SetVisible shows or hides the widget.
	SetVisible(visible bool)

	// Update is called once per frame by [MainWindow.Update].
	Update()

	MouseButtonDown(button mouse.Button, x, y int)
	MouseButtonUp(button mouse.Button, x, y int)
	MouseMove(x, y, dx, dy int)
	MouseWheelMove(x, y int)
	MouseHoverOn()
	MouseHoverOff()
	KeyDown(code key.Code, mods key.Modifiers)
	KeyUp(code key.Code, mods key.Modifiers)
	TextInput(text string)

	// ChildrenClipRect returns the absolute rect that the children of
	// this widget are clipped to when drawn, if any.
	ChildrenClipRect() (geom.Rect, bool)

	// canAddChild returns whether the given widget may be attached
	// directly as a child of this one.
	canAddChild(child Widget) bool
}

// WidgetBase implements the [Widget] interface and provides the core functionality
// of a widget. You must use WidgetBase as an embedded struct in all higher-level
// widget types. It does not arrange any children; see [Frame] and
// [StackLayout] for that.
type WidgetBase struct {
	tree.NodeBase

	// Metadata is arbitrary data owned by the application.
	// The widget never inspects or releases it.
	Metadata any

	// rect is relative to the parent widget.
	rect geom.Rect

	// userSize is the size explicitly set by the user.
	// A zero dimension means the measured size is used.
	userSize geom.Size

	margin       geom.Border
	stretch      styles.Stretch
	align        styles.Align
	drawPriority int

	hover   bool
	visible bool

	// hidden is set internally, for example on the pages of a
	// [Tabbed] that are not selected. It is separate from visible
	// so that the user visibility is preserved.
	hidden bool

	// mainWindow is the main window this widget belongs to,
	// or nil if it is not attached to one.
	mainWindow *MainWindow

	// window is the nearest ancestor [Window], or nil.
	window *Window

	// ignoreWindowClip lets the widget and its descendants extend past
	// the content area of their window, as a combo drop-down does.
	ignoreWindowClip bool

	listeners events.Listeners
}

func (wb *WidgetBase) Init() {
	wb.visible = true
}

// OnAdd is called when widgets are added to a parent.
// It updates the main window and window references of the
// widget and all of its children, and measures them.
func (wb *WidgetBase) OnAdd() {
	wb.updateTreeRefs()
}

// AsWidget returns the given [tree.Node] as a [WidgetBase] or nil.
func AsWidget(n tree.Node) *WidgetBase {
	if w, ok := n.(Widget); ok {
		return w.AsWidget()
	}
	return nil
}

func (wb *WidgetBase) AsWidget() *WidgetBase {
	return wb
}

func (wb *WidgetBase) this() Widget {
	return wb.This.(Widget)
}

// parentWidget returns the parent as a [WidgetBase] or nil
// if this is the root and has no parent.
func (wb *WidgetBase) parentWidget() *WidgetBase {
	if wb.Parent == nil {
		return nil
	}
	return AsWidget(wb.Parent)
}

// MainWindow returns the main window the widget is attached to, or nil.
func (wb *WidgetBase) MainWindow() *MainWindow {
	return wb.mainWindow
}

// Window returns the nearest ancestor [Window], or nil if the
// widget is not inside a floating window.
func (wb *WidgetBase) Window() *Window {
	return wb.window
}

// renderer returns the renderer of the main window, or nil.
func (wb *WidgetBase) renderer() Renderer {
	if wb.mainWindow == nil {
		return nil
	}
	return wb.mainWindow.renderer
}

// config returns the configuration of the main window of the widget,
// or the default configuration.
func (wb *WidgetBase) config() *config.Config {
	if wb.mainWindow != nil {
		return wb.mainWindow.cfg
	}
	return defaultConfig
}

// measureText measures the given text with the renderer, if any.
func (wb *WidgetBase) measureText(text string) geom.Size {
	if r := wb.renderer(); r != nil {
		return r.MeasureText(text)
	}
	return geom.Size{}
}

// lineHeight returns the line height of the renderer, if any.
func (wb *WidgetBase) lineHeight() int {
	if r := wb.renderer(); r != nil {
		return r.LineHeight()
	}
	return 0
}

// ForWidgetChildren iterates through the children as widgets, calling the given function.
// Return [tree.Continue] (true) to continue, and [tree.Break] (false) to terminate.
func (wb *WidgetBase) ForWidgetChildren(fun func(i int, cw Widget, cwb *WidgetBase) bool) {
	for i, c := range wb.Children {
		cw := c.(Widget)
		if !fun(i, cw, cw.AsWidget()) {
			break
		}
	}
}

// forVisibleChildren iterates through the children that are visible
// themselves (it does not check parents). It is used by the layout
// functions to exclude invisible children.
func (wb *WidgetBase) forVisibleChildren(fun func(i int, cw Widget, cwb *WidgetBase) bool) {
	for i, c := range wb.Children {
		cw := c.(Widget)
		cwb := cw.AsWidget()
		if !cwb.IsVisible() {
			continue
		}
		if !fun(i, cw, cwb) {
			break
		}
	}
}

// WidgetWalkDown is a version of [tree.NodeBase.WalkDown] that operates on [Widget] types,
// calling the given function on the Widget and all of its children in a depth-first manner.
// Return [tree.Continue] to continue and [tree.Break] to terminate.
func (wb *WidgetBase) WidgetWalkDown(fun func(cw Widget, cwb *WidgetBase) bool) {
	wb.WalkDown(func(n tree.Node) bool {
		cw := n.(Widget)
		return fun(cw, cw.AsWidget())
	})
}

// updateTreeRefs recomputes the main window and window references of
// the widget and all of its children, and sizes each of them to its
// measured size once a renderer is available.
func (wb *WidgetBase) updateTreeRefs() {
	wb.WidgetWalkDown(func(cw Widget, cwb *WidgetBase) bool {
		cwb.mainWindow, cwb.window = nil, nil
		if mw, ok := cw.(*MainWindow); ok {
			cwb.mainWindow = mw
		} else if pwb := cwb.parentWidget(); pwb != nil {
			cwb.mainWindow = pwb.mainWindow
			cwb.window = pwb.window
			if w, ok := pwb.This.(*Window); ok {
				cwb.window = w
			}
		}
		cwb.resizeToMeasured()
		return tree.Continue
	})
}

// attach adds child to parent after validating that the parent
// can host it. Contract violations panic.
func attach(parent, child Widget) {
	pwb, cwb := parent.AsWidget(), child.AsWidget()
	if cwb.This == nil {
		tree.InitNode(child)
	}
	if cwb.Parent != nil {
		panic(fmt.Sprintf("core: %v is already attached to %v", cwb, cwb.Parent))
	}
	if _, ok := child.(*MainWindow); ok {
		panic(fmt.Sprintf("core: main window %v cannot be a child of %v", cwb, pwb))
	}
	if tree.IsAncestor(child, parent) {
		panic(fmt.Sprintf("core: cannot attach %v to its own descendant %v", cwb, pwb))
	}
	if !parent.canAddChild(child) {
		panic(fmt.Sprintf("core: %T %v cannot host a %T child", parent, pwb, child))
	}
	pwb.AddChild(child)
	cwb.refreshRect()
	pwb.refreshRect()
}

// detach removes child from parent. The child stays usable as a root.
func detach(parent, child Widget) {
	pwb, cwb := parent.AsWidget(), child.AsWidget()
	if cwb.Parent != parent {
		panic(fmt.Sprintf("core: %v is not a child of %v", cwb, pwb))
	}
	if mw := cwb.mainWindow; mw != nil {
		mw.forgetWidget(child)
	}
	pwb.RemoveChild(child)
	cwb.updateTreeRefs()
	pwb.refreshRect()
}

// Add attaches the given widget as the last child of this one.
// It panics if this widget cannot host the child; only containers
// such as [Frame] and [StackLayout] accept arbitrary children.
func (wb *WidgetBase) Add(child Widget) {
	attach(wb.this(), child)
}

// Remove detaches the given child widget. The child is not destroyed
// and can be used as a root or added elsewhere.
func (wb *WidgetBase) Remove(child Widget) {
	detach(wb.this(), child)
}

func (wb *WidgetBase) canAddChild(child Widget) bool {
	return false
}

// Destroy detaches the widget from its parent if it has one, then
// destroys all of its children before itself. The main window
// forgets any input lock, keyboard focus or drag state that refers to it.
// [WidgetBase.Metadata] is left untouched.
func (wb *WidgetBase) Destroy() {
	if wb.This == nil {
		return
	}
	if pwb := wb.parentWidget(); pwb != nil {
		pwb.RemoveChild(wb.This)
		defer pwb.refreshRect()
	}
	if wb.mainWindow != nil {
		wb.mainWindow.forgetWidget(wb.this())
	}
	wb.listeners = nil
	wb.NodeBase.Destroy()
}

// RelativeRect returns the rect of the widget relative to its parent.
func (wb *WidgetBase) RelativeRect() geom.Rect {
	return wb.rect
}

// Rect returns the absolute rect of the widget, accumulating
// the positions of all of its ancestors.
func (wb *WidgetBase) Rect() geom.Rect {
	r := wb.rect
	for p := wb.parentWidget(); p != nil; p = p.parentWidget() {
		r = r.Add(p.rect.Pos())
	}
	return r
}

// Position returns the parent-relative position of the widget.
func (wb *WidgetBase) Position() geom.Position { return wb.rect.Pos() }

// Size returns the size of the widget.
func (wb *WidgetBase) Size() geom.Size { return wb.rect.Size() }

func (wb *WidgetBase) Width() int  { return wb.rect.W }
func (wb *WidgetBase) Height() int { return wb.rect.H }

// SetRect stores the rect. Widgets that arrange children override it.
func (wb *WidgetBase) SetRect(r geom.Rect) {
	wb.rect = r
}

// SetPosition sets the parent-relative position of the widget.
// Inside a [StackLayout] the position is recomputed by the layout.
func (wb *WidgetBase) SetPosition(x, y int) {
	r := wb.rect
	r.X, r.Y = x, y
	wb.this().SetRect(r)
	wb.refreshParent()
}

// SetSize sets the user size of the widget, which wins over the
// measured size. A zero dimension reverts that dimension to the
// measured size.
func (wb *WidgetBase) SetSize(w, h int) {
	wb.userSize = geom.Sz(w, h)
	wb.resize()
}

// SetWidth sets the user width of the widget. See [WidgetBase.SetSize].
func (wb *WidgetBase) SetWidth(w int) {
	wb.userSize.W = w
	wb.resize()
}

// SetHeight sets the user height of the widget. See [WidgetBase.SetSize].
func (wb *WidgetBase) SetHeight(h int) {
	wb.userSize.H = h
	wb.resize()
}

func (wb *WidgetBase) resize() {
	r := wb.rect
	if wb.userSize.W > 0 {
		r.W = wb.userSize.W
	}
	if wb.userSize.H > 0 {
		r.H = wb.userSize.H
	}
	wb.this().SetRect(r)
	wb.resizeToMeasured()
	wb.refreshParent()
}

// resizeToMeasured sets the dimensions the user has not set to the
// measured size of the widget. It does nothing without a renderer.
func (wb *WidgetBase) resizeToMeasured() {
	if wb.renderer() == nil {
		return
	}
	m := wb.this().Measure()
	r := wb.rect
	if wb.userSize.W <= 0 && m.W > 0 {
		r.W = m.W
	}
	if wb.userSize.H <= 0 && m.H > 0 {
		r.H = m.H
	}
	if r != wb.rect {
		wb.this().SetRect(r)
	}
}

// remeasure is called when the content of a widget changes its
// natural size, for example when a label text is set.
func (wb *WidgetBase) remeasure() {
	wb.resizeToMeasured()
	wb.refreshParent()
}

// Measure returns a zero size: by default widgets have no natural size.
func (wb *WidgetBase) Measure() geom.Size { return geom.Size{} }

// refreshRect re-applies the current rect, which makes widgets that
// arrange children recompute them.
func (wb *WidgetBase) refreshRect() {
	wb.this().SetRect(wb.rect)
}

// refreshParent makes the parent recompute its children.
func (wb *WidgetBase) refreshParent() {
	if pwb := wb.parentWidget(); pwb != nil {
		pwb.refreshRect()
	}
}

// Margin returns the margin of the widget.
func (wb *WidgetBase) Margin() geom.Border { return wb.margin }

// SetMargin sets the margin used by the parent when placing the widget.
func (wb *WidgetBase) SetMargin(m geom.Border) {
	wb.margin = m
	wb.refreshParent()
}

// Stretch returns the stretch flags of the widget.
func (wb *WidgetBase) Stretch() styles.Stretch { return wb.stretch }

// SetStretch sets the axes along which the widget grows to fill
// the space its parent gives it.
func (wb *WidgetBase) SetStretch(s styles.Stretch) {
	wb.stretch = s
	wb.refreshParent()
}

// Align returns the alignment flags of the widget.
func (wb *WidgetBase) Align() styles.Align { return wb.align }

// SetAlign sets the alignment of the widget within the space its
// parent gives it.
func (wb *WidgetBase) SetAlign(a styles.Align) {
	wb.align = a
	wb.refreshParent()
}

// DrawPriority returns the draw priority of the widget itself.
func (wb *WidgetBase) DrawPriority() int { return wb.drawPriority }

// SetDrawPriority sets the draw priority of the widget. Higher
// priorities are drawn later, above lower ones, regardless of the
// position of the widget in the tree.
func (wb *WidgetBase) SetDrawPriority(p int) {
	wb.drawPriority = min(max(p, DrawPriorityDefault), DrawPriorityMax)
}

// EffectiveDrawPriority returns the highest draw priority of the widget
// and its ancestors. Children are always drawn in the same pass as
// their parent or a later one.
func (wb *WidgetBase) EffectiveDrawPriority() int {
	p := wb.drawPriority
	for pwb := wb.parentWidget(); pwb != nil; pwb = pwb.parentWidget() {
		p = max(p, pwb.drawPriority)
	}
	return p
}

// Hover returns whether the mouse cursor is over the widget.
// Any number of widgets can be hovered at the same time.
func (wb *WidgetBase) Hover() bool { return wb.hover }

// IsVisible returns whether the widget itself is shown: it has not been
// hidden by the user or internally. It does not check ancestors.
func (wb *WidgetBase) IsVisible() bool {
	return wb.visible && !wb.hidden
}

// IsDisplayed returns whether the widget and all of its ancestors are visible.
func (wb *WidgetBase) IsDisplayed() bool {
	for w := wb; w != nil; w = w.parentWidget() {
		if !w.IsVisible() {
			return false
		}
	}
	return true
}

// SetVisible shows or hides the widget. Hidden widgets are not drawn,
// receive no input and are skipped by layouts.
func (wb *WidgetBase) SetVisible(visible bool) {
	if wb.visible == visible {
		return
	}
	wb.visible = visible
	if !visible && wb.mainWindow != nil {
		wb.mainWindow.forgetWidget(wb.this())
	}
	wb.refreshParent()
}

func (wb *WidgetBase) setHidden(hidden bool) {
	wb.hidden = hidden
}

// windowClipped returns whether the widget is limited to the content
// area of its window: it is inside a window, and neither it nor any of
// its ancestors inside that window ignores the window clip.
func (wb *WidgetBase) windowClipped() bool {
	if wb.window == nil {
		return false
	}
	for w := wb; w != nil && w.window == wb.window; w = w.parentWidget() {
		if w.ignoreWindowClip {
			return false
		}
	}
	return true
}

// overlapsParentWindow returns whether the widget is at least partly
// inside the content area of its window. Widgets outside any window,
// or ignoring its clip, always overlap.
func (wb *WidgetBase) overlapsParentWindow() bool {
	if !wb.windowClipped() {
		return true
	}
	return wb.Rect().Overlaps(wb.window.contentRect())
}

// pointInParentWindow returns whether the absolute point is inside the
// content area of the window of the widget.
func (wb *WidgetBase) pointInParentWindow(p geom.Position) bool {
	if !wb.windowClipped() {
		return true
	}
	return wb.window.contentRect().Contains(p)
}

func (wb *WidgetBase) Draw(r Renderer, clip geom.Rect) {}

func (wb *WidgetBase) ChildrenClipRect() (geom.Rect, bool) { return geom.Rect{}, false }

func (wb *WidgetBase) Update() {}

func (wb *WidgetBase) MouseButtonDown(button mouse.Button, x, y int) {}
func (wb *WidgetBase) MouseButtonUp(button mouse.Button, x, y int)   {}
func (wb *WidgetBase) MouseMove(x, y, dx, dy int)                    {}
func (wb *WidgetBase) MouseWheelMove(x, y int)                       {}
func (wb *WidgetBase) MouseHoverOn()                                 {}
func (wb *WidgetBase) MouseHoverOff()                                {}
func (wb *WidgetBase) KeyDown(code key.Code, mods key.Modifiers)     {}
func (wb *WidgetBase) KeyUp(code key.Code, mods key.Modifiers)       {}
func (wb *WidgetBase) TextInput(text string)                         {}

// On adds the given event handler for the given event type. Handlers
// are called in the order they were added, after the event callback
// of the main window.
func (wb *WidgetBase) On(typ events.Types, fun func(e *events.Event)) {
	wb.listeners.Add(typ, fun)
}

// send delivers the given event first to the event callback of the
// main window and then to the handlers of this widget.
func (wb *WidgetBase) send(e *events.Event) {
	if mw := wb.mainWindow; mw != nil && mw.eventCallback != nil {
		mw.eventCallback(e)
	}
	wb.listeners.Call(e)
}

// newEvent returns a new event of the given type with this widget as its source.
func (wb *WidgetBase) newEvent(typ events.Types) *events.Event {
	return events.New(typ, wb.This)
}

// Defer adds a function to run after the main window has finished
// dispatching the current input event. Changes to the structure of
// the tree made from input handlers must be deferred. Without a main
// window the function runs immediately.
func (wb *WidgetBase) Defer(fun func()) {
	if wb.mainWindow == nil || wb.mainWindow.dispatching == 0 {
		fun()
		return
	}
	wb.mainWindow.deferred = append(wb.mainWindow.deferred, fun)
}

// setKeyboardFocus makes this widget the keyboard focus of its main window.
func (wb *WidgetBase) setKeyboardFocus() {
	if wb.mainWindow != nil {
		wb.mainWindow.SetKeyboardFocus(wb.this())
	}
}

// keyFunction returns the function of the given key in the key map
// of the main window, or in [keymap.Default] when detached.
func (wb *WidgetBase) keyFunction(code key.Code, mods key.Modifiers) keymap.Functions {
	if wb.mainWindow != nil {
		return wb.mainWindow.keyMap.Of(code, mods)
	}
	return keymap.Default.Of(code, mods)
}

// HasKeyboardFocus returns whether the widget has the keyboard focus.
func (wb *WidgetBase) HasKeyboardFocus() bool {
	return wb.mainWindow != nil && wb.mainWindow.keyboardFocus == wb.This
}

// childWidgets returns a copy of the children as widgets, which is safe
// to iterate while handlers modify the tree.
func (wb *WidgetBase) childWidgets() []Widget {
	ws := make([]Widget, len(wb.Children))
	for i, c := range slices.Clone(wb.Children) {
		ws[i] = c.(Widget)
	}
	return ws
}
