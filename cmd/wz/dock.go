// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"widgetzero.org/wz/base/errors"
	"widgetzero.org/wz/core"
	"widgetzero.org/wz/geom"
	"widgetzero.org/wz/scene"
)

func newDockCmd(o *options) *cobra.Command {
	var undock bool
	cmd := &cobra.Command{
		Use:   "dock <scene> <window> <edge>",
		Short: "Dock a window of a scene at an edge and print the resulting layout",
		Long: `Dock docks the window with the given name at the north, south,
east or west edge of the main window and prints the resulting layout.
With --undock, the window is then undocked again at its old position,
which checks that docking round-trips.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			mw, _, err := o.open(args[0])
			if err != nil {
				return err
			}
			w, ok := scene.Find(mw, args[1]).(*core.Window)
			if !ok {
				return errors.Errorf("no window named %q", args[1])
			}
			edge, ok := core.ParseDockEdge(args[2])
			if !ok || edge == core.DockNone {
				return errors.Errorf("unknown dock edge %q", args[2])
			}
			title, rect := w.Title(), w.Rect()
			page := mw.DockWindow(w, edge)
			out := output(cmd)
			if !undock {
				printTree(out, mw, false)
				return nil
			}
			tab := tabOf(mw.DockTabs(edge), page)
			nw := mw.UndockTab(tab, geom.Pos(rect.X+rect.W/2, rect.Y+1))
			nw.SetPosition(rect.X, rect.Y)
			slog.Info("undocked", "title", title, "rect", nw.Rect())
			printTree(out, mw, false)
			if nw.Rect() != rect {
				return errors.Errorf("window %q came back at %v, not %v", title, nw.Rect(), rect)
			}
			fmt.Fprintf(out, "%s round-trips at %v\n", title, rect)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&undock, "undock", "u", false, "undock the window again after docking it")
	return cmd
}

// tabOf returns the tab of the given page.
func tabOf(dt *core.DockTabs, page *core.TabPage) *core.TabButton {
	for _, tab := range dt.TabBar().Tabs() {
		if tab.Page() == page {
			return tab
		}
	}
	return nil
}
