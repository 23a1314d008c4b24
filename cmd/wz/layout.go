// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"widgetzero.org/wz/core"
	"widgetzero.org/wz/tree"
)

func newLayoutCmd(o *options) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "layout <scene>",
		Short: "Print the widget tree of a scene with the absolute rect of each widget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mw, _, err := o.open(args[0])
			if err != nil {
				return err
			}
			printTree(output(cmd), mw, all)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "also print widgets that are not displayed")
	return cmd
}

// printTree writes one line per widget under root, indented by depth:
// its name, its type and its absolute rect.
func printTree(out *termenv.Output, root core.Widget, all bool) {
	var walk func(w core.Widget, depth int)
	walk = func(w core.Widget, depth int) {
		wb := w.AsWidget()
		if !all && !wb.IsDisplayed() {
			return
		}
		fmt.Fprintf(out, "%s%s %s %v", strings.Repeat("  ", depth),
			out.String(wb.Name).Bold(), out.String(tree.TypeIDName(w)).Faint(), wb.Rect())
		if p := wb.DrawPriority(); p != 0 {
			fmt.Fprintf(out, " priority %d", p)
		}
		if !wb.IsDisplayed() {
			fmt.Fprint(out, " hidden")
		}
		io.WriteString(out, "\n")
		wb.ForWidgetChildren(func(i int, cw core.Widget, cwb *core.WidgetBase) bool {
			walk(cw, depth+1)
			return tree.Continue
		})
	}
	walk(root, 0)
}
