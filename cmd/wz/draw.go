// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"widgetzero.org/wz/core"
)

func newDrawCmd(o *options) *cobra.Command {
	var frames int
	cmd := &cobra.Command{
		Use:   "draw <scene>",
		Short: "Print the draw calls of one frame of a scene, in draw order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mw, rr, err := o.open(args[0])
			if err != nil {
				return err
			}
			for range frames {
				mw.Update()
			}
			mw.Render()
			printCalls(output(cmd), rr.Calls)
			return nil
		},
	}
	cmd.Flags().IntVarP(&frames, "updates", "u", 0, "number of updates to run before drawing")
	return cmd
}

// printCalls writes one numbered line per draw call.
func printCalls(out *termenv.Output, calls []core.DrawCall) {
	for i, dc := range calls {
		name := dc.Kind
		if dc.Widget != nil {
			name = dc.Widget.AsTree().Name
		}
		fmt.Fprintf(out, "%3d %s %s %v clip %v\n", i, out.String(dc.Kind).Faint(),
			out.String(name).Bold(), dc.Rect, dc.Clip)
	}
}
