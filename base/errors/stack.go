// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"path/filepath"
	"runtime"
	"strconv"
)

// Debug is whether to append caller information to error strings.
var Debug = true

// CallerInfo returns the file name and line number of the function
// that called the function calling CallerInfo.
func CallerInfo() string {
	return callerInfo(3)
}

func callerInfo(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return filepath.Base(file) + ":" + strconv.Itoa(line)
}
