// SPDX-License-Identifier: GPL-2.0-or-later

// Package conlog prints user facing messages. It writes to the standard
// logger until something else is installed.
package conlog

import (
	"log"
	"sync/atomic"
)

var (
	p         = log.Printf
	developer atomic.Bool
)

func SetPrintf(f func(string, ...interface{})) {
	if f == nil {
		f = log.Printf
	}
	p = f
}

// SetDeveloper enables DPrintf.
func SetDeveloper(on bool) {
	developer.Store(on)
}

func Printf(format string, v ...interface{}) {
	p(format, v...)
}

// DPrintf only prints in developer mode.
func DPrintf(format string, v ...interface{}) {
	if developer.Load() {
		p(format, v...)
	}
}
