// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"flag"
	"log"

	"github.com/gopxl/mainthread/v2"

	"goscene/commandline"
	"goscene/viewer"
)

func run() {
	if commandline.Dump() {
		if err := viewer.Dump(); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := viewer.Run(); err != nil {
		log.Fatal(err)
	}
}

func main() {
	flag.Parse()
	mainthread.Run(run)
}
