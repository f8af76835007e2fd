// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad
//
// nx584 - Caddx NX-584 panel interface tool
//
// A CLI tool for talking to, monitoring and decoding the serial protocol of
// NetworX alarm panels through an NX-584 interface module.

package main

import (
	"os"

	"github.com/Thermoquad/nx584/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
