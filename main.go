// Copyright (c) 2019-2022 Wibowo Arindrarto <contact@arindrarto.dev>
// SPDX-License-Identifier: BSD-3-Clause

// Package main exposes the https://godoc.org/github.com/bow/et/elapsed package as the et command
// line application.
//
// The main use case for et is quick wall-clock timing of a single command with readable output:
// it runs the command once, measures the elapsed time using the monotonic clock, and prints the
// duration in the coarsest fitting unit with two decimal digits.
package main

import (
	"fmt"
	"os"

	"github.com/bow/et/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
