/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// gs1parse decodes GS1 element strings, such as those read from GS1-128,
// GS1 DataBar and GS1 DataMatrix symbols, and prints the data they carry.
//
// Usage:
//     gs1parse parse "0100614141007349<GS>21314159"
//     gs1parse check 0061414100734 --append
//     gs1parse gtin 2012345012349
//     gs1parse ai 3103
package main

import (
	"os"
)

func main() {
	if err := newApp(os.Stdin, os.Stdout, os.Stderr).rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
