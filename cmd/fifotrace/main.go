// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command fifotrace runs elastic buffer scenarios and prints a per-tick trace.
//
//	fifotrace demo
//	fifotrace run scenario.yml
//
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fifotrace:", err)
		os.Exit(1)
	}
}
