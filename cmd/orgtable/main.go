// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/orgtable/main.go
// Summary: Entry point for the orgtable command line tool.

package main

import "github.com/framegrace/orgtable/cmd/orgtable/cmd"

func main() {
	cmd.Execute()
}
