// Copyright 2025 The InviteMap Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/jcodagnone/invitemap/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
