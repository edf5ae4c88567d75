// Copyright 2025 The InviteMap Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/jcodagnone/invitemap/invite"
	"github.com/spf13/cobra"
)

var placesCmd = &cobra.Command{
	Use:   "places",
	Short: "List the known places",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		table, err := loadTable()
		if err != nil {
			return err
		}

		for _, name := range table.Names() {
			p, _ := table.Resolve(name)
			fmt.Printf("%-14s %9.4f %9.4f\n", name, p.Lat, p.Lng)
		}

		return nil
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <place>...",
	Short: "Resolve place names to coordinates",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return err
		}

		missing := 0

		for _, place := range args {
			p, err := invite.Lookup(table, place)
			if err == nil {
				fmt.Printf("%s\t%s\n", place, p.Key())

				continue
			}

			if !invite.IsLocationNotFound(err) {
				return err
			}

			missing++

			if name, ok := table.Suggest(place); ok {
				fmt.Fprintf(os.Stderr, "%s\tnot found (did you mean %q?)\n", place, name)
			} else {
				fmt.Fprintf(os.Stderr, "%s\tnot found\n", place)
			}
		}

		if missing > 0 {
			return fmt.Errorf("%d of %d places not found", missing, len(args))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(placesCmd)
	rootCmd.AddCommand(resolveCmd)
}
