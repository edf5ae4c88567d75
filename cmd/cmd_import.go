// Copyright 2025 The InviteMap Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/jcodagnone/invitemap/invite"
	"github.com/jcodagnone/invitemap/utils/textutils"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var importOptions struct {
	Sheet string
	Out   string
}

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx>",
	Short: "Convert a spreadsheet into the JSON invite list",
	Long: `Reads a spreadsheet whose first row has Name and Location columns and
writes the rows as the JSON invite list used by the other commands.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		var bar *progressbar.ProgressBar

		options := sourceOptions()
		options.Sheet = importOptions.Sheet

		if isatty.IsTerminal(os.Stderr.Fd()) {
			options.Progress = func(done, total int) {
				if bar == nil {
					bar = progressbar.NewOptions(total,
						progressbar.OptionSetDescription("Reading "+args[0]),
						progressbar.OptionSetWriter(os.Stderr),
						progressbar.OptionShowCount(),
						progressbar.OptionClearOnFinish(),
					)
				}

				_ = bar.Set(done)
			}
		}

		records, err := invite.LoadXLSX(args[0], options)
		if bar != nil {
			_ = bar.Finish()
		}

		if err != nil {
			return err
		}

		if err := invite.WriteFile(importOptions.Out, records); err != nil {
			return err
		}

		table, err := loadTable()
		if err != nil {
			return err
		}

		groups := invite.Aggregate(table, records)

		fmt.Printf("✅ Wrote %s invitees to %s (%s clusters, %s unresolved)\n",
			textutils.FormatInt(int64(len(records))),
			importOptions.Out,
			textutils.FormatInt(int64(groups.Len())),
			textutils.FormatInt(int64(len(groups.Unresolved))))

		printUnresolved(os.Stdout, groups, table)

		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importOptions.Sheet, "sheet", "", "sheet to read (default: first)")
	importCmd.Flags().StringVar(&importOptions.Out, "out", "invite.json", "output JSON file")
	rootCmd.AddCommand(importCmd)
}
