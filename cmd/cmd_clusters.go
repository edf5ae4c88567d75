// Copyright 2025 The InviteMap Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jcodagnone/invitemap/ack"
	"github.com/jcodagnone/invitemap/invite"
	"github.com/jcodagnone/invitemap/places"
	"github.com/jcodagnone/invitemap/utils/textutils"
	"github.com/spf13/cobra"
)

var clustersRegionRes int

var clustersCmd = &cobra.Command{
	Use:   "clusters",
	Short: "List the invitee clusters and their visited status",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx := context.Background()

		table, err := loadTable()
		if err != nil {
			return err
		}

		store, closeStore, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeStore()

		groups := loadGroups(ctx, table)
		acks := ack.Open(ctx, store).Snapshot()

		printClusters(os.Stdout, groups, acks)

		if clustersRegionRes > 0 {
			if err := printRegions(os.Stdout, groups, clustersRegionRes); err != nil {
				return err
			}
		}

		printUnresolved(os.Stdout, groups, table)

		return nil
	},
}

func status(done bool) string {
	if done {
		return "✅"
	}

	return "⬜"
}

func printClusters(w io.Writer, groups *invite.Groups, acks ack.Map) {
	a, b, c, d := strings.Repeat("─", 17), strings.Repeat("─", 15), strings.Repeat("─", 3), strings.Repeat("─", 40)
	fmt.Fprintf(w, "╭─%s─┬─%s─┬─%s─┬────┬─%s╮\n", a, b, c, d)
	fmt.Fprintf(w, "│ %-17s │ %-15s │ %3s │    │ %-40s│\n", "Coordinates", "H3", "#", "Invitees")
	fmt.Fprintf(w, "├─%s─┼─%s─┼─%s─┼────┼─%s┤\n", a, b, c, d)

	for _, cluster := range groups.List() {
		names := make([]string, 0, len(cluster.Names))
		for _, name := range cluster.Names {
			mark := ""
			if acks[name] {
				mark = "✓"
			}

			names = append(names, name+mark)
		}

		fmt.Fprintf(w, "│ %-17s │ %-15s │ %3d │ %s │ %-40s│\n",
			cluster.Key,
			cluster.Cell.String(),
			len(cluster.Names),
			status(ack.AllAcknowledged(cluster.Names, acks)),
			textutils.Truncate(strings.Join(names, ", "), 40))
	}

	fmt.Fprintf(w, "╰─%s─┴─%s─┴─%s─┴────┴─%s╯\n", a, b, c, d)
}

func printRegions(w io.Writer, groups *invite.Groups, res int) error {
	regions, err := groups.Regions(res)
	if err != nil {
		return fmt.Errorf("grouping clusters into regions: %w", err)
	}

	fmt.Fprintf(w, "\nRegions at H3 resolution %d:\n", res)

	for _, region := range regions {
		fmt.Fprintf(w, "  %s  %s invitees in %d clusters\n",
			region.Cell.String(),
			textutils.FormatInt(int64(region.Invitees)),
			len(region.Clusters))
	}

	return nil
}

func printUnresolved(w io.Writer, groups *invite.Groups, table *places.Table) {
	if len(groups.Unresolved) == 0 {
		return
	}

	fmt.Fprintf(w, "\n⚠️  %s invitees left off the map (unknown location):\n",
		textutils.FormatInt(int64(len(groups.Unresolved))))

	for _, r := range groups.Unresolved {
		if name, ok := table.Suggest(r.Location); ok {
			fmt.Fprintf(w, "  %s\t%q (did you mean %q?)\n", r.Name, r.Location, name)
		} else {
			fmt.Fprintf(w, "  %s\t%q\n", r.Name, r.Location)
		}
	}
}

func init() {
	clustersCmd.Flags().IntVar(&clustersRegionRes, "region-res", 0, "also roll clusters up into H3 cells of this resolution (1-15)")
	rootCmd.AddCommand(clustersCmd)
}
