// Copyright 2025 The InviteMap Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/jcodagnone/invitemap/ack"
	"github.com/spf13/cobra"
)

var ackCmd = &cobra.Command{
	Use:   "ack",
	Short: "Inspect and change who has been visited",
}

// withState opens the configured store and hands the loaded state to fn.
func withState(fn func(ctx context.Context, state *ack.State) error) error {
	ctx := context.Background()

	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	return fn(ctx, ack.Open(ctx, store))
}

var ackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored acknowledgments",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return withState(func(_ context.Context, state *ack.State) error {
			acks := state.Snapshot()

			names := make([]string, 0, len(acks))
			for name := range acks {
				names = append(names, name)
			}

			sort.Strings(names)

			for _, name := range names {
				fmt.Printf("%s %s\n", status(acks[name]), name)
			}

			return nil
		})
	},
}

var ackToggleCmd = &cobra.Command{
	Use:   "toggle <name>...",
	Short: "Flip the visited mark of each name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withState(func(ctx context.Context, state *ack.State) error {
			for _, name := range args {
				value, err := state.Toggle(ctx, name)
				if err != nil {
					return err
				}

				fmt.Printf("%s %s\n", status(value), name)
			}

			return nil
		})
	},
}

var ackSetCmd = &cobra.Command{
	Use:   "set <name> <true|false>",
	Short: "Set the visited mark of a name",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		value, err := strconv.ParseBool(args[1])
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", args[1], err)
		}

		return withState(func(ctx context.Context, state *ack.State) error {
			if err := state.Set(ctx, args[0], value); err != nil {
				return err
			}

			fmt.Printf("%s %s\n", status(value), args[0])

			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(ackCmd)
	ackCmd.AddCommand(ackListCmd)
	ackCmd.AddCommand(ackToggleCmd)
	ackCmd.AddCommand(ackSetCmd)
}
