// Copyright 2025 The InviteMap Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/jcodagnone/invitemap/ack"
	"github.com/jcodagnone/invitemap/widget"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the map web server (local only)",
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
		state := ack.Open(ctx, store)

		server := widget.NewServer(groups, state, table)

		fmt.Println("🗺️  Invite map server starting...")
		fmt.Printf("📍 Open http://%s in your browser\n", serveAddr)

		return server.Run(serveAddr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost:8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}
