package maskctl

import (
	"context"

	gamegrpc "github.com/louisbranch/masks/internal/services/game/api/grpc/game"
	"github.com/spf13/cobra"
)

func (c *cli) npcCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "npc",
		Short: "Query NPCs, their schedules and reactions",
	}

	var role, zone, trait string
	list := &cobra.Command{
		Use:   "list",
		Short: "List NPCs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.ListNPCs(ctx, &gamegrpc.ListNPCsRequest{Role: role, ZoneID: zone, Trait: trait})
			})
		},
	}
	list.Flags().StringVar(&role, "role", "", "only NPCs with this role")
	list.Flags().StringVar(&zone, "zone", "", "only NPCs whose schedule visits this zone")
	list.Flags().StringVar(&trait, "trait", "", "only NPCs with this trait")

	var atZone string
	at := &cobra.Command{
		Use:   "at TIME",
		Short: "List NPCs present at a clock time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.ListNPCsAt(ctx, &gamegrpc.ListNPCsAtRequest{Time: args[0], ZoneID: atZone})
			})
		},
	}
	at.Flags().StringVar(&atZone, "zone", "", "only NPCs in this zone")

	var maskID string
	reaction := &cobra.Command{
		Use:   "reaction NPC_ID",
		Short: "Show how an NPC reacts to a mask",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.GetNPCReaction(ctx, &gamegrpc.GetNPCReactionRequest{NPCID: args[0], MaskID: maskID})
			})
		},
	}
	reaction.Flags().StringVar(&maskID, "mask", "", "mask worn (none means bare-faced)")

	cmd.AddCommand(list, at, reaction)
	return cmd
}

func (c *cli) zoneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zone",
		Short: "Browse school zones",
	}

	var zoneType string
	list := &cobra.Command{
		Use:   "list",
		Short: "List zones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.ListZones(ctx, &gamegrpc.ListZonesRequest{Type: zoneType})
			})
		},
	}
	list.Flags().StringVar(&zoneType, "type", "", "only zones of this type")

	var at string
	get := &cobra.Command{
		Use:   "get ZONE_ID",
		Short: "Show a zone with its actions, events and NPCs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.GetZone(ctx, &gamegrpc.GetZoneRequest{ZoneID: args[0], Time: at})
			})
		},
	}
	get.Flags().StringVar(&at, "time", "", "only NPCs present at this clock time")

	cmd.AddCommand(list, get)
	return cmd
}
