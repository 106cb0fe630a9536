package maskctl

import (
	"context"

	gamegrpc "github.com/louisbranch/masks/internal/services/game/api/grpc/game"
	"github.com/spf13/cobra"
)

func (c *cli) playerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Create, inspect and update players",
	}

	var startingMask string
	create := &cobra.Command{
		Use:   "create USERNAME",
		Short: "Create a player with the starter masks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.CreatePlayer(ctx, &gamegrpc.CreatePlayerRequest{Username: args[0], StartingMask: startingMask})
			})
		},
	}
	create.Flags().StringVar(&startingMask, "mask", "", "starter mask to equip")

	get := &cobra.Command{
		Use:   "get PLAYER_ID",
		Short: "Show a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.GetPlayer(ctx, &gamegrpc.PlayerRequest{PlayerID: args[0]})
			})
		},
	}

	find := &cobra.Command{
		Use:   "find USERNAME",
		Short: "Look a player up by username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.GetPlayerByUsername(ctx, &gamegrpc.GetPlayerByUsernameRequest{Username: args[0]})
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete PLAYER_ID",
		Short: "Delete a player and all of their state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.DeletePlayer(ctx, &gamegrpc.PlayerRequest{PlayerID: args[0]})
			})
		},
	}

	move := &cobra.Command{
		Use:   "move PLAYER_ID ZONE_ID",
		Short: "Move a player to a zone",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.MoveToZone(ctx, &gamegrpc.MoveToZoneRequest{PlayerID: args[0], ZoneID: args[1]})
			})
		},
	}

	var (
		energy, reputation int
		mood, at           string
	)
	stats := &cobra.Command{
		Use:   "stats PLAYER_ID",
		Short: "Overwrite player stats; only the flags given are changed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &gamegrpc.UpdateStatsRequest{PlayerID: args[0]}
			flags := cmd.Flags()
			if flags.Changed("energy") {
				req.Energy = &energy
			}
			if flags.Changed("reputation") {
				req.Reputation = &reputation
			}
			if flags.Changed("mood") {
				req.Mood = &mood
			}
			if flags.Changed("time") {
				req.Time = &at
			}
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.UpdateStats(ctx, req)
			})
		},
	}
	stats.Flags().IntVar(&energy, "energy", 0, "energy value")
	stats.Flags().IntVar(&reputation, "reputation", 0, "reputation value")
	stats.Flags().StringVar(&mood, "mood", "", "mood name")
	stats.Flags().StringVar(&at, "time", "", "clock time as HH:MM")

	relationship := &cobra.Command{
		Use:   "relationship PLAYER_ID NPC_ID",
		Short: "Show a player's affinity with an NPC",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.GetRelationship(ctx, &gamegrpc.GetRelationshipRequest{PlayerID: args[0], NPCID: args[1]})
			})
		},
	}

	cmd.AddCommand(create, get, find, del, move, stats, relationship)
	return cmd
}
