package maskctl

import (
	"context"

	gamegrpc "github.com/louisbranch/masks/internal/services/game/api/grpc/game"
	"github.com/spf13/cobra"
)

func (c *cli) maskCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mask",
		Short: "Equip, unlock and inspect masks",
	}

	list := &cobra.Command{
		Use:   "list PLAYER_ID",
		Short: "List owned masks with their corruption and the masks still locked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.ListMasks(ctx, &gamegrpc.PlayerRequest{PlayerID: args[0]})
			})
		},
	}

	equip := &cobra.Command{
		Use:   "equip PLAYER_ID MASK_ID",
		Short: "Equip an owned mask",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.EquipMask(ctx, &gamegrpc.MaskRequest{PlayerID: args[0], MaskID: args[1]})
			})
		},
	}

	unequip := &cobra.Command{
		Use:   "unequip PLAYER_ID",
		Short: "Take off the equipped mask",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.UnequipMask(ctx, &gamegrpc.PlayerRequest{PlayerID: args[0]})
			})
		},
	}

	unlock := &cobra.Command{
		Use:   "unlock PLAYER_ID MASK_ID",
		Short: "Try to unlock a mask; unmet requirements are listed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.UnlockMask(ctx, &gamegrpc.MaskRequest{PlayerID: args[0], MaskID: args[1]})
			})
		},
	}

	corrupt := &cobra.Command{
		Use:   "corrupt PLAYER_ID MASK_ID DELTA",
		Short: "Adjust a mask's corruption by DELTA",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, err := intArg("delta", args[2])
			if err != nil {
				return err
			}
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.AdjustCorruption(ctx, &gamegrpc.AdjustCorruptionRequest{PlayerID: args[0], MaskID: args[1], Delta: delta})
			})
		},
	}

	cmd.AddCommand(list, equip, unequip, unlock, corrupt)
	return cmd
}
