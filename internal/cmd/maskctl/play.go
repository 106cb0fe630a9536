package maskctl

import (
	"context"

	gamegrpc "github.com/louisbranch/masks/internal/services/game/api/grpc/game"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
)

type itemSender func(context.Context, *gamegrpc.ItemQuantityRequest, ...grpc.CallOption) (*gamegrpc.Outcome, error)

func (c *cli) itemCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage and use inventory items",
	}

	quantityCommand := func(use, short string, send func(*gamegrpc.Client) itemSender) *cobra.Command {
		var quantity int
		sub := &cobra.Command{
			Use:   use + " PLAYER_ID ITEM_ID",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
					return send(client)(ctx, &gamegrpc.ItemQuantityRequest{PlayerID: args[0], ItemID: args[1], Quantity: quantity})
				})
			},
		}
		sub.Flags().IntVar(&quantity, "quantity", 1, "number of items")
		return sub
	}

	use := &cobra.Command{
		Use:   "use PLAYER_ID ITEM_ID",
		Short: "Use an item from the inventory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.UseItem(ctx, &gamegrpc.UseItemRequest{PlayerID: args[0], ItemID: args[1]})
			})
		},
	}

	var itemType string
	list := &cobra.Command{
		Use:   "list",
		Short: "List catalog items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.ListItems(ctx, &gamegrpc.ListItemsRequest{Type: itemType})
			})
		},
	}
	list.Flags().StringVar(&itemType, "type", "", "only items of this type")

	cmd.AddCommand(
		quantityCommand("grant", "Add items to a player's inventory", func(cl *gamegrpc.Client) itemSender {
			return cl.GrantItem
		}),
		quantityCommand("remove", "Remove items from a player's inventory", func(cl *gamegrpc.Client) itemSender {
			return cl.RemoveItem
		}),
		use,
		list,
	)
	return cmd
}

func (c *cli) actionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "action",
		Short: "List and perform actions",
	}

	var zone string
	available := &cobra.Command{
		Use:   "available PLAYER_ID",
		Short: "List the actions a player can take right now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.ListAvailableActions(ctx, &gamegrpc.ZoneRequest{PlayerID: args[0], ZoneID: zone})
			})
		},
	}
	available.Flags().StringVar(&zone, "zone", "", "zone to check (defaults to the player's zone)")

	run := &cobra.Command{
		Use:   "run PLAYER_ID ACTION_ID",
		Short: "Perform an action",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.ExecuteAction(ctx, &gamegrpc.ExecuteActionRequest{PlayerID: args[0], ActionID: args[1]})
			})
		},
	}

	var catalogZone, risk string
	catalog := &cobra.Command{
		Use:   "catalog",
		Short: "List every action in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.ListActions(ctx, &gamegrpc.ListCatalogActionsRequest{ZoneID: catalogZone, RiskLevel: risk})
			})
		},
	}
	catalog.Flags().StringVar(&catalogZone, "zone", "", "only actions offered in this zone")
	catalog.Flags().StringVar(&risk, "risk", "", "only actions with this risk level")

	cmd.AddCommand(available, run, catalog)
	return cmd
}

func (c *cli) eventCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Roll for random events and resolve them",
	}

	var zone string
	roll := &cobra.Command{
		Use:   "roll PLAYER_ID",
		Short: "Roll for a random event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.RollEvent(ctx, &gamegrpc.ZoneRequest{PlayerID: args[0], ZoneID: zone})
			})
		},
	}
	roll.Flags().StringVar(&zone, "zone", "", "zone to roll in (defaults to the player's zone)")

	choose := &cobra.Command{
		Use:   "choose PLAYER_ID EVENT_ID CHOICE_ID",
		Short: "Resolve an event with a choice",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.MakeEventChoice(ctx, &gamegrpc.MakeEventChoiceRequest{PlayerID: args[0], EventID: args[1], ChoiceID: args[2]})
			})
		},
	}

	cmd.AddCommand(roll, choose)
	return cmd
}

func (c *cli) minigameCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minigame",
		Short: "Submit and browse class minigames",
	}

	submit := &cobra.Command{
		Use:   "submit PLAYER_ID MINIGAME_ID SCORE",
		Short: "Submit a minigame score",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := intArg("score", args[2])
			if err != nil {
				return err
			}
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.SubmitMinigameResult(ctx, &gamegrpc.SubmitMinigameResultRequest{PlayerID: args[0], MinigameID: args[1], Score: score})
			})
		},
	}

	var classID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List minigames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.ListMinigames(ctx, &gamegrpc.ListMinigamesRequest{ClassID: classID})
			})
		},
	}
	list.Flags().StringVar(&classID, "class", "", "only minigames for this class")

	cmd.AddCommand(submit, list)
	return cmd
}
