package maskctl

import (
	"context"

	gamegrpc "github.com/louisbranch/masks/internal/services/game/api/grpc/game"
	"github.com/spf13/cobra"
)

func (c *cli) recapCommand() *cobra.Command {
	var day int
	cmd := &cobra.Command{
		Use:   "recap PLAYER_ID",
		Short: "Summarize what changed during a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.GetDayRecap(ctx, &gamegrpc.GetDayRecapRequest{PlayerID: args[0], Day: day})
			})
		},
	}
	cmd.Flags().IntVar(&day, "day", 0, "day number (defaults to the current day)")
	return cmd
}

func (c *cli) logCommand() *cobra.Command {
	var (
		day       int
		pageSize  int32
		pageToken string
	)
	cmd := &cobra.Command{
		Use:   "log PLAYER_ID",
		Short: "Page through the effect log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, func(ctx context.Context, client *gamegrpc.Client) (any, error) {
				return client.ListEffectLog(ctx, &gamegrpc.ListEffectLogRequest{
					PlayerID:  args[0],
					Day:       day,
					PageSize:  pageSize,
					PageToken: pageToken,
				})
			})
		},
	}
	cmd.Flags().IntVar(&day, "day", 0, "only entries from this day")
	cmd.Flags().Int32Var(&pageSize, "page-size", 0, "entries per page")
	cmd.Flags().StringVar(&pageToken, "page-token", "", "token from a previous page")
	return cmd
}
