// Package maskctl implements the maskctl command line client for the game
// service.
package maskctl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/masks/internal/platform/cmd"
	platformgrpc "github.com/louisbranch/masks/internal/platform/grpc"
	"github.com/louisbranch/masks/internal/platform/logging"
	"github.com/louisbranch/masks/internal/platform/timeouts"
	gamegrpc "github.com/louisbranch/masks/internal/services/game/api/grpc/game"
	grpcmeta "github.com/louisbranch/masks/internal/services/game/api/grpc/metadata"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Config holds maskctl configuration read from the environment. Flags on
// the root command override it.
type Config struct {
	Addr    string        `env:"MASKS_MASKCTL_ADDR" envDefault:"localhost:8082"`
	Locale  string        `env:"MASKS_MASKCTL_LOCALE" envDefault:"en-US"`
	Timeout time.Duration `env:"MASKS_MASKCTL_TIMEOUT"`
}

// DialFunc opens a connection to the game server.
type DialFunc func(ctx context.Context, addr string) (*grpc.ClientConn, error)

// CallError is a failed game call, carrying the domain reason and the
// localized message the server attached.
type CallError struct {
	Code    codes.Code
	Reason  string
	Message string
}

func (e *CallError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s (%s): %s", e.Code, e.Reason, e.Message)
}

type cli struct {
	cfg    Config
	logger *zap.Logger
	dial   DialFunc
}

// Run parses the environment and executes the command line in args.
func Run(ctx context.Context, args []string, out, errOut io.Writer) error {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return err
	}
	logger, err := logging.FromEnv(entrypoint.ServiceMaskctl)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	root := NewRootCommand(cfg, logger, nil)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceMaskctl, entrypoint.RunOptions{Logger: logger}, root.ExecuteContext)
}

// NewRootCommand builds the maskctl command tree. A nil dial uses
// DialWithHealth with the default client options.
func NewRootCommand(cfg Config, logger *zap.Logger, dial DialFunc) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &cli{cfg: cfg, logger: logger, dial: dial}
	if c.dial == nil {
		c.dial = func(ctx context.Context, addr string) (*grpc.ClientConn, error) {
			return platformgrpc.DialWithHealth(ctx, addr, timeouts.GRPCDial, logger.Sugar().Debugf)
		}
	}

	root := &cobra.Command{
		Use:           "maskctl",
		Short:         "Drive a masks game server from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&c.cfg.Addr, "addr", c.cfg.Addr, "game server address")
	root.PersistentFlags().StringVar(&c.cfg.Locale, "locale", c.cfg.Locale, "locale for error messages (en-US, pt-BR)")
	root.PersistentFlags().DurationVar(&c.cfg.Timeout, "timeout", c.cfg.Timeout, "per-request timeout")

	root.AddCommand(
		c.playerCommand(),
		c.itemCommand(),
		c.actionCommand(),
		c.eventCommand(),
		c.minigameCommand(),
		c.maskCommand(),
		c.npcCommand(),
		c.zoneCommand(),
		c.recapCommand(),
		c.logCommand(),
	)
	return root
}

// call dials the server, runs fn with a bounded context and prints its
// response as JSON.
func (c *cli) call(cmd *cobra.Command, fn func(context.Context, *gamegrpc.Client) (any, error)) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	addr := strings.TrimSpace(c.cfg.Addr)
	if addr == "" {
		return errors.New("game server address is required")
	}
	conn, err := c.dial(ctx, addr)
	if err != nil {
		return fmt.Errorf("connect to game server at %s: %w", addr, err)
	}
	defer func() { _ = conn.Close() }()

	timeout := c.cfg.Timeout
	if timeout <= 0 {
		timeout = timeouts.GRPCRequest
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if locale := strings.TrimSpace(c.cfg.Locale); locale != "" {
		callCtx = metadata.AppendToOutgoingContext(callCtx, grpcmeta.LocaleHeader, locale)
	}

	resp, err := fn(callCtx, gamegrpc.NewClient(conn))
	if err != nil {
		c.logger.Debug("game call failed", zap.String("command", cmd.CommandPath()), zap.Error(err))
		return callError(err)
	}
	return writeJSON(cmd.OutOrStdout(), resp)
}

func callError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	out := &CallError{Code: st.Code(), Message: st.Message()}
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			out.Reason = d.GetReason()
		case *errdetails.LocalizedMessage:
			if d.GetMessage() != "" {
				out.Message = d.GetMessage()
			}
		}
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func intArg(name, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %q", name, value)
	}
	return n, nil
}
