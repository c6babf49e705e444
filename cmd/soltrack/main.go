package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/AIAleph/soltrack/internal/chain"
	cfgpkg "github.com/AIAleph/soltrack/internal/config"
	"github.com/AIAleph/soltrack/internal/errs"
	"github.com/AIAleph/soltrack/internal/logging"
	"github.com/AIAleph/soltrack/internal/report"
	"github.com/AIAleph/soltrack/internal/track"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var (
	// version is set via -ldflags "-X main.version=..."
	version = "dev"
	// exit is aliased to os.Exit to allow overriding in tests.
	exit = os.Exit
	// newProvider lets tests swap the RPC backend.
	newProvider func(kind, endpoint string, commitment chain.Commitment) (chain.Provider, error)
)

func wireDefaults() {
	newProvider = chain.NewProvider
}

func init() { wireDefaults() }

const envHelp = `
Environment variables (defaults):
  SOLTRACK_RPC_CLIENT   RPC backend: http | solana-go (default http)
  SOLTRACK_COMMITMENT   processed | confirmed | finalized (default finalized)
  SOLTRACK_LOG_LEVEL    off | debug | info | warn | error (default off)
  SOLTRACK_LOG_FORMAT   json | text (default json)
`

func networkNames() string {
	names := make([]string, 0, len(chain.Networks()))
	for _, n := range chain.Networks() {
		names = append(names, n.String())
	}
	return strings.Join(names, ", ")
}

func newRootCmd(cfg cfgpkg.Config, stdout, stderr io.Writer) *cobra.Command {
	var (
		network string
		output  string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "soltrack PROGRAM_ID",
		Short: "Track the developer of a Solana program",
		Long: `soltrack reads a deployed Solana program and reports the account name found in
the cargo registry path its toolchain embedded in the binary
(e.g. /home/<name>/.cargo/registry/...).
` + envHelp,
		Example: `  soltrack TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA
  soltrack -n devnet <PROGRAM_ID> -o json`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(output)
			if err != nil {
				return err
			}
			level := cfg.LogLevel
			if verbose {
				level = "debug"
			}
			if err := logging.Configure(level, cfg.LogFormat, stderr); err != nil {
				return err
			}
			logging.SetLogger(logging.Logger().With("run_id", uuid.NewString()))

			commitment := chain.Commitment(cfg.Commitment)
			tracker := track.New(func(n chain.Network, endpoint string) (chain.Provider, error) {
				logging.Logger().Debug("provider_selected",
					"component", "cmd.soltrack",
					"provider", cfg.RPCClient,
					"network", n.String(),
					"endpoint", endpoint,
					"commitment", string(commitment),
				)
				return newProvider(cfg.RPCClient, endpoint, commitment)
			})
			res, err := tracker.Track(cmd.Context(), track.Request{ProgramID: args[0], Network: network})
			if err != nil {
				return err
			}
			return report.Write(stdout, format, res)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().StringVarP(&network, "network", "n", chain.DefaultNetwork.String(), "Network of the program ("+networkNames()+")")
	cmd.Flags().StringVarP(&output, "output", "o", string(report.FormatText), "Output format: text | json | yaml")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Write debug logs to stderr")
	return cmd
}

// run executes the CLI and returns the process exit status. Pipeline failures
// exit 1; command-line misuse exits 2.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(cfgpkg.Load(), stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	if errs.Kind(err) != "" {
		fmt.Fprintln(stderr, report.FailureLine(errs.Message(err)))
		return exitFailure
	}
	fmt.Fprintln(stderr, report.FailureLine(err.Error()))
	return exitUsage
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	exit(code)
}
