package terminal

import (
	"io"
	"os"
	"time"

	"github.com/de-tools/factory-atlas/pkg/runtime/terminal/commands"
	"github.com/spf13/cobra"
)

const defaultTimeout = 60 * time.Second

// CLI represents the command-line interface
type CLI struct {
	env     *commands.Env
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output    io.Writer
	ErrOutput io.Writer
	// Open overrides how the analytics backend is opened (default: backend.Open)
	Open commands.Opener
	Now  func() time.Time
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}

	cli := &CLI{
		env: &commands.Env{
			Output:    opts.Output,
			ErrOutput: opts.ErrOutput,
			Open:      opts.Open,
			Now:       opts.Now,
		},
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs overrides the arguments read from os.Args.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "atlas",
		Short:         "Manufacturing operations analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(cli.env.Output)
	cmd.SetErr(cli.env.ErrOutput)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&cli.env.ConfigPath, "config", "c", "", "Config file (default: ./factory-atlas.yaml)")
	flags.StringVar(&cli.env.AsOf, "as-of", "", "Reference date: YYYY-MM-DD, YYYY-MM or RFC 3339 (default: today)")
	flags.StringVarP(&cli.env.Format, "format", "o", commands.FormatTable, "Output format: table, text or json")
	flags.DurationVar(&cli.env.Timeout, "timeout", defaultTimeout, "Deadline for the whole command")

	cmd.AddCommand(commands.NewEfficiencyCmd(cli.env))
	cmd.AddCommand(commands.NewBottlenecksCmd(cli.env))
	cmd.AddCommand(commands.NewRecommendationsCmd(cli.env))
	cmd.AddCommand(commands.NewReportCmd(cli.env))
	cmd.AddCommand(commands.NewImportCmd(cli.env))
	cmd.AddCommand(commands.NewProfilesCmd(cli.env))

	return cmd
}
