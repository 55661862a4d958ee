package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/go-theft-auto/gridtable"
	"github.com/go-theft-auto/gridtable/internal/config"
	"github.com/go-theft-auto/gridtable/internal/output"
)

var (
	// Version is set at build time
	version = "dev"
	// Commit is set at build time
	commit = "none"
	// Date is set at build time
	date = "unknown"
)

// SetVersionInfo sets the version information from build flags
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// globalOptions holds the persistent flags and everything resolved from them before a
// subcommand runs.
type globalOptions struct {
	output     string
	query      string
	debug      bool
	configFile string
	timeout    time.Duration

	format output.Format
	cfg    *config.Config
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{cfg: &config.Config{}}

	root := &cobra.Command{
		Use:   "gridtable",
		Short: "Lay out, render and inspect grid tables",
		Long: `gridtable arranges boxes and labels into rows and auto-sized columns.

Tables are described by layout files (.yaml, .yml, .toml) or built by
scripts (.js) that drive the table API directly.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare(cmd)
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("gridtable version %s (commit: %s, built: %s)\n", version, commit, date))

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.output, "output", "o", "text", "Output format (text|json|table|yaml)")
	pf.StringVar(&opts.query, "query", "", "jq expression to filter JSON or YAML output")
	pf.BoolVar(&opts.debug, "debug", false, "Trace table operations to stderr")
	pf.StringVar(&opts.configFile, "config", "", "Config file (default: ~/.config/gridtable/config.yaml)")
	pf.DurationVar(&opts.timeout, "timeout", 10*time.Second, "Maximum run time of a table script")

	root.AddCommand(
		newLayoutCmd(opts),
		newRenderCmd(opts),
		newViewCmd(opts),
		newKindsCmd(opts),
		newConfigCmd(opts),
	)
	return root
}

// Execute runs the root command
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

func (o *globalOptions) prepare(cmd *cobra.Command) error {
	isConfigCmd := cmd.Name() == "config" || (cmd.Parent() != nil && cmd.Parent().Name() == "config")
	if !isConfigCmd {
		cfg, err := o.loadConfig()
		if err != nil {
			return err
		}
		o.cfg = cfg
	}

	// Output format selection: --output > config > json when piped > text
	formatStr := o.output
	if !cmd.Flags().Changed("output") {
		if s := strings.TrimSpace(o.cfg.OutputFormat); s != "" {
			formatStr = s
		} else if !isTerminal(cmd.OutOrStdout()) {
			formatStr = string(output.FormatJSON)
		}
	}
	format, err := output.ParseFormat(formatStr)
	if err != nil {
		return err
	}
	o.format = format

	gridtable.SetVerbose(o.debugEnabled())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = output.WithFormat(ctx, o.format)
	ctx = output.WithQuery(ctx, o.query)
	cmd.SetContext(ctx)
	return nil
}

func (o *globalOptions) configPath() (string, error) {
	if o.configFile != "" {
		return o.configFile, nil
	}
	return config.DefaultConfigPath()
}

func (o *globalOptions) loadConfig() (*config.Config, error) {
	path, err := o.configPath()
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

func (o *globalOptions) debugEnabled() bool {
	return o.debug || o.cfg.Debug
}

// tableOptions returns the table settings taken from the config file and flags.
func (o *globalOptions) tableOptions() []gridtable.Option {
	var opts []gridtable.Option
	if o.cfg.RowSeparation != nil {
		opts = append(opts, gridtable.WithRowSeparation(*o.cfg.RowSeparation))
	}
	if o.cfg.ColumnSeparation != nil {
		opts = append(opts, gridtable.WithColumnSeparation(*o.cfg.ColumnSeparation))
	}
	if o.debugEnabled() {
		opts = append(opts, gridtable.WithDebug(true))
	}
	return opts
}

func (o *globalOptions) printer(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), o.format)
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
