package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/vsinha/stockmgr/pkg/application/services"
	"github.com/vsinha/stockmgr/pkg/config"
	"github.com/vsinha/stockmgr/pkg/domain/entities"
	"github.com/vsinha/stockmgr/pkg/infrastructure/logging"
	"github.com/vsinha/stockmgr/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/stockmgr/pkg/interfaces/cli/output"
)

// app carries the state shared by every subcommand of one invocation
type app struct {
	viper      *viper.Viper
	configPath string
	verbose    bool
	today      time.Time

	cfg      *config.Config
	logger   *zap.Logger
	service  *services.InventoryService
	renderer *output.Renderer

	in  io.Reader
	out io.Writer
}

// NewRootCommand builds the stockmgr command tree. Input is read from in
// and all reports are written to out.
func NewRootCommand(version string, in io.Reader, out io.Writer) *cobra.Command {
	a := &app{
		viper: config.NewViper(),
		in:    in,
		out:   out,
	}

	rootCmd := &cobra.Command{
		Use:   "stockmgr",
		Short: "Dynamic Stock Manager - a single-user inventory ledger",
		Long: `stockmgr tracks named items with quantity, category, expiry date and
popularity in a CSV file, and answers restock, expiry and demand queries.

Run without a subcommand to start the interactive menu, where the last
adds and removes can be undone.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
		RunE:              a.runShell,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to config file (default ./stockmgr.yaml)")
	flags.StringP("file", "f", "items.csv", "Path to the inventory CSV file")
	flags.String("format", "text", "Output format: text, json, yaml, csv")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	_ = a.viper.BindPFlag("file", flags.Lookup("file"))
	_ = a.viper.BindPFlag("format", flags.Lookup("format"))
	_ = a.viper.BindPFlag("log_level", flags.Lookup("log-level"))

	rootCmd.AddCommand(
		a.shellCommand(),
		a.addCommand(),
		a.removeCommand(),
		a.listCommand(),
		a.restockCommand(),
		a.expiryCommand(),
		a.demandCommand(),
		a.categoriesCommand(),
	)

	return rootCmd
}

// Execute runs the command tree against the process arguments
func Execute(ctx context.Context, version string, in io.Reader, out io.Writer) error {
	return NewRootCommand(version, in, out).ExecuteContext(ctx)
}

// setup loads configuration, builds the logger and opens the inventory file
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.viper, a.configPath)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	a.logger = logger

	service, err := services.OpenInventory(csv.NewItemStore(cfg.File), services.ServiceConfig{
		Logger: logger,
		Now:    a.now,
	})
	if err != nil {
		return fmt.Errorf("failed to load inventory -> %w", err)
	}
	a.service = service
	a.renderer = output.NewRenderer(cfg.Format, a.out)

	logger.Debug("inventory opened",
		zap.String("file", cfg.File),
		zap.Int("items", len(service.ListItems())))
	return nil
}

func (a *app) teardown(cmd *cobra.Command, args []string) {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// now returns the reference instant for expiry reports, honouring --today
func (a *app) now() time.Time {
	if !a.today.IsZero() {
		return a.today
	}
	return time.Now()
}

func (a *app) runShell(cmd *cobra.Command, args []string) error {
	return NewShell(a.service, a.in, a.out).Run(cmd.Context())
}

func (a *app) shellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE:  a.runShell,
	}
}

// parseToday validates a --today value
func parseToday(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	today, err := time.Parse(entities.ExpiryLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --today date (use YYYY-MM-DD): %s", value)
	}
	return today, nil
}
