package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/andareed/wrwatch/logging"
	"github.com/andareed/wrwatch/records"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

var (
	cfgFile    string
	logFile    string
	vcfg       = newViper()
	logCleanup = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "wrwatch",
	Short: "Browse speedrun world records in the terminal.",
	Long: `wrwatch shows the current world record for a category and a table of
every category sorted by time, fetched from a records backend.`,
	Version:           Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runTUI,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	defer func() { logCleanup() }()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.wrwatch.yaml)")
	pf.StringVar(&logFile, "debug", "", "write debug logs to file")
	pf.String("base-url", "", "records backend (default http://localhost:5000)")
	pf.StringP("category", "c", "", "category selected at start (default any)")
	pf.Duration("timeout", 0, "per-request timeout, 0 waits forever")

	_ = vcfg.BindPFlag(keyBaseURL, pf.Lookup("base-url"))
	_ = vcfg.BindPFlag(keyDefaultCategory, pf.Lookup("category"))
	_ = vcfg.BindPFlag(keyTimeout, pf.Lookup("timeout"))

	rootCmd.AddCommand(showCmd, exportCmd)
}

// setup reads configuration and starts logging before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	cleanup, err := logging.SetupLogging(logFile)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	logCleanup = cleanup

	if err := readConfigFile(vcfg, cfgFile); err != nil {
		return err
	}
	logging.Infof("wrwatch %s: started command %q", Version, cmd.Name())
	return nil
}

func newClient(v *viper.Viper) (Config, *records.Client, error) {
	cfg, err := loadConfig(v)
	if err != nil {
		return Config{}, nil, err
	}
	logging.Debugf("config: base_url=%s category=%s timeout=%s", cfg.BaseURL, cfg.DefaultCategory, cfg.Timeout)
	return cfg, records.NewClient(cfg.BaseURL, cfg.Timeout), nil
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, client, err := newClient(vcfg)
	if err != nil {
		return err
	}

	m := newModel(cmd.Context(), cfg, client)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run(); err != nil {
		logging.Errorf("tea program error: %v", err)
		return err
	}
	return nil
}
