package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mcw-copilot/config"
	"mcw-copilot/pkg/log"
)

// options are resolved from config first, then overridden by flags.
type options struct {
	brainURL   string
	timeout    time.Duration
	emptyInput string
	plain      bool
	verbose    bool
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "relayctl",
	Short: "relayctl talks to the MCW Co-Pilot relay pipeline",
	Long: `relayctl runs a single chat turn through the intent router and, when needed,
the answering service, exactly as the relay would for a chat message.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return resolveOptions(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("brain-url", "", "Answering service endpoint (defaults to N8N_URL / brain.url)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Answering service timeout (defaults to brain.timeout)")
	rootCmd.PersistentFlags().String("empty-input", "", "Empty input policy: delegate or prompt")
	rootCmd.PersistentFlags().BoolVar(&opts.plain, "plain", false, "Print replies without Markdown rendering")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log the answering service exchange")
}

func resolveOptions(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	opts.brainURL = cfg.Brain.URL
	opts.timeout = cfg.Brain.Timeout
	opts.emptyInput = cfg.Intent.EmptyInput

	flags := cmd.Flags()
	if flags.Changed("brain-url") {
		opts.brainURL, _ = flags.GetString("brain-url")
	}
	if flags.Changed("timeout") {
		opts.timeout, _ = flags.GetDuration("timeout")
		if opts.timeout <= 0 {
			return fmt.Errorf("--timeout must be positive, got %s", opts.timeout)
		}
	}
	if flags.Changed("empty-input") {
		opts.emptyInput, _ = flags.GetString("empty-input")
		if err := config.ValidateEmptyInput(opts.emptyInput); err != nil {
			return fmt.Errorf("--empty-input: %w", err)
		}
	}
	return nil
}

func newLogger(verbose bool) log.Logger {
	if !verbose {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{
		Level:        "debug",
		Mode:         "development",
		Encoding:     "console",
		ColorEnabled: true,
	})
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
