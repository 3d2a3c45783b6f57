package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"mcw-copilot/internal/router"
)

var routeCmd = &cobra.Command{
	Use:   "route [text]",
	Short: "Show how a message would be routed, without calling the answering service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoute(cmd.OutOrStdout(), router.EmptyInputPolicy(opts.emptyInput), joinArgs(args))
	},
}

func init() {
	rootCmd.AddCommand(routeCmd)
}

func runRoute(w io.Writer, policy router.EmptyInputPolicy, text string) error {
	m, ok := router.New(policy).Route(text)
	if !ok {
		_, err := fmt.Fprintf(w, "delegated\nquestion: %q\n", strings.TrimSpace(text))
		return err
	}
	_, err := fmt.Fprintf(w, "intent: %s\nreply: %s\n", m.Intent, m.Reply)
	return err
}
