package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"mcw-copilot/internal/relay"
	"mcw-copilot/internal/relay/usecase"
	"mcw-copilot/internal/router"
	"mcw-copilot/pkg/brain"
	"mcw-copilot/pkg/log"
)

var askCmd = &cobra.Command{
	Use:   "ask [text]",
	Short: "Run one turn through the full relay pipeline and print the reply",
	RunE: func(cmd *cobra.Command, args []string) error {
		render := renderMarkdown
		if opts.plain {
			render = nil
		}
		return runAsk(cmd.Context(), cmd.OutOrStdout(), opts, joinArgs(args), render)
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}

// runAsk prints the reply source followed by the reply text. render, when
// non-nil, formats the text for the terminal.
func runAsk(ctx context.Context, w io.Writer, o options, text string, render func(string) (string, error)) error {
	if ctx == nil {
		ctx = context.Background()
	}
	l := newLogger(o.verbose)
	ctx = log.WithTraceID(ctx, uuid.NewString())

	uc := usecase.New(
		l,
		router.New(router.EmptyInputPolicy(o.emptyInput)),
		brain.New(brain.Config{URL: o.brainURL, Timeout: o.timeout}, l),
		nil,
	)

	reply := uc.HandleTurn(ctx, relay.IncomingTurn{Text: text, ChatID: "relayctl", TurnID: uuid.NewString()})

	out := reply.Text
	if render != nil {
		rendered, err := render(reply.Text)
		if err != nil {
			l.Warnf(ctx, "relayctl: markdown render failed, printing raw text: %v", err)
		} else {
			out = rendered
		}
	}

	_, err := fmt.Fprintf(w, "[%s]\n%s\n", reply.Source, out)
	return err
}

func renderMarkdown(markdown string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}
