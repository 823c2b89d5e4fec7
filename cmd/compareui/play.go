package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/goliatone/go-compareui/internal/playground"
	"github.com/goliatone/go-compareui/pkg/assistant"
	"github.com/goliatone/go-compareui/pkg/provider"
)

var errNotInteractive = errors.New("stdin is not a terminal")

func newPlayCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Edit, render and interact with widgets from interactive prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, rootFlags, "start playground")
			if err != nil {
				return err
			}
			return runPlay(cmd, a)
		},
	}
}

func newAssistant(a *app) (assistant.Assistant, error) {
	if a.cfg.Assistant.Endpoint == "" {
		return nil, nil
	}
	opts := []assistant.Option{assistant.WithTimeout(a.cfg.Assistant.Timeout)}
	if a.cfg.Assistant.Token != "" {
		opts = append(opts, assistant.WithHeader("Authorization", "Bearer "+a.cfg.Assistant.Token))
	}
	return assistant.NewClient(a.cfg.Assistant.Endpoint, opts...)
}

func runPlay(cmd *cobra.Command, a *app) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return newCommandError("start playground", "checking terminal", errNotInteractive, "Run compareui play from an interactive shell.")
	}

	opts := []playground.Option{
		playground.WithLogger(a.log),
		playground.WithMode(provider.Mode(a.cfg.Theme.Mode)),
		playground.WithTokens(a.cfg.Theme.Tokens),
	}
	client, err := newAssistant(a)
	if err != nil {
		return newCommandError("start playground", "configuring assistant", err, "")
	}
	if client != nil {
		opts = append(opts, playground.WithAssistant(client))
	}

	session, err := playground.NewSession(a.studio.Renders(), a.studio.Emits(), opts...)
	if err != nil {
		return newCommandError("start playground", "creating session", err, "")
	}
	pg, err := playground.New(session, playground.NewSurveyDriver(cmd.OutOrStdout()))
	if err != nil {
		return newCommandError("start playground", "creating playground", err, "")
	}
	a.log.Debug("playground started")
	return pg.Run(cmd.Context())
}
