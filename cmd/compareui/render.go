package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-compareui/internal/playground"
	"github.com/goliatone/go-compareui/pkg/render"
)

type renderOptions struct {
	configPath string
	sets       []string
	events     []string
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [widget]",
		Short: "Render a widget for every provider and print the artifact markup",
		Long: "Render a widget for every provider and print the artifact markup.\n\n" +
			"Events are applied in order after rendering, e.g. --event toggle or --event select=B,\n" +
			"and every fired callback is reported before the final markup.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, rootFlags, "render widget")
			if err != nil {
				return err
			}
			return runRender(cmd, a, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "file", "f", "", "Widget config file (JSON or YAML)")
	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "Set a config field, e.g. content.label=Save")
	cmd.Flags().StringArrayVar(&opts.events, "event", nil, "Apply an event: press, toggle, open, close, select=VALUE, input=TEXT")

	return cmd
}

func parseEvent(raw string) (render.Event, error) {
	kind, value, _ := strings.Cut(strings.TrimSpace(raw), "=")
	for _, known := range render.EventKinds() {
		if string(known) == kind {
			return render.Event{Kind: known, Value: value}, nil
		}
	}
	return render.Event{}, fmt.Errorf("unknown event %q", kind)
}

func runRender(cmd *cobra.Command, a *app, args []string, opts *renderOptions) error {
	w, err := a.widgetArg(args)
	if err != nil {
		return newCommandError("render widget", "resolving widget", err, "Run compareui catalog to list widget types.")
	}
	cfg, err := a.widgetConfig(w, opts.configPath, opts.sets)
	if err != nil {
		return newCommandError("render widget", "building config", err, "")
	}
	events := make([]render.Event, 0, len(opts.events))
	for _, raw := range opts.events {
		ev, err := parseEvent(raw)
		if err != nil {
			return newCommandError("render widget", "parsing events", err, "")
		}
		events = append(events, ev)
	}

	out := cmd.OutOrStdout()
	reg := a.studio.Registry()
	for _, id := range a.studio.Providers() {
		meta, err := reg.DisplayMeta(id)
		if err != nil {
			return err
		}
		var fired []string
		artifact, err := a.studio.Render(w, id, cfg, playground.Recorder(&fired))
		if err != nil {
			return newCommandError("render widget", fmt.Sprintf("rendering %s", id), err, "")
		}
		for _, ev := range events {
			if artifact.Unavailable() {
				break
			}
			if err := artifact.Dispatch(ev); err != nil {
				a.log.WithFields(map[string]any{"provider": string(id), "event": string(ev.Kind)}).Warn(err.Error())
			}
		}
		markup, err := artifact.HTML()
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "<!-- %s (%s) -->\n", meta.Label, id)
		for _, line := range fired {
			fmt.Fprintf(out, "<!-- callback %s -->\n", line)
		}
		fmt.Fprintln(out, markup)
	}
	return nil
}
