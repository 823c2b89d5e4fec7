package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-compareui/pkg/schema"
	"github.com/goliatone/go-compareui/pkg/widget"
)

func newSchemaCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "schema [widget]",
		Short: "Print the OpenAPI document of widget configs, or the schema of one widget",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, rootFlags, "print schema")
			if err != nil {
				return err
			}
			return runSchema(cmd, a, args)
		},
	}
}

func runSchema(cmd *cobra.Command, a *app, args []string) error {
	var value any
	if len(args) == 0 {
		if err := schema.Validate(cmd.Context()); err != nil {
			return newCommandError("print schema", "validating document", err, "")
		}
		value = schema.Document()
	} else {
		w, err := widget.Parse(args[0])
		if err != nil {
			return newCommandError("print schema", "resolving widget", err, "Run compareui catalog to list widget types.")
		}
		s, err := schema.ForWidget(w)
		if err != nil {
			return newCommandError("print schema", "building schema", err, "")
		}
		value = s
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode schema: %w", err)
	}
	out := cmd.OutOrStdout()
	if a.cfg.Output.Format != "yaml" {
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	// JSON is valid YAML, decoding into a node keeps the key order.
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return fmt.Errorf("convert schema: %w", err)
	}
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(&node); err != nil {
		return err
	}
	return encoder.Close()
}
