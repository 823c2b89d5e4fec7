// Package schema describes the widget config record as OpenAPI 3 schemas.
// The schemas document the config for the assistant collaborator and let the
// patch layer discard keys and values a config cannot hold.
package schema

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-compareui/pkg/widget"
)

// Version is the info.version of the generated document.
const Version = "1.0.0"

var (
	buildOnce sync.Once
	config    *openapi3.Schema
	perWidget map[widget.Type]*openapi3.Schema
)

func build() {
	buildOnce.Do(func() {
		config = configSchema(contentProperties(), styleProperties())
		perWidget = make(map[widget.Type]*openapi3.Schema, len(fieldUsage))
		for _, w := range widget.All() {
			use := fieldUsage[w]
			perWidget[w] = configSchema(pick(contentProperties(), use.content), pick(styleProperties(), use.styles))
		}
	})
}

// Config returns the schema of the full config record. The returned schema
// is shared and must not be modified.
func Config() *openapi3.Schema {
	build()
	return config
}

// Content returns the schema of the content object.
func Content() *openapi3.Schema {
	return Config().Properties["content"].Value
}

// Styles returns the schema of the style override object.
func Styles() *openapi3.Schema {
	return Config().Properties["styles"].Value
}

// ForWidget returns the config schema restricted to the fields w reads.
func ForWidget(w widget.Type) (*openapi3.Schema, error) {
	build()
	s, ok := perWidget[w]
	if !ok {
		return nil, fmt.Errorf("schema: %w: %q", widget.ErrUnknownWidget, w)
	}
	return s, nil
}

// Name returns the component name of the schema for w, e.g. IconButtonConfig.
func Name(w widget.Type) string {
	return strings.ReplaceAll(w.DisplayName(), " ", "") + "Config"
}

// Document builds an OpenAPI document holding the config schemas as
// components. It has no paths.
func Document() *openapi3.T {
	build()
	schemas := openapi3.Schemas{
		"Config":        openapi3.NewSchemaRef("", config),
		"Content":       openapi3.NewSchemaRef("", Content()),
		"StyleOverride": openapi3.NewSchemaRef("", Styles()),
	}
	for _, w := range widget.All() {
		schemas[Name(w)] = openapi3.NewSchemaRef("", perWidget[w])
	}
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "compareui widget config",
			Description: "Provider-agnostic configuration of the compared widgets.",
			Version:     Version,
		},
		Paths:      openapi3.NewPaths(),
		Components: &openapi3.Components{Schemas: schemas},
	}
}

// Validate checks the generated document against the OpenAPI 3 rules.
func Validate(ctx context.Context) error {
	if err := Document().Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return fmt.Errorf("schema: validate document: %w", err)
	}
	return nil
}

func configSchema(content, styles openapi3.Schemas) *openapi3.Schema {
	sizes := make([]any, 0, 3)
	for _, size := range widget.Sizes() {
		sizes = append(sizes, string(size))
	}

	s := closedObject()
	s.Description = "Widget instance: content, size tier, variant and a sparse style override."
	s.WithProperty("size", openapi3.NewStringSchema().WithEnum(sizes...))
	s.WithProperty("variant", withDescription(openapi3.NewStringSchema(),
		"Appearance token, e.g. contained or outlined."))

	contentSchema := closedObject()
	contentSchema.Properties = content
	s.WithProperty("content", contentSchema)

	stylesSchema := closedObject()
	stylesSchema.Properties = styles
	s.WithProperty("styles", stylesSchema)
	return s
}

func contentProperties() openapi3.Schemas {
	text := openapi3.NewStringSchema
	option := openapi3.NewAnyOfSchema(
		openapi3.NewStringSchema(),
		openapi3.NewFloat64Schema(),
		openapi3.NewObjectSchema().
			WithProperty("value", openapi3.NewAnyOfSchema(openapi3.NewStringSchema(), openapi3.NewFloat64Schema())).
			WithProperty("label", openapi3.NewStringSchema()),
	)
	tab := openapi3.NewObjectSchema().
		WithProperty("label", openapi3.NewStringSchema()).
		WithProperty("value", openapi3.NewStringSchema()).
		WithProperty("body", openapi3.NewStringSchema())

	return schemas(map[string]*openapi3.Schema{
		"label":         text(),
		"title":         text(),
		"body":          text(),
		"description":   text(),
		"image":         withDescription(openapi3.NewBoolSchema(), "Card media visibility; absent means shown."),
		"placeholder":   text(),
		"options":       openapi3.NewArraySchema().WithItems(option),
		"selectedValue": text(),
		"checked":       openapi3.NewBoolSchema(),
		"disabled":      openapi3.NewBoolSchema(),
		"value":         openapi3.NewFloat64Schema(),
		"max":           withDescription(openapi3.NewFloat64Schema(), "Upper bound of a progress bar; 100 when not positive."),
		"tabs":          openapi3.NewArraySchema().WithItems(tab),
		"defaultValue":  text(),
		"orientation":   openapi3.NewStringSchema().WithEnum("horizontal", "vertical"),
		"icon":          text(),
	})
}

func styleProperties() openapi3.Schemas {
	length := func() *openapi3.Schema {
		return withDescription(
			openapi3.NewAnyOfSchema(openapi3.NewFloat64Schema(), openapi3.NewStringSchema()),
			"Pixels as a number, or a CSS length.")
	}
	token := openapi3.NewStringSchema
	padding := withDescription(openapi3.NewAnyOfSchema(
		openapi3.NewFloat64Schema(),
		openapi3.NewStringSchema(),
		openapi3.NewObjectSchema().
			WithProperty("px", length()).
			WithProperty("py", length()),
	), "Horizontal and vertical padding, a uniform number or a CSS shorthand.")

	return schemas(map[string]*openapi3.Schema{
		"borderRadius":    length(),
		"borderWidth":     length(),
		"borderStyle":     token(),
		"borderColor":     token(),
		"backgroundColor": token(),
		"fontColor":       token(),
		"titleColor":      token(),
		"answerColor":     token(),
		"textColor":       token(),
		"overlayColor":    token(),
		"focusColor":      token(),
		"color":           token(),
		"indicatorColor":  token(),
		"trackColor":      token(),
		"activeColor":     token(),
		"inactiveColor":   token(),
		"shadow":          token(),
		"height":          length(),
		"fontSize":        length(),
		"padding":         padding,
	})
}

func schemas(in map[string]*openapi3.Schema) openapi3.Schemas {
	out := make(openapi3.Schemas, len(in))
	for name, s := range in {
		out[name] = openapi3.NewSchemaRef("", s)
	}
	return out
}

func pick(all openapi3.Schemas, keys []string) openapi3.Schemas {
	out := make(openapi3.Schemas, len(keys))
	for _, key := range keys {
		if ref, ok := all[key]; ok {
			out[key] = ref
		}
	}
	return out
}

func closedObject() *openapi3.Schema {
	s := openapi3.NewObjectSchema()
	closed := false
	s.AdditionalProperties = openapi3.AdditionalProperties{Has: &closed}
	return s
}

func withDescription(s *openapi3.Schema, text string) *openapi3.Schema {
	s.Description = text
	return s
}

// Keys returns the sorted property names of s.
func Keys(s *openapi3.Schema) []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
