package render

import "github.com/goliatone/go-compareui/pkg/provider"

type options struct {
	mode   provider.Mode
	tokens map[string]string
}

// Option customises a single Render call.
type Option func(*options)

// WithMode selects the light or dark provider token set.
func WithMode(mode provider.Mode) Option {
	return func(o *options) {
		o.mode = mode.Resolve()
	}
}

// WithTokens layers token overrides over the provider tokens, e.g. a brand
// primary colour picked by the host.
func WithTokens(tokens map[string]string) Option {
	return func(o *options) {
		if len(tokens) == 0 {
			return
		}
		if o.tokens == nil {
			o.tokens = make(map[string]string, len(tokens))
		}
		for k, v := range tokens {
			o.tokens[k] = v
		}
	}
}

func applyOptions(opts []Option) options {
	cfg := options{mode: provider.Light}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
