package style

import (
	"sync"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-compareui/pkg/widget"
)

// SizeManifestName names the manifest carrying size tier metrics.
const SizeManifestName = "compareui-sizes"

const (
	tokenPaddingX   = "padding.x"
	tokenPaddingY   = "padding.y"
	tokenInset      = "inset"
	tokenFontSize   = "font.size"
	tokenFontSmall  = "font.size.secondary"
	tokenRadius     = "radius"
	tokenTrack      = "track.height"
	tokenControl    = "control.size"
	tokenIcon       = "icon.size"
	tokenGap        = "gap"
	tokenLineHeight = "line.height"
)

// Metrics are the concrete defaults of one size tier.
type Metrics struct {
	Size          widget.Size
	PaddingX      string
	PaddingY      string
	Inset         string
	FontSize      string
	FontSizeSmall string
	Radius        string
	TrackHeight   string
	ControlSize   string
	IconSize      string
	Gap           string
	LineHeight    string
}

var (
	sizeManifestOnce sync.Once
	sizeManifest     *theme.Manifest
)

// SizeManifest returns the go-theme manifest describing the size tiers. Base
// tokens hold the medium tier; the small and large variants override them.
func SizeManifest() *theme.Manifest {
	sizeManifestOnce.Do(func() {
		sizeManifest = &theme.Manifest{
			Name:    SizeManifestName,
			Version: "1.0.0",
			Tokens: map[string]string{
				tokenPaddingX:   "16px",
				tokenPaddingY:   "8px",
				tokenInset:      "16px",
				tokenFontSize:   "1rem",
				tokenFontSmall:  "0.875rem",
				tokenRadius:     "8px",
				tokenTrack:      "8px",
				tokenControl:    "40px",
				tokenIcon:       "18px",
				tokenGap:        "8px",
				tokenLineHeight: "1.5",
			},
			Variants: map[string]theme.Variant{
				string(widget.Small): {
					Tokens: map[string]string{
						tokenPaddingX:   "12px",
						tokenPaddingY:   "4px",
						tokenInset:      "8px",
						tokenFontSize:   "0.875rem",
						tokenFontSmall:  "0.75rem",
						tokenRadius:     "4px",
						tokenTrack:      "4px",
						tokenControl:    "32px",
						tokenIcon:       "16px",
						tokenGap:        "4px",
						tokenLineHeight: "1.4",
					},
				},
				string(widget.Large): {
					Tokens: map[string]string{
						tokenPaddingX:  "32px",
						tokenPaddingY:  "12px",
						tokenInset:     "24px",
						tokenFontSize:  "1.125rem",
						tokenFontSmall: "1rem",
						tokenRadius:    "12px",
						tokenTrack:     "12px",
						tokenControl:   "48px",
						tokenIcon:      "20px",
						tokenGap:       "12px",
					},
				},
			},
		}
	})
	return sizeManifest
}

var (
	metricsOnce  sync.Once
	metricsTable map[widget.Size]Metrics
)

// MetricsFor returns the defaults of the resolved tier.
func MetricsFor(size widget.Size) Metrics {
	metricsOnce.Do(func() {
		manifest := SizeManifest()
		metricsTable = make(map[widget.Size]Metrics, 3)
		for _, tier := range widget.Sizes() {
			tokens := ResolveTokens(manifest, string(tier))
			metricsTable[tier] = Metrics{
				Size:          tier,
				PaddingX:      tokens[tokenPaddingX],
				PaddingY:      tokens[tokenPaddingY],
				Inset:         tokens[tokenInset],
				FontSize:      tokens[tokenFontSize],
				FontSizeSmall: tokens[tokenFontSmall],
				Radius:        tokens[tokenRadius],
				TrackHeight:   tokens[tokenTrack],
				ControlSize:   tokens[tokenControl],
				IconSize:      tokens[tokenIcon],
				Gap:           tokens[tokenGap],
				LineHeight:    tokens[tokenLineHeight],
			}
		}
	})
	return metricsTable[size.Resolve()]
}

// ResolveTokens overlays the tokens of variant on the manifest base tokens.
// Unknown variants yield the base tokens.
func ResolveTokens(manifest *theme.Manifest, variant string) map[string]string {
	out := make(map[string]string)
	if manifest == nil {
		return out
	}
	for key, value := range manifest.Tokens {
		out[key] = value
	}
	if v, ok := manifest.Variants[variant]; ok {
		for key, value := range v.Tokens {
			out[key] = value
		}
	}
	return out
}
