package preview

import (
	"sync"

	"github.com/goliatone/go-compareui/pkg/provider"
)

// AssetKind tells the page how to load an asset.
type AssetKind string

const (
	Stylesheet AssetKind = "stylesheet"
	Script     AssetKind = "script"
)

// Asset is an external resource a provider needs for its artifacts to look
// right in a static page.
type Asset struct {
	Kind AssetKind `json:"kind"`
	Href string    `json:"href"`
}

// Assets maps providers to the resources their previews load.
type Assets struct {
	mu         sync.RWMutex
	byProvider map[provider.ID][]Asset
}

// NewAssets returns an empty registry.
func NewAssets() *Assets {
	return &Assets{byProvider: make(map[provider.ID][]Asset)}
}

const tailwindPlayCDN = "https://cdn.tailwindcss.com"

// DefaultAssets returns the registry used when no option replaces it: web
// fonts for the CSS-in-JS providers, the antd reset and the Tailwind runtime
// for the utility-class providers.
func DefaultAssets() *Assets {
	a := NewAssets()
	a.Register(provider.MUI, Asset{Kind: Stylesheet, Href: "https://fonts.googleapis.com/css2?family=Roboto:wght@400;500;700&display=swap"})
	a.Register(provider.Chakra, Asset{Kind: Stylesheet, Href: "https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600&display=swap"})
	a.Register(provider.AntD, Asset{Kind: Stylesheet, Href: "https://cdn.jsdelivr.net/npm/antd@5/dist/reset.css"})
	a.Register(provider.Shadcn, Asset{Kind: Script, Href: tailwindPlayCDN})
	a.Register(provider.Aceternity, Asset{Kind: Script, Href: tailwindPlayCDN})
	return a
}

// Register appends assets for id. Empty hrefs are skipped.
func (a *Assets) Register(id provider.ID, assets ...Asset) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, asset := range assets {
		if asset.Href == "" {
			continue
		}
		if asset.Kind == "" {
			asset.Kind = Stylesheet
		}
		a.byProvider[id] = append(a.byProvider[id], asset)
	}
}

// For returns the assets of ids in order, without duplicates.
func (a *Assets) For(ids ...provider.ID) []Asset {
	a.mu.RLock()
	defer a.mu.RUnlock()
	seen := make(map[Asset]bool)
	var out []Asset
	for _, id := range ids {
		for _, asset := range a.byProvider[id] {
			if seen[asset] {
				continue
			}
			seen[asset] = true
			out = append(out, asset)
		}
	}
	return out
}
