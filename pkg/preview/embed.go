package preview

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl assets/*.css
var embedded embed.FS

// TemplatesFS exposes the built-in page and guide templates so callers can
// copy or extend them. Template names are relative to the returned root,
// e.g. templates/page.tpl.
func TemplatesFS() fs.FS {
	return embedded
}

// AssetsFS exposes the stylesheet inlined into preview pages.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		return embedded
	}
	return sub
}
