package compareui

import (
	"io/fs"

	"github.com/goliatone/go-compareui/pkg/preview"
)

// EmbeddedTemplates exposes the built-in preview page and setup guide
// templates so callers can reuse or extend them without importing the preview
// package directly. Pass a modified copy back through
// WithPreviewOptions(preview.WithTemplatesFS(...)).
func EmbeddedTemplates() fs.FS {
	return preview.TemplatesFS()
}
