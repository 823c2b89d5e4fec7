package compareui

import (
	"io/fs"

	"github.com/goliatone/go-compareui/pkg/preview"
)

// AssetsFS exposes the stylesheet inlined into preview pages so Go
// applications can serve it next to their own markup.
//
// Typical mount:
//
//	mux.Handle("/compareui/",
//	  http.StripPrefix("/compareui/",
//	    http.FileServerFS(compareui.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return preview.AssetsFS()
}
