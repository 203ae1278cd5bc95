package numgen

import (
	"io/fs"

	"github.com/goliatone/go-numgen/pkg/skeleton"
)

// EmbeddedSkeletons exposes the built-in program skeletons so callers can
// reuse or extend them without importing the skeleton package directly.
func EmbeddedSkeletons() fs.FS {
	fsys := skeleton.TemplatesFS()
	return fsys
}
