package hostfs

import (
	"context"

	"lesiw.io/hostfs/path"
)

// Mkdirs creates the directory p along with any missing parents.
// Analogous to: [os.MkdirAll], mkdir -p.
//
// Mkdirs walks the components of p, checking each accumulated prefix in
// turn. The root name and root path are assumed to exist. A missing prefix
// is created with the mode from [DirMode](ctx). If a prefix exists but is
// not a directory, Mkdirs returns false and a nil error. A status error
// other than non-existence stops Mkdirs with that error.
//
// Directories created before a failure are not removed.
//
// Requires: [MkdirFS]
func Mkdirs(ctx context.Context, fsys FS, p path.Path) (bool, error) {
	log := Logger(ctx)
	root, rootPath := p.RootName(), p.RootPath()
	cur := p.Style().New("")
	first := true
	for c := range p.Components() {
		if first && c.Equal(root) && !root.Empty() {
			cur = c
		} else {
			cur = cur.JoinPath(c)
		}
		first = false
		if cur.Equal(root) || cur.Equal(rootPath) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return false, err
		}
		st, err := Status(ctx, fsys, cur)
		if err != nil {
			return false, err
		}
		switch {
		case !st.Exists():
			log.Debug("mkdirs", "path", cur.String())
			if _, err = Mkdir(ctx, fsys, cur); err != nil {
				return false, err
			}
		case !st.IsDirectory():
			return false, nil
		}
	}
	return true, nil
}
