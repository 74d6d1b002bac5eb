package hostfs

import (
	"context"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"lesiw.io/hostfs/path"
)

// Glob returns the paths under root whose generic relative form matches
// pattern.
// Analogous to: [io/fs.Glob], find -path.
//
// The pattern uses forward slashes regardless of the path grammar and
// supports the doublestar syntax, where ** matches any number of
// directories:
//
//	hostfs.Glob(ctx, fsys, root, "src/**/*.go")
//
// Matches are returned in the order [Walk] yields them. Directories that
// cannot be read are skipped. The only possible returned errors are
// [doublestar.ErrBadPattern] and the cancellation of ctx.
//
// Requires: [OpenDirFS]
func Glob(
	ctx context.Context, fsys FS, root path.Path, pattern string,
) ([]path.Path, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, doublestar.ErrBadPattern
	}
	style := root.Style()
	var matches []path.Path
	for entry, err := range Walk(ctx, fsys, root, 0) {
		if err != nil {
			if cerr := ctx.Err(); cerr != nil {
				return nil, cerr
			}
			continue
		}
		rel := strings.TrimPrefix(entry.path.String(), root.String())
		rel = strings.TrimLeftFunc(rel, func(r rune) bool {
			return r < 0x80 && style.IsSeparator(byte(r))
		})
		rel = style.New(rel).GenericString()
		if doublestar.MatchUnvalidated(pattern, rel) {
			matches = append(matches, entry.path)
		}
	}
	return matches, nil
}
