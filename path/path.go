// Package path implements lexical decomposition of native filesystem paths
// for both the POSIX and the Windows path grammar.
//
// A [Path] wraps a native path string together with the [Style] whose
// grammar decomposes it. Decomposition never touches the filesystem and
// never normalizes the string: every query re-scans the text it was given.
//
// The two grammars differ in their root names and separators:
//
//   - Posix: separator /, root name //server.
//   - Windows: separators \ and / (\ preferred), root name C: or
//     \\server.
//
// Every path satisfies the reconstruction invariant:
//
//	p.RootName().String() + p.RootDirectory().String() +
//	    p.RelativePath().String() == p.String()
package path

import (
	"strings"
	"unicode/utf16"
)

// Style selects a path grammar.
// The zero Style behaves as [Native].
type Style uint8

// Path grammars.
const (
	Posix Style = iota + 1
	Windows
)

func (st Style) resolve() Style {
	if st == 0 {
		return Native
	}
	return st
}

// String returns the name of the grammar.
func (st Style) String() string {
	switch st.resolve() {
	case Windows:
		return "windows"
	default:
		return "posix"
	}
}

// Separator returns the preferred separator of the grammar.
func (st Style) Separator() byte {
	if st.resolve() == Windows {
		return '\\'
	}
	return '/'
}

// IsSeparator reports whether c separates components in the grammar.
func (st Style) IsSeparator(c byte) bool {
	if st.resolve() == Windows {
		return c == '\\' || c == '/'
	}
	return c == '/'
}

// New returns a path that decomposes s using the grammar st.
func (st Style) New(s string) Path {
	return Path{s: s, style: st.resolve()}
}

// Path is a native path string paired with the grammar that
// decomposes it. The zero Path is the empty native path.
type Path struct {
	s     string
	style Style
}

// New returns a path in the native grammar of the running platform.
func New(s string) Path { return Native.New(s) }

// FromUTF16 returns a native path decoded from wide text.
func FromUTF16(u []uint16) Path {
	return New(string(utf16.Decode(u)))
}

// String returns the native text of the path.
func (p Path) String() string { return p.s }

// UTF16 returns the native text of the path as wide text.
func (p Path) UTF16() []uint16 { return utf16.Encode([]rune(p.s)) }

// Style returns the grammar of the path.
func (p Path) Style() Style { return p.style.resolve() }

// Empty reports whether the native text is empty.
func (p Path) Empty() bool { return p.s == "" }

func (p Path) with(s string) Path { return Path{s: s, style: p.style} }

func (p Path) isSep(c byte) bool { return p.Style().IsSeparator(c) }

func isDriveLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// rootNameLen returns the length of the root name prefix.
func (p Path) rootNameLen() int {
	s := p.s
	if p.Style() == Windows && len(s) >= 2 && s[1] == ':' &&
		isDriveLetter(s[0]) {
		return 2
	}
	if len(s) > 2 && p.isSep(s[0]) && p.isSep(s[1]) && !p.isSep(s[2]) &&
		s[2] > ' ' {
		i := 3
		for i < len(s) && !p.isSep(s[i]) {
			i++
		}
		return i
	}
	return 0
}

// rootPathLen returns the length of the root name plus root directory.
func (p Path) rootPathLen() int {
	n := p.rootNameLen()
	if n < len(p.s) && p.isSep(p.s[n]) {
		n++
	}
	return n
}

// rootRunEnd returns the offset of the first byte after the root name
// and every separator directly following it.
func (p Path) rootRunEnd() int {
	i := p.rootNameLen()
	for i < len(p.s) && p.isSep(p.s[i]) {
		i++
	}
	return i
}

// RootName returns the drive or server prefix of the path.
func (p Path) RootName() Path { return p.with(p.s[:p.rootNameLen()]) }

// RootDirectory returns the separator immediately following the root
// name, or the empty path if there is none.
func (p Path) RootDirectory() Path {
	return p.with(p.s[p.rootNameLen():p.rootPathLen()])
}

// RootPath returns the root name followed by the root directory.
func (p Path) RootPath() Path { return p.with(p.s[:p.rootPathLen()]) }

// RelativePath returns the native text following the root path.
func (p Path) RelativePath() Path {
	return p.with(p.s[min(p.rootPathLen(), len(p.s)):])
}

// HasRootName reports whether the path has a root name.
func (p Path) HasRootName() bool { return p.rootNameLen() > 0 }

// HasRootDirectory reports whether the path has a root directory.
func (p Path) HasRootDirectory() bool {
	return p.rootPathLen() > p.rootNameLen()
}

// HasRootPath reports whether the path has a root name or directory.
func (p Path) HasRootPath() bool { return p.rootPathLen() > 0 }

// HasRelativePath reports whether anything follows the root path.
func (p Path) HasRelativePath() bool { return p.rootPathLen() < len(p.s) }

// HasFilename reports whether [Path.Filename] is non-empty.
func (p Path) HasFilename() bool { return !p.Filename().Empty() }

// HasParent reports whether [Path.Parent] is non-empty.
func (p Path) HasParent() bool { return !p.Parent().Empty() }

// IsAbsolute reports whether the path is absolute.
//
// A Windows path needs both a root name and a root directory.
// A Posix path needs only a root directory.
func (p Path) IsAbsolute() bool {
	if p.Style() == Windows {
		return p.HasRootName() && p.HasRootDirectory()
	}
	return p.HasRootDirectory()
}

// IsRelative reports whether the path is not absolute.
func (p Path) IsRelative() bool { return !p.IsAbsolute() }

// IsRoot reports whether the path names a root directory and nothing
// else, such as "/", "C:\" or "//server/".
func (p Path) IsRoot() bool {
	return p.HasRootDirectory() && p.rootRunEnd() == len(p.s)
}

// Filename returns the last component of the path. It is empty when the
// path has no relative part or ends in a separator.
func (p Path) Filename() Path {
	if !p.HasRelativePath() || p.IsRoot() {
		return p.with("")
	}
	return p.End().Prev().Value()
}

// Extension returns the filename suffix starting at its last dot.
// A dot that is the first byte of the filename does not start an
// extension, so ".bashrc" and "." have none while ".." has ".".
func (p Path) Extension() Path {
	name := p.Filename().s
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return p.with(name[i:])
	}
	return p.with("")
}

// Stem returns the filename without its extension.
func (p Path) Stem() Path {
	name := p.Filename().s
	return p.with(name[:len(name)-len(p.Extension().s)])
}

// Parent returns the path with its last component and the separators
// preceding it removed. The root path is never removed.
func (p Path) Parent() Path {
	if !p.HasRelativePath() {
		return p
	}
	i := p.End().Prev().pos
	run := p.rootRunEnd()
	for i > run && p.isSep(p.s[i-1]) {
		i--
	}
	if i < run {
		i = p.rootPathLen()
	}
	return p.with(p.s[:i])
}

// GenericString returns the path with every backslash replaced by a
// forward slash. An absolute path that does not begin with a separator
// gains a leading slash.
func (p Path) GenericString() string {
	s := strings.ReplaceAll(p.s, `\`, "/")
	if p.IsAbsolute() && !strings.HasPrefix(s, "/") {
		s = "/" + s
	}
	return s
}

// Equal reports whether p and o have the same native text.
func (p Path) Equal(o Path) bool { return p.s == o.s }

// Compare compares the native text of p and o lexically.
func (p Path) Compare(o Path) int { return strings.Compare(p.s, o.s) }

// endsInSep reports whether the native text ends in a separator.
func (p Path) endsInSep() bool {
	return p.s != "" && p.isSep(p.s[len(p.s)-1])
}

// JoinPath returns p with o appended.
//
// The rules apply in order:
//
//  1. An empty o appends a trailing separator unless p is empty or
//     already ends in a separator or a drive colon.
//  2. An absolute o replaces p, unless p is exactly its own root name and
//     o is a lone separator with no different root name.
//  3. An o with a root directory replaces everything in p after its
//     root name.
//  4. Otherwise a separator is added when p is absolute without a root
//     directory or has a filename.
//  5. The components of o, except its root name, are appended with a
//     single separator between them.
func (p Path) JoinPath(o Path) Path {
	sep := string(p.Style().Separator())
	if o.Empty() {
		if p.Empty() || p.endsInSep() ||
			p.Style() == Windows && strings.HasSuffix(p.s, ":") {
			return p
		}
		return p.with(p.s + sep)
	}
	root := p.RootName()
	if o.IsAbsolute() && (p.s != root.s ||
		!(len(o.s) == 1 && o.isSep(o.s[0])) ||
		o.HasRootName() && o.RootName().s != root.s) {
		return p.with(o.s)
	}
	var b strings.Builder
	b.WriteString(p.s)
	if o.HasRootDirectory() {
		b.Reset()
		b.WriteString(root.s)
	} else if !p.HasRootDirectory() && p.IsAbsolute() || p.HasFilename() {
		b.WriteString(sep)
	}
	it := o.Begin()
	if o.HasRootName() {
		it = it.Next()
	}
	for first := true; !it.Equal(o.End()); it = it.Next() {
		cur := b.String()
		if !first && (cur == "" || !p.isSep(cur[len(cur)-1])) {
			b.WriteString(sep)
		}
		first = false
		b.WriteString(it.Value().s)
	}
	return p.with(b.String())
}

// Join appends each element to p, parsing the elements in p's grammar.
func (p Path) Join(elem ...string) Path {
	for _, e := range elem {
		p = p.JoinPath(p.with(e))
	}
	return p
}

// Join joins native path elements in the native grammar.
func Join(elem ...string) Path {
	var p Path
	if len(elem) > 0 {
		p, elem = New(elem[0]), elem[1:]
	}
	return p.Join(elem...)
}
