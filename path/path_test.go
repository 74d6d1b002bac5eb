package path

import (
	"slices"
	"testing"
)

type parts struct {
	rootName, rootDir, relative string
	filename, ext                string
	absolute                     bool
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		path  string
		want  parts
	}{
		{"PosixAbsolute", Posix, "/usr/local",
			parts{"", "/", "usr/local", "local", "", true}},
		{"PosixTrailing", Posix, "/usr/local/",
			parts{"", "/", "usr/local/", "", "", true}},
		{"PosixRelative", Posix, "foo/bar.txt",
			parts{"", "", "foo/bar.txt", "bar.txt", ".txt", false}},
		{"PosixDotfile", Posix, ".bashrc",
			parts{"", "", ".bashrc", ".bashrc", "", false}},
		{"PosixServer", Posix, "//server/share",
			parts{"//server", "/", "share", "share", "", true}},
		{"PosixServerOnly", Posix, "//server",
			parts{"//server", "", "", "", "", false}},
		{"PosixTripleSlash", Posix, "///a",
			parts{"", "/", "//a", "a", "", true}},
		{"PosixRoot", Posix, "/",
			parts{"", "/", "", "", "", true}},
		{"PosixDriveIsName", Posix, `C:\Users`,
			parts{"", "", `C:\Users`, `C:\Users`, "", false}},
		{"PosixEmpty", Posix, "",
			parts{"", "", "", "", "", false}},
		{"WindowsDrive", Windows, `C:\Users`,
			parts{"C:", `\`, "Users", "Users", "", true}},
		{"WindowsDriveRelative", Windows, `C:Users`,
			parts{"C:", "", "Users", "Users", "", false}},
		{"WindowsNoDrive", Windows, `\Users`,
			parts{"", `\`, "Users", "Users", "", false}},
		{"WindowsForward", Windows, "c:/a/b.tar.gz",
			parts{"c:", "/", "a/b.tar.gz", "b.tar.gz", ".gz", true}},
		{"WindowsUNC", Windows, `\\server\share`,
			parts{`\\server`, `\`, "share", "share", "", true}},
		{"WindowsDriveOnly", Windows, "C:",
			parts{"C:", "", "", "", "", false}},
		{"WindowsNotDrive", Windows, `1:\x`,
			parts{"", "", `1:\x`, "x", "", false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.style.New(tt.path)
			got := parts{
				rootName: p.RootName().String(),
				rootDir:  p.RootDirectory().String(),
				relative: p.RelativePath().String(),
				filename: p.Filename().String(),
				ext:      p.Extension().String(),
				absolute: p.IsAbsolute(),
			}
			if got != tt.want {
				t.Errorf("decompose(%q) = %+v, want %+v",
					tt.path, got, tt.want)
			}
		})
	}
}

var samples = []Path{
	Posix.New(""),
	Posix.New("/"),
	Posix.New("//"),
	Posix.New("/usr/local"),
	Posix.New("/usr/local/"),
	Posix.New("a//b"),
	Posix.New("foo/"),
	Posix.New("//server"),
	Posix.New("//server/share/x"),
	Windows.New(`C:\Users\`),
	Windows.New(`C:foo\bar`),
	Windows.New(`C:`),
	Windows.New(`\\server\`),
	Windows.New(`\\server\share`),
	Windows.New(`/mixed\seps/`),
}

func TestReconstruct(t *testing.T) {
	for _, p := range samples {
		got := p.RootName().String() + p.RootDirectory().String() +
			p.RelativePath().String()
		if got != p.String() {
			t.Errorf("reconstruct(%q) = %q", p, got)
		}
		rp := p.RootName().String() + p.RootDirectory().String()
		if rp != p.RootPath().String() {
			t.Errorf("%q.RootPath() = %q, want %q", p, p.RootPath(), rp)
		}
	}
}

func TestComponents(t *testing.T) {
	tests := []struct {
		path Path
		want []string
	}{
		{Posix.New(""), nil},
		{Posix.New("/"), []string{"/"}},
		{Posix.New("//"), []string{"/"}},
		{Posix.New("/usr/local"), []string{"/", "usr", "local"}},
		{Posix.New("/usr/local/"), []string{"/", "usr", "local", ""}},
		{Posix.New("/usr//"), []string{"/", "usr", ""}},
		{Posix.New("a//b"), []string{"a", "b"}},
		{Posix.New("foo/"), []string{"foo", ""}},
		{Posix.New("//server/share"), []string{"//server", "/", "share"}},
		{Windows.New(`C:\Users\`), []string{"C:", `\`, "Users", ""}},
		{Windows.New(`C:foo`), []string{"C:", "foo"}},
		{Windows.New(`C:`), []string{"C:"}},
		{Windows.New(`\\server\`), []string{`\\server`, `\`}},
		{Windows.New(`a/b\c`), []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		var got []string
		for c := range tt.path.Components() {
			got = append(got, c.String())
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("Components(%q) = %q, want %q", tt.path, got, tt.want)
		}

		var back []string
		for it := tt.path.End(); !it.Equal(tt.path.Begin()); {
			it = it.Prev()
			back = append(back, it.Value().String())
		}
		slices.Reverse(back)
		if !slices.Equal(back, tt.want) {
			t.Errorf("reverse Components(%q) = %q, want %q",
				tt.path, back, tt.want)
		}
	}
}

func TestIteratorBounds(t *testing.T) {
	p := Posix.New("/a")
	if got := p.Begin().Prev(); !got.Equal(p.Begin()) {
		t.Errorf("Begin().Prev() moved to %d", got.pos)
	}
	if got := p.End().Next(); !got.Equal(p.End()) {
		t.Errorf("End().Next() moved to %d", got.pos)
	}
	if got := p.End().Value(); !got.Empty() {
		t.Errorf("End().Value() = %q, want empty", got)
	}
	if e := Posix.New(""); !e.Begin().Equal(e.End()) {
		t.Error("empty path: Begin() != End()")
	}
}

// rebuild joins components with the preferred separator.
func rebuild(p Path) string {
	var s string
	sep := string(p.Style().Separator())
	i := 0
	for c := range p.Components() {
		switch {
		case i == 0:
		case p.HasRootName() && i == 1:
		case p.HasRootDirectory() && i == 1 && !p.HasRootName():
		case p.HasRootDirectory() && i == 2 && p.HasRootName():
		default:
			s += sep
		}
		s += c.String()
		i++
	}
	return s
}

func TestComponentsRebuild(t *testing.T) {
	for _, p := range []Path{
		Posix.New("/usr/local"),
		Posix.New("/usr/local/"),
		Posix.New("a/b/c"),
		Posix.New("//server/share/x"),
		Windows.New(`C:\Users\x`),
		Windows.New(`C:rel\x\`),
		Windows.New(`\\server\share`),
	} {
		if got := rebuild(p); got != p.String() {
			t.Errorf("rebuild(%q) = %q", p, got)
		}
	}
}

func TestJoinPath(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		a, b  string
		want  string
	}{
		{"Simple", Posix, "a", "b", "a/b"},
		{"TrailingSep", Posix, "a/", "b", "a/b"},
		{"EmptyAddsSep", Posix, "a", "", "a/"},
		{"EmptyKeepsSep", Posix, "a/", "", "a/"},
		{"EmptyOnEmpty", Posix, "", "", ""},
		{"EmptyBase", Posix, "", "b", "b"},
		{"AbsoluteReplaces", Posix, "a", "/b", "/b"},
		{"Root", Posix, "/", "b", "/b"},
		{"Nested", Posix, "a", "b/c/", "a/b/c/"},
		{"ServerRoot", Posix, "//server", "/", "//server/"},
		{"DriveRelative", Windows, "C:", "foo", "C:foo"},
		{"DriveEmpty", Windows, "C:", "", "C:"},
		{"OtherDrive", Windows, `C:\a`, `D:\b`, `D:\b`},
		{"RootDirectory", Windows, `C:\a`, `\b`, `C:\b`},
		{"SameDriveRelative", Windows, `C:\a`, `C:b`, `C:\a\b`},
		{"Backslash", Windows, `C:\a`, "b", `C:\a\b`},
		{"ColonOnPosix", Posix, "a:", "", "a:/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := tt.style.New(tt.a), tt.style.New(tt.b)
			if got := a.JoinPath(b).String(); got != tt.want {
				t.Errorf("%q.JoinPath(%q) = %q, want %q",
					tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	got := Posix.New("/").Join("usr", "local", "bin")
	if want := "/usr/local/bin"; got.String() != want {
		t.Errorf("Join = %q, want %q", got, want)
	}
	got = Windows.New(`C:\`).Join("Users", "")
	if want := `C:\Users\`; got.String() != want {
		t.Errorf("Join = %q, want %q", got, want)
	}
}

func TestParent(t *testing.T) {
	tests := []struct {
		path Path
		want string
	}{
		{Posix.New("/usr/local"), "/usr"},
		{Posix.New("/usr/local/"), "/usr/local"},
		{Posix.New("/usr"), "/"},
		{Posix.New("/"), "/"},
		{Posix.New("foo"), ""},
		{Posix.New("a//b"), "a"},
		{Posix.New("//server/share"), "//server/"},
		{Windows.New(`C:foo`), "C:"},
		{Windows.New(`C:\foo\bar`), `C:\foo`},
	}
	for _, tt := range tests {
		if got := tt.path.Parent().String(); got != tt.want {
			t.Errorf("%q.Parent() = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestIsRoot(t *testing.T) {
	tests := []struct {
		path Path
		want bool
	}{
		{Posix.New("/"), true},
		{Posix.New("//"), true},
		{Posix.New("/a"), false},
		{Posix.New("//server/"), true},
		{Posix.New(""), false},
		{Windows.New(`C:\`), true},
		{Windows.New(`C:`), false},
		{Windows.New(`\`), true},
	}
	for _, tt := range tests {
		if got := tt.path.IsRoot(); got != tt.want {
			t.Errorf("%q.IsRoot() = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestGenericString(t *testing.T) {
	tests := []struct {
		path Path
		want string
	}{
		{Windows.New(`C:\Users\x`), "/C:/Users/x"},
		{Windows.New(`a\b`), "a/b"},
		{Windows.New(`\\server\share`), "//server/share"},
		{Posix.New("/usr"), "/usr"},
	}
	for _, tt := range tests {
		if got := tt.path.GenericString(); got != tt.want {
			t.Errorf("%q.GenericString() = %q, want %q",
				tt.path, got, tt.want)
		}
	}
}

func TestStem(t *testing.T) {
	tests := []struct{ path, stem, ext string }{
		{"archive.tar.gz", "archive.tar", ".gz"},
		{".bashrc", ".bashrc", ""},
		{".", ".", ""},
		{"..", ".", "."},
		{"a/..", ".", "."},
		{"file.", "file", "."},
		{"dir/", "", ""},
	}
	for _, tt := range tests {
		p := Posix.New(tt.path)
		if got := p.Stem().String(); got != tt.stem {
			t.Errorf("Stem(%q) = %q, want %q", tt.path, got, tt.stem)
		}
		if got := p.Extension().String(); got != tt.ext {
			t.Errorf("Extension(%q) = %q, want %q", tt.path, got, tt.ext)
		}
	}
}

func TestUTF16(t *testing.T) {
	p := New("dir/fïle")
	if got := FromUTF16(p.UTF16()); !got.Equal(p) {
		t.Errorf("FromUTF16(UTF16(%q)) = %q", p, got)
	}
}

func TestZeroStyle(t *testing.T) {
	var p Path
	if got := p.Style(); got != Native {
		t.Errorf("zero Path style = %v, want %v", got, Native)
	}
}
