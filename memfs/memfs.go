// Package memfs implements lesiw.io/hostfs.FS using an in-memory file tree.
//
// A memfs file system parses names in either path grammar, so Windows
// paths can be exercised on any platform. It supports symbolic links, hard
// links and permissions, and can be told to fail chosen operations with
// [FS.Fail].
//
// The root name of a path, such as a drive letter, is ignored: every
// memfs file system has a single volume.
package memfs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"lesiw.io/hostfs"
	"lesiw.io/hostfs/path"
)

var (
	errIsDir       = errors.New("is a directory")
	errDirNotEmpty = errors.New("directory not empty")
	errLoop        = errors.New("too many levels of symbolic links")
)

// maxHops bounds the symbolic links followed while resolving one name.
const maxHops = 40

// DefaultCapacity is the volume size reported by a new FS.
const DefaultCapacity = 1 << 30

// FS is an in-memory file system.
type FS struct {
	sync.RWMutex
	style    path.Style
	root     *node
	inodes   uint64
	capacity uint64
	faults   map[fault]error
	handles  int
}

// fault selects an operation on a name.
type fault struct{ op, name string }

// node represents a file, directory or symbolic link.
type node struct {
	mode    hostfs.Mode
	data    []byte
	target  string
	modTime time.Time
	nodes   map[string]*node
	ino     uint64
	nlink   uint64
}

func (n *node) isDir() bool     { return n.mode.IsDir() }
func (n *node) isSymlink() bool { return n.mode&hostfs.ModeSymlink != 0 }

// New returns a new empty in-memory file system whose names use the grammar
// style.
func New(style path.Style) *FS {
	f := &FS{
		style:    style,
		capacity: DefaultCapacity,
		faults:   make(map[fault]error),
	}
	f.root = f.newNode(hostfs.ModeDir | 0755)
	return f
}

func (f *FS) newNode(mode hostfs.Mode) *node {
	f.inodes++
	n := &node{mode: mode, modTime: time.Now(), ino: f.inodes, nlink: 1}
	if mode.IsDir() {
		n.nodes = make(map[string]*node)
	}
	return n
}

// Style implements hostfs.StyleFS
func (f *FS) Style() path.Style { return f.style }

// Fail makes every later call of op on name return err.
// A nil err clears the failure. Op is the method name in lower case, such
// as "remove" or "opendir"; "readdir" fails reads from an open directory.
func (f *FS) Fail(op, name string, err error) {
	f.Lock()
	defer f.Unlock()
	if err == nil {
		delete(f.faults, fault{op, name})
		return
	}
	f.faults[fault{op, name}] = err
}

// fault returns the injected failure for op on name, if any.
// The caller must hold the lock.
func (f *FS) fault(op, name string) error {
	if err, ok := f.faults[fault{op, name}]; ok {
		return &hostfs.PathError{Op: op, Path: name, Err: err}
	}
	return nil
}

// OpenHandles returns the number of directory handles not yet closed.
func (f *FS) OpenHandles() int {
	f.RLock()
	defer f.RUnlock()
	return f.handles
}

// SetCapacity sets the volume size reported by Space.
func (f *FS) SetCapacity(n uint64) {
	f.Lock()
	defer f.Unlock()
	f.capacity = n
}

// split returns the names between separators in name, resolved against
// the working directory carried by ctx.
func (f *FS) split(ctx context.Context, name string) []string {
	p := f.style.New(name)
	if !p.HasRootDirectory() {
		if wd := hostfs.WorkDir(ctx); wd != "" {
			p = f.style.New(wd).JoinPath(p.RelativePath())
		}
	}
	return f.fields(p)
}

func (f *FS) fields(p path.Path) []string {
	return strings.FieldsFunc(p.RelativePath().String(), func(r rune) bool {
		return r < 0x80 && f.style.IsSeparator(byte(r))
	})
}

// resolve finds the node parts names. Symbolic links in directory position
// are always followed. The final one is followed only if follow is set.
// The caller must hold the lock.
func (f *FS) resolve(parts []string, follow bool) (*node, error) {
	stack := []*node{f.root}
	hops := 0
	for i := 0; i < len(parts); i++ {
		cur := stack[len(stack)-1]
		switch parts[i] {
		case ".":
			continue
		case "..":
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
			continue
		}
		if !cur.isDir() {
			return nil, hostfs.ErrNotDir
		}
		next, ok := cur.nodes[parts[i]]
		if !ok {
			return nil, hostfs.ErrNotExist
		}
		if next.isSymlink() && (follow || i < len(parts)-1) {
			if hops++; hops > maxHops {
				return nil, errLoop
			}
			target := f.style.New(next.target)
			if target.HasRootDirectory() {
				stack = stack[:1]
			}
			rest := append(f.fields(target), parts[i+1:]...)
			parts, i = rest, -1
			continue
		}
		stack = append(stack, next)
	}
	return stack[len(stack)-1], nil
}

// lookup resolves name to its node.
// The caller must hold the lock.
func (f *FS) lookup(
	ctx context.Context, op, name string, follow bool,
) (*node, error) {
	if err := f.fault(op, name); err != nil {
		return nil, err
	}
	dirOnly := f.trailing(name)
	n, err := f.resolve(f.split(ctx, name), follow || dirOnly)
	if err == nil && dirOnly && !n.isDir() {
		err = hostfs.ErrNotDir
	}
	if err != nil {
		return nil, &hostfs.PathError{Op: op, Path: name, Err: err}
	}
	return n, nil
}

// trailing reports whether name ends in a separator that is not part of
// its root, which requires it to name a directory.
func (f *FS) trailing(name string) bool {
	p := f.style.New(name)
	return p.HasRelativePath() && p.Filename().Empty()
}

// lookupParent resolves the directory holding name, returning it with the
// final name in the path.
// The caller must hold the lock.
func (f *FS) lookupParent(
	ctx context.Context, op, name string,
) (*node, string, error) {
	if err := f.fault(op, name); err != nil {
		return nil, "", err
	}
	parts := f.split(ctx, name)
	if len(parts) == 0 {
		return nil, "", &hostfs.PathError{
			Op: op, Path: name, Err: hostfs.ErrInvalid,
		}
	}
	base := parts[len(parts)-1]
	if base == "." || base == ".." {
		return nil, "", &hostfs.PathError{
			Op: op, Path: name, Err: hostfs.ErrInvalid,
		}
	}
	dir, err := f.resolve(parts[:len(parts)-1], true)
	if err == nil && !dir.isDir() {
		err = hostfs.ErrNotDir
	}
	if err != nil {
		return nil, "", &hostfs.PathError{Op: op, Path: name, Err: err}
	}
	return dir, base, nil
}

// usage returns the bytes held by files under n.
func usage(n *node, seen map[*node]bool) uint64 {
	if seen[n] {
		return 0
	}
	seen[n] = true
	total := uint64(len(n.data))
	for _, child := range n.nodes {
		total += usage(child, seen)
	}
	return total
}

// writer buffers file contents until Close.
type writer struct {
	fs *FS
	n  *node
	bytes.Buffer
}

func (w *writer) Close() error {
	w.fs.Lock()
	defer w.fs.Unlock()
	w.n.data = bytes.Clone(w.Bytes())
	w.n.modTime = time.Now()
	return nil
}
