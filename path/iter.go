package path

import "iter"

// An Iterator is a position within the components of a [Path].
//
// The components are, in order: the root name, the root directory as a
// one-separator component, each name between separators, and a final
// empty component when the path ends in a separator that is not part of
// its root. Runs of separators produce no components of their own.
//
// Iterators are values. Next and Prev return new positions.
type Iterator struct {
	p   Path
	pos int
}

// Begin returns the position of the first component of p.
func (p Path) Begin() Iterator { return Iterator{p: p} }

// End returns the position one past the last component of p.
func (p Path) End() Iterator { return Iterator{p: p, pos: len(p.s)} }

// Components returns an iterator over the components of p.
func (p Path) Components() iter.Seq[Path] {
	return func(yield func(Path) bool) {
		for it := p.Begin(); !it.Equal(p.End()); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Equal reports whether it and o are at the same position.
func (it Iterator) Equal(o Iterator) bool { return it.pos == o.pos }

// element reports the bounds of the component at the current position.
func (it Iterator) element() (start, end int) {
	p, s, pos := it.p, it.p.s, it.pos
	if pos >= len(s) {
		return len(s), len(s)
	}
	rn := p.rootNameLen()
	if pos == 0 && rn > 0 {
		return 0, rn
	}
	if pos == rn && p.HasRootDirectory() {
		return pos, pos + 1
	}
	if p.isSep(s[pos]) {
		return pos, pos // trailing
	}
	end = pos
	for end < len(s) && !p.isSep(s[end]) {
		end++
	}
	return pos, end
}

// Value returns the component at the current position.
// The value at the end position is the empty path.
func (it Iterator) Value() Path {
	start, end := it.element()
	return it.p.with(it.p.s[start:end])
}

// Next returns the position of the following component.
// Next at the end position returns the end position.
func (it Iterator) Next() Iterator {
	p, s := it.p, it.p.s
	n := len(s)
	start, end := it.element()
	switch rn := p.rootNameLen(); {
	case start == n || start == end:
		return p.End()
	case start == 0 && end == rn:
		it.pos = end
		return it
	}
	i := end
	for i < n && p.isSep(s[i]) {
		i++
	}
	switch {
	case i < n:
		it.pos = i
	case i > end && start >= p.rootRunEnd():
		it.pos = n - 1
	default:
		it.pos = n
	}
	return it
}

// Prev returns the position of the preceding component.
// Prev at the first position returns the first position.
func (it Iterator) Prev() Iterator {
	p, s, pos := it.p, it.p.s, it.pos
	if pos == 0 {
		return it
	}
	rn, run := p.rootNameLen(), p.rootRunEnd()
	if pos == rn {
		it.pos = 0
		return it
	}
	if pos == len(s) && pos > run && p.isSep(s[pos-1]) {
		it.pos = pos - 1
		return it
	}
	i := pos
	for i > run && p.isSep(s[i-1]) {
		i--
	}
	if i <= run {
		if p.HasRootDirectory() {
			it.pos = rn
		} else {
			it.pos = 0
		}
		return it
	}
	for i > run && !p.isSep(s[i-1]) {
		i--
	}
	it.pos = i
	return it
}
