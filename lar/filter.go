package lar

// Filter selects entries by stored name. A nil or empty filter matches
// every entry, including the bootblock.
type Filter map[string]struct{}

// NewFilter returns a filter matching names. With no names it returns nil,
// which matches everything.
func NewFilter(names ...string) Filter {
	if len(names) == 0 {
		return nil
	}
	f := make(Filter, len(names))
	for _, n := range names {
		f[n] = struct{}{}
	}
	return f
}

// Match reports whether name is selected.
func (f Filter) Match(name string) bool {
	if len(f) == 0 {
		return true
	}
	_, ok := f[name]
	return ok
}
