package timefmt

import "sync/atomic"

// Formatter holds a replaceable Template. Format and SetPattern may be called
// concurrently; each Format call sees either the old or the new template in
// full.
type Formatter struct {
	tmpl atomic.Pointer[Template]
}

// NewFormatter returns a Formatter using the compiled pattern.
func NewFormatter(pattern string) *Formatter {
	f := &Formatter{}
	f.tmpl.Store(Compile(pattern))
	return f
}

// SetPattern compiles pattern and swaps it in.
func (f *Formatter) SetPattern(pattern string) {
	f.tmpl.Store(Compile(pattern))
}

// Template returns the template currently in use.
func (f *Formatter) Template() *Template {
	return f.tmpl.Load()
}

// Format renders ms using the current template.
func (f *Formatter) Format(ms int64) string {
	return f.tmpl.Load().Format(ms)
}
