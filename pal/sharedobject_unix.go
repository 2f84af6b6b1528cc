//go:build unix

package pal

import "plugin"

// SharedObject references a dynamically loaded library, matching the
// PlatformLibraryHandle the original layer returns from its dlopen wrapper.
type SharedObject struct {
	p *plugin.Plugin
}

// LoadSharedObject opens the shared object at path. On unix this is backed
// by the standard library's plugin package, which itself wraps dlopen; it
// inherits that package's restriction to binaries built with `go build
// -buildmode=plugin` against a matching toolchain.
func LoadSharedObject(path string) (*SharedObject, error) {
	p, err := plugin.Open(path)
	if err != nil {
		setLastError(KindNotFound, "sharedobject: open %q: %v", path, err)
		return nil, err
	}
	return &SharedObject{p: p}, nil
}

// Symbol resolves name within the loaded object, returning it as an any
// the caller type-asserts to the expected function or variable pointer
// type.
func (s *SharedObject) Symbol(name string) (any, error) {
	sym, err := s.p.Lookup(name)
	if err != nil {
		setLastError(KindNotFound, "sharedobject: lookup %q: %v", name, err)
		return nil, err
	}
	return sym, nil
}

// Close exists for interface parity with the Windows FreeLibrary-backed
// implementation. The plugin package never unloads a loaded object, so
// this is a no-op.
func (s *SharedObject) Close() error {
	return nil
}
