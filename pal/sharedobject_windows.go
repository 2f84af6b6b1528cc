//go:build windows

package pal

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// SharedObject references a dynamically loaded library, matching the
// PlatformLibraryHandle the original layer returns from its LoadLibraryA
// wrapper.
type SharedObject struct {
	handle windows.Handle
}

// LoadSharedObject opens the DLL at path via LoadLibraryEx, restricted to
// its own directory and the system directory search path.
func LoadSharedObject(path string) (*SharedObject, error) {
	h, err := windows.LoadLibraryEx(path, 0, windows.LOAD_LIBRARY_SEARCH_DEFAULT_DIRS)
	if err != nil {
		setLastError(KindNotFound, "sharedobject: LoadLibraryEx %q: %v", path, err)
		return nil, err
	}
	return &SharedObject{handle: h}, nil
}

// Symbol resolves name within the loaded object via GetProcAddress,
// returning it as an unsafe.Pointer the caller casts to the expected
// function pointer type.
func (s *SharedObject) Symbol(name string) (any, error) {
	addr, err := windows.GetProcAddress(s.handle, name)
	if err != nil {
		setLastError(KindNotFound, "sharedobject: GetProcAddress %q: %v", name, err)
		return nil, err
	}
	return unsafe.Pointer(addr), nil
}

// Close unloads the library via FreeLibrary.
func (s *SharedObject) Close() error {
	return windows.FreeLibrary(s.handle)
}
