// Package ffi binds the pointer-friendly subset of the engine ABI without
// cgo, by dlopen-ing the shared library with purego. Parse and satisfy
// return C structs by value, which purego cannot express portably, so those
// remain available only through the cgo build (internal/api). This package
// must always be built.
package ffi

import (
	"errors"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

var (
	dlHandle uintptr
	loadOnce sync.Once
	loadErr  error

	// C: const char *miniscript_version(void);
	miniscriptVersion func() uintptr
	// C: const char *descriptor_version(void);
	descriptorVersion func() uintptr
	// C: char *descriptor_get_checksum(const char *descriptor_str);
	descriptorGetChecksum func(string) uintptr
	// C: void descriptor_free_string(char *str);
	descriptorFreeString func(uintptr)
)

func dlname() string {
	switch runtime.GOOS {
	case "darwin":
		return "libmsengine.dylib"
	case "linux":
		return "libmsengine.so"
	default:
		return ""
	}
}

func ensureLoaded() error {
	loadOnce.Do(func() {
		name := dlname()
		if name == "" {
			loadErr = errors.New("unsupported OS for dlopen-based engine loading")
			return
		}
		h, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			loadErr = err
			return
		}
		dlHandle = h
		purego.RegisterLibFunc(&miniscriptVersion, dlHandle, "miniscript_version")
		purego.RegisterLibFunc(&descriptorVersion, dlHandle, "descriptor_version")
		purego.RegisterLibFunc(&descriptorGetChecksum, dlHandle, "descriptor_get_checksum")
		purego.RegisterLibFunc(&descriptorFreeString, dlHandle, "descriptor_free_string")
	})
	return loadErr
}

// Version calls the engine's miniscript_version() without cgo.
func Version() (string, error) {
	if err := ensureLoaded(); err != nil {
		return "", err
	}
	// static string, not freed
	return cString(miniscriptVersion()), nil
}

// DescriptorVersion calls the engine's descriptor_version() without cgo.
func DescriptorVersion() (string, error) {
	if err := ensureLoaded(); err != nil {
		return "", err
	}
	return cString(descriptorVersion()), nil
}

// DescriptorChecksum computes a descriptor checksum without cgo. The engine
// allocates the result string; it is copied and released here.
func DescriptorChecksum(descriptor string) (string, error) {
	if err := ensureLoaded(); err != nil {
		return "", err
	}
	ptr := descriptorGetChecksum(descriptor)
	if ptr == 0 {
		return "", errors.New("could not compute checksum")
	}
	out := cString(ptr)
	descriptorFreeString(ptr)
	if out == "" {
		return "", errors.New("could not compute checksum")
	}
	return out, nil
}

// cString copies a NUL-terminated C string referenced by the given address
// into a Go string. Equivalent to C.GoString but usable when CGo is
// disabled.
func cString(c uintptr) string {
	// c is a foreign address, never a Go pointer; convert via the
	// indirection idiom so vet's unsafeptr check accepts it.
	ptr := *(*unsafe.Pointer)(unsafe.Pointer(&c))
	if ptr == nil {
		return ""
	}
	var n uintptr
	for *(*byte)(unsafe.Add(ptr, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(ptr), n))
}
