package api

/*
#include <stdlib.h>
#include "bindings.h"
*/
import "C"

import "unsafe"

// Value types
type (
	cbool  = C.bool
	cint   = C.int
	cusize = C.size_t
	cu32   = C.uint32_t
	ci64   = C.int64_t
)

// Pointers
type cu8_ptr = *C.uint8_t

// copyAndFreeString copies an engine-owned C string into Go memory and
// releases the original. Returns "" and false for a NULL pointer.
func copyAndFreeString(s *C.char) (string, bool) {
	if s == nil {
		return "", false
	}
	out := C.GoString(s)
	C.miniscript_free_string(s)
	return out, true
}

// copyAndFreeDescString is copyAndFreeString for strings owned by the
// descriptor side of the engine, which has its own allocator.
func copyAndFreeDescString(s *C.char) (string, bool) {
	if s == nil {
		return "", false
	}
	out := C.GoString(s)
	C.descriptor_free_string(s)
	return out, true
}

// copyAndFreeBytes copies an engine-owned byte buffer into Go memory and
// releases the original. A NULL pointer with length 0 yields an empty,
// non-nil slice: the engine uses that shape for empty outputs.
func copyAndFreeBytes(ptr cu8_ptr, length cusize) []byte {
	if ptr == nil {
		return []byte{}
	}
	out := C.GoBytes(unsafe.Pointer(ptr), cint(length))
	C.miniscript_free_bytes(ptr)
	return out
}

// copyAndFreeDescBytes is copyAndFreeBytes for the descriptor allocator.
func copyAndFreeDescBytes(ptr cu8_ptr, length cusize) []byte {
	if ptr == nil {
		return []byte{}
	}
	out := C.GoBytes(unsafe.Pointer(ptr), cint(length))
	C.descriptor_free_bytes(ptr)
	return out
}

// copyBytes copies a borrowed C buffer into Go memory without freeing it.
// Used inside callbacks, where the engine owns the buffer.
func copyBytes(ptr cu8_ptr, length cusize) []byte {
	if ptr == nil || length == 0 {
		return []byte{}
	}
	return C.GoBytes(unsafe.Pointer(ptr), cint(length))
}

// mallocBytes copies a Go byte slice into a malloc'd C buffer that the
// engine will free. Returns nil for an empty slice; callers are expected to
// pair it with an explicit zero length.
func mallocBytes(data []byte) cu8_ptr {
	if len(data) == 0 {
		return nil
	}
	return cu8_ptr(C.CBytes(data))
}
