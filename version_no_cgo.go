//go:build !cgo

package miniscriptvm

import (
	"strings"

	"github.com/policyvault/miniscriptvm/internal/ffi"
	"github.com/policyvault/miniscriptvm/types"
)

// Without CGo the engine is reached through dlopen (internal/ffi). Only the
// pointer-friendly subset of the ABI is available that way; parsing and
// satisfaction require the cgo build.

// Version returns the engine's miniscript version string.
func Version() (string, error) {
	return ffi.Version()
}

// DescriptorVersion returns the engine's descriptor wrapper version string.
func DescriptorVersion() (string, error) {
	return ffi.DescriptorVersion()
}

// DescriptorChecksum computes the checksum for a descriptor string and
// returns the string with its checksum appended. The input must not already
// carry a checksum.
func DescriptorChecksum(descriptor string) (string, error) {
	if descriptor == "" {
		return "", types.InvalidArgument("empty descriptor string")
	}
	if strings.ContainsRune(descriptor, 0) {
		return "", types.InvalidArgument("descriptor string contains NUL byte")
	}
	return ffi.DescriptorChecksum(descriptor)
}
