//go:build cgo

package miniscriptvm

import (
	"github.com/policyvault/miniscriptvm/internal/api"
	"github.com/policyvault/miniscriptvm/types"
)

// Version returns the linked engine's miniscript version string.
func Version() (string, error) {
	v := api.Version()
	if v == "" {
		return "", types.ErrUnknown
	}
	return v, nil
}

// DescriptorVersion returns the linked engine's descriptor wrapper version
// string.
func DescriptorVersion() (string, error) {
	v := api.DescriptorVersion()
	if v == "" {
		return "", types.ErrUnknown
	}
	return v, nil
}

// DescriptorChecksum computes the checksum for a descriptor string and
// returns the string with its checksum appended. The input must not already
// carry a checksum.
func DescriptorChecksum(descriptor string) (string, error) {
	return api.DescriptorChecksum(descriptor)
}
