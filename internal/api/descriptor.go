package api

/*
#include <stdlib.h>
#include "bindings.h"
*/
import "C"

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/policyvault/miniscriptvm/types"
)

// DescriptorNode exclusively owns one parsed descriptor expression in the
// engine, including the key provider collected during parsing. The provider
// is immutable after construction even for ranged descriptors; expansion at
// an index derives from it without mutating it.
type DescriptorNode struct {
	ptr *C.DescriptorNode
}

// ParseDescriptor parses a descriptor string under the given network's chain
// parameters. The engine switches the process-wide parameter global to the
// requested network for the parse, so the call runs under the network guard:
// no concurrent select-then-use window may interleave with it.
func ParseDescriptor(descriptor string, network types.Network) (*DescriptorNode, error) {
	if descriptor == "" {
		return nil, types.InvalidArgument("empty descriptor string")
	}
	if strings.ContainsRune(descriptor, 0) {
		return nil, types.InvalidArgument("descriptor string contains NUL byte")
	}

	cs := C.CString(descriptor)
	defer C.free(unsafe.Pointer(cs))

	var node *C.DescriptorNode
	var res C.DescriptorResult
	if err := withParamsLock(network, func() {
		res = C.descriptor_parse_with_network(cs, C.DescriptorNetwork(network), &node)
	}); err != nil {
		return nil, err
	}

	if !bool(res.success) {
		msg, _ := copyAndFreeDescString(res.error_message)
		return nil, types.ClassifyParseError(msg)
	}
	if node == nil {
		return nil, fmt.Errorf("%w: engine reported success without a node", types.ErrUnknown)
	}
	return &DescriptorNode{ptr: node}, nil
}

// FreeDescriptorNode releases the engine memory owned by the node. Freeing
// nil or an already-freed node is a no-op.
func FreeDescriptorNode(node *DescriptorNode) {
	if node == nil || node.ptr == nil {
		return
	}
	C.descriptor_node_free(node.ptr)
	node.ptr = nil
}

func DescriptorIsRange(node *DescriptorNode) bool {
	return node != nil && node.ptr != nil && bool(C.descriptor_is_range(node.ptr))
}

func DescriptorIsSolvable(node *DescriptorNode) bool {
	return node != nil && node.ptr != nil && bool(C.descriptor_is_solvable(node.ptr))
}

// DescriptorToString renders the canonical descriptor string, including the
// checksum.
func DescriptorToString(node *DescriptorNode) (string, error) {
	if node == nil || node.ptr == nil {
		return "", types.InvalidArgument("nil descriptor node")
	}
	s, ok := copyAndFreeDescString(C.descriptor_to_string(node.ptr))
	if !ok {
		return "", fmt.Errorf("%w: engine returned no rendering", types.ErrUnknown)
	}
	return s, nil
}

// DescriptorExpand derives the concrete script at the given index. The index
// is ignored for non-ranged descriptors. ok is false when derivation
// material is incomplete or the index is outside the descriptor's domain.
func DescriptorExpand(node *DescriptorNode, index uint32) ([]byte, bool) {
	if node == nil || node.ptr == nil {
		return nil, false
	}
	var ptr cu8_ptr
	var length cusize
	if !bool(C.descriptor_expand(node.ptr, cint(index), &ptr, &length)) {
		return nil, false
	}
	return copyAndFreeDescBytes(ptr, length), true
}

// DescriptorAddress derives the script at the index and encodes it as an
// address under the requested network. Address encoding reads the parameter
// global, so the call runs under the network guard. ok is false when the
// script shape has no address encoding.
func DescriptorAddress(node *DescriptorNode, index uint32, network types.Network) (string, bool) {
	if node == nil || node.ptr == nil {
		return "", false
	}
	var addr string
	var ok bool
	if err := withNetwork(network, func() {
		addr, ok = copyAndFreeDescString(C.descriptor_get_address(node.ptr, cint(index), C.DescriptorNetwork(network)))
	}); err != nil {
		return "", false
	}
	return addr, ok
}

// DescriptorPubKeys returns the serialized public keys visible after
// expanding the descriptor at the index. An empty slice is not an error: the
// descriptor may carry no keys.
func DescriptorPubKeys(node *DescriptorNode, index uint32) ([][]byte, error) {
	if node == nil || node.ptr == nil {
		return nil, types.InvalidArgument("nil descriptor node")
	}

	var (
		keys  **C.uint8_t
		lens  *cusize
		count cusize
	)
	if !bool(C.descriptor_get_pubkeys(node.ptr, cint(index), &keys, &lens, &count)) {
		return nil, fmt.Errorf("%w: could not expand descriptor at index %d", types.ErrUnknown, index)
	}
	if count == 0 || keys == nil {
		C.descriptor_free_pubkeys(keys, lens, count)
		return [][]byte{}, nil
	}

	n := int(count)
	keySlice := unsafe.Slice(keys, n)
	lenSlice := unsafe.Slice(lens, n)

	out := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, copyBytes(keySlice[i], lenSlice[i]))
	}
	C.descriptor_free_pubkeys(keys, lens, count)
	return out, nil
}

// DescriptorScriptSize returns the serialized script size; ok is false when
// it is not statically computable.
func DescriptorScriptSize(node *DescriptorNode) (int64, bool) {
	if node == nil || node.ptr == nil {
		return 0, false
	}
	var size ci64
	if !bool(C.descriptor_get_script_size(node.ptr, &size)) {
		return 0, false
	}
	return int64(size), true
}

// DescriptorMaxSatisfactionWeight returns the maximum weight of a satisfying
// input. useMaxSig assumes worst-case signature sizes.
func DescriptorMaxSatisfactionWeight(node *DescriptorNode, useMaxSig bool) (int64, bool) {
	if node == nil || node.ptr == nil {
		return 0, false
	}
	var weight ci64
	if !bool(C.descriptor_get_max_satisfaction_weight(node.ptr, cbool(useMaxSig), &weight)) {
		return 0, false
	}
	return int64(weight), true
}

// DescriptorChecksum computes the checksum for a descriptor string and
// returns the string with the checksum appended.
func DescriptorChecksum(descriptor string) (string, error) {
	if descriptor == "" {
		return "", types.InvalidArgument("empty descriptor string")
	}
	if strings.ContainsRune(descriptor, 0) {
		return "", types.InvalidArgument("descriptor string contains NUL byte")
	}
	cs := C.CString(descriptor)
	defer C.free(unsafe.Pointer(cs))

	out, ok := copyAndFreeDescString(C.descriptor_get_checksum(cs))
	if !ok || out == "" {
		return "", fmt.Errorf("%w: could not compute checksum", types.ErrParse)
	}
	return out, nil
}

// DescriptorVersion returns the descriptor wrapper's version string. The
// string is static and must not be freed.
func DescriptorVersion() string {
	return C.GoString(C.descriptor_version())
}
