package api

/*
#include <stdlib.h>
#include "bindings.h"
*/
import "C"

import (
	"fmt"
	"runtime"
	"strings"
	"unsafe"

	"github.com/policyvault/miniscriptvm/types"
)

// ScriptNode exclusively owns one parsed miniscript tree in the engine,
// together with the context it was parsed under. It is immutable after
// construction; all query operations are safe to call concurrently. Freeing
// is not safe to interleave with any other operation on the same node.
type ScriptNode struct {
	ptr *C.MiniscriptNode
	ctx types.Context
}

// Context returns the dialect the node was parsed under.
func (n *ScriptNode) Context() types.Context {
	return n.ctx
}

// ParseScript parses a miniscript expression string. On success the caller
// owns the returned node and must release it with FreeScriptNode.
func ParseScript(input string, ctx types.Context) (*ScriptNode, error) {
	if input == "" {
		return nil, types.InvalidArgument("empty miniscript string")
	}
	if strings.ContainsRune(input, 0) {
		return nil, types.InvalidArgument("miniscript string contains NUL byte")
	}

	cs := C.CString(input)
	defer C.free(unsafe.Pointer(cs))

	var node *C.MiniscriptNode
	res := C.miniscript_from_string(cs, C.MiniscriptContext(ctx), &node)
	if err := checkResult(res, node == nil); err != nil {
		return nil, err
	}
	return &ScriptNode{ptr: node, ctx: ctx}, nil
}

// ParseScriptBytes parses a raw serialized script into a miniscript tree.
func ParseScriptBytes(script []byte, ctx types.Context) (*ScriptNode, error) {
	if len(script) == 0 {
		return nil, types.InvalidArgument("empty script bytes")
	}

	var node *C.MiniscriptNode
	res := C.miniscript_from_script(cu8_ptr(unsafe.Pointer(&script[0])), cusize(len(script)), C.MiniscriptContext(ctx), &node)
	runtime.KeepAlive(script)
	if err := checkResult(res, node == nil); err != nil {
		return nil, err
	}
	return &ScriptNode{ptr: node, ctx: ctx}, nil
}

// checkResult converts an engine MiniscriptResult into a Go error, releasing
// the owned diagnostic string. noNode guards against an engine that reports
// success but hands back no tree.
func checkResult(res C.MiniscriptResult, noNode bool) error {
	if bool(res.success) {
		if noNode {
			return fmt.Errorf("%w: engine reported success without a node", types.ErrUnknown)
		}
		return nil
	}
	msg, _ := copyAndFreeString(res.error_message)
	return types.ClassifyParseError(msg)
}

// FreeScriptNode releases the engine memory owned by the node. Freeing nil
// or an already-freed node is a no-op.
func FreeScriptNode(node *ScriptNode) {
	if node == nil || node.ptr == nil {
		return
	}
	C.miniscript_node_free(node.ptr)
	node.ptr = nil
}

// ScriptToString renders the canonical textual form of the node.
func ScriptToString(node *ScriptNode) (string, error) {
	if node == nil || node.ptr == nil {
		return "", types.InvalidArgument("nil script node")
	}
	s, ok := copyAndFreeString(C.miniscript_to_string(node.ptr))
	if !ok {
		return "", fmt.Errorf("%w: engine returned no rendering", types.ErrUnknown)
	}
	return s, nil
}

// ScriptToBytes serializes the node to canonical script bytes.
func ScriptToBytes(node *ScriptNode) ([]byte, error) {
	if node == nil || node.ptr == nil {
		return nil, types.InvalidArgument("nil script node")
	}
	var ptr cu8_ptr
	var length cusize
	if !bool(C.miniscript_to_script(node.ptr, &ptr, &length)) {
		return nil, fmt.Errorf("%w: engine could not serialize node", types.ErrUnknown)
	}
	return copyAndFreeBytes(ptr, length), nil
}

// Boolean property queries. All of them treat a nil node as false rather
// than faulting; the public layer reports ErrClosed before it gets here.

func ScriptIsValid(node *ScriptNode) bool {
	return node != nil && node.ptr != nil && bool(C.miniscript_is_valid(node.ptr))
}

func ScriptIsSane(node *ScriptNode) bool {
	return node != nil && node.ptr != nil && bool(C.miniscript_is_sane(node.ptr))
}

func ScriptIsNonMalleable(node *ScriptNode) bool {
	return node != nil && node.ptr != nil && bool(C.miniscript_is_non_malleable(node.ptr))
}

func ScriptNeedsSignature(node *ScriptNode) bool {
	return node != nil && node.ptr != nil && bool(C.miniscript_needs_signature(node.ptr))
}

func ScriptHasTimelockMix(node *ScriptNode) bool {
	return node != nil && node.ptr != nil && bool(C.miniscript_has_timelock_mix(node.ptr))
}

func ScriptIsValidTopLevel(node *ScriptNode) bool {
	return node != nil && node.ptr != nil && bool(C.miniscript_is_valid_top_level(node.ptr))
}

func ScriptCheckOpsLimit(node *ScriptNode) bool {
	return node != nil && node.ptr != nil && bool(C.miniscript_check_ops_limit(node.ptr))
}

func ScriptCheckStackSize(node *ScriptNode) bool {
	return node != nil && node.ptr != nil && bool(C.miniscript_check_stack_size(node.ptr))
}

func ScriptCheckDuplicateKey(node *ScriptNode) bool {
	return node != nil && node.ptr != nil && bool(C.miniscript_check_duplicate_key(node.ptr))
}

func ScriptValidSatisfactions(node *ScriptNode) bool {
	return node != nil && node.ptr != nil && bool(C.miniscript_valid_satisfactions(node.ptr))
}

// ScriptTypeFlags returns the type property string ("Bdems" style). ok is
// false when the engine cannot type the tree.
func ScriptTypeFlags(node *ScriptNode) (string, bool) {
	if node == nil || node.ptr == nil {
		return "", false
	}
	return copyAndFreeString(C.miniscript_get_type(node.ptr))
}

// Numeric property queries return ok=false when the property is not
// statically computable for the tree, never a sentinel value.

func ScriptMaxSatisfactionSize(node *ScriptNode) (uint64, bool) {
	if node == nil || node.ptr == nil {
		return 0, false
	}
	var size cusize
	if !bool(C.miniscript_max_satisfaction_size(node.ptr, &size)) {
		return 0, false
	}
	return uint64(size), true
}

func ScriptOps(node *ScriptNode) (uint32, bool) {
	if node == nil || node.ptr == nil {
		return 0, false
	}
	var ops cu32
	if !bool(C.miniscript_get_ops(node.ptr, &ops)) {
		return 0, false
	}
	return uint32(ops), true
}

func ScriptStaticOps(node *ScriptNode) (uint32, bool) {
	if node == nil || node.ptr == nil {
		return 0, false
	}
	var ops cu32
	if !bool(C.miniscript_get_static_ops(node.ptr, &ops)) {
		return 0, false
	}
	return uint32(ops), true
}

func ScriptStackSize(node *ScriptNode) (uint32, bool) {
	if node == nil || node.ptr == nil {
		return 0, false
	}
	var size cu32
	if !bool(C.miniscript_get_stack_size(node.ptr, &size)) {
		return 0, false
	}
	return uint32(size), true
}

func ScriptExecStackSize(node *ScriptNode) (uint32, bool) {
	if node == nil || node.ptr == nil {
		return 0, false
	}
	var size cu32
	if !bool(C.miniscript_get_exec_stack_size(node.ptr, &size)) {
		return 0, false
	}
	return uint32(size), true
}

func ScriptSize(node *ScriptNode) (uint64, bool) {
	if node == nil || node.ptr == nil {
		return 0, false
	}
	var size cusize
	if !bool(C.miniscript_get_script_size(node.ptr, &size)) {
		return 0, false
	}
	return uint64(size), true
}

// Version returns the engine's version string. The engine owns the string;
// it is static and must not be freed.
func Version() string {
	return C.GoString(C.miniscript_version())
}
