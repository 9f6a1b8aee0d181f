//go:build !cgo

package api

import (
	"errors"

	"github.com/policyvault/miniscriptvm/types"
)

// This file provides stub implementations for everything that depends on the
// native engine, allowing the package to compile when CGo is disabled. Only
// Version-style queries work without CGo; see internal/ffi.

var errNoCgo = errors.New("miniscriptvm compiled without CGo support")

// ScriptNode is a stub for non-CGo builds.
type ScriptNode struct {
	ctx types.Context
}

// DescriptorNode is a stub for non-CGo builds.
type DescriptorNode struct{}

func (n *ScriptNode) Context() types.Context { return n.ctx }

func ParseScript(input string, ctx types.Context) (*ScriptNode, error) {
	return nil, errNoCgo
}

func ParseScriptBytes(script []byte, ctx types.Context) (*ScriptNode, error) {
	return nil, errNoCgo
}

func FreeScriptNode(node *ScriptNode) {}

func ScriptToString(node *ScriptNode) (string, error) { return "", errNoCgo }
func ScriptToBytes(node *ScriptNode) ([]byte, error)  { return nil, errNoCgo }

func ScriptIsValid(node *ScriptNode) bool            { return false }
func ScriptIsSane(node *ScriptNode) bool             { return false }
func ScriptIsNonMalleable(node *ScriptNode) bool     { return false }
func ScriptNeedsSignature(node *ScriptNode) bool     { return false }
func ScriptHasTimelockMix(node *ScriptNode) bool     { return false }
func ScriptIsValidTopLevel(node *ScriptNode) bool    { return false }
func ScriptCheckOpsLimit(node *ScriptNode) bool      { return false }
func ScriptCheckStackSize(node *ScriptNode) bool     { return false }
func ScriptCheckDuplicateKey(node *ScriptNode) bool  { return false }
func ScriptValidSatisfactions(node *ScriptNode) bool { return false }

func ScriptTypeFlags(node *ScriptNode) (string, bool)           { return "", false }
func ScriptMaxSatisfactionSize(node *ScriptNode) (uint64, bool) { return 0, false }
func ScriptOps(node *ScriptNode) (uint32, bool)                 { return 0, false }
func ScriptStaticOps(node *ScriptNode) (uint32, bool)           { return 0, false }
func ScriptStackSize(node *ScriptNode) (uint32, bool)           { return 0, false }
func ScriptExecStackSize(node *ScriptNode) (uint32, bool)       { return 0, false }
func ScriptSize(node *ScriptNode) (uint64, bool)                { return 0, false }

func Satisfy(node *ScriptNode, satisfier types.Satisfier, nonmalleableOnly bool) (*types.SatisfyResult, error) {
	return nil, errNoCgo
}

func ParseDescriptor(descriptor string, network types.Network) (*DescriptorNode, error) {
	return nil, errNoCgo
}

func FreeDescriptorNode(node *DescriptorNode) {}

func DescriptorIsRange(node *DescriptorNode) bool    { return false }
func DescriptorIsSolvable(node *DescriptorNode) bool { return false }

func DescriptorToString(node *DescriptorNode) (string, error) { return "", errNoCgo }

func DescriptorExpand(node *DescriptorNode, index uint32) ([]byte, bool) { return nil, false }

func DescriptorAddress(node *DescriptorNode, index uint32, network types.Network) (string, bool) {
	return "", false
}

func DescriptorPubKeys(node *DescriptorNode, index uint32) ([][]byte, error) {
	return nil, errNoCgo
}

func DescriptorScriptSize(node *DescriptorNode) (int64, bool) { return 0, false }

func DescriptorMaxSatisfactionWeight(node *DescriptorNode, useMaxSig bool) (int64, bool) {
	return 0, false
}

func DescriptorChecksum(descriptor string) (string, error) { return "", errNoCgo }

func Version() string           { return "" }
func DescriptorVersion() string { return "" }
