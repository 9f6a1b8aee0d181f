// Package miniscriptvm provides Go bindings to the native miniscript and
// descriptor engine (libmsengine).
//
// The engine owns the policy-language type system, the witness-satisfaction
// solver and the descriptor/key-derivation layer; this package owns the
// boundary: handle lifecycle, result and error propagation, the satisfier
// callback trampoline and the guard around the engine's process-wide chain
// parameter state. Behavior is delegated bit-for-bit to the engine; nothing
// is reimplemented on the Go side.
//
// Handles are single-owner resources. Close them exactly once; a handle is
// safe to share read-only across goroutines, but Close must not run
// concurrently with any other call on the same handle.
package miniscriptvm

import (
	"github.com/policyvault/miniscriptvm/internal/api"
	"github.com/policyvault/miniscriptvm/types"
)

// Re-exports so most callers only need this package.

type (
	// Context selects the script dialect, see types.Context.
	Context = types.Context
	// Network selects chain parameters for address encoding.
	Network = types.Network
	// Availability is the tri-state satisfaction outcome.
	Availability = types.Availability
	// Satisfier supplies signatures, timelock decisions and preimages to
	// the engine's satisfaction search.
	Satisfier = types.Satisfier
	// MemorySatisfier is a map-backed Satisfier.
	MemorySatisfier = types.MemorySatisfier
	// SatisfyResult is the outcome of Satisfy.
	SatisfyResult = types.SatisfyResult
)

const (
	ContextWsh       = types.ContextWsh
	ContextTapscript = types.ContextTapscript

	NetworkMainnet = types.NetworkMainnet
	NetworkTestnet = types.NetworkTestnet
	NetworkSignet  = types.NetworkSignet
	NetworkRegtest = types.NetworkRegtest

	AvailabilityNo    = types.AvailabilityNo
	AvailabilityYes   = types.AvailabilityYes
	AvailabilityMaybe = types.AvailabilityMaybe
)

// NewMemorySatisfier creates an empty MemorySatisfier.
func NewMemorySatisfier() *MemorySatisfier { return types.NewMemorySatisfier() }

// Miniscript is a parsed, type-valid miniscript expression. It exclusively
// owns one engine-side tree; release it with Close.
type Miniscript struct {
	node *api.ScriptNode
	ctx  types.Context
}

// ParseMiniscript parses a miniscript expression string under the given
// dialect. A returned Miniscript is guaranteed type-valid: inputs that parse
// syntactically but fail type inference are rejected with types.ErrType.
func ParseMiniscript(input string, ctx Context) (*Miniscript, error) {
	node, err := api.ParseScript(input, ctx)
	if err != nil {
		return nil, err
	}
	return &Miniscript{node: node, ctx: ctx}, nil
}

// ParseMiniscriptBytes parses a raw serialized script into a miniscript
// tree.
func ParseMiniscriptBytes(script []byte, ctx Context) (*Miniscript, error) {
	node, err := api.ParseScriptBytes(script, ctx)
	if err != nil {
		return nil, err
	}
	return &Miniscript{node: node, ctx: ctx}, nil
}

// Close releases the engine memory owned by this handle. Close is
// idempotent and a no-op on nil, but must not run concurrently with other
// calls on the same handle.
func (m *Miniscript) Close() {
	if m == nil {
		return
	}
	api.FreeScriptNode(m.node)
	m.node = nil
}

// Context returns the dialect the expression was parsed under.
func (m *Miniscript) Context() Context { return m.ctx }

// String renders the canonical textual form. Re-parsing it yields a tree
// with identical type flags and script bytes. Returns "" on a closed
// handle.
func (m *Miniscript) String() string {
	if m == nil {
		return ""
	}
	s, err := api.ScriptToString(m.node)
	if err != nil {
		return ""
	}
	return s
}

// Script returns the canonical serialized script.
func (m *Miniscript) Script() ([]byte, error) {
	if m == nil || m.node == nil {
		return nil, types.ErrClosed
	}
	return api.ScriptToBytes(m.node)
}

// IsValid reports whether the tree type-checks. Always true for handles
// produced by ParseMiniscript.
func (m *Miniscript) IsValid() bool { return m != nil && api.ScriptIsValid(m.node) }

// IsSane reports full sanity: valid, non-malleable, within resource limits,
// no duplicate keys, no timelock mixing.
func (m *Miniscript) IsSane() bool { return m != nil && api.ScriptIsSane(m.node) }

// IsNonMalleable reports whether all satisfactions are non-malleable.
func (m *Miniscript) IsNonMalleable() bool { return m != nil && api.ScriptIsNonMalleable(m.node) }

// NeedsSignature reports whether every satisfaction requires a signature.
func (m *Miniscript) NeedsSignature() bool { return m != nil && api.ScriptNeedsSignature(m.node) }

// HasTimelockMix reports whether the tree mixes height- and time-based
// locks in a way that can never be satisfied together.
func (m *Miniscript) HasTimelockMix() bool { return m != nil && api.ScriptHasTimelockMix(m.node) }

// IsValidTopLevel reports whether the expression is a valid top-level
// script (type B).
func (m *Miniscript) IsValidTopLevel() bool { return m != nil && api.ScriptIsValidTopLevel(m.node) }

// CheckOpsLimit reports whether the script stays within the dialect's
// static ops ceiling.
func (m *Miniscript) CheckOpsLimit() bool { return m != nil && api.ScriptCheckOpsLimit(m.node) }

// CheckStackSize reports whether satisfaction stays within the stack size
// ceiling.
func (m *Miniscript) CheckStackSize() bool { return m != nil && api.ScriptCheckStackSize(m.node) }

// CheckDuplicateKey reports whether the tree is free of duplicate keys.
func (m *Miniscript) CheckDuplicateKey() bool {
	return m != nil && api.ScriptCheckDuplicateKey(m.node)
}

// ValidSatisfactions reports whether all satisfactions the tree admits are
// consensus-valid.
func (m *Miniscript) ValidSatisfactions() bool {
	return m != nil && api.ScriptValidSatisfactions(m.node)
}

// TypeFlags returns the type property string ("Bdems" style); ok is false
// when the engine cannot type the tree.
func (m *Miniscript) TypeFlags() (string, bool) {
	if m == nil {
		return "", false
	}
	return api.ScriptTypeFlags(m.node)
}

// MaxSatisfactionSize returns the maximum witness size in bytes; ok is
// false when it is not statically computable for this tree.
func (m *Miniscript) MaxSatisfactionSize() (uint64, bool) {
	if m == nil {
		return 0, false
	}
	return api.ScriptMaxSatisfactionSize(m.node)
}

// Ops returns the maximum ops count during execution.
func (m *Miniscript) Ops() (uint32, bool) {
	if m == nil {
		return 0, false
	}
	return api.ScriptOps(m.node)
}

// StaticOps returns the static ops count (Tapscript accounting).
func (m *Miniscript) StaticOps() (uint32, bool) {
	if m == nil {
		return 0, false
	}
	return api.ScriptStaticOps(m.node)
}

// StackSize returns the maximum satisfaction stack size.
func (m *Miniscript) StackSize() (uint32, bool) {
	if m == nil {
		return 0, false
	}
	return api.ScriptStackSize(m.node)
}

// ExecStackSize returns the maximum execution stack size.
func (m *Miniscript) ExecStackSize() (uint32, bool) {
	if m == nil {
		return 0, false
	}
	return api.ScriptExecStackSize(m.node)
}

// ScriptSize returns the serialized script size in bytes.
func (m *Miniscript) ScriptSize() (uint64, bool) {
	if m == nil {
		return 0, false
	}
	return api.ScriptSize(m.node)
}

// Satisfy searches for a witness, answering the engine's signature,
// timelock and preimage queries through the satisfier. Each call may use
// its own satisfier; concurrent Satisfy calls on the same handle are safe
// as long as each supplies its own.
//
// With nonmalleableOnly, the search is restricted to satisfactions that are
// provably unique; if only malleable ones exist the result is
// AvailabilityNo.
func (m *Miniscript) Satisfy(satisfier Satisfier, nonmalleableOnly bool) (*SatisfyResult, error) {
	if m == nil || m.node == nil {
		return nil, types.ErrClosed
	}
	return api.Satisfy(m.node, satisfier, nonmalleableOnly)
}

// Descriptor is a parsed output descriptor together with the key material
// collected during parsing. It may be ranged (contain a wildcard index).
// Release it with Close.
type Descriptor struct {
	node *api.DescriptorNode
}

// ParseDescriptor parses a descriptor string under the given network's
// chain parameters. Network selection and parsing happen as one atomic
// unit; concurrent parses under different networks never observe each
// other's parameters.
func ParseDescriptor(descriptor string, network Network) (*Descriptor, error) {
	node, err := api.ParseDescriptor(descriptor, network)
	if err != nil {
		return nil, err
	}
	return &Descriptor{node: node}, nil
}

// Close releases the engine memory owned by this handle. Idempotent; no-op
// on nil.
func (d *Descriptor) Close() {
	if d == nil {
		return
	}
	api.FreeDescriptorNode(d.node)
	d.node = nil
}

// IsRange reports whether the descriptor contains a wildcard index.
func (d *Descriptor) IsRange() bool { return d != nil && api.DescriptorIsRange(d.node) }

// IsSolvable reports whether the descriptor carries everything needed to
// sign except private keys.
func (d *Descriptor) IsSolvable() bool { return d != nil && api.DescriptorIsSolvable(d.node) }

// String renders the canonical descriptor string including its checksum.
// Returns "" on a closed handle.
func (d *Descriptor) String() string {
	if d == nil {
		return ""
	}
	s, err := api.DescriptorToString(d.node)
	if err != nil {
		return ""
	}
	return s
}

// ExpandAt derives the concrete script at the given index. The index is
// ignored for non-ranged descriptors. ok is false when derivation material
// is incomplete or the index is out of the descriptor's domain.
func (d *Descriptor) ExpandAt(index uint32) ([]byte, bool) {
	if d == nil {
		return nil, false
	}
	return api.DescriptorExpand(d.node, index)
}

// AddressAt derives the script at the index and encodes it as an address
// under the requested network. ok is false when the script shape has no
// address encoding.
func (d *Descriptor) AddressAt(index uint32, network Network) (string, bool) {
	if d == nil {
		return "", false
	}
	return api.DescriptorAddress(d.node, index, network)
}

// PubKeysAt returns the serialized public keys visible after expansion at
// the index (33 bytes compressed, or 32 bytes x-only under Tapscript). An
// empty slice means the descriptor carries no keys; it is not an error.
func (d *Descriptor) PubKeysAt(index uint32) ([][]byte, error) {
	if d == nil || d.node == nil {
		return nil, types.ErrClosed
	}
	return api.DescriptorPubKeys(d.node, index)
}

// ScriptSize returns the serialized script size; ok is false when it is not
// statically computable.
func (d *Descriptor) ScriptSize() (int64, bool) {
	if d == nil {
		return 0, false
	}
	return api.DescriptorScriptSize(d.node)
}

// MaxSatisfactionWeight returns the maximum weight of a satisfying input.
// useMaxSig assumes worst-case signature sizes.
func (d *Descriptor) MaxSatisfactionWeight(useMaxSig bool) (int64, bool) {
	if d == nil {
		return 0, false
	}
	return api.DescriptorMaxSatisfactionWeight(d.node, useMaxSig)
}
