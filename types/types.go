package types

import "fmt"

// Context selects the script dialect a miniscript is parsed under.
// Expressions are context-dependent: the same string may be valid in one
// context and rejected in the other due to different size limits, opcode
// availability and key formats.
type Context int32

const (
	// ContextWsh is the P2WSH (SegWit v0) dialect. Scripts are limited to
	// 10,000 bytes and keys are 33-byte compressed ECDSA keys.
	ContextWsh Context = 0
	// ContextTapscript is the Tapscript (SegWit v1) dialect. No overall
	// script size limit, keys are 32-byte x-only Schnorr keys.
	ContextTapscript Context = 1
)

func (c Context) String() string {
	switch c {
	case ContextWsh:
		return "wsh"
	case ContextTapscript:
		return "tapscript"
	default:
		return fmt.Sprintf("Context(%d)", int32(c))
	}
}

// Network selects the chain parameters (address prefixes, bech32 HRPs) used
// when encoding descriptor addresses.
type Network int32

const (
	NetworkMainnet Network = 0
	NetworkTestnet Network = 1
	NetworkSignet  Network = 2
	NetworkRegtest Network = 3
)

func (n Network) String() string {
	switch n {
	case NetworkMainnet:
		return "mainnet"
	case NetworkTestnet:
		return "testnet"
	case NetworkSignet:
		return "signet"
	case NetworkRegtest:
		return "regtest"
	default:
		return fmt.Sprintf("Network(%d)", int32(n))
	}
}

// Valid reports whether n is one of the four supported networks.
func (n Network) Valid() bool {
	return n >= NetworkMainnet && n <= NetworkRegtest
}

// Availability is the tri-state outcome of a satisfaction query.
// The numeric values match the native engine's enum and must not change.
type Availability int32

const (
	// AvailabilityNo means the required data is not present.
	AvailabilityNo Availability = 0
	// AvailabilityYes means all required data is present and a concrete
	// witness can be produced.
	AvailabilityYes Availability = 1
	// AvailabilityMaybe means a witness exists in principle but only
	// placeholder data is available. Used for size estimation.
	AvailabilityMaybe Availability = 2
)

func (a Availability) String() string {
	switch a {
	case AvailabilityNo:
		return "no"
	case AvailabilityYes:
		return "yes"
	case AvailabilityMaybe:
		return "maybe"
	default:
		return fmt.Sprintf("Availability(%d)", int32(a))
	}
}

// Rank orders availabilities as No < Maybe < Yes. A more capable satisfier
// must never produce a lower rank for the same script.
func (a Availability) Rank() int {
	switch a {
	case AvailabilityYes:
		return 2
	case AvailabilityMaybe:
		return 1
	default:
		return 0
	}
}

// Satisfier provides the data the native satisfaction algorithm cannot
// produce itself: signatures, timelock decisions and hash preimages.
//
// The engine calls these methods synchronously, on the goroutine that called
// Satisfy, zero or more times per call. All byte slices passed in are only
// valid for the duration of the method call; implementations must copy them
// if they want to retain them. Returned slices are copied by the trampoline
// before the method returns to its caller, so implementations may reuse
// buffers.
//
// Sign and the preimage methods return an Availability together with the
// signature/preimage bytes. Returning AvailabilityMaybe with nil bytes asks
// the engine to assume satisfiability for size estimation only.
type Satisfier interface {
	// Sign returns a signature for the given public key bytes.
	Sign(key []byte) (Availability, []byte)
	// CheckAfter reports whether the absolute timelock value is satisfied
	// in the caller's context.
	CheckAfter(value uint32) bool
	// CheckOlder reports whether the relative timelock value is satisfied
	// in the caller's context.
	CheckOlder(value uint32) bool
	// Sha256Preimage returns the preimage for a 32-byte SHA256 hash.
	Sha256Preimage(hash []byte) (Availability, []byte)
	// Ripemd160Preimage returns the preimage for a 20-byte RIPEMD160 hash.
	Ripemd160Preimage(hash []byte) (Availability, []byte)
	// Hash256Preimage returns the preimage for a 32-byte double-SHA256 hash.
	Hash256Preimage(hash []byte) (Availability, []byte)
	// Hash160Preimage returns the preimage for a 20-byte HASH160 hash.
	Hash160Preimage(hash []byte) (Availability, []byte)
}

// MemorySatisfier is a map-backed Satisfier. Populate the maps before
// passing it to Satisfy. The zero value is not usable; call
// NewMemorySatisfier.
type MemorySatisfier struct {
	// Signatures maps key bytes to signature bytes.
	Signatures map[string][]byte
	// AfterSatisfied holds the absolute timelock values considered final.
	AfterSatisfied map[uint32]bool
	// OlderSatisfied holds the relative timelock values considered final.
	OlderSatisfied map[uint32]bool
	// Preimage maps, keyed by the hash bytes.
	Sha256Preimages    map[string][]byte
	Ripemd160Preimages map[string][]byte
	Hash256Preimages   map[string][]byte
	Hash160Preimages   map[string][]byte
}

// NewMemorySatisfier creates an empty MemorySatisfier.
func NewMemorySatisfier() *MemorySatisfier {
	return &MemorySatisfier{
		Signatures:         make(map[string][]byte),
		AfterSatisfied:     make(map[uint32]bool),
		OlderSatisfied:     make(map[uint32]bool),
		Sha256Preimages:    make(map[string][]byte),
		Ripemd160Preimages: make(map[string][]byte),
		Hash256Preimages:   make(map[string][]byte),
		Hash160Preimages:   make(map[string][]byte),
	}
}

var _ Satisfier = (*MemorySatisfier)(nil)

func (s *MemorySatisfier) Sign(key []byte) (Availability, []byte) {
	return lookup(s.Signatures, key)
}

func (s *MemorySatisfier) CheckAfter(value uint32) bool {
	return s.AfterSatisfied[value]
}

func (s *MemorySatisfier) CheckOlder(value uint32) bool {
	return s.OlderSatisfied[value]
}

func (s *MemorySatisfier) Sha256Preimage(hash []byte) (Availability, []byte) {
	return lookup(s.Sha256Preimages, hash)
}

func (s *MemorySatisfier) Ripemd160Preimage(hash []byte) (Availability, []byte) {
	return lookup(s.Ripemd160Preimages, hash)
}

func (s *MemorySatisfier) Hash256Preimage(hash []byte) (Availability, []byte) {
	return lookup(s.Hash256Preimages, hash)
}

func (s *MemorySatisfier) Hash160Preimage(hash []byte) (Availability, []byte) {
	return lookup(s.Hash160Preimages, hash)
}

func lookup(m map[string][]byte, key []byte) (Availability, []byte) {
	if v, ok := m[string(key)]; ok {
		return AvailabilityYes, v
	}
	return AvailabilityNo, nil
}

// SatisfyResult is the outcome of a satisfaction attempt. When Availability
// is Yes, Stack holds a complete witness. When it is Maybe, Stack holds a
// best-effort stack containing placeholders, usable for size estimation
// only.
type SatisfyResult struct {
	Availability Availability
	// Stack is the witness stack, bottom element first. Each element is an
	// independent copy owned by the caller.
	Stack [][]byte
}
