package api

/*
#include <stdlib.h>
#include "bindings.h"

// forward declarations of the gateway functions (callbacks_cgo.go)
MiniscriptAvailability cSign_cgo(void *ctx, const uint8_t *key, size_t key_len, uint8_t **sig_out, size_t *sig_len_out);
bool cCheckAfter_cgo(void *ctx, uint32_t value);
bool cCheckOlder_cgo(void *ctx, uint32_t value);
MiniscriptAvailability cSatSha256_cgo(void *ctx, const uint8_t *hash, size_t hash_len, uint8_t **out, size_t *len_out);
MiniscriptAvailability cSatRipemd160_cgo(void *ctx, const uint8_t *hash, size_t hash_len, uint8_t **out, size_t *len_out);
MiniscriptAvailability cSatHash256_cgo(void *ctx, const uint8_t *hash, size_t hash_len, uint8_t **out, size_t *len_out);
MiniscriptAvailability cSatHash160_cgo(void *ctx, const uint8_t *hash, size_t hash_len, uint8_t **out, size_t *len_out);

// The engine's callback context is a void*. We never store a real pointer in
// it, only a registry id, so the conversions below are integer casts.
static void *satisfier_id_to_ptr(uintptr_t id) { return (void *)id; }
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/policyvault/miniscriptvm/types"
)

// Note: all exports live in this file; the gateway definitions must sit in a
// separate file because //export and C function bodies cannot share one.

// sigPlaceholderLen is the size of the signature stand-in used when a
// satisfier answers Maybe without bytes. 72 bytes is the maximum DER ECDSA
// signature length including the sighash byte, so size estimation is an
// upper bound.
const sigPlaceholderLen = 72

// satisfierState carries one Satisfy call's satisfier plus the first panic
// captured in a trampoline. Panics must not unwind into the engine; they are
// recorded here and surfaced after miniscript_satisfy returns.
type satisfierState struct {
	sat types.Satisfier

	mu       sync.Mutex
	panicMsg string
}

func (s *satisfierState) recordPanic(rec any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.panicMsg == "" {
		s.panicMsg = fmt.Sprintf("%v", rec)
	}
}

func (s *satisfierState) panicked() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.panicMsg, s.panicMsg != ""
}

// Registry mapping the void* context crossing the boundary to Go state.
// Callback tables are valid for a single Satisfy call; entries are removed
// as soon as the native call returns.
var (
	satisfierMu  sync.Mutex
	satisfierSeq uintptr
	satisfiers   = make(map[uintptr]*satisfierState)
)

func registerSatisfier(sat types.Satisfier) (uintptr, *satisfierState, func()) {
	state := &satisfierState{sat: sat}
	satisfierMu.Lock()
	satisfierSeq++
	id := satisfierSeq
	satisfiers[id] = state
	satisfierMu.Unlock()
	return id, state, func() {
		satisfierMu.Lock()
		delete(satisfiers, id)
		satisfierMu.Unlock()
	}
}

func lookupSatisfier(ctx unsafe.Pointer) *satisfierState {
	satisfierMu.Lock()
	defer satisfierMu.Unlock()
	return satisfiers[uintptr(ctx)]
}

// Satisfy runs the engine's witness search over the node, answering its
// oracle queries through the given satisfier. The callback table is borrowed
// by the engine only for the duration of this call.
func Satisfy(node *ScriptNode, satisfier types.Satisfier, nonmalleableOnly bool) (*types.SatisfyResult, error) {
	if node == nil || node.ptr == nil {
		return nil, types.InvalidArgument("nil script node")
	}
	if satisfier == nil {
		return &types.SatisfyResult{Availability: types.AvailabilityNo},
			fmt.Errorf("%w: satisfy requires a callback table", types.ErrCallbackUnavailable)
	}

	id, state, unregister := registerSatisfier(satisfier)
	defer unregister()

	callbacks := C.SatisfierCallbacks{
		host_context:           C.satisfier_id_to_ptr(C.uintptr_t(id)),
		sign_callback:          C.SignCallback(C.cSign_cgo),
		check_after_callback:   C.CheckAfterCallback(C.cCheckAfter_cgo),
		check_older_callback:   C.CheckOlderCallback(C.cCheckOlder_cgo),
		sat_sha256_callback:    C.SatHashCallback(C.cSatSha256_cgo),
		sat_ripemd160_callback: C.SatHashCallback(C.cSatRipemd160_cgo),
		sat_hash256_callback:   C.SatHashCallback(C.cSatHash256_cgo),
		sat_hash160_callback:   C.SatHashCallback(C.cSatHash160_cgo),
	}

	res := C.miniscript_satisfy(node.ptr, &callbacks, cbool(nonmalleableOnly))
	defer C.miniscript_satisfaction_result_free(&res)

	if msg, ok := state.panicked(); ok {
		return nil, fmt.Errorf("%w: panic in satisfier callback: %s", types.ErrUnknown, msg)
	}
	if res.error_message != nil {
		// owned by the result, released by miniscript_satisfaction_result_free
		return nil, types.ClassifyEngineError(C.GoString(res.error_message))
	}

	out := &types.SatisfyResult{Availability: types.Availability(res.availability)}
	if res.stack != nil && res.stack_count > 0 {
		count := int(res.stack_count)
		elems := unsafe.Slice(res.stack, count)
		sizes := unsafe.Slice(res.stack_sizes, count)
		out.Stack = make([][]byte, 0, count)
		for i := 0; i < count; i++ {
			out.Stack = append(out.Stack, copyBytes(elems[i], sizes[i]))
		}
	}
	return out, nil
}

// recoverPanic turns a panic in a trampoline into the NO result code after
// recording it for the Satisfy caller. Panics must never unwind into the
// engine.
func recoverPanic(ctx unsafe.Pointer, ret *C.MiniscriptAvailability) {
	if rec := recover(); rec != nil {
		if state := lookupSatisfier(ctx); state != nil {
			state.recordPanic(rec)
		}
		*ret = C.MINISCRIPT_AVAILABILITY_NO
	}
}

// recoverPanicBool is recoverPanic for the boolean timelock slots.
func recoverPanicBool(ctx unsafe.Pointer, ret *cbool) {
	if rec := recover(); rec != nil {
		if state := lookupSatisfier(ctx); state != nil {
			state.recordPanic(rec)
		}
		*ret = cbool(false)
	}
}

// writeOut copies data into a malloc'd buffer for the engine, which frees it
// after copying. A nil/empty slice leaves the out-params as a safe empty
// value.
func writeOut(data []byte, out *cu8_ptr, lenOut *cusize) {
	if out == nil || lenOut == nil {
		return
	}
	if len(data) == 0 {
		*out = nil
		*lenOut = 0
		return
	}
	*out = mallocBytes(data)
	*lenOut = cusize(len(data))
}

//export cSign
func cSign(ctx unsafe.Pointer, key cu8_ptr, keyLen cusize, sigOut *cu8_ptr, sigLenOut *cusize) (ret C.MiniscriptAvailability) {
	defer recoverPanic(ctx, &ret)

	state := lookupSatisfier(ctx)
	if state == nil {
		return C.MINISCRIPT_AVAILABILITY_NO
	}
	avail, sig := state.sat.Sign(copyBytes(key, keyLen))
	if avail == types.AvailabilityMaybe && len(sig) == 0 {
		// keep Maybe sized for witness estimation
		sig = make([]byte, sigPlaceholderLen)
	}
	if avail != types.AvailabilityNo {
		writeOut(sig, sigOut, sigLenOut)
	}
	return C.MiniscriptAvailability(avail)
}

//export cCheckAfter
func cCheckAfter(ctx unsafe.Pointer, value cu32) (ret cbool) {
	defer recoverPanicBool(ctx, &ret)

	state := lookupSatisfier(ctx)
	if state == nil {
		return cbool(false)
	}
	return cbool(state.sat.CheckAfter(uint32(value)))
}

//export cCheckOlder
func cCheckOlder(ctx unsafe.Pointer, value cu32) (ret cbool) {
	defer recoverPanicBool(ctx, &ret)

	state := lookupSatisfier(ctx)
	if state == nil {
		return cbool(false)
	}
	return cbool(state.sat.CheckOlder(uint32(value)))
}

// satHash dispatches one of the four preimage slots. Yes with an empty
// preimage degrades to an explicit empty buffer; Maybe legitimately carries
// no bytes.
func satHash(ctx unsafe.Pointer, hash cu8_ptr, hashLen cusize, out *cu8_ptr, lenOut *cusize,
	f func(types.Satisfier, []byte) (types.Availability, []byte),
) C.MiniscriptAvailability {
	state := lookupSatisfier(ctx)
	if state == nil {
		return C.MINISCRIPT_AVAILABILITY_NO
	}
	avail, preimage := f(state.sat, copyBytes(hash, hashLen))
	if avail == types.AvailabilityYes {
		writeOut(preimage, out, lenOut)
	}
	return C.MiniscriptAvailability(avail)
}

//export cSatSha256
func cSatSha256(ctx unsafe.Pointer, hash cu8_ptr, hashLen cusize, out *cu8_ptr, lenOut *cusize) (ret C.MiniscriptAvailability) {
	defer recoverPanic(ctx, &ret)
	return satHash(ctx, hash, hashLen, out, lenOut, types.Satisfier.Sha256Preimage)
}

//export cSatRipemd160
func cSatRipemd160(ctx unsafe.Pointer, hash cu8_ptr, hashLen cusize, out *cu8_ptr, lenOut *cusize) (ret C.MiniscriptAvailability) {
	defer recoverPanic(ctx, &ret)
	return satHash(ctx, hash, hashLen, out, lenOut, types.Satisfier.Ripemd160Preimage)
}

//export cSatHash256
func cSatHash256(ctx unsafe.Pointer, hash cu8_ptr, hashLen cusize, out *cu8_ptr, lenOut *cusize) (ret C.MiniscriptAvailability) {
	defer recoverPanic(ctx, &ret)
	return satHash(ctx, hash, hashLen, out, lenOut, types.Satisfier.Hash256Preimage)
}

//export cSatHash160
func cSatHash160(ctx unsafe.Pointer, hash cu8_ptr, hashLen cusize, out *cu8_ptr, lenOut *cusize) (ret C.MiniscriptAvailability) {
	defer recoverPanic(ctx, &ret)
	return satHash(ctx, hash, hashLen, out, lenOut, types.Satisfier.Hash160Preimage)
}
