package api

/*
#include "bindings.h"
*/
import "C"

import (
	"sync"

	"github.com/policyvault/miniscriptvm/types"
)

// The engine reads chain parameters (address prefixes, bech32 HRPs) through
// a process-wide global rather than taking them as an argument. networkMu
// serializes every operation that sets or depends on that global: the lock
// is held across both the select and the dependent computation, never just
// the select, so no goroutine can observe another goroutine's network
// mid-operation. The lock never escapes this file.
var networkMu sync.Mutex

// withNetwork selects the chain parameters for the given network and runs fn
// while they are guaranteed to stay selected.
func withNetwork(network types.Network, fn func()) error {
	if !network.Valid() {
		return types.InvalidArgument("unknown network")
	}
	networkMu.Lock()
	defer networkMu.Unlock()
	C.descriptor_select_params(C.DescriptorNetwork(network))
	fn()
	return nil
}

// withParamsLock runs fn under the chain-parameter lock without selecting.
// For engine calls that switch the global themselves
// (descriptor_parse_with_network): they still must not interleave with a
// select-then-use window elsewhere.
func withParamsLock(network types.Network, fn func()) error {
	if !network.Valid() {
		return types.InvalidArgument("unknown network")
	}
	networkMu.Lock()
	defer networkMu.Unlock()
	fn()
	return nil
}
