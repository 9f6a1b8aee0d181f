//go:build cgo

package api

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/policyvault/miniscriptvm/types"
)

func TestWithNetworkRejectsUnknown(t *testing.T) {
	err := withNetwork(types.Network(99), func() {
		t.Fatal("must not run under an unknown network")
	})
	require.ErrorIs(t, err, types.ErrInvalidArgument)
}

// Concurrent operations under different networks must never leak one
// goroutine's chain parameters into another's parse or address encoding.
func TestNetworkIsolationConcurrent(t *testing.T) {
	desc := fmt.Sprintf("wpkh(%s)", keyA)

	prefixes := map[types.Network]string{
		types.NetworkMainnet: "bc1",
		types.NetworkTestnet: "tb1",
		types.NetworkRegtest: "bcrt1",
	}

	const perNetwork = 350
	var wg sync.WaitGroup
	errs := make(chan error, len(prefixes)*perNetwork)

	for network, prefix := range prefixes {
		for i := 0; i < perNetwork; i++ {
			wg.Add(1)
			go func(network types.Network, prefix string) {
				defer wg.Done()
				node, err := ParseDescriptor(desc, network)
				if err != nil {
					errs <- err
					return
				}
				defer FreeDescriptorNode(node)
				addr, ok := DescriptorAddress(node, 0, network)
				if !ok {
					errs <- fmt.Errorf("no address for %v", network)
					return
				}
				if !strings.HasPrefix(addr, prefix) {
					errs <- fmt.Errorf("%v address %q does not start with %q", network, addr, prefix)
				}
			}(network, prefix)
		}
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}
