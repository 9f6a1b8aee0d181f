package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContextString(t *testing.T) {
	require.Equal(t, "wsh", ContextWsh.String())
	require.Equal(t, "tapscript", ContextTapscript.String())
	require.Equal(t, "Context(7)", Context(7).String())
}

func TestNetworkValid(t *testing.T) {
	require.True(t, NetworkMainnet.Valid())
	require.True(t, NetworkTestnet.Valid())
	require.True(t, NetworkSignet.Valid())
	require.True(t, NetworkRegtest.Valid())
	require.False(t, Network(-1).Valid())
	require.False(t, Network(4).Valid())
}

func TestNetworkString(t *testing.T) {
	require.Equal(t, "mainnet", NetworkMainnet.String())
	require.Equal(t, "regtest", NetworkRegtest.String())
	require.Equal(t, "Network(9)", Network(9).String())
}

func TestAvailabilityRankOrdering(t *testing.T) {
	require.Less(t, AvailabilityNo.Rank(), AvailabilityMaybe.Rank())
	require.Less(t, AvailabilityMaybe.Rank(), AvailabilityYes.Rank())
}

func TestAvailabilityString(t *testing.T) {
	require.Equal(t, "no", AvailabilityNo.String())
	require.Equal(t, "yes", AvailabilityYes.String())
	require.Equal(t, "maybe", AvailabilityMaybe.String())
}

func TestMemorySatisfierLookups(t *testing.T) {
	s := NewMemorySatisfier()
	key := []byte{0x02, 0x11, 0x22}
	sig := []byte{0x30, 0x44}
	s.Signatures[string(key)] = sig

	avail, got := s.Sign(key)
	require.Equal(t, AvailabilityYes, avail)
	require.Equal(t, sig, got)

	avail, got = s.Sign([]byte{0x03})
	require.Equal(t, AvailabilityNo, avail)
	require.Nil(t, got)
}

func TestMemorySatisfierTimelocks(t *testing.T) {
	s := NewMemorySatisfier()
	s.AfterSatisfied[1000] = true
	s.OlderSatisfied[144] = true

	require.True(t, s.CheckAfter(1000))
	require.False(t, s.CheckAfter(1001))
	require.True(t, s.CheckOlder(144))
	require.False(t, s.CheckOlder(145))
}

func TestMemorySatisfierPreimages(t *testing.T) {
	s := NewMemorySatisfier()
	hash := make([]byte, 32)
	hash[0] = 0xab
	preimage := []byte("secret")
	s.Sha256Preimages[string(hash)] = preimage

	avail, got := s.Sha256Preimage(hash)
	require.Equal(t, AvailabilityYes, avail)
	require.Equal(t, preimage, got)

	avail, _ = s.Ripemd160Preimage(hash)
	require.Equal(t, AvailabilityNo, avail)
	avail, _ = s.Hash256Preimage(hash)
	require.Equal(t, AvailabilityNo, avail)
	avail, _ = s.Hash160Preimage(hash)
	require.Equal(t, AvailabilityNo, avail)
}
