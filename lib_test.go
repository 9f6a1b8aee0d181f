//go:build cgo

package miniscriptvm

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/policyvault/miniscriptvm/types"
)

const (
	testKeyA = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	testKeyB = "02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"
)

func TestMiniscriptLifecycle(t *testing.T) {
	expr := fmt.Sprintf("and_v(v:pk(%s),pk(%s))", testKeyA, testKeyB)
	ms, err := ParseMiniscript(expr, ContextWsh)
	require.NoError(t, err)

	require.Equal(t, ContextWsh, ms.Context())
	require.Equal(t, expr, ms.String())
	require.True(t, ms.IsValid())
	require.True(t, ms.IsSane())

	script, err := ms.Script()
	require.NoError(t, err)
	require.NotEmpty(t, script)

	ms.Close()
	ms.Close() // idempotent

	require.False(t, ms.IsValid())
	require.Equal(t, "", ms.String())
	_, err = ms.Script()
	require.ErrorIs(t, err, types.ErrClosed)
	_, err = ms.Satisfy(NewMemorySatisfier(), false)
	require.ErrorIs(t, err, types.ErrClosed)
	_, ok := ms.MaxSatisfactionSize()
	require.False(t, ok)
}

func TestMiniscriptParseError(t *testing.T) {
	ms, err := ParseMiniscript("pk(", ContextWsh)
	require.Error(t, err)
	require.Nil(t, ms)
}

func TestNilMiniscriptIsInert(t *testing.T) {
	var ms *Miniscript
	ms.Close()
	require.False(t, ms.IsValid())
	require.Equal(t, "", ms.String())
	_, err := ms.Script()
	require.ErrorIs(t, err, types.ErrClosed)
	_, ok := ms.TypeFlags()
	require.False(t, ok)
}

func TestMiniscriptSatisfy(t *testing.T) {
	ms, err := ParseMiniscript(fmt.Sprintf("pk(%s)", testKeyA), ContextWsh)
	require.NoError(t, err)
	defer ms.Close()

	sig := make([]byte, 72)
	sig[0] = 0x30
	sat := NewMemorySatisfier()
	sat.Signatures[string(mustHex(t, testKeyA))] = sig

	res, err := ms.Satisfy(sat, false)
	require.NoError(t, err)
	require.Equal(t, AvailabilityYes, res.Availability)
	require.Len(t, res.Stack, 1)
	require.Equal(t, sig, res.Stack[0])
}

func TestDescriptorLifecycle(t *testing.T) {
	d, err := ParseDescriptor(fmt.Sprintf("wpkh(%s)", testKeyA), NetworkMainnet)
	require.NoError(t, err)

	require.False(t, d.IsRange())
	require.True(t, d.IsSolvable())
	require.Contains(t, d.String(), "#")

	addr, ok := d.AddressAt(0, NetworkMainnet)
	require.True(t, ok)
	require.NotEmpty(t, addr)

	d.Close()
	d.Close()

	require.False(t, d.IsRange())
	require.Equal(t, "", d.String())
	_, ok = d.ExpandAt(0)
	require.False(t, ok)
	_, err = d.PubKeysAt(0)
	require.ErrorIs(t, err, types.ErrClosed)
}

func TestNilDescriptorIsInert(t *testing.T) {
	var d *Descriptor
	d.Close()
	require.False(t, d.IsSolvable())
	require.Equal(t, "", d.String())
	_, ok := d.AddressAt(0, NetworkMainnet)
	require.False(t, ok)
}

func TestVersionStrings(t *testing.T) {
	v, err := Version()
	require.NoError(t, err)
	require.NotEmpty(t, v)

	dv, err := DescriptorVersion()
	require.NoError(t, err)
	require.NotEmpty(t, dv)
}

func TestDescriptorChecksumDeterministic(t *testing.T) {
	desc := fmt.Sprintf("wpkh(%s)", testKeyA)
	first, err := DescriptorChecksum(desc)
	require.NoError(t, err)
	second, err := DescriptorChecksum(desc)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	out, err := hex.DecodeString(s)
	require.NoError(t, err)
	return out
}
