package bls

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDeriveMasterSKKnownAnswer and TestDeriveChildSKKnownAnswer check
// derive_master_SK and derive_child_SK (hardened) against the published
// EIP-2333 test vector built from the 64-byte seed
// c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04.
func TestDeriveMasterSKKnownAnswer(t *testing.T) {
	seed, err := hex.DecodeString("c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04")
	require.NoError(t, err)

	master, err := DeriveMasterSK(seed)
	require.NoError(t, err)

	want := "0d7359d57963ab8fbbde1852dcf553fedbc31f464d80ee7d40ae683122b45070"
	require.Equal(t, want, hex.EncodeToString(master.ToBytes()))
}

func TestDeriveChildSKKnownAnswer(t *testing.T) {
	seed, err := hex.DecodeString("c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04")
	require.NoError(t, err)

	master, err := DeriveMasterSK(seed)
	require.NoError(t, err)

	child, err := DeriveChildSK(master, 0)
	require.NoError(t, err)

	want := "2d18bd6c14e6d15bf8b5085c9b74f3daae3b03cc2014770a599d8c1539e50f8e"
	require.Equal(t, want, hex.EncodeToString(child.ToBytes()))
}

func TestDeriveMasterSKIsDeterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, 32)
	sk1, err := DeriveMasterSK(seed)
	require.NoError(t, err)
	sk2, err := DeriveMasterSK(seed)
	require.NoError(t, err)
	require.Equal(t, sk1.ToBytes(), sk2.ToBytes())
}

func TestDeriveMasterSKMatchesKeyGen(t *testing.T) {
	seed := bytes.Repeat([]byte{0x07}, 32)
	viaMaster, err := DeriveMasterSK(seed)
	require.NoError(t, err)
	viaKeyGen, err := KeyGen(seed)
	require.NoError(t, err)
	require.Equal(t, viaMaster.ToBytes(), viaKeyGen.ToBytes())
}

func TestDeriveChildSKIsDeterministicAndIndexSensitive(t *testing.T) {
	master, err := DeriveMasterSK(bytes.Repeat([]byte{0x11}, 32))
	require.NoError(t, err)

	child0a, err := DeriveChildSK(master, 0)
	require.NoError(t, err)
	child0b, err := DeriveChildSK(master, 0)
	require.NoError(t, err)
	require.Equal(t, child0a.ToBytes(), child0b.ToBytes())

	child1, err := DeriveChildSK(master, 1)
	require.NoError(t, err)
	require.NotEqual(t, child0a.ToBytes(), child1.ToBytes())
}

func TestDeriveChildSKDiffersFromMaster(t *testing.T) {
	master, err := DeriveMasterSK(bytes.Repeat([]byte{0x22}, 32))
	require.NoError(t, err)
	child, err := DeriveChildSK(master, 0)
	require.NoError(t, err)
	require.NotEqual(t, master.ToBytes(), child.ToBytes())
}

func TestDeriveChildPKUnhardenedMatchesSK(t *testing.T) {
	master, err := DeriveMasterSK(bytes.Repeat([]byte{0x33}, 32))
	require.NoError(t, err)

	childSK, err := DeriveChildSKUnhardened(master, 5)
	require.NoError(t, err)

	childPK, err := DeriveChildPKUnhardened(master.PublicKey(), 5)
	require.NoError(t, err)

	require.Equal(t, childSK.PublicKey().ToCompressed(), childPK.ToCompressed())
}

func TestDeriveChildPKUnhardenedIndexSensitive(t *testing.T) {
	master, err := DeriveMasterSK(bytes.Repeat([]byte{0x44}, 32))
	require.NoError(t, err)

	pk5, err := DeriveChildPKUnhardened(master.PublicKey(), 5)
	require.NoError(t, err)
	pk6, err := DeriveChildPKUnhardened(master.PublicKey(), 6)
	require.NoError(t, err)
	require.NotEqual(t, pk5.ToCompressed(), pk6.ToCompressed())
}
