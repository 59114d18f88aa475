package codec

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorSelectorsMatchSignatureHashes(t *testing.T) {
	require.Len(t, errorSelectors, len(contractABI.Errors))
	for name, abiErr := range contractABI.Errors {
		var want Selector
		copy(want[:], crypto.Keccak256([]byte(abiErr.Sig))[:4])
		assert.Equal(t, want, errorSelector(name), "error %s (%s)", name, abiErr.Sig)
	}
}

func TestDecodeRevertNoArgErrors(t *testing.T) {
	cases := map[string]ContractError{
		"DeprecatedApi":         new(DeprecatedApi),
		"InvalidProof":          new(InvalidProof),
		"NoChangeRequired":      new(NoChangeRequired),
		"OutdatedState":         new(OutdatedState),
		"ProverNotPermissioned": new(ProverNotPermissioned),
		"WrongStakeTableUsed":   new(WrongStakeTableUsed),
	}
	for name, want := range cases {
		sel := errorSelector(name)
		decoded, err := DecodeRevert(sel[:])
		require.NoError(t, err, name)
		assert.Equal(t, want, decoded, name)
		assert.Equal(t, name, decoded.ErrorName())
	}
}

func TestDecodeRevertAddressError(t *testing.T) {
	account := common.HexToAddress("0x00000000000000000000000000000000deadbeef")
	args, err := contractABI.Errors["OwnableUnauthorizedAccount"].Inputs.Pack(account)
	require.NoError(t, err)
	sel := errorSelector("OwnableUnauthorizedAccount")

	decoded, err := DecodeRevert(append(sel[:], args...))
	require.NoError(t, err)
	unauthorized, ok := decoded.(*OwnableUnauthorizedAccount)
	require.True(t, ok)
	assert.Equal(t, account, unauthorized.Account)
	assert.Contains(t, unauthorized.Error(), "0x00000000000000000000000000000000DeaDBeef")
}

func TestDecodeRevertProxiableUUID(t *testing.T) {
	slot := common.HexToHash("0x360894a13ba1a3210667c828492db98dca3e2076cc3735a920a3ca505d382bbc")
	args, err := contractABI.Errors["UUPSUnsupportedProxiableUUID"].Inputs.Pack(slot)
	require.NoError(t, err)
	sel := errorSelector("UUPSUnsupportedProxiableUUID")

	decoded, err := DecodeRevert(append(sel[:], args...))
	require.NoError(t, err)
	uups, ok := decoded.(*UUPSUnsupportedProxiableUUID)
	require.True(t, ok)
	assert.Equal(t, [32]byte(slot), uups.Slot)
}

func TestDecodeRevertErrorString(t *testing.T) {
	args, err := revertReasonArgs.Pack("stake table out of sync")
	require.NoError(t, err)

	decoded, err := DecodeRevert(append(revertReasonSelector[:], args...))
	require.NoError(t, err)
	reason, ok := decoded.(*RevertReason)
	require.True(t, ok)
	assert.Equal(t, "stake table out of sync", reason.Reason)
}

func TestDecodeRevertPanic(t *testing.T) {
	args, err := panicArgs.Pack(big.NewInt(0x11)) // arithmetic overflow
	require.NoError(t, err)

	decoded, err := DecodeRevert(append(panicSelector[:], args...))
	require.NoError(t, err)
	p, ok := decoded.(*Panic)
	require.True(t, ok)
	assert.EqualValues(t, 0x11, p.Code.Int64())
}

func TestDecodeRevertUnknownSelector(t *testing.T) {
	_, err := DecodeRevert([]byte{0x01, 0x02, 0x03, 0x04})
	var unknown *UnknownSelectorError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, Selector{0x01, 0x02, 0x03, 0x04}, unknown.Selector)
}

func TestDecodeRevertTrailingBytes(t *testing.T) {
	sel := errorSelector("InvalidProof")
	_, err := DecodeRevert(append(sel[:], 0x00))
	require.Error(t, err)
}
