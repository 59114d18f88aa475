package codec

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ContractError is a typed on-chain revert decoded from revert data. Every
// custom error of the contract interface implements it, as do the standard
// Error(string) and Panic(uint256) reverts.
type ContractError interface {
	error
	// ErrorName returns the ABI name of the revert.
	ErrorName() string
}

// Custom errors without parameters share this shape.

// DeprecatedApi is reverted by the retired two-argument newFinalizedState.
type DeprecatedApi struct{}

func (*DeprecatedApi) ErrorName() string { return "DeprecatedApi" }
func (*DeprecatedApi) Error() string { return InterfaceName + ": DeprecatedApi()" }

// ERC1967NonPayable is reverted when an upgrade call carries unexpected value.
type ERC1967NonPayable struct{}

func (*ERC1967NonPayable) ErrorName() string { return "ERC1967NonPayable" }
func (*ERC1967NonPayable) Error() string { return InterfaceName + ": ERC1967NonPayable()" }

type FailedInnerCall struct{}

func (*FailedInnerCall) ErrorName() string { return "FailedInnerCall" }
func (*FailedInnerCall) Error() string { return InterfaceName + ": FailedInnerCall()" }

// InsufficientSnapshotHistory is reverted when the requested hotshot block
// height is older than the retained state history window.
type InsufficientSnapshotHistory struct{}

func (*InsufficientSnapshotHistory) ErrorName() string { return "InsufficientSnapshotHistory" }
func (*InsufficientSnapshotHistory) Error() string {
	return InterfaceName + ": InsufficientSnapshotHistory()"
}

type InvalidAddress struct{}

func (*InvalidAddress) ErrorName() string { return "InvalidAddress" }
func (*InvalidAddress) Error() string { return InterfaceName + ": InvalidAddress()" }

type InvalidArgs struct{}

func (*InvalidArgs) ErrorName() string { return "InvalidArgs" }
func (*InvalidArgs) Error() string { return InterfaceName + ": InvalidArgs()" }

type InvalidHotShotBlockForCommitmentCheck struct{}

func (*InvalidHotShotBlockForCommitmentCheck) ErrorName() string {
	return "InvalidHotShotBlockForCommitmentCheck"
}
func (*InvalidHotShotBlockForCommitmentCheck) Error() string {
	return InterfaceName + ": InvalidHotShotBlockForCommitmentCheck()"
}

type InvalidInitialization struct{}

func (*InvalidInitialization) ErrorName() string { return "InvalidInitialization" }
func (*InvalidInitialization) Error() string { return InterfaceName + ": InvalidInitialization()" }

type InvalidMaxStateHistory struct{}

func (*InvalidMaxStateHistory) ErrorName() string { return "InvalidMaxStateHistory" }
func (*InvalidMaxStateHistory) Error() string {
	return InterfaceName + ": InvalidMaxStateHistory()"
}

// InvalidProof is reverted when the submitted PLONK proof fails verification.
type InvalidProof struct{}

func (*InvalidProof) ErrorName() string { return "InvalidProof" }
func (*InvalidProof) Error() string { return InterfaceName + ": InvalidProof()" }

type MissingEpochRootUpdate struct{}

func (*MissingEpochRootUpdate) ErrorName() string { return "MissingEpochRootUpdate" }
func (*MissingEpochRootUpdate) Error() string {
	return InterfaceName + ": MissingEpochRootUpdate()"
}

type NoChangeRequired struct{}

func (*NoChangeRequired) ErrorName() string { return "NoChangeRequired" }
func (*NoChangeRequired) Error() string { return InterfaceName + ": NoChangeRequired()" }

type NotInitializing struct{}

func (*NotInitializing) ErrorName() string { return "NotInitializing" }
func (*NotInitializing) Error() string { return InterfaceName + ": NotInitializing()" }

// OutdatedState is reverted when the submitted state is not newer than the
// finalized state already on the contract.
type OutdatedState struct{}

func (*OutdatedState) ErrorName() string { return "OutdatedState" }
func (*OutdatedState) Error() string { return InterfaceName + ": OutdatedState()" }

// ProverNotPermissioned is reverted when permissioned-prover mode is on and
// the sender is not the registered prover.
type ProverNotPermissioned struct{}

func (*ProverNotPermissioned) ErrorName() string { return "ProverNotPermissioned" }
func (*ProverNotPermissioned) Error() string { return InterfaceName + ": ProverNotPermissioned()" }

type UUPSUnauthorizedCallContext struct{}

func (*UUPSUnauthorizedCallContext) ErrorName() string { return "UUPSUnauthorizedCallContext" }
func (*UUPSUnauthorizedCallContext) Error() string {
	return InterfaceName + ": UUPSUnauthorizedCallContext()"
}

type WrongStakeTableUsed struct{}

func (*WrongStakeTableUsed) ErrorName() string { return "WrongStakeTableUsed" }
func (*WrongStakeTableUsed) Error() string { return InterfaceName + ": WrongStakeTableUsed()" }

// Custom errors with parameters.

type AddressEmptyCode struct {
	Target common.Address
}

func (*AddressEmptyCode) ErrorName() string { return "AddressEmptyCode" }
func (e *AddressEmptyCode) Error() string {
	return fmt.Sprintf("%s: AddressEmptyCode(%s)", InterfaceName, e.Target)
}

type ERC1967InvalidImplementation struct {
	Implementation common.Address
}

func (*ERC1967InvalidImplementation) ErrorName() string { return "ERC1967InvalidImplementation" }
func (e *ERC1967InvalidImplementation) Error() string {
	return fmt.Sprintf("%s: ERC1967InvalidImplementation(%s)", InterfaceName, e.Implementation)
}

type OwnableInvalidOwner struct {
	Owner common.Address
}

func (*OwnableInvalidOwner) ErrorName() string { return "OwnableInvalidOwner" }
func (e *OwnableInvalidOwner) Error() string {
	return fmt.Sprintf("%s: OwnableInvalidOwner(%s)", InterfaceName, e.Owner)
}

type OwnableUnauthorizedAccount struct {
	Account common.Address
}

func (*OwnableUnauthorizedAccount) ErrorName() string { return "OwnableUnauthorizedAccount" }
func (e *OwnableUnauthorizedAccount) Error() string {
	return fmt.Sprintf("%s: OwnableUnauthorizedAccount(%s)", InterfaceName, e.Account)
}

type UUPSUnsupportedProxiableUUID struct {
	Slot [32]byte
}

func (*UUPSUnsupportedProxiableUUID) ErrorName() string { return "UUPSUnsupportedProxiableUUID" }
func (e *UUPSUnsupportedProxiableUUID) Error() string {
	return fmt.Sprintf("%s: UUPSUnsupportedProxiableUUID(%s)", InterfaceName, common.Hash(e.Slot))
}

// Standard solidity reverts, not part of the custom error set but routinely
// seen in revert data.

// RevertReason is the standard Error(string) revert.
type RevertReason struct {
	Reason string
}

func (*RevertReason) ErrorName() string { return "Error" }
func (e *RevertReason) Error() string {
	return fmt.Sprintf("%s: revert %q", InterfaceName, e.Reason)
}

// Panic is the standard Panic(uint256) revert raised on assertion failures,
// overflow and similar faults.
type Panic struct {
	Code *big.Int
}

func (*Panic) ErrorName() string { return "Panic" }
func (e *Panic) Error() string {
	return fmt.Sprintf("%s: panic(0x%x)", InterfaceName, e.Code)
}

var (
	// Selectors of the standard Error(string) and Panic(uint256) reverts.
	revertReasonSelector = Selector{0x08, 0xc3, 0x79, 0xa0}
	panicSelector        = Selector{0x4e, 0x48, 0x7b, 0x71}

	stringType, _  = abi.NewType("string", "", nil)
	uint256Type, _ = abi.NewType("uint256", "", nil)

	revertReasonArgs = abi.Arguments{{Type: stringType}}
	panicArgs        = abi.Arguments{{Type: uint256Type}}
)

func unpackNoArgError(name string, mk func() ContractError) func([]byte) (ContractError, error) {
	return func(data []byte) (ContractError, error) {
		if len(data) != 0 {
			return nil, fmt.Errorf("codec: %s carries no fields, got %d trailing bytes", name, len(data))
		}
		return mk(), nil
	}
}

func unpackAddressError(name string, mk func(common.Address) ContractError) func([]byte) (ContractError, error) {
	return func(data []byte) (ContractError, error) {
		vals, err := contractABI.Errors[name].Inputs.Unpack(data)
		if err != nil {
			return nil, err
		}
		return mk(*abi.ConvertType(vals[0], new(common.Address)).(*common.Address)), nil
	}
}

// errorUnpackers maps ABI error names to revert-data decoders.
var errorUnpackers = map[string]func([]byte) (ContractError, error){
	"AddressEmptyCode": unpackAddressError("AddressEmptyCode", func(a common.Address) ContractError {
		return &AddressEmptyCode{Target: a}
	}),
	"DeprecatedApi": unpackNoArgError("DeprecatedApi", func() ContractError { return new(DeprecatedApi) }),
	"ERC1967InvalidImplementation": unpackAddressError("ERC1967InvalidImplementation", func(a common.Address) ContractError {
		return &ERC1967InvalidImplementation{Implementation: a}
	}),
	"ERC1967NonPayable": unpackNoArgError("ERC1967NonPayable", func() ContractError { return new(ERC1967NonPayable) }),
	"FailedInnerCall":   unpackNoArgError("FailedInnerCall", func() ContractError { return new(FailedInnerCall) }),
	"InsufficientSnapshotHistory": unpackNoArgError("InsufficientSnapshotHistory", func() ContractError {
		return new(InsufficientSnapshotHistory)
	}),
	"InvalidAddress": unpackNoArgError("InvalidAddress", func() ContractError { return new(InvalidAddress) }),
	"InvalidArgs":    unpackNoArgError("InvalidArgs", func() ContractError { return new(InvalidArgs) }),
	"InvalidHotShotBlockForCommitmentCheck": unpackNoArgError("InvalidHotShotBlockForCommitmentCheck", func() ContractError {
		return new(InvalidHotShotBlockForCommitmentCheck)
	}),
	"InvalidInitialization": unpackNoArgError("InvalidInitialization", func() ContractError { return new(InvalidInitialization) }),
	"InvalidMaxStateHistory": unpackNoArgError("InvalidMaxStateHistory", func() ContractError {
		return new(InvalidMaxStateHistory)
	}),
	"InvalidProof": unpackNoArgError("InvalidProof", func() ContractError { return new(InvalidProof) }),
	"MissingEpochRootUpdate": unpackNoArgError("MissingEpochRootUpdate", func() ContractError {
		return new(MissingEpochRootUpdate)
	}),
	"NoChangeRequired": unpackNoArgError("NoChangeRequired", func() ContractError { return new(NoChangeRequired) }),
	"NotInitializing":  unpackNoArgError("NotInitializing", func() ContractError { return new(NotInitializing) }),
	"OutdatedState":    unpackNoArgError("OutdatedState", func() ContractError { return new(OutdatedState) }),
	"OwnableInvalidOwner": unpackAddressError("OwnableInvalidOwner", func(a common.Address) ContractError {
		return &OwnableInvalidOwner{Owner: a}
	}),
	"OwnableUnauthorizedAccount": unpackAddressError("OwnableUnauthorizedAccount", func(a common.Address) ContractError {
		return &OwnableUnauthorizedAccount{Account: a}
	}),
	"ProverNotPermissioned": unpackNoArgError("ProverNotPermissioned", func() ContractError { return new(ProverNotPermissioned) }),
	"UUPSUnauthorizedCallContext": unpackNoArgError("UUPSUnauthorizedCallContext", func() ContractError {
		return new(UUPSUnauthorizedCallContext)
	}),
	"UUPSUnsupportedProxiableUUID": func(data []byte) (ContractError, error) {
		vals, err := contractABI.Errors["UUPSUnsupportedProxiableUUID"].Inputs.Unpack(data)
		if err != nil {
			return nil, err
		}
		return &UUPSUnsupportedProxiableUUID{
			Slot: *abi.ConvertType(vals[0], new([32]byte)).(*[32]byte),
		}, nil
	},
	"WrongStakeTableUsed": unpackNoArgError("WrongStakeTableUsed", func() ContractError { return new(WrongStakeTableUsed) }),
}

// DecodeRevert turns raw revert data into a typed ContractError. Custom
// errors dispatch by 4-byte selector over the interface's error set; the
// standard Error(string) and Panic(uint256) encodings are recognized as well.
// Revert data with an unknown selector yields an UnknownSelectorError.
func DecodeRevert(data []byte) (ContractError, error) {
	sel, err := SelectorOf(data)
	if err != nil {
		return nil, err
	}
	switch sel {
	case revertReasonSelector:
		vals, err := revertReasonArgs.Unpack(data[4:])
		if err != nil {
			return nil, err
		}
		return &RevertReason{Reason: vals[0].(string)}, nil
	case panicSelector:
		vals, err := panicArgs.Unpack(data[4:])
		if err != nil {
			return nil, err
		}
		return &Panic{Code: vals[0].(*big.Int)}, nil
	}
	i := lookup(errorSelectors, sel)
	if i < 0 {
		return nil, &UnknownSelectorError{Interface: InterfaceName, Selector: sel}
	}
	return errorDecoders[i](data[4:])
}
