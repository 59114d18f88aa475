package codec

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/EspressoSystems/lightclient-go/bindings"
)

// Call is a typed representation of one LightClientArbitrumV2 function
// invocation. Pack produces the full calldata (4-byte selector followed by
// the ABI-encoded arguments); ParseCall is its inverse.
type Call interface {
	// Name returns the method key in the parsed contract ABI
	// (overloads carry the ABI-assigned numeric suffix).
	Name() string
	// Selector returns the leading 4 bytes of keccak256 of the canonical
	// signature.
	Selector() Selector
	// Pack encodes the call to wire-format calldata.
	Pack() ([]byte, error)
}

// UpgradeInterfaceVersionCall carries the arguments of UPGRADE_INTERFACE_VERSION (selector 0xad3cb1cc).
type UpgradeInterfaceVersionCall struct{}

func (*UpgradeInterfaceVersionCall) Name() string { return "UPGRADE_INTERFACE_VERSION" }

func (*UpgradeInterfaceVersionCall) Selector() Selector { return methodSelector("UPGRADE_INTERFACE_VERSION") }

func (*UpgradeInterfaceVersionCall) Pack() ([]byte, error) {
	return contractABI.Pack("UPGRADE_INTERFACE_VERSION")
}

func unpackUpgradeInterfaceVersionCall(args []byte) (Call, error) {
	if len(args) != 0 {
		return nil, errTrailingCalldata
	}
	return new(UpgradeInterfaceVersionCall), nil
}

// UnpackReturns decodes the raw return data of UPGRADE_INTERFACE_VERSION.
func (*UpgradeInterfaceVersionCall) UnpackReturns(data []byte) (string, error) {
	vals, err := contractABI.Methods["UPGRADE_INTERFACE_VERSION"].Outputs.Unpack(data)
	if err != nil {
		return *new(string), err
	}
	return *abi.ConvertType(vals[0], new(string)).(*string), nil
}

// GetVkCall carries the arguments of _getVk (selector 0x12173c2c).
type GetVkCall struct{}

func (*GetVkCall) Name() string { return "_getVk" }

func (*GetVkCall) Selector() Selector { return methodSelector("_getVk") }

func (*GetVkCall) Pack() ([]byte, error) {
	return contractABI.Pack("_getVk")
}

func unpackGetVkCall(args []byte) (Call, error) {
	if len(args) != 0 {
		return nil, errTrailingCalldata
	}
	return new(GetVkCall), nil
}

// UnpackReturns decodes the raw return data of _getVk.
func (*GetVkCall) UnpackReturns(data []byte) (bindings.IPlonkVerifierVerifyingKey, error) {
	vals, err := contractABI.Methods["_getVk"].Outputs.Unpack(data)
	if err != nil {
		return *new(bindings.IPlonkVerifierVerifyingKey), err
	}
	return *abi.ConvertType(vals[0], new(bindings.IPlonkVerifierVerifyingKey)).(*bindings.IPlonkVerifierVerifyingKey), nil
}

// BlocksPerEpochCall carries the arguments of blocksPerEpoch (selector 0xf0682054).
type BlocksPerEpochCall struct{}

func (*BlocksPerEpochCall) Name() string { return "blocksPerEpoch" }

func (*BlocksPerEpochCall) Selector() Selector { return methodSelector("blocksPerEpoch") }

func (*BlocksPerEpochCall) Pack() ([]byte, error) {
	return contractABI.Pack("blocksPerEpoch")
}

func unpackBlocksPerEpochCall(args []byte) (Call, error) {
	if len(args) != 0 {
		return nil, errTrailingCalldata
	}
	return new(BlocksPerEpochCall), nil
}

// UnpackReturns decodes the raw return data of blocksPerEpoch.
func (*BlocksPerEpochCall) UnpackReturns(data []byte) (uint64, error) {
	vals, err := contractABI.Methods["blocksPerEpoch"].Outputs.Unpack(data)
	if err != nil {
		return *new(uint64), err
	}
	return *abi.ConvertType(vals[0], new(uint64)).(*uint64), nil
}

// CurrentBlockNumberCall carries the arguments of currentBlockNumber (selector 0x378ec23b).
type CurrentBlockNumberCall struct{}

func (*CurrentBlockNumberCall) Name() string { return "currentBlockNumber" }

func (*CurrentBlockNumberCall) Selector() Selector { return methodSelector("currentBlockNumber") }

func (*CurrentBlockNumberCall) Pack() ([]byte, error) {
	return contractABI.Pack("currentBlockNumber")
}

func unpackCurrentBlockNumberCall(args []byte) (Call, error) {
	if len(args) != 0 {
		return nil, errTrailingCalldata
	}
	return new(CurrentBlockNumberCall), nil
}

// UnpackReturns decodes the raw return data of currentBlockNumber.
func (*CurrentBlockNumberCall) UnpackReturns(data []byte) (*big.Int, error) {
	vals, err := contractABI.Methods["currentBlockNumber"].Outputs.Unpack(data)
	if err != nil {
		return *new(*big.Int), err
	}
	return *abi.ConvertType(vals[0], new(*big.Int)).(**big.Int), nil
}

// CurrentEpochCall carries the arguments of currentEpoch (selector 0x76671808).
type CurrentEpochCall struct{}

func (*CurrentEpochCall) Name() string { return "currentEpoch" }

func (*CurrentEpochCall) Selector() Selector { return methodSelector("currentEpoch") }

func (*CurrentEpochCall) Pack() ([]byte, error) {
	return contractABI.Pack("currentEpoch")
}

func unpackCurrentEpochCall(args []byte) (Call, error) {
	if len(args) != 0 {
		return nil, errTrailingCalldata
	}
	return new(CurrentEpochCall), nil
}

// UnpackReturns decodes the raw return data of currentEpoch.
func (*CurrentEpochCall) UnpackReturns(data []byte) (uint64, error) {
	vals, err := contractABI.Methods["currentEpoch"].Outputs.Unpack(data)
	if err != nil {
		return *new(uint64), err
	}
	return *abi.ConvertType(vals[0], new(uint64)).(*uint64), nil
}

// DisablePermissionedProverModeCall carries the arguments of disablePermissionedProverMode (selector 0x69cc6a04).
type DisablePermissionedProverModeCall struct{}

func (*DisablePermissionedProverModeCall) Name() string { return "disablePermissionedProverMode" }

func (*DisablePermissionedProverModeCall) Selector() Selector { return methodSelector("disablePermissionedProverMode") }

func (*DisablePermissionedProverModeCall) Pack() ([]byte, error) {
	return contractABI.Pack("disablePermissionedProverMode")
}

func unpackDisablePermissionedProverModeCall(args []byte) (Call, error) {
	if len(args) != 0 {
		return nil, errTrailingCalldata
	}
	return new(DisablePermissionedProverModeCall), nil
}

// EpochFromBlockNumberCall carries the arguments of epochFromBlockNumber (selector 0x90c14390).
type EpochFromBlockNumberCall struct {
	BlockNum       uint64
	BlocksPerEpoch uint64
}

func (*EpochFromBlockNumberCall) Name() string { return "epochFromBlockNumber" }

func (*EpochFromBlockNumberCall) Selector() Selector { return methodSelector("epochFromBlockNumber") }

func (c *EpochFromBlockNumberCall) Pack() ([]byte, error) {
	return contractABI.Pack("epochFromBlockNumber", c.BlockNum, c.BlocksPerEpoch)
}

func unpackEpochFromBlockNumberCall(args []byte) (Call, error) {
	vals, err := contractABI.Methods["epochFromBlockNumber"].Inputs.Unpack(args)
	if err != nil {
		return nil, err
	}
	c := new(EpochFromBlockNumberCall)
	c.BlockNum = *abi.ConvertType(vals[0], new(uint64)).(*uint64)
	c.BlocksPerEpoch = *abi.ConvertType(vals[1], new(uint64)).(*uint64)
	return c, nil
}

// UnpackReturns decodes the raw return data of epochFromBlockNumber.
func (*EpochFromBlockNumberCall) UnpackReturns(data []byte) (uint64, error) {
	vals, err := contractABI.Methods["epochFromBlockNumber"].Outputs.Unpack(data)
	if err != nil {
		return *new(uint64), err
	}
	return *abi.ConvertType(vals[0], new(uint64)).(*uint64), nil
}

// EpochStartBlockCall carries the arguments of epochStartBlock (selector 0x3ed55b7b).
type EpochStartBlockCall struct{}

func (*EpochStartBlockCall) Name() string { return "epochStartBlock" }

func (*EpochStartBlockCall) Selector() Selector { return methodSelector("epochStartBlock") }

func (*EpochStartBlockCall) Pack() ([]byte, error) {
	return contractABI.Pack("epochStartBlock")
}

func unpackEpochStartBlockCall(args []byte) (Call, error) {
	if len(args) != 0 {
		return nil, errTrailingCalldata
	}
	return new(EpochStartBlockCall), nil
}

// UnpackReturns decodes the raw return data of epochStartBlock.
func (*EpochStartBlockCall) UnpackReturns(data []byte) (uint64, error) {
	vals, err := contractABI.Methods["epochStartBlock"].Outputs.Unpack(data)
	if err != nil {
		return *new(uint64), err
	}
	return *abi.ConvertType(vals[0], new(uint64)).(*uint64), nil
}

// FinalizedStateCall carries the arguments of finalizedState (selector 0x9fdb54a7).
type FinalizedStateCall struct{}

func (*FinalizedStateCall) Name() string { return "finalizedState" }

func (*FinalizedStateCall) Selector() Selector { return methodSelector("finalizedState") }

func (*FinalizedStateCall) Pack() ([]byte, error) {
	return contractABI.Pack("finalizedState")
}

func unpackFinalizedStateCall(args []byte) (Call, error) {
	if len(args) != 0 {
		return nil, errTrailingCalldata
	}
	return new(FinalizedStateCall), nil
}

// FinalizedStateReturn mirrors the return values of finalizedState.
type FinalizedStateReturn struct {
	ViewNum       uint64
	BlockHeight   uint64
	BlockCommRoot *big.Int
}

// UnpackReturns decodes the raw return data of finalizedState.
func (*FinalizedStateCall) UnpackReturns(data []byte) (FinalizedStateReturn, error) {
	vals, err := contractABI.Methods["finalizedState"].Outputs.Unpack(data)
	if err != nil {
		return FinalizedStateReturn{}, err
	}
	var r FinalizedStateReturn
	r.ViewNum = *abi.ConvertType(vals[0], new(uint64)).(*uint64)
	r.BlockHeight = *abi.ConvertType(vals[1], new(uint64)).(*uint64)
	r.BlockCommRoot = *abi.ConvertType(vals[2], new(*big.Int)).(**big.Int)
	return r, nil
}

// GenesisStakeTableStateCall carries the arguments of genesisStakeTableState (selector 0x426d3194).
type GenesisStakeTableStateCall struct{}

func (*GenesisStakeTableStateCall) Name() string { return "genesisStakeTableState" }

func (*GenesisStakeTableStateCall) Selector() Selector { return methodSelector("genesisStakeTableState") }

func (*GenesisStakeTableStateCall) Pack() ([]byte, error) {
	return contractABI.Pack("genesisStakeTableState")
}

func unpackGenesisStakeTableStateCall(args []byte) (Call, error) {
	if len(args) != 0 {
		return nil, errTrailingCalldata
	}
	return new(GenesisStakeTableStateCall), nil
}

// GenesisStakeTableStateReturn mirrors the return values of genesisStakeTableState.
type GenesisStakeTableStateReturn struct {
	Threshold      *big.Int
	BlsKeyComm     *big.Int
	SchnorrKeyComm *big.Int
	AmountComm     *big.Int
}

// UnpackReturns decodes the raw return data of genesisStakeTableState.
func (*GenesisStakeTableStateCall) UnpackReturns(data []byte) (GenesisStakeTableStateReturn, error) {
	vals, err := contractABI.Methods["genesisStakeTableState"].Outputs.Unpack(data)
	if err != nil {
		return GenesisStakeTableStateReturn{}, err
	}
	var r GenesisStakeTableStateReturn
	r.Threshold = *abi.ConvertType(vals[0], new(*big.Int)).(**big.Int)
	r.BlsKeyComm = *abi.ConvertType(vals[1], new(*big.Int)).(**big.Int)
	r.SchnorrKeyComm = *abi.ConvertType(vals[2], new(*big.Int)).(**big.Int)
	r.AmountComm = *abi.ConvertType(vals[3], new(*big.Int)).(**big.Int)
	return r, nil
}

// GenesisStateCall carries the arguments of genesisState (selector 0xd24d933d).
type GenesisStateCall struct{}

func (*GenesisStateCall) Name() string { return "genesisState" }

func (*GenesisStateCall) Selector() Selector { return methodSelector("genesisState") }

func (*GenesisStateCall) Pack() ([]byte, error) {
	return contractABI.Pack("genesisState")
}

func unpackGenesisStateCall(args []byte) (Call, error) {
	if len(args) != 0 {
		return nil, errTrailingCalldata
	}
	return new(GenesisStateCall), nil
}

// GenesisStateReturn mirrors the return values of genesisState.
type GenesisStateReturn struct {
	ViewNum       uint64
	BlockHeight   uint64
	BlockCommRoot *big.Int
}

// UnpackReturns decodes the raw return data of genesisState.
func (*GenesisStateCall) UnpackReturns(data []byte) (GenesisStateReturn, error) {
	vals, err := contractABI.Methods["genesisState"].Outputs.Unpack(data)
	if err != nil {
		return GenesisStateReturn{}, err
	}
	var r GenesisStateReturn
	r.ViewNum = *abi.ConvertType(vals[0], new(uint64)).(*uint64)
	r.BlockHeight = *abi.ConvertType(vals[1], new(uint64)).(*uint64)
	r.BlockCommRoot = *abi.ConvertType(vals[2], new(*big.Int)).(**big.Int)
	return r, nil
}

// GetHotShotCommitmentCall carries the arguments of getHotShotCommitment (selector 0x8584d23f).
type GetHotShotCommitmentCall struct {
	HotShotBlockHeight *big.Int
}

func (*GetHotShotCommitmentCall) Name() string { return "getHotShotCommitment" }

func (*GetHotShotCommitmentCall) Selector() Selector { return methodSelector("getHotShotCommitment") }

func (c *GetHotShotCommitmentCall) Pack() ([]byte, error) {
	return contractABI.Pack("getHotShotCommitment", c.HotShotBlockHeight)
}

func unpackGetHotShotCommitmentCall(args []byte) (Call, error) {
	vals, err := contractABI.Methods["getHotShotCommitment"].Inputs.Unpack(args)
	if err != nil {
		return nil, err
	}
	c := new(GetHotShotCommitmentCall)
	c.HotShotBlockHeight = *abi.ConvertType(vals[0], new(*big.Int)).(**big.Int)
	return c, nil
}

// UnpackReturns decodes the raw return data of getHotShotCommitment.
func (*GetHotShotCommitmentCall) UnpackReturns(data []byte) (bindings.LightClientHotShotCommitment, error) {
	vals, err := contractABI.Methods["getHotShotCommitment"].Outputs.Unpack(data)
	if err != nil {
		return *new(bindings.LightClientHotShotCommitment), err
	}
	return *abi.ConvertType(vals[0], new(bindings.LightClientHotShotCommitment)).(*bindings.LightClientHotShotCommitment), nil
}

// GetStateHistoryCountCall carries the arguments of getStateHistoryCount (selector 0xf9e50d19).
type GetStateHistoryCountCall struct{}

func (*GetStateHistoryCountCall) Name() string { return "getStateHistoryCount" }

func (*GetStateHistoryCountCall) Selector() Selector { return methodSelector("getStateHistoryCount") }

func (*GetStateHistoryCountCall) Pack() ([]byte, error) {
	return contractABI.Pack("getStateHistoryCount")
}

func unpackGetStateHistoryCountCall(args []byte) (Call, error) {
	if len(args) != 0 {
		return nil, errTrailingCalldata
	}
	return new(GetStateHistoryCountCall), nil
}

// UnpackReturns decodes the raw return data of getStateHistoryCount.
func (*GetStateHistoryCountCall) UnpackReturns(data []byte) (*big.Int, error) {
	vals, err := contractABI.Methods["getStateHistoryCount"].Outputs.Unpack(data)
	if err != nil {
		return *new(*big.Int), err
	}
	return *abi.ConvertType(vals[0], new(*big.Int)).(**big.Int), nil
}

// GetVersionCall carries the arguments of getVersion (selector 0x0d8e6e2c).
type GetVersionCall struct{}

func (*GetVersionCall) Name() string { return "getVersion" }

func (*GetVersionCall) Selector() Selector { return methodSelector("getVersion") }

func (*GetVersionCall) Pack() ([]byte, error) {
	return contractABI.Pack("getVersion")
}

func unpackGetVersionCall(args []byte) (Call, error) {
	if len(args) != 0 {
		return nil, errTrailingCalldata
	}
	return new(GetVersionCall), nil
}

// GetVersionReturn mirrors the return values of getVersion.
type GetVersionReturn struct {
	MajorVersion uint8
	MinorVersion uint8
	PatchVersion uint8
}

// UnpackReturns decodes the raw return data of getVersion.
func (*GetVersionCall) UnpackReturns(data []byte) (GetVersionReturn, error) {
	vals, err := contractABI.Methods["getVersion"].Outputs.Unpack(data)
	if err != nil {
		return GetVersionReturn{}, err
	}
	var r GetVersionReturn
	r.MajorVersion = *abi.ConvertType(vals[0], new(uint8)).(*uint8)
	r.MinorVersion = *abi.ConvertType(vals[1], new(uint8)).(*uint8)
	r.PatchVersion = *abi.ConvertType(vals[2], new(uint8)).(*uint8)
	return r, nil
}

// InitializeCall carries the arguments of initialize (selector 0x9baa3cc9).
type InitializeCall struct {
	Genesis                     bindings.LightClientLightClientState
	GenesisStakeTableState      bindings.LightClientStakeTableState
	StateHistoryRetentionPeriod uint32
	Owner                       common.Address
}

func (*InitializeCall) Name() string { return "initialize" }

func (*InitializeCall) Selector() Selector { return methodSelector("initialize") }

func (c *InitializeCall) Pack() ([]byte, error) {
	return contractABI.Pack("initialize", c.Genesis, c.GenesisStakeTableState, c.StateHistoryRetentionPeriod, c.Owner)
}

func unpackInitializeCall(args []byte) (Call, error) {
	vals, err := contractABI.Methods["initialize"].Inputs.Unpack(args)
	if err != nil {
		return nil, err
	}
	c := new(InitializeCall)
	c.Genesis = *abi.ConvertType(vals[0], new(bindings.LightClientLightClientState)).(*bindings.LightClientLightClientState)
	c.GenesisStakeTableState = *abi.ConvertType(vals[1], new(bindings.LightClientStakeTableState)).(*bindings.LightClientStakeTableState)
	c.StateHistoryRetentionPeriod = *abi.ConvertType(vals[2], new(uint32)).(*uint32)
	c.Owner = *abi.ConvertType(vals[3], new(common.Address)).(*common.Address)
	return c, nil
}

// InitializeV2Call carries the arguments of initializeV2 (selector 0xb33bc491).
type InitializeV2Call struct {
	BlocksPerEpoch  uint64
	EpochStartBlock uint64
}

func (*InitializeV2Call) Name() string { return "initializeV2" }

func (*InitializeV2Call) Selector() Selector { return methodSelector("initializeV2") }

func (c *InitializeV2Call) Pack() ([]byte, error) {
	return contractABI.Pack("initializeV2", c.BlocksPerEpoch, c.EpochStartBlock)
}

func unpackInitializeV2Call(args []byte) (Call, error) {
	vals, err := contractABI.Methods["initializeV2"].Inputs.Unpack(args)
	if err != nil {
		return nil, err
	}
	c := new(InitializeV2Call)
	c.BlocksPerEpoch = *abi.ConvertType(vals[0], new(uint64)).(*uint64)
	c.EpochStartBlock = *abi.ConvertType(vals[1], new(uint64)).(*uint64)
	return c, nil
}

// IsEpochRootCall carries the arguments of isEpochRoot (selector 0x25297427).
type IsEpochRootCall struct {
	BlockHeight uint64
}

func (*IsEpochRootCall) Name() string { return "isEpochRoot" }

func (*IsEpochRootCall) Selector() Selector { return methodSelector("isEpochRoot") }

func (c *IsEpochRootCall) Pack() ([]byte, error) {
	return contractABI.Pack("isEpochRoot", c.BlockHeight)
}

func unpackIsEpochRootCall(args []byte) (Call, error) {
	vals, err := contractABI.Methods["isEpochRoot"].Inputs.Unpack(args)
	if err != nil {
		return nil, err
	}
	c := new(IsEpochRootCall)
	c.BlockHeight = *abi.ConvertType(vals[0], new(uint64)).(*uint64)
	return c, nil
}

// UnpackReturns decodes the raw return data of isEpochRoot.
func (*IsEpochRootCall) UnpackReturns(data []byte) (bool, error) {
	vals, err := contractABI.Methods["isEpochRoot"].Outputs.Unpack(data)
	if err != nil {
		return *new(bool), err
	}
	return *abi.ConvertType(vals[0], new(bool)).(*bool), nil
}

// IsGtEpochRootCall carries the arguments of isGtEpochRoot (selector 0x300c89dd).
type IsGtEpochRootCall struct {
	BlockHeight uint64
}

func (*IsGtEpochRootCall) Name() string { return "isGtEpochRoot" }

func (*IsGtEpochRootCall) Selector() Selector { return methodSelector("isGtEpochRoot") }

func (c *IsGtEpochRootCall) Pack() ([]byte, error) {
	return contractABI.Pack("isGtEpochRoot", c.BlockHeight)
}

func unpackIsGtEpochRootCall(args []byte) (Call, error) {
	vals, err := contractABI.Methods["isGtEpochRoot"].Inputs.Unpack(args)
	if err != nil {
		return nil, err
	}
	c := new(IsGtEpochRootCall)
	c.BlockHeight = *abi.ConvertType(vals[0], new(uint64)).(*uint64)
	return c, nil
}

// UnpackReturns decodes the raw return data of isGtEpochRoot.
func (*IsGtEpochRootCall) UnpackReturns(data []byte) (bool, error) {
	vals, err := contractABI.Methods["isGtEpochRoot"].Outputs.Unpack(data)
	if err != nil {
		return *new(bool), err
	}
	return *abi.ConvertType(vals[0], new(bool)).(*bool), nil
}

// IsPermissionedProverEnabledCall carries the arguments of isPermissionedProverEnabled (selector 0x826e41fc).
type IsPermissionedProverEnabledCall struct{}

func (*IsPermissionedProverEnabledCall) Name() string { return "isPermissionedProverEnabled" }

func (*IsPermissionedProverEnabledCall) Selector() Selector { return methodSelector("isPermissionedProverEnabled") }

func (*IsPermissionedProverEnabledCall) Pack() ([]byte, error) {
	return contractABI.Pack("isPermissionedProverEnabled")
}

func unpackIsPermissionedProverEnabledCall(args []byte) (Call, error) {
	if len(args) != 0 {
		return nil, errTrailingCalldata
	}
	return new(IsPermissionedProverEnabledCall), nil
}

// UnpackReturns decodes the raw return data of isPermissionedProverEnabled.
func (*IsPermissionedProverEnabledCall) UnpackReturns(data []byte) (bool, error) {
	vals, err := contractABI.Methods["isPermissionedProverEnabled"].Outputs.Unpack(data)
	if err != nil {
		return *new(bool), err
	}
	return *abi.ConvertType(vals[0], new(bool)).(*bool), nil
}

// LagOverEscapeHatchThresholdCall carries the arguments of lagOverEscapeHatchThreshold (selector 0xe0303301).
type LagOverEscapeHatchThresholdCall struct {
	BlockNumber *big.Int
	Threshold   *big.Int
}

func (*LagOverEscapeHatchThresholdCall) Name() string { return "lagOverEscapeHatchThreshold" }

func (*LagOverEscapeHatchThresholdCall) Selector() Selector { return methodSelector("lagOverEscapeHatchThreshold") }

func (c *LagOverEscapeHatchThresholdCall) Pack() ([]byte, error) {
	return contractABI.Pack("lagOverEscapeHatchThreshold", c.BlockNumber, c.Threshold)
}

func unpackLagOverEscapeHatchThresholdCall(args []byte) (Call, error) {
	vals, err := contractABI.Methods["lagOverEscapeHatchThreshold"].Inputs.Unpack(args)
	if err != nil {
		return nil, err
	}
	c := new(LagOverEscapeHatchThresholdCall)
	c.BlockNumber = *abi.ConvertType(vals[0], new(*big.Int)).(**big.Int)
	c.Threshold = *abi.ConvertType(vals[1], new(*big.Int)).(**big.Int)
	return c, nil
}

// UnpackReturns decodes the raw return data of lagOverEscapeHatchThreshold.
func (*LagOverEscapeHatchThresholdCall) UnpackReturns(data []byte) (bool, error) {
	vals, err := contractABI.Methods["lagOverEscapeHatchThreshold"].Outputs.Unpack(data)
	if err != nil {
		return *new(bool), err
	}
	return *abi.ConvertType(vals[0], new(bool)).(*bool), nil
}

// NewFinalizedStateCall carries the arguments of the two-argument
// newFinalizedState overload (selector 0x2063d4f7). The V2 contract rejects
// this form with DeprecatedApi; it is kept for decoding historical calldata.
type NewFinalizedStateCall struct {
	NewState bindings.LightClientLightClientState
	Proof    bindings.IPlonkVerifierPlonkProof
}

func (*NewFinalizedStateCall) Name() string { return "newFinalizedState" }

func (*NewFinalizedStateCall) Selector() Selector { return methodSelector("newFinalizedState") }

func (c *NewFinalizedStateCall) Pack() ([]byte, error) {
	return contractABI.Pack("newFinalizedState", c.NewState, c.Proof)
}

func unpackNewFinalizedStateCall(args []byte) (Call, error) {
	vals, err := contractABI.Methods["newFinalizedState"].Inputs.Unpack(args)
	if err != nil {
		return nil, err
	}
	c := new(NewFinalizedStateCall)
	c.NewState = *abi.ConvertType(vals[0], new(bindings.LightClientLightClientState)).(*bindings.LightClientLightClientState)
	c.Proof = *abi.ConvertType(vals[1], new(bindings.IPlonkVerifierPlonkProof)).(*bindings.IPlonkVerifierPlonkProof)
	return c, nil
}

// NewFinalizedStateV2Call carries the arguments of the three-argument
// newFinalizedState overload (selector 0x757c37ad), keyed in the parsed ABI
// as newFinalizedState0.
type NewFinalizedStateV2Call struct {
	NewState       bindings.LightClientLightClientState
	NextStakeTable bindings.LightClientStakeTableState
	Proof          bindings.IPlonkVerifierPlonkProof
}

func (*NewFinalizedStateV2Call) Name() string { return "newFinalizedState0" }

func (*NewFinalizedStateV2Call) Selector() Selector { return methodSelector("newFinalizedState0") }

func (c *NewFinalizedStateV2Call) Pack() ([]byte, error) {
	return contractABI.Pack("newFinalizedState0", c.NewState, c.NextStakeTable, c.Proof)
}

func unpackNewFinalizedStateV2Call(args []byte) (Call, error) {
	vals, err := contractABI.Methods["newFinalizedState0"].Inputs.Unpack(args)
	if err != nil {
		return nil, err
	}
	c := new(NewFinalizedStateV2Call)
	c.NewState = *abi.ConvertType(vals[0], new(bindings.LightClientLightClientState)).(*bindings.LightClientLightClientState)
	c.NextStakeTable = *abi.ConvertType(vals[1], new(bindings.LightClientStakeTableState)).(*bindings.LightClientStakeTableState)
	c.Proof = *abi.ConvertType(vals[2], new(bindings.IPlonkVerifierPlonkProof)).(*bindings.IPlonkVerifierPlonkProof)
	return c, nil
}

// OwnerCall carries the arguments of owner (selector 0x8da5cb5b).
type OwnerCall struct{}

func (*OwnerCall) Name() string { return "owner" }

func (*OwnerCall) Selector() Selector { return methodSelector("owner") }

func (*OwnerCall) Pack() ([]byte, error) {
	return contractABI.Pack("owner")
}

func unpackOwnerCall(args []byte) (Call, error) {
	if len(args) != 0 {
		return nil, errTrailingCalldata
	}
	return new(OwnerCall), nil
}

// UnpackReturns decodes the raw return data of owner.
func (*OwnerCall) UnpackReturns(data []byte) (common.Address, error) {
	vals, err := contractABI.Methods["owner"].Outputs.Unpack(data)
	if err != nil {
		return *new(common.Address), err
	}
	return *abi.ConvertType(vals[0], new(common.Address)).(*common.Address), nil
}

// PermissionedProverCall carries the arguments of permissionedProver (selector 0x313df7b1).
type PermissionedProverCall struct{}

func (*PermissionedProverCall) Name() string { return "permissionedProver" }

func (*PermissionedProverCall) Selector() Selector { return methodSelector("permissionedProver") }

func (*PermissionedProverCall) Pack() ([]byte, error) {
	return contractABI.Pack("permissionedProver")
}

func unpackPermissionedProverCall(args []byte) (Call, error) {
	if len(args) != 0 {
		return nil, errTrailingCalldata
	}
	return new(PermissionedProverCall), nil
}

// UnpackReturns decodes the raw return data of permissionedProver.
func (*PermissionedProverCall) UnpackReturns(data []byte) (common.Address, error) {
	vals, err := contractABI.Methods["permissionedProver"].Outputs.Unpack(data)
	if err != nil {
		return *new(common.Address), err
	}
	return *abi.ConvertType(vals[0], new(common.Address)).(*common.Address), nil
}

// ProxiableUUIDCall carries the arguments of proxiableUUID (selector 0x52d1902d).
type ProxiableUUIDCall struct{}

func (*ProxiableUUIDCall) Name() string { return "proxiableUUID" }

func (*ProxiableUUIDCall) Selector() Selector { return methodSelector("proxiableUUID") }

func (*ProxiableUUIDCall) Pack() ([]byte, error) {
	return contractABI.Pack("proxiableUUID")
}

func unpackProxiableUUIDCall(args []byte) (Call, error) {
	if len(args) != 0 {
		return nil, errTrailingCalldata
	}
	return new(ProxiableUUIDCall), nil
}

// UnpackReturns decodes the raw return data of proxiableUUID.
func (*ProxiableUUIDCall) UnpackReturns(data []byte) ([32]byte, error) {
	vals, err := contractABI.Methods["proxiableUUID"].Outputs.Unpack(data)
	if err != nil {
		return *new([32]byte), err
	}
	return *abi.ConvertType(vals[0], new([32]byte)).(*[32]byte), nil
}

// RenounceOwnershipCall carries the arguments of renounceOwnership (selector 0x715018a6).
type RenounceOwnershipCall struct{}

func (*RenounceOwnershipCall) Name() string { return "renounceOwnership" }

func (*RenounceOwnershipCall) Selector() Selector { return methodSelector("renounceOwnership") }

func (*RenounceOwnershipCall) Pack() ([]byte, error) {
	return contractABI.Pack("renounceOwnership")
}

func unpackRenounceOwnershipCall(args []byte) (Call, error) {
	if len(args) != 0 {
		return nil, errTrailingCalldata
	}
	return new(RenounceOwnershipCall), nil
}

// SetPermissionedProverCall carries the arguments of setPermissionedProver (selector 0x013fa5fc).
type SetPermissionedProverCall struct {
	Prover common.Address
}

func (*SetPermissionedProverCall) Name() string { return "setPermissionedProver" }

func (*SetPermissionedProverCall) Selector() Selector { return methodSelector("setPermissionedProver") }

func (c *SetPermissionedProverCall) Pack() ([]byte, error) {
	return contractABI.Pack("setPermissionedProver", c.Prover)
}

func unpackSetPermissionedProverCall(args []byte) (Call, error) {
	vals, err := contractABI.Methods["setPermissionedProver"].Inputs.Unpack(args)
	if err != nil {
		return nil, err
	}
	c := new(SetPermissionedProverCall)
	c.Prover = *abi.ConvertType(vals[0], new(common.Address)).(*common.Address)
	return c, nil
}

// SetStateHistoryRetentionPeriodCall carries the arguments of setStateHistoryRetentionPeriod (selector 0x433dba9f).
type SetStateHistoryRetentionPeriodCall struct {
	HistorySeconds uint32
}

func (*SetStateHistoryRetentionPeriodCall) Name() string { return "setStateHistoryRetentionPeriod" }

func (*SetStateHistoryRetentionPeriodCall) Selector() Selector { return methodSelector("setStateHistoryRetentionPeriod") }

func (c *SetStateHistoryRetentionPeriodCall) Pack() ([]byte, error) {
	return contractABI.Pack("setStateHistoryRetentionPeriod", c.HistorySeconds)
}

func unpackSetStateHistoryRetentionPeriodCall(args []byte) (Call, error) {
	vals, err := contractABI.Methods["setStateHistoryRetentionPeriod"].Inputs.Unpack(args)
	if err != nil {
		return nil, err
	}
	c := new(SetStateHistoryRetentionPeriodCall)
	c.HistorySeconds = *abi.ConvertType(vals[0], new(uint32)).(*uint32)
	return c, nil
}

// SetstateHistoryRetentionPeriodCall carries the arguments of setstateHistoryRetentionPeriod (selector 0x96c1ca61).
type SetstateHistoryRetentionPeriodCall struct {
	HistorySeconds uint32
}

func (*SetstateHistoryRetentionPeriodCall) Name() string { return "setstateHistoryRetentionPeriod" }

func (*SetstateHistoryRetentionPeriodCall) Selector() Selector { return methodSelector("setstateHistoryRetentionPeriod") }

func (c *SetstateHistoryRetentionPeriodCall) Pack() ([]byte, error) {
	return contractABI.Pack("setstateHistoryRetentionPeriod", c.HistorySeconds)
}

func unpackSetstateHistoryRetentionPeriodCall(args []byte) (Call, error) {
	vals, err := contractABI.Methods["setstateHistoryRetentionPeriod"].Inputs.Unpack(args)
	if err != nil {
		return nil, err
	}
	c := new(SetstateHistoryRetentionPeriodCall)
	c.HistorySeconds = *abi.ConvertType(vals[0], new(uint32)).(*uint32)
	return c, nil
}

// StateHistoryCommitmentsCall carries the arguments of stateHistoryCommitments (selector 0x02b592f3).
type StateHistoryCommitmentsCall struct {
	Index *big.Int
}

func (*StateHistoryCommitmentsCall) Name() string { return "stateHistoryCommitments" }

func (*StateHistoryCommitmentsCall) Selector() Selector { return methodSelector("stateHistoryCommitments") }

func (c *StateHistoryCommitmentsCall) Pack() ([]byte, error) {
	return contractABI.Pack("stateHistoryCommitments", c.Index)
}

func unpackStateHistoryCommitmentsCall(args []byte) (Call, error) {
	vals, err := contractABI.Methods["stateHistoryCommitments"].Inputs.Unpack(args)
	if err != nil {
		return nil, err
	}
	c := new(StateHistoryCommitmentsCall)
	c.Index = *abi.ConvertType(vals[0], new(*big.Int)).(**big.Int)
	return c, nil
}

// StateHistoryCommitmentsReturn mirrors the return values of stateHistoryCommitments.
type StateHistoryCommitmentsReturn struct {
	L1BlockHeight        uint64
	L1BlockTimestamp     uint64
	HotShotBlockHeight   uint64
	HotShotBlockCommRoot *big.Int
}

// UnpackReturns decodes the raw return data of stateHistoryCommitments.
func (*StateHistoryCommitmentsCall) UnpackReturns(data []byte) (StateHistoryCommitmentsReturn, error) {
	vals, err := contractABI.Methods["stateHistoryCommitments"].Outputs.Unpack(data)
	if err != nil {
		return StateHistoryCommitmentsReturn{}, err
	}
	var r StateHistoryCommitmentsReturn
	r.L1BlockHeight = *abi.ConvertType(vals[0], new(uint64)).(*uint64)
	r.L1BlockTimestamp = *abi.ConvertType(vals[1], new(uint64)).(*uint64)
	r.HotShotBlockHeight = *abi.ConvertType(vals[2], new(uint64)).(*uint64)
	r.HotShotBlockCommRoot = *abi.ConvertType(vals[3], new(*big.Int)).(**big.Int)
	return r, nil
}

// StateHistoryFirstIndexCall carries the arguments of stateHistoryFirstIndex (selector 0x2f79889d).
type StateHistoryFirstIndexCall struct{}

func (*StateHistoryFirstIndexCall) Name() string { return "stateHistoryFirstIndex" }

func (*StateHistoryFirstIndexCall) Selector() Selector { return methodSelector("stateHistoryFirstIndex") }

func (*StateHistoryFirstIndexCall) Pack() ([]byte, error) {
	return contractABI.Pack("stateHistoryFirstIndex")
}

func unpackStateHistoryFirstIndexCall(args []byte) (Call, error) {
	if len(args) != 0 {
		return nil, errTrailingCalldata
	}
	return new(StateHistoryFirstIndexCall), nil
}

// UnpackReturns decodes the raw return data of stateHistoryFirstIndex.
func (*StateHistoryFirstIndexCall) UnpackReturns(data []byte) (uint64, error) {
	vals, err := contractABI.Methods["stateHistoryFirstIndex"].Outputs.Unpack(data)
	if err != nil {
		return *new(uint64), err
	}
	return *abi.ConvertType(vals[0], new(uint64)).(*uint64), nil
}

// StateHistoryRetentionPeriodCall carries the arguments of stateHistoryRetentionPeriod (selector 0xc23b9e9e).
type StateHistoryRetentionPeriodCall struct{}

func (*StateHistoryRetentionPeriodCall) Name() string { return "stateHistoryRetentionPeriod" }

func (*StateHistoryRetentionPeriodCall) Selector() Selector { return methodSelector("stateHistoryRetentionPeriod") }

func (*StateHistoryRetentionPeriodCall) Pack() ([]byte, error) {
	return contractABI.Pack("stateHistoryRetentionPeriod")
}

func unpackStateHistoryRetentionPeriodCall(args []byte) (Call, error) {
	if len(args) != 0 {
		return nil, errTrailingCalldata
	}
	return new(StateHistoryRetentionPeriodCall), nil
}

// UnpackReturns decodes the raw return data of stateHistoryRetentionPeriod.
func (*StateHistoryRetentionPeriodCall) UnpackReturns(data []byte) (uint32, error) {
	vals, err := contractABI.Methods["stateHistoryRetentionPeriod"].Outputs.Unpack(data)
	if err != nil {
		return *new(uint32), err
	}
	return *abi.ConvertType(vals[0], new(uint32)).(*uint32), nil
}

// TransferOwnershipCall carries the arguments of transferOwnership (selector 0xf2fde38b).
type TransferOwnershipCall struct {
	NewOwner common.Address
}

func (*TransferOwnershipCall) Name() string { return "transferOwnership" }

func (*TransferOwnershipCall) Selector() Selector { return methodSelector("transferOwnership") }

func (c *TransferOwnershipCall) Pack() ([]byte, error) {
	return contractABI.Pack("transferOwnership", c.NewOwner)
}

func unpackTransferOwnershipCall(args []byte) (Call, error) {
	vals, err := contractABI.Methods["transferOwnership"].Inputs.Unpack(args)
	if err != nil {
		return nil, err
	}
	c := new(TransferOwnershipCall)
	c.NewOwner = *abi.ConvertType(vals[0], new(common.Address)).(*common.Address)
	return c, nil
}

// UpdateEpochStartBlockCall carries the arguments of updateEpochStartBlock (selector 0x167ac618).
type UpdateEpochStartBlockCall struct {
	EpochStartBlock uint64
}

func (*UpdateEpochStartBlockCall) Name() string { return "updateEpochStartBlock" }

func (*UpdateEpochStartBlockCall) Selector() Selector { return methodSelector("updateEpochStartBlock") }

func (c *UpdateEpochStartBlockCall) Pack() ([]byte, error) {
	return contractABI.Pack("updateEpochStartBlock", c.EpochStartBlock)
}

func unpackUpdateEpochStartBlockCall(args []byte) (Call, error) {
	vals, err := contractABI.Methods["updateEpochStartBlock"].Inputs.Unpack(args)
	if err != nil {
		return nil, err
	}
	c := new(UpdateEpochStartBlockCall)
	c.EpochStartBlock = *abi.ConvertType(vals[0], new(uint64)).(*uint64)
	return c, nil
}

// UpgradeToAndCallCall carries the arguments of upgradeToAndCall (selector 0x4f1ef286).
type UpgradeToAndCallCall struct {
	NewImplementation common.Address
	Data              []byte
}

func (*UpgradeToAndCallCall) Name() string { return "upgradeToAndCall" }

func (*UpgradeToAndCallCall) Selector() Selector { return methodSelector("upgradeToAndCall") }

func (c *UpgradeToAndCallCall) Pack() ([]byte, error) {
	return contractABI.Pack("upgradeToAndCall", c.NewImplementation, c.Data)
}

func unpackUpgradeToAndCallCall(args []byte) (Call, error) {
	vals, err := contractABI.Methods["upgradeToAndCall"].Inputs.Unpack(args)
	if err != nil {
		return nil, err
	}
	c := new(UpgradeToAndCallCall)
	c.NewImplementation = *abi.ConvertType(vals[0], new(common.Address)).(*common.Address)
	c.Data = *abi.ConvertType(vals[1], new([]byte)).(*[]byte)
	return c, nil
}

// VotingStakeTableStateCall carries the arguments of votingStakeTableState (selector 0x0625e19b).
type VotingStakeTableStateCall struct{}

func (*VotingStakeTableStateCall) Name() string { return "votingStakeTableState" }

func (*VotingStakeTableStateCall) Selector() Selector { return methodSelector("votingStakeTableState") }

func (*VotingStakeTableStateCall) Pack() ([]byte, error) {
	return contractABI.Pack("votingStakeTableState")
}

func unpackVotingStakeTableStateCall(args []byte) (Call, error) {
	if len(args) != 0 {
		return nil, errTrailingCalldata
	}
	return new(VotingStakeTableStateCall), nil
}

// VotingStakeTableStateReturn mirrors the return values of votingStakeTableState.
type VotingStakeTableStateReturn struct {
	Threshold      *big.Int
	BlsKeyComm     *big.Int
	SchnorrKeyComm *big.Int
	AmountComm     *big.Int
}

// UnpackReturns decodes the raw return data of votingStakeTableState.
func (*VotingStakeTableStateCall) UnpackReturns(data []byte) (VotingStakeTableStateReturn, error) {
	vals, err := contractABI.Methods["votingStakeTableState"].Outputs.Unpack(data)
	if err != nil {
		return VotingStakeTableStateReturn{}, err
	}
	var r VotingStakeTableStateReturn
	r.Threshold = *abi.ConvertType(vals[0], new(*big.Int)).(**big.Int)
	r.BlsKeyComm = *abi.ConvertType(vals[1], new(*big.Int)).(**big.Int)
	r.SchnorrKeyComm = *abi.ConvertType(vals[2], new(*big.Int)).(**big.Int)
	r.AmountComm = *abi.ConvertType(vals[3], new(*big.Int)).(**big.Int)
	return r, nil
}

// callUnpackers maps ABI method keys to their calldata decoders.
var callUnpackers = map[string]func([]byte) (Call, error){
	"UPGRADE_INTERFACE_VERSION":      unpackUpgradeInterfaceVersionCall,
	"_getVk":                         unpackGetVkCall,
	"blocksPerEpoch":                 unpackBlocksPerEpochCall,
	"currentBlockNumber":             unpackCurrentBlockNumberCall,
	"currentEpoch":                   unpackCurrentEpochCall,
	"disablePermissionedProverMode":  unpackDisablePermissionedProverModeCall,
	"epochFromBlockNumber":           unpackEpochFromBlockNumberCall,
	"epochStartBlock":                unpackEpochStartBlockCall,
	"finalizedState":                 unpackFinalizedStateCall,
	"genesisStakeTableState":         unpackGenesisStakeTableStateCall,
	"genesisState":                   unpackGenesisStateCall,
	"getHotShotCommitment":           unpackGetHotShotCommitmentCall,
	"getStateHistoryCount":           unpackGetStateHistoryCountCall,
	"getVersion":                     unpackGetVersionCall,
	"initialize":                     unpackInitializeCall,
	"initializeV2":                   unpackInitializeV2Call,
	"isEpochRoot":                    unpackIsEpochRootCall,
	"isGtEpochRoot":                  unpackIsGtEpochRootCall,
	"isPermissionedProverEnabled":    unpackIsPermissionedProverEnabledCall,
	"lagOverEscapeHatchThreshold":    unpackLagOverEscapeHatchThresholdCall,
	"newFinalizedState":              unpackNewFinalizedStateCall,
	"newFinalizedState0":             unpackNewFinalizedStateV2Call,
	"owner":                          unpackOwnerCall,
	"permissionedProver":             unpackPermissionedProverCall,
	"proxiableUUID":                  unpackProxiableUUIDCall,
	"renounceOwnership":              unpackRenounceOwnershipCall,
	"setPermissionedProver":          unpackSetPermissionedProverCall,
	"setStateHistoryRetentionPeriod": unpackSetStateHistoryRetentionPeriodCall,
	"setstateHistoryRetentionPeriod": unpackSetstateHistoryRetentionPeriodCall,
	"stateHistoryCommitments":        unpackStateHistoryCommitmentsCall,
	"stateHistoryFirstIndex":         unpackStateHistoryFirstIndexCall,
	"stateHistoryRetentionPeriod":    unpackStateHistoryRetentionPeriodCall,
	"transferOwnership":              unpackTransferOwnershipCall,
	"updateEpochStartBlock":          unpackUpdateEpochStartBlockCall,
	"upgradeToAndCall":               unpackUpgradeToAndCallCall,
	"votingStakeTableState":          unpackVotingStakeTableStateCall,
}
