// Package codec implements the wire-format layer for the LightClientArbitrumV2
// contract: typed call structs with calldata encoding and decoding, typed
// revert errors, event log parsing, packed encodings and EIP-712 struct
// hashing. All operations are pure transforms over immutable inputs; the
// package holds no mutable state after init and is safe for concurrent use.
package codec

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/EspressoSystems/lightclient-go/bindings"
)

// InterfaceName is used in diagnostics for bytes that do not match any known
// function, error or event of the contract.
const InterfaceName = "LightClientArbitrumV2"

var errTrailingCalldata = errors.New("codec: unexpected trailing calldata")

// contractABI is the parsed LightClientArbitrumV2 ABI shared by the whole
// codec layer. bindings.LightClientArbitrumV2MetaData is the source of truth.
var contractABI abi.ABI

// Selector is the leading 4 bytes of keccak256 of a canonical function or
// error signature.
type Selector [4]byte

func (s Selector) String() string {
	return "0x" + hex.EncodeToString(s[:])
}

// SelectorOf extracts the selector from raw calldata or revert data.
func SelectorOf(data []byte) (Selector, error) {
	var s Selector
	if len(data) < 4 {
		return s, fmt.Errorf("codec: data too short for a selector: %d bytes", len(data))
	}
	copy(s[:], data[:4])
	return s, nil
}

func methodSelector(name string) Selector {
	var s Selector
	copy(s[:], contractABI.Methods[name].ID)
	return s
}

func errorSelector(name string) Selector {
	var s Selector
	id := contractABI.Errors[name].ID
	copy(s[:], id[:4])
	return s
}

// UnknownSelectorError reports calldata or revert data whose selector does not
// belong to the contract interface.
type UnknownSelectorError struct {
	Interface string
	Selector  Selector
}

func (e *UnknownSelectorError) Error() string {
	return fmt.Sprintf("codec: unknown %s selector %s", e.Interface, e.Selector)
}

// selector dispatch tables, sorted ascending so lookups can binary search.
// Built once at init from the parsed ABI.
var (
	callSelectors []Selector
	callDecoders  []func([]byte) (Call, error)

	errorSelectors []Selector
	errorDecoders  []func([]byte) (ContractError, error)
)

func init() {
	parsed, err := bindings.LightClientArbitrumV2MetaData.GetAbi()
	if err != nil {
		panic(fmt.Sprintf("codec: invalid embedded ABI: %v", err))
	}
	contractABI = *parsed

	for name := range contractABI.Methods {
		unpack, ok := callUnpackers[name]
		if !ok {
			panic(fmt.Sprintf("codec: no call decoder for ABI method %q", name))
		}
		callSelectors = append(callSelectors, methodSelector(name))
		callDecoders = append(callDecoders, unpack)
	}
	sort.Sort(&selectorTable{callSelectors, func(i, j int) {
		callDecoders[i], callDecoders[j] = callDecoders[j], callDecoders[i]
	}})

	for name := range contractABI.Errors {
		unpack, ok := errorUnpackers[name]
		if !ok {
			panic(fmt.Sprintf("codec: no error decoder for ABI error %q", name))
		}
		errorSelectors = append(errorSelectors, errorSelector(name))
		errorDecoders = append(errorDecoders, unpack)
	}
	sort.Sort(&selectorTable{errorSelectors, func(i, j int) {
		errorDecoders[i], errorDecoders[j] = errorDecoders[j], errorDecoders[i]
	}})
}

// selectorTable co-sorts a selector slice with its parallel decoder slice.
type selectorTable struct {
	sels    []Selector
	swapAux func(i, j int)
}

func (t *selectorTable) Len() int { return len(t.sels) }

func (t *selectorTable) Less(i, j int) bool {
	return bytes.Compare(t.sels[i][:], t.sels[j][:]) < 0
}

func (t *selectorTable) Swap(i, j int) {
	t.sels[i], t.sels[j] = t.sels[j], t.sels[i]
	t.swapAux(i, j)
}

// lookup returns the table index of sel, or -1.
func lookup(sels []Selector, sel Selector) int {
	i := sort.Search(len(sels), func(i int) bool {
		return bytes.Compare(sels[i][:], sel[:]) >= 0
	})
	if i < len(sels) && sels[i] == sel {
		return i
	}
	return -1
}

// ParseCall decodes raw calldata into the typed call struct matching its
// selector. Re-encoding the result with Pack reproduces equivalent calldata.
func ParseCall(data []byte) (Call, error) {
	sel, err := SelectorOf(data)
	if err != nil {
		return nil, err
	}
	i := lookup(callSelectors, sel)
	if i < 0 {
		return nil, &UnknownSelectorError{Interface: InterfaceName, Selector: sel}
	}
	return callDecoders[i](data[4:])
}

// Selectors returns the sorted selectors of every contract function, mostly
// useful for diagnostics and tests.
func Selectors() []Selector {
	out := make([]Selector, len(callSelectors))
	copy(out, callSelectors)
	return out
}
