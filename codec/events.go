package codec

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/EspressoSystems/lightclient-go/bindings"
)

// InvalidLogError reports a log record that does not belong to the contract
// interface. Topics and Data carry the raw log content for diagnostics.
type InvalidLogError struct {
	Interface string
	Topics    []common.Hash
	Data      []byte
}

func (e *InvalidLogError) Error() string {
	if len(e.Topics) == 0 {
		return fmt.Sprintf("codec: log without topics cannot belong to %s", e.Interface)
	}
	return fmt.Sprintf("codec: log topic %s does not match any %s event", e.Topics[0], e.Interface)
}

// logParser unpacks logs without a bound backend; only UnpackLog is used.
var logParser *bindings.LightClientArbitrumV2Filterer

func init() {
	p, err := bindings.NewLightClientArbitrumV2Filterer(common.Address{}, nil)
	if err != nil {
		panic(fmt.Sprintf("codec: building log parser: %v", err))
	}
	logParser = p
}

// EventID returns the keccak256 hash of the canonical signature of the named
// event, i.e. its zeroth log topic.
func EventID(name string) (common.Hash, error) {
	ev, ok := contractABI.Events[name]
	if !ok {
		return common.Hash{}, fmt.Errorf("codec: no such event %q in %s", name, InterfaceName)
	}
	return ev.ID, nil
}

// ParseLog decodes a log record emitted by the contract into the matching
// typed event struct from the bindings package. Dispatch is a linear match of
// the zeroth topic against each event's signature hash; logs that match no
// event yield an InvalidLogError.
func ParseLog(lg types.Log) (any, error) {
	if len(lg.Topics) == 0 {
		return nil, &InvalidLogError{Interface: InterfaceName, Topics: lg.Topics, Data: lg.Data}
	}
	switch lg.Topics[0] {
	case contractABI.Events["Initialized"].ID:
		return logParser.ParseInitialized(lg)
	case contractABI.Events["NewEpoch"].ID:
		return logParser.ParseNewEpoch(lg)
	case contractABI.Events["NewState"].ID:
		return logParser.ParseNewState(lg)
	case contractABI.Events["OwnershipTransferred"].ID:
		return logParser.ParseOwnershipTransferred(lg)
	case contractABI.Events["PermissionedProverNotRequired"].ID:
		return logParser.ParsePermissionedProverNotRequired(lg)
	case contractABI.Events["PermissionedProverRequired"].ID:
		return logParser.ParsePermissionedProverRequired(lg)
	case contractABI.Events["Upgrade"].ID:
		return logParser.ParseUpgrade(lg)
	case contractABI.Events["Upgraded"].ID:
		return logParser.ParseUpgraded(lg)
	}
	return nil, &InvalidLogError{Interface: InterfaceName, Topics: lg.Topics, Data: lg.Data}
}
