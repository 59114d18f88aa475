package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/spf13/cobra"

	"github.com/EspressoSystems/lightclient-go/codec"
)

// decodeCmd turns raw hex from explorers, traces or node logs back into the
// contract's typed calls, errors and events.
var decodeCmd = &cobra.Command{
	Use:   "decode <hex data>",
	Short: "decode calldata, revert data or an event log of the light client contract",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

var (
	fDecodeRevert bool
	fDecodeTopics string
)

func runDecode(cmd *cobra.Command, args []string) error {
	data, err := hexutil.Decode(args[0])
	if err != nil {
		return fmt.Errorf("decode hex: %w", err)
	}

	switch {
	case fDecodeTopics != "":
		var topics []common.Hash
		for _, t := range strings.Split(fDecodeTopics, ",") {
			topics = append(topics, common.HexToHash(strings.TrimSpace(t)))
		}
		event, err := codec.ParseLog(types.Log{Topics: topics, Data: data})
		if err != nil {
			return err
		}
		return printDecoded(fmt.Sprintf("%T", event), event)

	case fDecodeRevert:
		revert, err := codec.DecodeRevert(data)
		if err != nil {
			return err
		}
		return printDecoded(revert.ErrorName(), revert)

	default:
		call, err := codec.ParseCall(data)
		if err != nil {
			return err
		}
		return printDecoded(call.Name(), call)
	}
}

func printDecoded(name string, v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{"name": name, "decoded": v})
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().BoolVar(&fDecodeRevert, "revert", false, "treat the input as revert data")
	decodeCmd.Flags().StringVar(&fDecodeTopics, "topics", "", "comma-separated log topics; treat the input as event data")
}
