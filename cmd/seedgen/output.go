package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	jsoniter "github.com/json-iterator/go"
	"github.com/olekukonko/tablewriter"

	"github.com/harmony-one/seedgen/internal/seeder"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type valueOutput struct {
	Index int    `json:"index"`
	Seed  string `json:"seed"`
	Value string `json:"value"`
}

type viewOutput struct {
	Bytes   string `json:"bytes"`
	Uint64  string `json:"uint64"`
	Uint128 string `json:"uint128"`
	Uint256 string `json:"uint256"`
}

// writeValues prints the values of it in the given format. hex and dec
// stream one value per line; json and table are written once it is drained.
func writeValues(w io.Writer, format string, it seeder.ValueIterator) error {
	switch format {
	case formatHex:
		for it.Next() {
			if _, err := fmt.Fprintln(w, hexutil.Encode(it.Value().AsBytes())); err != nil {
				return err
			}
		}
		return nil

	case formatDec:
		for it.Next() {
			if _, err := fmt.Fprintln(w, it.Value().AsUint256().ToBig().String()); err != nil {
				return err
			}
		}
		return nil

	case formatJSON:
		outputs := make([]valueOutput, 0, it.Remaining())
		for i := 0; it.Next(); i++ {
			outputs = append(outputs, makeValueOutput(i, it.Value()))
		}
		return writeJSON(w, outputs)

	case formatTable:
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"#", "Seed", "Value"})
		table.SetAutoWrapText(false)
		for i := 0; it.Next(); i++ {
			out := makeValueOutput(i, it.Value())
			table.Append([]string{strconv.Itoa(out.Index), out.Seed, out.Value})
		}
		table.Render()
		return nil
	}
	return fmt.Errorf("unknown output format: %v", format)
}

// writeView prints all integer views of a single seed value.
func writeView(w io.Writer, format string, val seeder.SeedValue) error {
	out := makeViewOutput(val)

	switch format {
	case formatHex, formatDec:
		rows := [][2]string{
			{"bytes", out.Bytes},
			{"uint64", out.Uint64},
			{"uint128", out.Uint128},
			{"uint256", out.Uint256},
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(w, "%-8s %s\n", row[0]+":", row[1]); err != nil {
				return err
			}
		}
		return nil

	case formatJSON:
		return writeJSON(w, out)

	case formatTable:
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"View", "Value"})
		table.SetAutoWrapText(false)
		table.AppendBulk([][]string{
			{"bytes", out.Bytes},
			{"uint64", out.Uint64},
			{"uint128", out.Uint128},
			{"uint256", out.Uint256},
		})
		table.Render()
		return nil
	}
	return fmt.Errorf("unknown output format: %v", format)
}

func makeValueOutput(index int, val seeder.SeedValue) valueOutput {
	return valueOutput{
		Index: index,
		Seed:  hexutil.Encode(val.AsBytes()),
		Value: val.AsUint256().ToBig().String(),
	}
}

func makeViewOutput(val seeder.SeedValue) viewOutput {
	return viewOutput{
		Bytes:   hexutil.Encode(val.AsBytes()),
		Uint64:  strconv.FormatUint(val.AsUint64(), 10),
		Uint128: val.AsUint128().String(),
		Uint256: val.AsUint256().ToBig().String(),
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
