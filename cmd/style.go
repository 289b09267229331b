package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/hashledger/ledger"
)

// renderChain draws the chain as a table, one row per block.
func renderChain(bc *ledger.Blockchain) (string, error) {
	data := pterm.TableData{{"#", "Timestamp", "Previous hash", "Hash", "Data"}}
	for i, b := range bc.Blocks() {
		data = append(data, []string{
			strconv.Itoa(i),
			b.Timestamp.Format(time.RFC3339Nano),
			formatHash(b.PreviousBlockHash),
			formatHash(b.Hash),
			b.Data,
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
}

func formatHash(h uint64) string {
	if h == 0 {
		return pterm.Gray("-")
	}
	return pterm.LightCyan(fmt.Sprintf("%016x", h))
}
