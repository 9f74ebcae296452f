// Command tagledger scrapes, classifies and renders the \Tag ledger
// annotations of a TeX manuscript tree.
package main

import (
	"os"

	"github.com/Illian-Amerond/tagledger/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
