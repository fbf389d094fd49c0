package main

import (
	"fmt"
	"os"

	"fjacquet/pocket-ledger/cmd/add"
	"fjacquet/pocket-ledger/cmd/categories"
	"fjacquet/pocket-ledger/cmd/clear"
	"fjacquet/pocket-ledger/cmd/export"
	"fjacquet/pocket-ledger/cmd/importer"
	"fjacquet/pocket-ledger/cmd/list"
	"fjacquet/pocket-ledger/cmd/remove"
	"fjacquet/pocket-ledger/cmd/root"
	"fjacquet/pocket-ledger/cmd/totals"
	"fjacquet/pocket-ledger/internal/config"
)

func init() {
	// Load .env before viper reads the environment
	config.LoadEnv()

	root.Init()

	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(totals.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(clear.Cmd)
	root.Cmd.AddCommand(importer.Cmd)
}

func main() {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
