package main

import (
	"os"

	"lrocha/extrato-csv/cmd/categorize"
	"lrocha/extrato-csv/cmd/profiles"
	"lrocha/extrato-csv/cmd/root"
	"lrocha/extrato-csv/cmd/summarize"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(summarize.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(profiles.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		// A reported failure produces no partial results; cobra has already
		// printed the error itself.
		root.Log.WithError(err).Error("Ocorreu um erro ao processar o extrato")
		os.Exit(1)
	}
}
