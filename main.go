package main

import (
	"os"

	"fjacquet/event-budget/cmd/categories"
	"fjacquet/event-budget/cmd/dashboard"
	"fjacquet/event-budget/cmd/export"
	"fjacquet/event-budget/cmd/guest"
	"fjacquet/event-budget/cmd/item"
	"fjacquet/event-budget/cmd/report"
	"fjacquet/event-budget/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(dashboard.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(item.Cmd)
	root.Cmd.AddCommand(guest.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		root.Log.WithError(err).Error("Command failed")
		_ = root.CloseContainer()
		os.Exit(1)
	}
}
