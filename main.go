// Package main is the entry point for the tubelist application.
package main

import (
	"github.com/samber/lo"
	"github.com/tubelist-cli/tubelist/cmd"
	"github.com/tubelist-cli/tubelist/config"
	"github.com/tubelist-cli/tubelist/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
