// Package main is the entry point for the mu application.
package main

import (
	"github.com/samber/lo"
	"github.com/shadowheroku/mu/cmd"
	"github.com/shadowheroku/mu/config"
	"github.com/shadowheroku/mu/internal/cache"
	"github.com/shadowheroku/mu/internal/retention"
	"github.com/shadowheroku/mu/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Background maintenance for expired search results and the
	// download-directory retention window.
	go cache.CollectGarbage()
	go retention.Sweep()

	cmd.Execute()
}
