// Package main is the trade data API entry point
//
// Usage:
//
//	go run ./cmd/tradeapi serve
//	go run ./cmd/tradeapi healthcheck
package main

import (
	"os"

	"github.com/arnizwnd/redis-tugas/cmd/tradeapi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
