// Package main is the entry point for the handover-report application
package main

import (
	"github.com/ltelabs/handover-report/cmd"
)

func main() {
	cmd.Execute()
}
