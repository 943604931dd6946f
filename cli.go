//go:build cli
// +build cli

package main

import (
	"bazar.GO/cmd"
	"bazar.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
