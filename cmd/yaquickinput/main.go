package main

import (
	"os"

	"github.com/YaCodeDev/GoYaQuickInput/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.ReadCmd())
	rootCmd.AddCommand(commands.TypesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
