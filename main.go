package main

import (
	"os"
	"path/filepath"

	"fintrack/bankstmt/cmd/categorize"
	"fintrack/bankstmt/cmd/mappings"
	"fintrack/bankstmt/cmd/parse"
	"fintrack/bankstmt/cmd/root"

	"github.com/joho/godotenv"
)

func init() {
	loadEnvSilently()

	root.Init()
	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(mappings.Cmd)
}

// loadEnvSilently loads environment variables from a .env file when one
// exists, before any logging is configured.
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
