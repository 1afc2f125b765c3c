package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/taskflow/memberctl/pkg/cli"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	if err := cli.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}
