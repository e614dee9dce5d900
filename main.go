package main

import (
	"context"
	"os"

	"github.com/baselinegen/baselinegen/cli"
	"github.com/baselinegen/baselinegen/pkg/logger"
)

func main() {
	ctx := context.Background()
	if err := cli.RootCmd().ExecuteContext(ctx); err != nil {
		logger.FromContext(ctx).Error("command failed", "error", err)
		os.Exit(1)
	}
}
