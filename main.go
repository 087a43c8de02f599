package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/herald/cmd/herald"
)

func main() {
	os.Exit(actualMain())
}

func actualMain() int {
	ctx := context.Background()

	rootCmd := herald.NewRootCmd(ctx)

	if err := herald.ExecuteWithFang(ctx, rootCmd); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}
