package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/yungbote/roster/internal/app"
)

func main() {
	os.Exit(run(context.Background(), os.Stdout, os.Stderr))
}

func run(ctx context.Context, stdout, stderr io.Writer) int {
	a, err := app.New(stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to init app: %v\n", err)
		return 1
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil {
		a.Log.Error("roster run failed", "error", err)
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
