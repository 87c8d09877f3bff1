// Command learnzone is a terminal client for the Learnzone admin API.
//
//	learnzone login --email admin@example.com
//	learnzone requests list
//	learnzone requests approve 42
//	learnzone tags create --name golang --type 3
//	learnzone stats --monthly students
//
// Settings are read from LEARNZONE_* environment variables and .env.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
