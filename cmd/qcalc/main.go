// Command qcalc evaluates a quaternion expression on a running exercises
// service and prints the canonical rendering of the result.
//
//	qcalc [--url U] add|mul|conjugate "a,b,c,d" ...
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
