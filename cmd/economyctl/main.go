// economyctl administers the economy directly against storage, without going through the
// HTTP API. It reads the same environment as the server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "economyctl",
		Short:         "Administer the SpaceBot economy",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCmd(),
		newSeedCmd(),
		newItemCmd(),
		newJobCmd(),
		newStockCmd(),
		newBalanceCmd(),
		newMarketCmd(),
	)
	return root
}

func printError(w *os.File, err error) {
	fmt.Fprintf(w, "%s %v\n", danger.Sprint("error:"), err)
}
