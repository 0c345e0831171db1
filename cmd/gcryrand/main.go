// Command gcryrand is a small CLI wrapped around the gcryrand package: it
// generates random bytes, inspects and seeds the process-wide pool's
// stats and seed file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nbarlow/gcryrand/cmd/gcryrand/generate"
	"github.com/nbarlow/gcryrand/cmd/gcryrand/seed"
	"github.com/nbarlow/gcryrand/cmd/gcryrand/stats"
)

var rootCmd = &cobra.Command{
	Use:   "gcryrand",
	Short: "Draw from and inspect a continuously-seeded entropy pool",
	Long: `gcryrand is a command-line front end for the gcryrand package's
process-wide entropy pool: a single continuously-stirred, continuously-
reseeded generator modeled on Peter Gutmann's pool design.`,
}

func main() {
	rootCmd.AddCommand(generate.NewCommand())
	rootCmd.AddCommand(seed.NewCommand())
	rootCmd.AddCommand(stats.NewCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gcryrand: %v\n", err)
		os.Exit(1)
	}
}
