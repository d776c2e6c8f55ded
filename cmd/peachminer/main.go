// Command peachminer drives the Trigg/Peach proof-of-work engines: it
// can mine a demo block, verify a trailer, benchmark tile generation,
// build an illustrative signed trailer, or serve a read-only status
// endpoint over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	version = "0.1.0"
	banner  = `
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
  peachminer %s - Trigg/Peach proof-of-work engine
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
`
)

var rootCmd = &cobra.Command{
	Use:     "peachminer",
	Short:   "Trigg/Peach proof-of-work CLI",
	Version: version,
	Long: fmt.Sprintf(banner, version) + `
peachminer drives the two proof-of-work engines of a Mochimo-style
chain:

  • Trigg: CPU-only haiku-grammar mining and syntax checking
  • Peach: memory-hard tile-map mining and verification

Use "peachminer <command> --help" for more information about a command.`,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
