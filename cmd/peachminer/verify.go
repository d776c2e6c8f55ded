package main

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/spf13/cobra"

	"github.com/Holedozer1229/trigg-peach-pow/pkg/peach"
	"github.com/Holedozer1229/trigg-peach-pow/pkg/trailer"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a base58-encoded block trailer",
	Long: `Verify decodes a base58-encoded 160-byte block trailer and runs
the Peach verification path: both haiku halves must pass the Trigg
syntax checker, and the resulting tile-chain hash must satisfy the
trailer's own difficulty.`,
	Run: runVerify,
}

func init() {
	verifyCmd.Flags().StringP("trailer", "t", "", "base58-encoded 160-byte trailer (required)")
	verifyCmd.MarkFlagRequired("trailer")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) {
	encoded, _ := cmd.Flags().GetString("trailer")

	raw := base58.Decode(encoded)
	if len(raw) < trailer.Size {
		fmt.Printf("decoded trailer is %d bytes, want at least %d\n", len(raw), trailer.Size)
		return
	}

	var bt trailer.BlockTrailer
	if err := bt.UnmarshalBinary(raw); err != nil {
		fmt.Printf("decode failed: %v\n", err)
		return
	}

	hash, ok := peach.Verify(&bt)

	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println("peachminer verify")
	fmt.Printf("bnum:       %d\n", bt.BNum)
	fmt.Printf("difficulty: %d\n", bt.Diff())
	fmt.Printf("hash:       %s\n", hex.EncodeToString(hash[:]))
	fmt.Printf("valid:      %t\n", ok)
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
}
