package main

import (
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/spf13/cobra"
)

var demoTrailerCmd = &cobra.Command{
	Use:   "demo-trailer",
	Short: "Generate an illustrative signed demo trailer",
	Long: `Demo-trailer builds a self-consistent demo BlockTrailer, prints
it base58-encoded (the same encoding "verify" accepts), and produces a
Schnorr signature over it from a freshly generated key — purely as an
illustration of how a trailer's authenticity could be attested outside
the core Trigg/Peach consensus rules, which have no signature concept
of their own.`,
	Run: runDemoTrailer,
}

func init() {
	demoTrailerCmd.Flags().Uint8P("difficulty", "d", 8, "leading zero bits required")
	rootCmd.AddCommand(demoTrailerCmd)
}

func runDemoTrailer(cmd *cobra.Command, args []string) {
	diff, _ := cmd.Flags().GetUint8("difficulty")
	bt := newDemoTrailer(diff)

	data, err := bt.MarshalBinary()
	if err != nil {
		fmt.Printf("marshal failed: %v\n", err)
		return
	}

	priv, err := btcec.NewPrivateKey()
	if err != nil {
		fmt.Printf("key generation failed: %v\n", err)
		return
	}

	digest := sha256.Sum256(data)
	sig, err := schnorr.Sign(priv, digest[:])
	if err != nil {
		fmt.Printf("signing failed: %v\n", err)
		return
	}

	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println("peachminer demo-trailer")
	fmt.Printf("trailer:   %s\n", base58.Encode(data))
	fmt.Printf("pubkey:    %x\n", priv.PubKey().SerializeCompressed())
	fmt.Printf("signature: %x\n", sig.Serialize())
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	if ok := schnorr.Verify(sig, digest[:], priv.PubKey()); !ok {
		fmt.Println("warning: freshly produced signature failed to verify")
	}
}
