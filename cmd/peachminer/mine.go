package main

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Holedozer1229/trigg-peach-pow/pkg/peach"
)

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Mine a demo block with the Peach engine",
	Long: `Mine allocates a Peach engine (a 1 GiB map and 1 MiB cache)
against a freshly generated demo trailer and repeatedly calls
Generate() until it finds a nonce satisfying the requested
difficulty, or the attempt budget is exhausted.`,
	Run: runMine,
}

func init() {
	def := DefaultConfig()
	mineCmd.Flags().Uint8P("difficulty", "d", def.Difficulty, "leading zero bits required")
	mineCmd.Flags().IntP("attempts", "n", def.Attempts, "maximum attempts before giving up")
	rootCmd.AddCommand(mineCmd)
}

func runMine(cmd *cobra.Command, args []string) {
	cfg := DefaultConfig()
	cfg.Difficulty, _ = cmd.Flags().GetUint8("difficulty")
	cfg.Attempts, _ = cmd.Flags().GetInt("attempts")

	bt := newDemoTrailer(cfg.Difficulty)

	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println("peachminer mine")
	fmt.Printf("phash:      %s\n", hex.EncodeToString(bt.PHash[:]))
	fmt.Printf("mroot:      %s\n", hex.EncodeToString(bt.MRoot[:]))
	fmt.Printf("difficulty: %d\n", cfg.Difficulty)
	fmt.Printf("attempts:   %d\n", cfg.Attempts)
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	eng, err := peach.NewEngine(bt)
	if err != nil {
		fmt.Printf("engine allocation failed: %v\n", err)
		return
	}
	defer eng.Close()

	start := time.Now()
	for i := 0; i < cfg.Attempts; i++ {
		nonce, ok := eng.Generate()
		if !ok {
			continue
		}

		elapsed := time.Since(start)
		bt.Nonce = nonce
		bt.STime = uint32(time.Now().Unix())

		fmt.Println()
		fmt.Println("solved")
		fmt.Printf("nonce:    %s\n", hex.EncodeToString(nonce[:]))
		fmt.Printf("attempts: %d\n", i+1)
		fmt.Printf("elapsed:  %v\n", elapsed)
		fmt.Printf("rate:     %.2f attempts/s\n", float64(i+1)/elapsed.Seconds())
		return
	}

	fmt.Printf("\nno solution found in %d attempts\n", cfg.Attempts)
}
