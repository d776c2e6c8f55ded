package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Holedozer1229/trigg-peach-pow/pkg/peach"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark Peach tile generation",
	Long: `Bench drives an unattached (scratch-buffer) Peach engine
through sequential tile generations and reports throughput, without
allocating the full 1 GiB map.`,
	Run: runBench,
}

func init() {
	benchCmd.Flags().IntP("tiles", "n", 4096, "number of tiles to generate")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) {
	tiles, _ := cmd.Flags().GetInt("tiles")

	bt := newDemoTrailer(0)

	// An Engine with no map/cache attached exercises the same
	// scratch-buffer tile path peach.Verify uses.
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println("peachminer bench")
	fmt.Printf("tiles: %d\n", tiles)
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	eng := peach.NewScratchEngine(bt)

	start := time.Now()
	for i := 0; i < tiles; i++ {
		eng.Gen(uint32(i) & (peach.TileCount - 1))
	}
	elapsed := time.Since(start)

	fmt.Printf("elapsed: %v\n", elapsed)
	fmt.Printf("rate:    %.2f tiles/s\n", float64(tiles)/elapsed.Seconds())
	fmt.Printf("rate:    %.2f MiB/s\n", float64(tiles*peach.TileSize)/elapsed.Seconds()/(1024*1024))
}
