package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/Holedozer1229/trigg-peach-pow/pkg/peach"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a read-only mining status endpoint",
	Long: `Serve starts a demo HTTP server exposing a single read-only
/status endpoint reporting the attempt and solve counts, the
configured difficulty, uptime, and the most recent solving nonce. It
mines continuously against a fresh demo trailer in the background; it
is not a node and does not accept any mining or chain-mutating
requests.`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringP("addr", "a", ":8585", "listen address")
	serveCmd.Flags().Uint8P("difficulty", "d", 16, "leading zero bits required")
	rootCmd.AddCommand(serveCmd)
}

type statusResponse struct {
	Attempts   uint64 `json:"attempts"`
	Solved     uint64 `json:"solved"`
	Difficulty byte   `json:"difficulty"`
	Uptime     string `json:"uptime"`
	LastNonce  string `json:"last_nonce,omitempty"`
}

type miningStatus struct {
	mu        sync.Mutex
	attempts  uint64
	solved    uint64
	lastNonce string
	diff      byte
	started   time.Time
}

func (s *miningStatus) snapshot() statusResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return statusResponse{
		Attempts:   s.attempts,
		Solved:     s.solved,
		Difficulty: s.diff,
		Uptime:     time.Since(s.started).Round(time.Second).String(),
		LastNonce:  s.lastNonce,
	}
}

func runServe(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	diff, _ := cmd.Flags().GetUint8("difficulty")

	status := &miningStatus{diff: diff, started: time.Now()}

	go mineInBackground(status, diff)

	router := mux.NewRouter()
	router.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status.snapshot())
	}).Methods(http.MethodGet)

	handler := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet},
	}).Handler(router)

	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println("peachminer serve")
	fmt.Printf("listening on %s\n", addr)
	fmt.Printf("difficulty:  %d\n", diff)
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	if err := http.ListenAndServe(addr, handler); err != nil {
		fmt.Println(err)
	}
}

func mineInBackground(status *miningStatus, diff byte) {
	bt := newDemoTrailer(diff)

	eng, err := peach.NewEngine(bt)
	if err != nil {
		return
	}
	defer eng.Close()

	for {
		nonce, ok := eng.Generate()

		status.mu.Lock()
		status.attempts++
		if ok {
			status.solved++
			status.lastNonce = fmt.Sprintf("%x", nonce)
		}
		status.mu.Unlock()
	}
}
