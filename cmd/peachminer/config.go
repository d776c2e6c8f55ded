package main

// Config bundles the settings a mining run reads from its flags,
// following the teacher's pattern of a small settings struct (rather
// than scattering cmd.Flags().GetX() calls through each Run function
// or reaching for a generalised config framework).
type Config struct {
	Difficulty byte
	Attempts   int
}

// DefaultConfig returns peachminer's baseline mining configuration.
func DefaultConfig() Config {
	return Config{
		Difficulty: 8,
		Attempts:   1_000_000,
	}
}
