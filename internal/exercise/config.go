package exercise

// Config controls exercise generation and scoring.
type Config struct {
	// RecallRatio is the fraction of a word list that must be recalled
	// for the answer to count as correct.
	RecallRatio float64

	// FastBonus is added to the score when a correct answer arrives in
	// under half the time limit.
	FastBonus float64

	// OvertimePenalty is subtracted when the answer exceeds the time limit.
	OvertimePenalty float64

	// HintPenalty is subtracted per hint used.
	HintPenalty float64
}

// DefaultConfig returns the standard scoring configuration.
func DefaultConfig() Config {
	return Config{
		RecallRatio:     0.7,
		FastBonus:       10,
		OvertimePenalty: 10,
		HintPenalty:     5,
	}
}
