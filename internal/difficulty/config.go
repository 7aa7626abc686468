package difficulty

// Config holds the thresholds driving difficulty adjustment.
// The defaults match the behavior the trainer was tuned with; they are
// configuration rather than constants so a deployment can soften or
// sharpen the adjustment curve without a code change.
type Config struct {
	// MinLevel and MaxLevel bound the difficulty scale.
	MinLevel int
	MaxLevel int

	// SuccessThreshold is the accuracy (0-100) at or above which a result
	// counts as a success.
	SuccessThreshold float64

	// FailureThreshold is the accuracy below which a result counts as a
	// failure. Results between the two thresholds are neutral.
	FailureThreshold float64

	// ConsecutiveRequired is the streak length that triggers a level change.
	ConsecutiveRequired int
}

// DefaultConfig returns the standard 5-level adjustment configuration.
func DefaultConfig() Config {
	return Config{
		MinLevel:            1,
		MaxLevel:            5,
		SuccessThreshold:    90.0,
		FailureThreshold:    50.0,
		ConsecutiveRequired: 3,
	}
}
