package difficulty

import (
	"fmt"
	"time"
)

// Tracker applies results to per-user tracking state. Pure computation —
// persistence is the caller's concern.
type Tracker struct {
	cfg Config
}

// NewTracker creates a tracker with the given configuration.
func NewTracker(cfg Config) *Tracker {
	return &Tracker{cfg: cfg}
}

// Classify maps an accuracy scalar to its outcome class.
func (t *Tracker) Classify(accuracy float64) OutcomeClass {
	switch {
	case accuracy >= t.cfg.SuccessThreshold:
		return ClassSuccess
	case accuracy < t.cfg.FailureThreshold:
		return ClassFailure
	default:
		return ClassNeutral
	}
}

// Apply records one result and returns a LevelChange if the streak rules
// moved the level, nil otherwise.
//
// Streak bookkeeping: a success increments the success counter and zeroes
// the failure counter, a failure does the reverse, and a neutral result
// holds both counters — it neither extends nor breaks a streak. When a
// counter reaches ConsecutiveRequired the level moves one step toward the
// corresponding bound. At the bound the change is suppressed but the
// streak still resets, so the next result starts a fresh count.
func (t *Tracker) Apply(tr *Tracking, accuracy float64) *LevelChange {
	class := t.Classify(accuracy)

	switch class {
	case ClassSuccess:
		tr.ConsecutiveSuccesses++
		tr.ConsecutiveFailures = 0
	case ClassFailure:
		tr.ConsecutiveFailures++
		tr.ConsecutiveSuccesses = 0
	}

	tr.LastOutcome = class
	tr.UpdatedAt = time.Now()

	var change *LevelChange

	switch {
	case tr.ConsecutiveSuccesses >= t.cfg.ConsecutiveRequired:
		if tr.Level < t.cfg.MaxLevel {
			change = &LevelChange{
				OldLevel:  tr.Level,
				NewLevel:  tr.Level + 1,
				Direction: DirectionUp,
				Reason:    fmt.Sprintf("%d consecutive successes", t.cfg.ConsecutiveRequired),
				Message:   levelUpMessage(tr.Level + 1),
			}
			tr.Level++
		}
		tr.ConsecutiveSuccesses = 0
		tr.ConsecutiveFailures = 0

	case tr.ConsecutiveFailures >= t.cfg.ConsecutiveRequired:
		if tr.Level > t.cfg.MinLevel {
			change = &LevelChange{
				OldLevel:  tr.Level,
				NewLevel:  tr.Level - 1,
				Direction: DirectionDown,
				Reason:    fmt.Sprintf("%d consecutive struggles", t.cfg.ConsecutiveRequired),
				Message:   levelDownMessage(tr.Level - 1),
			}
			tr.Level--
		}
		tr.ConsecutiveSuccesses = 0
		tr.ConsecutiveFailures = 0
	}

	return change
}

// SetLevel manually overrides the difficulty level, clamped to the
// configured range. Both streak counters are zeroed — an override always
// starts the user on a clean slate.
func (t *Tracker) SetLevel(tr *Tracking, level int, reason string) *LevelChange {
	if level < t.cfg.MinLevel {
		level = t.cfg.MinLevel
	}
	if level > t.cfg.MaxLevel {
		level = t.cfg.MaxLevel
	}

	old := tr.Level
	tr.Level = level
	tr.ConsecutiveSuccesses = 0
	tr.ConsecutiveFailures = 0
	tr.UpdatedAt = time.Now()

	dir := DirectionUp
	if level < old {
		dir = DirectionDown
	}

	if reason == "" {
		reason = "manual adjustment"
	}

	return &LevelChange{
		OldLevel:  old,
		NewLevel:  level,
		Direction: dir,
		Reason:    reason,
		Message:   fmt.Sprintf("Difficulty set to level %d", level),
	}
}

// Progress reports the active streak and how many more results of the same
// class would trigger an adjustment.
func (t *Tracker) Progress(tr *Tracking) Progress {
	p := Progress{
		Level:    tr.Level,
		Required: t.cfg.ConsecutiveRequired,
	}

	switch {
	case tr.ConsecutiveSuccesses > 0:
		p.CurrentStreak = tr.ConsecutiveSuccesses
		p.Remaining = t.cfg.ConsecutiveRequired - tr.ConsecutiveSuccesses
		if tr.Level < t.cfg.MaxLevel {
			p.Direction = DirectionUp
		}
	case tr.ConsecutiveFailures > 0:
		p.CurrentStreak = tr.ConsecutiveFailures
		p.Remaining = t.cfg.ConsecutiveRequired - tr.ConsecutiveFailures
		if tr.Level > t.cfg.MinLevel {
			p.Direction = DirectionDown
		}
	}

	return p
}

// levelUpMessage returns the encouragement shown when a level increases.
func levelUpMessage(newLevel int) string {
	switch newLevel {
	case 2:
		return "Great progress! Moving to Level 2. Challenges will become more engaging."
	case 3:
		return "Excellent work! Welcome to Level 3. You're showing real improvement!"
	case 4:
		return "Outstanding! Level 4 unlocked. You're mastering complex challenges!"
	case 5:
		return "Incredible! Maximum difficulty reached. You're at expert level!"
	default:
		return fmt.Sprintf("Level increased to %d!", newLevel)
	}
}

// levelDownMessage returns the supportive note shown when a level decreases.
func levelDownMessage(newLevel int) string {
	switch newLevel {
	case 1:
		return "No worries! We've adjusted to Level 1 to help you build confidence. You've got this!"
	case 2:
		return "Level adjusted to 2. Let's focus on strengthening fundamentals!"
	case 3:
		return "Moving to Level 3. This pace will help you master the concepts better."
	case 4:
		return "Level 4 still offers great challenges. Keep practicing!"
	default:
		return fmt.Sprintf("Level adjusted to %d for optimal learning.", newLevel)
	}
}
