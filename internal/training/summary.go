package training

// Summary is the end-of-session report.
type Summary struct {
	SessionID    string
	SessionType  SessionType
	DurationSecs int
	Exercises    int
	Scenarios    int

	// AverageScore is nil when the session recorded no outcomes.
	AverageScore *float64

	Recommendation string
}

// Recommendation maps a session average to next-step guidance. A nil
// average means nothing was completed.
func Recommendation(avg *float64) string {
	if avg == nil {
		return "No activities completed this session. Try a short exercise-only session to get started."
	}

	switch score := *avg; {
	case score >= 90:
		return "Excellent session! You're performing at a high level. Try increasing difficulty for more challenge."
	case score >= 80:
		return "Great work! Your performance is strong. Keep up the consistent practice."
	case score >= 70:
		return "Good session! You're making progress. Focus on accuracy in your next session."
	case score >= 60:
		return "Decent performance. Review the areas where you struggled and practice more."
	default:
		return "This session was challenging. Consider starting with easier exercises to build confidence."
	}
}
