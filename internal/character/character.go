// Package character generates the AI personas that populate role-playing
// scenarios. Personas are template-based: a role archetype per scenario
// type, with trait complexity scaled by difficulty.
package character

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Traits is a persona's personality profile.
type Traits struct {
	Temperament        string `json:"temperament"`
	CommunicationStyle string `json:"communication_style"`
	EmotionalState     string `json:"emotional_state"`
	Goals              string `json:"goals"`
}

// Interaction is one recorded exchange between the trainee and a character.
type Interaction struct {
	UserInput string    `json:"user_input"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// Character is an AI persona participating in a scenario.
type Character struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Traits     Traits    `json:"personality_traits"`
	Background string    `json:"background"`
	CreatedAt  time.Time `json:"created_at"`

	// History holds the character's recent exchanges, oldest first,
	// bounded by MaxHistory.
	History []Interaction `json:"interaction_history"`
}

// MaxHistory bounds a character's retained interaction history.
const MaxHistory = 20

// Remember appends an interaction, evicting the oldest when full.
func (c *Character) Remember(in Interaction) {
	c.History = append(c.History, in)
	if len(c.History) > MaxHistory {
		c.History = c.History[len(c.History)-MaxHistory:]
	}
}

// RecentHistory returns up to the last n interactions.
func (c *Character) RecentHistory(n int) []Interaction {
	if len(c.History) <= n {
		return c.History
	}
	return c.History[len(c.History)-n:]
}

type template struct {
	role      string
	archetype string
}

var templates = map[string][]template{
	"negotiation": {
		{"Business Partner", "pragmatic"},
		{"Client", "demanding"},
		{"Vendor", "competitive"},
	},
	"problem_solving": {
		{"Team Lead", "collaborative"},
		{"Technical Expert", "analytical"},
		{"Stakeholder", "concerned"},
	},
	"social_interaction": {
		{"Colleague", "friendly"},
		{"Supervisor", "professional"},
		{"Peer", "casual"},
	},
	"leadership": {
		{"Team Member", "supportive"},
		{"Difficult Employee", "resistant"},
		{"Senior Manager", "authoritative"},
	},
	"creative_thinking": {
		{"Creative Partner", "innovative"},
		{"Critic", "skeptical"},
		{"Client", "open_minded"},
	},
}

var traitOptions = map[string][]string{
	"temperament":         {"Friendly", "Professional", "Challenging", "Neutral", "Enthusiastic", "Reserved"},
	"communication_style": {"Direct", "Diplomatic", "Technical", "Casual", "Formal", "Concise"},
	"emotional_state":     {"Calm", "Stressed", "Enthusiastic", "Skeptical", "Optimistic", "Frustrated"},
	"goals":               {"Cooperative", "Competitive", "Hidden Agenda", "Helpful", "Self-interested", "Neutral"},
}

var archetypeTraits = map[string]Traits{
	"pragmatic":     {"Professional", "Direct", "Calm", "Self-interested"},
	"demanding":     {"Challenging", "Direct", "Stressed", "Competitive"},
	"collaborative": {"Friendly", "Diplomatic", "Enthusiastic", "Cooperative"},
	"analytical":    {"Reserved", "Technical", "Calm", "Helpful"},
	"friendly":      {"Friendly", "Casual", "Optimistic", "Cooperative"},
	"professional":  {"Professional", "Formal", "Calm", "Neutral"},
	"casual":        {"Friendly", "Casual", "Optimistic", "Cooperative"},
	"supportive":    {"Friendly", "Diplomatic", "Optimistic", "Helpful"},
	"resistant":     {"Challenging", "Concise", "Frustrated", "Self-interested"},
	"authoritative": {"Professional", "Formal", "Calm", "Competitive"},
	"innovative":    {"Enthusiastic", "Casual", "Enthusiastic", "Cooperative"},
	"skeptical":     {"Reserved", "Direct", "Skeptical", "Neutral"},
	"open_minded":   {"Friendly", "Diplomatic", "Optimistic", "Cooperative"},
	"concerned":     {"Neutral", "Formal", "Stressed", "Self-interested"},
	"competitive":   {"Challenging", "Direct", "Calm", "Competitive"},
}

var firstNames = []string{
	"Alex", "Jordan", "Taylor", "Morgan", "Casey",
	"Riley", "Avery", "Quinn", "Sage", "Drew",
	"Sam", "Jamie", "Chris", "Pat", "Robin",
}

var lastNames = []string{
	"Chen", "Patel", "Johnson", "Williams", "Garcia",
	"Martinez", "Kim", "Lee", "Brown", "Davis",
}

var backgrounds = map[string][]string{
	"Business Partner": {
		"Has been in the industry for 10 years and values efficiency.",
		"Recently promoted and eager to prove themselves.",
		"Experienced negotiator with strong network connections.",
	},
	"Team Lead": {
		"Manages a team of 8 and focuses on collaboration.",
		"New to leadership but highly technical.",
		"Veteran leader known for developing talent.",
	},
	"Client": {
		"Running a startup and needs quick solutions.",
		"Represents a Fortune 500 company with high standards.",
		"Small business owner watching every dollar.",
	},
}

// Generator creates personas. rng may be nil, in which case the shared
// global source is used.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate creates a persona suited to the scenario type. Unknown scenario
// types fall back to the social_interaction roster. Difficulty shapes the
// traits: level 3+ randomizes one trait, level 4+ forces a hidden agenda.
func (g *Generator) Generate(scenarioType string, difficulty int) *Character {
	roster, ok := templates[scenarioType]
	if !ok {
		roster = templates["social_interaction"]
	}
	tpl := roster[g.intn(len(roster))]

	traits, ok := archetypeTraits[tpl.archetype]
	if !ok {
		traits = archetypeTraits["pragmatic"]
	}

	if difficulty >= 3 {
		g.randomizeTrait(&traits)
	}
	if difficulty >= 4 {
		traits.Goals = "Hidden Agenda"
	}

	return &Character{
		ID:         uuid.NewString(),
		Name:       g.pick(firstNames) + " " + g.pick(lastNames),
		Role:       tpl.role,
		Traits:     traits,
		Background: g.background(tpl.role),
		CreatedAt:  time.Now(),
	}
}

func (g *Generator) randomizeTrait(t *Traits) {
	switch g.intn(4) {
	case 0:
		t.Temperament = g.pick(traitOptions["temperament"])
	case 1:
		t.CommunicationStyle = g.pick(traitOptions["communication_style"])
	case 2:
		t.EmotionalState = g.pick(traitOptions["emotional_state"])
	default:
		t.Goals = g.pick(traitOptions["goals"])
	}
}

func (g *Generator) background(role string) string {
	opts, ok := backgrounds[role]
	if !ok {
		return "Professional with relevant experience."
	}
	return opts[g.intn(len(opts))]
}

func (g *Generator) intn(n int) int {
	if g.rng != nil {
		return g.rng.IntN(n)
	}
	return rand.IntN(n)
}

func (g *Generator) pick(items []string) string {
	return items[g.intn(len(items))]
}
