package character

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func newGen() *Generator {
	return NewGenerator(rand.New(rand.NewPCG(3, 9)))
}

func TestGenerateKnownScenarioTypes(t *testing.T) {
	g := newGen()
	for scenarioType, roster := range templates {
		c := g.Generate(scenarioType, 1)
		if c.ID == "" || c.Name == "" || c.Background == "" {
			t.Errorf("%s: incomplete character %+v", scenarioType, c)
		}
		found := false
		for _, tpl := range roster {
			if tpl.role == c.Role {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: role %q not in roster", scenarioType, c.Role)
		}
	}
}

func TestGenerateUnknownTypeFallsBack(t *testing.T) {
	g := newGen()
	c := g.Generate("interpretive_dance", 1)
	found := false
	for _, tpl := range templates["social_interaction"] {
		if tpl.role == c.Role {
			found = true
		}
	}
	if !found {
		t.Errorf("fallback role %q not in social_interaction roster", c.Role)
	}
}

func TestHighDifficultyForcesHiddenAgenda(t *testing.T) {
	g := newGen()
	for d := 4; d <= 5; d++ {
		for i := 0; i < 10; i++ {
			c := g.Generate("negotiation", d)
			if c.Traits.Goals != "Hidden Agenda" {
				t.Fatalf("difficulty %d: goals = %q, want Hidden Agenda", d, c.Traits.Goals)
			}
		}
	}
}

func TestLowDifficultyKeepsArchetypeTraits(t *testing.T) {
	g := newGen()
	for i := 0; i < 10; i++ {
		c := g.Generate("problem_solving", 1)
		base, ok := archetypeTraits[roleArchetype("problem_solving", c.Role)]
		if !ok {
			t.Fatalf("no archetype for role %q", c.Role)
		}
		if c.Traits != base {
			t.Errorf("difficulty 1 traits mutated: got %+v want %+v", c.Traits, base)
		}
	}
}

func roleArchetype(scenarioType, role string) string {
	for _, tpl := range templates[scenarioType] {
		if tpl.role == role {
			return tpl.archetype
		}
	}
	return ""
}

func TestRememberBoundsHistory(t *testing.T) {
	c := &Character{ID: "c1"}
	for i := 0; i < MaxHistory+7; i++ {
		c.Remember(Interaction{UserInput: fmt.Sprintf("turn %d", i)})
	}
	if len(c.History) != MaxHistory {
		t.Fatalf("history length = %d, want %d", len(c.History), MaxHistory)
	}
	// Oldest entries evicted first.
	if c.History[0].UserInput != "turn 7" {
		t.Errorf("oldest retained = %q, want %q", c.History[0].UserInput, "turn 7")
	}
}

func TestRecentHistoryWindow(t *testing.T) {
	c := &Character{ID: "c1"}
	for i := 0; i < 5; i++ {
		c.Remember(Interaction{UserInput: fmt.Sprintf("turn %d", i)})
	}

	recent := c.RecentHistory(3)
	if len(recent) != 3 {
		t.Fatalf("window length = %d, want 3", len(recent))
	}
	if recent[0].UserInput != "turn 2" || recent[2].UserInput != "turn 4" {
		t.Errorf("wrong window: %+v", recent)
	}

	all := c.RecentHistory(10)
	if len(all) != 5 {
		t.Errorf("oversized window length = %d, want 5", len(all))
	}
}
