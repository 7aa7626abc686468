package scenario

import "github.com/abhisek/cogniplay/internal/llm"

// GenerationSchema defines the JSON schema for scenario setup responses.
var GenerationSchema = &llm.Schema{
	Name:        "scenario-setup",
	Description: "Initial setup for a role-playing training scenario",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short scenario title",
			},
			"context": map[string]any{
				"type":        "string",
				"description": "Background context the trainee should know",
			},
			"initial_situation": map[string]any{
				"type":        "string",
				"description": "The opening situation presented to the trainee",
			},
			"initial_options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 suggested opening actions",
			},
		},
		"required":             []any{"title", "context", "initial_situation", "initial_options"},
		"additionalProperties": false,
	},
}

// TurnSchema defines the JSON schema for per-turn character responses.
var TurnSchema = &llm.Schema{
	Name:        "scenario-turn",
	Description: "Character response and narrative continuation for one scenario turn",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"response": map[string]any{
				"type":        "string",
				"description": "What the character says in reply to the trainee's action",
			},
			"narrative": map[string]any{
				"type":        "string",
				"description": "How the situation evolves as a result",
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Suggested next actions; empty when the scenario has reached a natural end",
			},
		},
		"required":             []any{"response", "narrative", "options"},
		"additionalProperties": false,
	},
}

// ConclusionSchema defines the JSON schema for final scenario summaries.
var ConclusionSchema = &llm.Schema{
	Name:        "scenario-conclusion",
	Description: "Final performance summary for a completed scenario",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Outcome summary, key strengths, areas for improvement, and one actionable tip",
			},
		},
		"required":             []any{"summary"},
		"additionalProperties": false,
	},
}
