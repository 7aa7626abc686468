package scenario

import (
	"bytes"
	"text/template"

	"github.com/abhisek/cogniplay/internal/character"
)

const generationSystemPrompt = `You are a scenario designer for a cognitive training program. You create realistic workplace role-playing scenarios that exercise decision-making skills. Scenarios must be self-contained, concrete, and resolvable within about ten decisions. Difficulty 1 scenarios are straightforward with cooperative characters; difficulty 5 scenarios involve conflicting interests, incomplete information, and pressure.`

var generationUserTemplate = template.Must(template.New("generation").Parse(`Create a {{.Type}} scenario at difficulty {{.Difficulty}} (1-5).

The trainee will interact with this character:
Name: {{.Character.Name}}
Role: {{.Character.Role}}
Temperament: {{.Character.Traits.Temperament}}
Communication style: {{.Character.Traits.CommunicationStyle}}
Emotional state: {{.Character.Traits.EmotionalState}}
Goals: {{.Character.Traits.Goals}}
Background: {{.Character.Background}}

Set up the opening situation from the trainee's point of view and suggest 2-4 opening actions.`))

type generationInput struct {
	Type       Type
	Difficulty int
	Character  *character.Character
}

func buildGenerationMessage(in generationInput) (string, error) {
	var buf bytes.Buffer
	if err := generationUserTemplate.Execute(&buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const turnSystemPrompt = `You are playing a character in a workplace role-playing scenario. Stay in character: respond the way someone with the given personality and goals actually would, including pushing back or withholding information when the character's goals call for it. Keep responses to 2-4 sentences. Advance the narrative with each turn. When the situation has reached a natural resolution (agreement, impasse, or clear outcome), return an empty options list.`

var turnUserTemplate = template.Must(template.New("turn").Parse(`Character you are playing:
Name: {{.Character.Name}}
Role: {{.Character.Role}}
Temperament: {{.Character.Traits.Temperament}}
Communication style: {{.Character.Traits.CommunicationStyle}}
Emotional state: {{.Character.Traits.EmotionalState}}
Goals: {{.Character.Traits.Goals}}

Scenario type: {{.Type}} (difficulty {{.Difficulty}})
Current situation: {{.Situation}}
{{if .History}}
Recent exchanges:
{{range .History}}Trainee: {{.UserInput}}
{{$.Character.Name}}: {{.Response}}
{{end}}{{end}}
The trainee's action: {{.Decision}}

Respond in character, describe how the situation evolves, and suggest next actions.`))

type turnInput struct {
	Character  *character.Character
	Type       Type
	Difficulty int
	Situation  string
	History    []character.Interaction
	Decision   string
}

func buildTurnMessage(in turnInput) (string, error) {
	var buf bytes.Buffer
	if err := turnUserTemplate.Execute(&buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var conclusionUserTemplate = template.Must(template.New("conclusion").Parse(`Provide a brief conclusion for this {{.Type}} scenario.

Scenario: {{.Title}}
Turns: {{.TurnCount}}
Decisions made: {{.DecisionCount}}
Average decision quality: {{printf "%.1f" .AverageScore}}/100

Provide:
1. A 2-3 sentence outcome summary
2. Key strengths shown (1-2 points)
3. Areas for improvement (1-2 points)
4. One actionable tip

Keep it concise and constructive.`))

const conclusionSystemPrompt = `You are a supportive cognitive training coach reviewing a trainee's performance in a role-playing scenario. Be specific and constructive.`

type conclusionInput struct {
	Type          Type
	Title         string
	TurnCount     int
	DecisionCount int
	AverageScore  float64
}

func buildConclusionMessage(in conclusionInput) (string, error) {
	var buf bytes.Buffer
	if err := conclusionUserTemplate.Execute(&buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}
