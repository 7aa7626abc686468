package exercise

import (
	"fmt"
	"strconv"
	"strings"
)

// Per-difficulty scaling tables. Index 0 is unused; levels run 1-5.
var (
	sequenceLen  = [6]int{0, 3, 4, 6, 8, 10}
	digitLen     = [6]int{0, 4, 6, 8, 10, 12}
	wordCount    = [6]int{0, 5, 7, 10, 15, 20}
	gridSide     = [6]int{0, 4, 5, 6, 7, 8}
	patternTerms = [6]int{0, 4, 4, 5, 5, 6}
)

var sequenceItems = []string{"red", "blue", "green", "yellow", "purple", "orange", "black", "white"}

var wordPool = []string{
	"apple", "mountain", "computer", "elephant", "guitar",
	"ocean", "bicycle", "telephone", "butterfly", "camera",
	"pizza", "rocket", "library", "diamond", "forest",
	"lighthouse", "saxophone", "tornado", "universe", "waterfall",
	"microscope", "adventure", "sculpture", "harmony", "eclipse",
}

// memoryExercise produces a sequence-recall, number-memory, or word-list
// exercise depending on the roll.
func (e *Engine) memoryExercise(difficulty int) *Exercise {
	switch e.intn(3) {
	case 0:
		return e.sequenceRecall(difficulty)
	case 1:
		return e.numberMemory(difficulty)
	default:
		return e.wordList(difficulty)
	}
}

func (e *Engine) sequenceRecall(difficulty int) *Exercise {
	n := sequenceLen[difficulty]
	seq := make([]string, n)
	for i := range seq {
		seq[i] = e.pick(sequenceItems)
	}
	joined := strings.Join(seq, " ")

	question := fmt.Sprintf(
		"Memory Challenge - Sequence Recall\n\nStudy this sequence for %d seconds:\n\n%s\n\nThen type the sequence back exactly as shown, items separated by spaces.",
		5+difficulty, joined)

	return &Exercise{
		ID:            newID(),
		Category:      CategoryMemory,
		Type:          "sequence_recall",
		Difficulty:    difficulty,
		Question:      question,
		Answer:        joined,
		TimeLimitSecs: 60,
		Hints: []string{
			fmt.Sprintf("The sequence has %d items", n),
			fmt.Sprintf("It starts with %s", seq[0]),
			fmt.Sprintf("It ends with %s", seq[n-1]),
		},
	}
}

func (e *Engine) numberMemory(difficulty int) *Exercise {
	n := digitLen[difficulty]
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + e.intn(10)))
	}
	number := b.String()

	question := fmt.Sprintf(
		"Memory Challenge - Number Sequence\n\nRemember this %d-digit number:\n\n%s\n\nStudy it for %d seconds, then type it back.",
		n, number, 5+difficulty)

	return &Exercise{
		ID:            newID(),
		Category:      CategoryMemory,
		Type:          "number_memory",
		Difficulty:    difficulty,
		Question:      question,
		Answer:        number,
		TimeLimitSecs: 45,
		Hints: []string{
			fmt.Sprintf("The number has %d digits", n),
			fmt.Sprintf("First digit is %c", number[0]),
			fmt.Sprintf("Last digit is %c", number[n-1]),
		},
	}
}

func (e *Engine) wordList(difficulty int) *Exercise {
	n := wordCount[difficulty]
	words := e.sample(wordPool, n)

	question := fmt.Sprintf(
		"Memory Challenge - Word List\n\nStudy these %d words for %d seconds:\n\n%s\n\nThen type as many as you can remember, separated by commas.",
		n, 10+difficulty*2, strings.Join(words, ", "))

	return &Exercise{
		ID:            newID(),
		Category:      CategoryMemory,
		Type:          "word_list",
		Difficulty:    difficulty,
		Question:      question,
		Answer:        strings.Join(words, ", "),
		AnswerWords:   words,
		TimeLimitSecs: 120,
		Hints: []string{
			fmt.Sprintf("There were %d words total", n),
			fmt.Sprintf("One word started with %q", string(words[0][0])),
			fmt.Sprintf("One word was %q", words[e.intn(n)]),
		},
	}
}

// syllogismBank holds one puzzle per difficulty level.
var syllogismBank = [6]struct {
	premises []string
	question string
	answer   string
}{
	{},
	{
		premises: []string{"All cats are animals.", "All animals need food.", "Fluffy is a cat."},
		question: "Does Fluffy need food?",
		answer:   "yes",
	},
	{
		premises: []string{"All managers attend meetings.", "Sarah attends meetings.", "John is not a manager."},
		question: "Does John attend meetings?",
		answer:   "cannot determine",
	},
	{
		premises: []string{"No birds are mammals.", "All bats are mammals.", "Some flying creatures are birds."},
		question: "Are all flying creatures bats?",
		answer:   "no",
	},
	{
		premises: []string{"All successful projects are well-planned.", "Some well-planned projects have good teams.", "Project X has a good team."},
		question: "Is Project X successful?",
		answer:   "cannot determine",
	},
	{
		premises: []string{"No complete solutions are simple.", "All elegant solutions are simple.", "Some working solutions are complete."},
		question: "Can a working solution be elegant?",
		answer:   "cannot determine",
	},
}

var deductionBank = [6]struct {
	scenario string
	question string
	answer   string
}{
	{},
	{
		scenario: "Three friends - Alice, Bob, and Carol - each have a different pet: a dog, a cat, and a bird. Alice doesn't have a dog. Bob has a cat.",
		question: "Who has the bird?",
		answer:   "alice",
	},
	{
		scenario: "Four people live on different floors of a building (1st to 4th). Dan lives above Emma but below Frank. Carol lives on the 1st floor.",
		question: "Which floor does Frank live on?",
		answer:   "4",
	},
	{
		scenario: "Five students scored differently on a test. Maya scored higher than Luke but lower than Nina. Oliver scored the lowest. Pam scored between Maya and Nina.",
		question: "Who scored the highest?",
		answer:   "nina",
	},
	{
		scenario: "Six coworkers each prefer different lunch spots (A-F). Tom doesn't go to A or B. Rita goes to C. Sam goes to a spot alphabetically after Tom's. Quinn goes to E. Uma goes to the last spot alphabetically. Victor goes to the remaining spot.",
		question: "Where does Tom go for lunch?",
		answer:   "d",
	},
	{
		scenario: "Seven runners finished a race. Alex finished before Beth but after Cara. Dana finished right after Cara. Emma finished last. Frank finished before Cara but after Gina.",
		question: "Who finished first?",
		answer:   "gina",
	},
}

func (e *Engine) logicExercise(difficulty int) *Exercise {
	if e.intn(2) == 0 {
		p := syllogismBank[difficulty]
		var lines []string
		for i, prem := range p.premises {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, prem))
		}
		options := []string{"Yes", "No", "Cannot determine"}
		question := fmt.Sprintf(
			"Logic Puzzle - Syllogism\n\nGiven these statements:\n%s\n\nQuestion: %s\n\nAnswer: %s",
			strings.Join(lines, "\n"), p.question, strings.Join(options, " / "))
		return &Exercise{
			ID:            newID(),
			Category:      CategoryLogic,
			Type:          "syllogism",
			Difficulty:    difficulty,
			Question:      question,
			Answer:        p.answer,
			Options:       options,
			TimeLimitSecs: 60 + difficulty*15,
			Hints: []string{
				"Consider each premise carefully",
				"Draw a diagram if helpful",
				"Check if the conclusion necessarily follows",
			},
		}
	}

	p := deductionBank[difficulty]
	question := fmt.Sprintf("Logic Puzzle - Deduction\n\n%s\n\n%s", p.scenario, p.question)
	return &Exercise{
		ID:            newID(),
		Category:      CategoryLogic,
		Type:          "deduction",
		Difficulty:    difficulty,
		Question:      question,
		Answer:        p.answer,
		TimeLimitSecs: 90 + difficulty*20,
		Hints: []string{
			"Write down what each statement rules out",
			"Start with the most constrained person",
			"Eliminate options one by one",
		},
	}
}

// problemSolvingExercise generates a multi-step arithmetic planning problem
// with a computed answer, scaled by difficulty.
func (e *Engine) problemSolvingExercise(difficulty int) *Exercise {
	workers := 2 + difficulty
	perWorker := 3 + e.intn(4)       // units per worker per hour
	hours := 2 + e.intn(difficulty+2) // shift length
	target := workers * perWorker * hours

	question := fmt.Sprintf(
		"Problem Solving - Capacity Planning\n\nA team of %d workers each completes %d units per hour. How many units does the team complete in a %d-hour shift?",
		workers, perWorker, hours)

	return &Exercise{
		ID:            newID(),
		Category:      CategoryProblemSolving,
		Type:          "multi_step",
		Difficulty:    difficulty,
		Question:      question,
		Answer:        strconv.Itoa(target),
		TimeLimitSecs: 90 + difficulty*20,
		Hints: []string{
			"Work out the hourly output of the whole team first",
			fmt.Sprintf("The team completes %d units per hour", workers*perWorker),
		},
	}
}

// patternExercise generates a number-sequence continuation with either a
// constant step or a constant ratio.
func (e *Engine) patternExercise(difficulty int) *Exercise {
	n := patternTerms[difficulty]
	terms := make([]string, n)

	var next int
	if difficulty >= 4 && e.intn(2) == 0 {
		// Geometric.
		ratio := 2 + e.intn(2)
		v := 1 + e.intn(4)
		for i := 0; i < n; i++ {
			terms[i] = strconv.Itoa(v)
			v *= ratio
		}
		next = v
	} else {
		// Arithmetic, step grows with difficulty.
		step := difficulty + 1 + e.intn(difficulty+2)
		v := 1 + e.intn(10)
		for i := 0; i < n; i++ {
			terms[i] = strconv.Itoa(v)
			v += step
		}
		next = v
	}

	question := fmt.Sprintf(
		"Pattern Recognition - Number Sequence\n\nWhat comes next in this sequence?\n\n%s, ?",
		strings.Join(terms, ", "))

	return &Exercise{
		ID:            newID(),
		Category:      CategoryPattern,
		Type:          "number_sequence",
		Difficulty:    difficulty,
		Question:      question,
		Answer:        strconv.Itoa(next),
		TimeLimitSecs: 60 + difficulty*15,
		Hints: []string{
			"Compare consecutive terms",
			"The rule is the same at every step",
		},
	}
}

// attentionExercise generates a selective-attention count: how many times
// a target symbol appears in a grid of distractors.
func (e *Engine) attentionExercise(difficulty int) *Exercise {
	symbols := []string{"X", "O", "H", "K", "M", "W"}
	target := e.pick(symbols)
	side := gridSide[difficulty]

	count := 0
	rows := make([]string, side)
	for r := 0; r < side; r++ {
		cells := make([]string, side)
		for c := 0; c < side; c++ {
			s := e.pick(symbols)
			if s == target {
				count++
			}
			cells[c] = s
		}
		rows[r] = strings.Join(cells, " ")
	}

	question := fmt.Sprintf(
		"Attention Challenge - Selective Attention\n\nCount how many times %q appears in this grid:\n\n%s\n\nType the count.",
		target, strings.Join(rows, "\n"))

	return &Exercise{
		ID:            newID(),
		Category:      CategoryAttention,
		Type:          "selective_attention",
		Difficulty:    difficulty,
		Question:      question,
		Answer:        strconv.Itoa(count),
		TimeLimitSecs: 60 + difficulty*10,
		Hints: []string{
			"Scan one row at a time",
			"Keep a running tally",
		},
	}
}
