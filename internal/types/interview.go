package types

// Interview plan goals.
const (
	GoalFull    = "Full Technical Interview"
	GoalFocused = "Focused Practice"
	GoalQuick   = "Quick Mock"
)

// Interview plan target levels.
const (
	LevelEntry  = "Entry Level"
	LevelMid    = "Mid Level"
	LevelSenior = "Senior Level"
)

// DefaultDomain is used when no stronger signal exists in the resume.
const DefaultDomain = "Software Development"

// PlanReasoning explains each axis of a recommended plan.
type PlanReasoning struct {
	GoalReason   string `json:"goal_reason"`
	LevelReason  string `json:"level_reason"`
	DomainReason string `json:"domain_reason"`
}

// InterviewPlan is a recommended interview configuration derived from a
// parsed resume.
type InterviewPlan struct {
	Goal        string        `json:"goal"`
	TargetLevel string        `json:"target_level"`
	Domain      string        `json:"domain"`
	Reasoning   PlanReasoning `json:"reasoning"`
}

// DefaultPlan is the plan returned whenever recommendation fails or no
// resume data is available.
func DefaultPlan() InterviewPlan {
	return InterviewPlan{
		Goal:        GoalFocused,
		TargetLevel: LevelEntry,
		Domain:      DefaultDomain,
		Reasoning: PlanReasoning{
			GoalReason:   "Default recommendation for skill improvement",
			LevelReason:  "Starting with entry level assessment",
			DomainReason: "General software development focus",
		},
	}
}

// Question is a single generated interview question.
type Question struct {
	Question             string   `json:"question"`
	Type                 string   `json:"type"`
	Difficulty           string   `json:"difficulty"`
	Topics               []string `json:"topics"`
	ExpectedAnswerPoints []string `json:"expected_answer_points"`
}

// QuestionConfig selects how many questions to generate and for what focus.
type QuestionConfig struct {
	Goal   string `json:"goal"`
	Level  string `json:"level"`
	Domain string `json:"domain"`
}

// QuestionCount maps a goal to the number of questions a session needs.
// Clients send short goal codes ("full", "focused", "quick"); the display
// names are accepted too. Unknown goals get the focused-practice count.
func QuestionCount(goal string) int {
	switch goal {
	case "full", GoalFull:
		return 8
	case "quick", GoalQuick:
		return 3
	default:
		return 5
	}
}
