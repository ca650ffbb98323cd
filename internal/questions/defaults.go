package questions

import "github.com/jonathan/interview-prep/internal/types"

// defaultBank holds canned questions per domain, used whenever AI generation
// is unavailable or fails. Unknown domains fall back to the dsa set.
var defaultBank = map[string][]types.Question{
	"dsa": {
		{
			Question:             "Explain the difference between an array and a linked list. When would you use each?",
			Type:                 "conceptual",
			Difficulty:           "easy",
			Topics:               []string{"data structures", "arrays", "linked lists"},
			ExpectedAnswerPoints: []string{"Memory allocation", "Access time", "Use cases"},
		},
		{
			Question:             "Implement a function to reverse a linked list.",
			Type:                 "coding",
			Difficulty:           "medium",
			Topics:               []string{"linked lists", "algorithms"},
			ExpectedAnswerPoints: []string{"Iterative approach", "Pointer manipulation", "Time complexity O(n)"},
		},
		{
			Question:             "What is the time complexity of common sorting algorithms?",
			Type:                 "conceptual",
			Difficulty:           "medium",
			Topics:               []string{"algorithms", "complexity"},
			ExpectedAnswerPoints: []string{"QuickSort O(n log n)", "MergeSort O(n log n)", "BubbleSort O(n²)"},
		},
	},
	"web": {
		{
			Question:             "Explain the difference between GET and POST HTTP methods.",
			Type:                 "conceptual",
			Difficulty:           "easy",
			Topics:               []string{"HTTP", "web fundamentals"},
			ExpectedAnswerPoints: []string{"Data transmission", "Security", "Use cases"},
		},
		{
			Question:             "How would you implement authentication in a web application?",
			Type:                 "scenario",
			Difficulty:           "medium",
			Topics:               []string{"authentication", "security"},
			ExpectedAnswerPoints: []string{"JWT tokens", "Session management", "Security best practices"},
		},
	},
	"ml": {
		{
			Question:             "Explain the difference between supervised and unsupervised learning.",
			Type:                 "conceptual",
			Difficulty:           "easy",
			Topics:               []string{"machine learning", "fundamentals"},
			ExpectedAnswerPoints: []string{"Labeled data", "Use cases", "Examples of algorithms"},
		},
		{
			Question:             "How do you handle overfitting in a machine learning model?",
			Type:                 "scenario",
			Difficulty:           "medium",
			Topics:               []string{"model training", "overfitting"},
			ExpectedAnswerPoints: []string{"Regularization", "Cross-validation", "More training data"},
		},
	},
	"core": {
		{
			Question:             "Explain how operating system manages memory.",
			Type:                 "conceptual",
			Difficulty:           "medium",
			Topics:               []string{"operating systems", "memory management"},
			ExpectedAnswerPoints: []string{"Virtual memory", "Paging", "Memory allocation"},
		},
	},
}

// DefaultQuestions returns canned questions for a domain, repeated in order
// until the goal's question count is reached.
func DefaultQuestions(goal, domain string) []types.Question {
	bank, ok := defaultBank[domain]
	if !ok {
		bank = defaultBank["dsa"]
	}
	count := types.QuestionCount(goal)

	result := make([]types.Question, 0, count)
	for len(result) < count {
		remaining := count - len(result)
		if remaining >= len(bank) {
			result = append(result, bank...)
		} else {
			result = append(result, bank[:remaining]...)
		}
	}
	return result
}
