// Package questions produces interview question sets, AI-generated when a
// client is available and canned otherwise.
package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/jonathan/interview-prep/internal/llm"
	"github.com/jonathan/interview-prep/internal/prompts"
	"github.com/jonathan/interview-prep/internal/types"
)

// Generator creates interview questions for a configuration, personalized by
// the candidate's parsed resume when one is available.
type Generator struct {
	client llm.Client
}

// NewGenerator creates a Generator. A nil client makes every call return the
// default question bank.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Generate returns questions for the given configuration. Any AI failure
// (no client, transport error, malformed response) degrades to the default
// bank; the caller always receives a full set.
func (g *Generator) Generate(ctx context.Context, config types.QuestionConfig, record *types.ResumeRecord) []types.Question {
	if g == nil || g.client == nil {
		log.Printf("[questions] no LLM client, using default questions")
		return DefaultQuestions(config.Goal, config.Domain)
	}

	count := types.QuestionCount(config.Goal)
	prompt := prompts.Format(prompts.MustGet("questions.json", "generate_questions"), map[string]string{
		"Count":         strconv.Itoa(count),
		"Goal":          goalLabel(config.Goal),
		"Level":         config.Level,
		"Domain":        config.Domain,
		"ResumeContext": resumeContext(record),
	})

	raw, err := g.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		log.Printf("[questions] generation call failed: %v", err)
		return DefaultQuestions(config.Goal, config.Domain)
	}

	payload := llm.ExtractJSONArray(raw)
	if payload == "" {
		log.Printf("[questions] generation returned no JSON array")
		return DefaultQuestions(config.Goal, config.Domain)
	}

	var generated []types.Question
	if err := json.Unmarshal([]byte(payload), &generated); err != nil {
		log.Printf("[questions] generation response malformed: %v", err)
		return DefaultQuestions(config.Goal, config.Domain)
	}
	if len(generated) == 0 {
		log.Printf("[questions] generation returned an empty set")
		return DefaultQuestions(config.Goal, config.Domain)
	}

	log.Printf("[questions] generated %d questions for %s at %s", len(generated), config.Domain, config.Level)
	return generated
}

// goalLabel expands a short goal code into its display name for the prompt.
func goalLabel(goal string) string {
	switch goal {
	case "full":
		return types.GoalFull
	case "quick":
		return types.GoalQuick
	case "focused":
		return types.GoalFocused
	default:
		return goal
	}
}

// resumeContext renders the candidate block of the prompt, or "" when no
// resume data exists.
func resumeContext(record *types.ResumeRecord) string {
	if record == nil {
		return ""
	}
	skills := record.Skills
	if len(skills) > 10 {
		skills = skills[:10]
	}
	titles := make([]string, 0, len(record.Experience))
	for _, entry := range record.Experience {
		if entry.Title != "" {
			titles = append(titles, entry.Title)
		}
	}
	return prompts.Format(prompts.MustGet("questions.json", "resume_context"), map[string]string{
		"Skills":     strings.Join(skills, ", "),
		"Experience": strings.Join(titles, "; "),
		"Years":      fmt.Sprintf("%d", record.YearsOfExperience),
	})
}
