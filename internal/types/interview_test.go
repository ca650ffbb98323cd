package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionCount(t *testing.T) {
	tests := []struct {
		goal string
		want int
	}{
		{GoalFull, 8},
		{GoalFocused, 5},
		{GoalQuick, 3},
		{"full", 8},
		{"focused", 5},
		{"quick", 3},
		{"", 5},
		{"Marathon", 5},
	}

	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			assert.Equal(t, tt.want, QuestionCount(tt.goal))
		})
	}
}

func TestDefaultPlan(t *testing.T) {
	p := DefaultPlan()

	assert.Equal(t, GoalFocused, p.Goal)
	assert.Equal(t, LevelEntry, p.TargetLevel)
	assert.Equal(t, DefaultDomain, p.Domain)
	assert.NotEmpty(t, p.Reasoning.GoalReason)
	assert.NotEmpty(t, p.Reasoning.LevelReason)
	assert.NotEmpty(t, p.Reasoning.DomainReason)
}
