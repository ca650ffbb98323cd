package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-prep/internal/analyzer"
	"github.com/jonathan/interview-prep/internal/llm"
	"github.com/jonathan/interview-prep/internal/parsing"
)

type stubClient struct {
	response string
	err      error
}

func (s *stubClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return s.response, s.err
}

func (s *stubClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return s.response, s.err
}

func (s *stubClient) GetModel(_ llm.ModelTier) string { return "stub-model" }

func (s *stubClient) Close() error { return nil }

func failingParser() *Parser {
	return NewParser(analyzer.New(&stubClient{err: errors.New("capability down")}), 0)
}

func offlineParser() *Parser {
	return NewParser(analyzer.New(nil), 0)
}

const sampleResume = `Jane Doe
Software Engineer at Acme
Built the billing system in Python and React
Contact: jane.doe@example.com, (555) 123-4567
https://github.com/jdoe
https://linkedin.com/in/jdoe
https://jdoe.dev
Bachelor of Science in Computer Science`

func TestParse_UnsupportedFileYieldsMinimalRecord(t *testing.T) {
	p := offlineParser()

	record := p.Parse(context.Background(), []byte("plain text content"), "resume.txt", "")

	require.NotNil(t, record)
	assert.Equal(t, "resume.txt", record.FileName)
	assert.Equal(t, "", record.RawText)
	assert.Equal(t, "", record.FullName)
	assert.NotNil(t, record.Skills)
	assert.Empty(t, record.Skills)
}

func TestParse_CorruptFileYieldsMinimalRecord(t *testing.T) {
	p := offlineParser()

	record := p.Parse(context.Background(), []byte("garbage"), "resume.pdf", "hint@example.com")

	require.NotNil(t, record)
	assert.Equal(t, "", record.RawText)
	assert.Equal(t, "", record.Email)
}

func TestParseText_AISuccess(t *testing.T) {
	p := NewParser(analyzer.New(&stubClient{response: `{
		"full_name": "Jane Doe",
		"email": "jane.doe@example.com",
		"summary": "Engineer with a billing focus.",
		"years_of_experience": 4,
		"skills": ["Python", "React", "Go"]
	}`}), 0)

	record := p.ParseText(context.Background(), sampleResume, "resume.pdf", "")

	assert.Equal(t, "Jane Doe", record.FullName)
	assert.Equal(t, "jane.doe@example.com", record.Email)
	assert.Equal(t, 4, record.YearsOfExperience)
	assert.Equal(t, []string{"Python", "React", "Go"}, record.Skills)
	assert.Equal(t, sampleResume, record.RawText)
	assert.Equal(t, "resume.pdf", record.FileName)
}

func TestParseText_AIOmittedEmailBackfilledFromRegex(t *testing.T) {
	p := NewParser(analyzer.New(&stubClient{response: `{"full_name": "Jane Doe", "email": ""}`}), 0)

	record := p.ParseText(context.Background(), sampleResume, "resume.pdf", "")

	assert.Equal(t, "jane.doe@example.com", record.Email)
}

func TestParseText_FallbackMatchesRegexExtractors(t *testing.T) {
	p := failingParser()

	record := p.ParseText(context.Background(), sampleResume, "resume.pdf", "")

	assert.Equal(t, parsing.ExtractSkills(sampleResume), record.Skills)
	assert.Equal(t, parsing.ExtractEducation(sampleResume), record.Education)
	assert.Equal(t, parsing.ExtractExperience(sampleResume), record.Experience)
	assert.Equal(t, parsing.ExtractPhone(sampleResume), record.Phone)
}

func TestParseText_FallbackFields(t *testing.T) {
	p := offlineParser()

	record := p.ParseText(context.Background(), sampleResume, "resume.pdf", "")

	assert.Equal(t, "Jane Doe", record.FullName) // from email local part
	assert.Equal(t, "jane.doe@example.com", record.Email)
	assert.Equal(t, "(555) 123-4567", record.Phone)
	assert.Equal(t, "https://github.com/jdoe", record.GitHub)
	assert.Equal(t, "https://linkedin.com/in/jdoe", record.LinkedIn)
	assert.Equal(t, "https://jdoe.dev", record.Website)
	// The github.com URL also satisfies the Git and GitHub catalog terms.
	assert.Equal(t, []string{"Python", "React", "Git", "GitHub"}, record.Skills)

	// AI-only fields take zero values on the fallback path.
	assert.Equal(t, "", record.Summary)
	assert.Equal(t, "", record.Location)
	assert.Equal(t, 0, record.YearsOfExperience)
	assert.Empty(t, record.Projects)
	assert.Empty(t, record.Certifications)
	assert.Empty(t, record.KeyStrengths)
}

func TestParseText_FallbackNameFromEmail(t *testing.T) {
	p := offlineParser()
	text := "PROFESSIONAL RESUME\nreach me at jane.doe@example.com"

	record := p.ParseText(context.Background(), text, "resume.pdf", "")

	assert.Equal(t, "Jane Doe", record.FullName)
}

func TestParseText_MalformedAIResponseFallsBack(t *testing.T) {
	p := NewParser(analyzer.New(&stubClient{response: "definitely not json"}), 0)

	record := p.ParseText(context.Background(), sampleResume, "resume.pdf", "")

	// Fallback path populated from regex, not from the broken AI response.
	assert.Equal(t, []string{"Python", "React", "Git", "GitHub"}, record.Skills)
	assert.Equal(t, "jane.doe@example.com", record.Email)
}

func TestParseText_RecordShapeAlwaysComplete(t *testing.T) {
	parsers := map[string]*Parser{
		"offline":  offlineParser(),
		"failing":  failingParser(),
		"degraded": NewParser(analyzer.New(&stubClient{response: "{}"}), 0),
	}

	for name, p := range parsers {
		t.Run(name, func(t *testing.T) {
			record := p.ParseText(context.Background(), "short text", "resume.pdf", "")

			require.NotNil(t, record)
			assert.NotNil(t, record.Skills)
			assert.NotNil(t, record.Education)
			assert.NotNil(t, record.Experience)
			assert.NotNil(t, record.Projects)
			assert.NotNil(t, record.Certifications)
			assert.NotNil(t, record.Languages)
			assert.NotNil(t, record.KeyStrengths)
			assert.Equal(t, "resume.pdf", record.FileName)
		})
	}
}
