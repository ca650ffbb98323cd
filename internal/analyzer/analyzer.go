// Package analyzer wraps the LLM behind the three narrow AI contracts the
// resume pipeline needs: full structured extraction, name-only extraction,
// and interview plan recommendation. Every failure mode surfaces as an error
// (or a default plan); nothing here ever aborts a parse.
package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/interview-prep/internal/llm"
	"github.com/jonathan/interview-prep/internal/prompts"
	"github.com/jonathan/interview-prep/internal/schemas"
	"github.com/jonathan/interview-prep/internal/types"
)

// nameTextLimit caps the resume text sent for name-only extraction.
const nameTextLimit = 3000

// Analyzer runs AI-assisted extraction over an injected LLM client. A nil
// client is a valid state meaning no credential was configured.
type Analyzer struct {
	client llm.Client
}

// New creates an Analyzer. Pass a nil client when no API key is configured;
// every call will then return UnavailableError (or the default plan).
func New(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Available reports whether an LLM client is configured.
func (a *Analyzer) Available() bool {
	return a != nil && a.client != nil
}

// extractedResume mirrors the JSON shape the extraction prompt requests.
// years_of_experience is decoded as float64 because models occasionally
// return fractional years.
type extractedResume struct {
	FullName          string                  `json:"full_name"`
	Email             string                  `json:"email"`
	Phone             string                  `json:"phone"`
	Location          string                  `json:"location"`
	LinkedIn          string                  `json:"linkedin"`
	GitHub            string                  `json:"github"`
	Website           string                  `json:"website"`
	Summary           string                  `json:"summary"`
	YearsOfExperience float64                 `json:"years_of_experience"`
	Skills            []string                `json:"skills"`
	Education         []types.EducationEntry  `json:"education"`
	Experience        []types.ExperienceEntry `json:"experience"`
	Projects          []types.Project         `json:"projects"`
	Certifications    []string                `json:"certifications"`
	Languages         []string                `json:"languages"`
	KeyStrengths      []string                `json:"key_strengths"`
}

// ExtractResume asks the model for a full structured record. emailHint, when
// known from regex extraction, is passed into the prompt so the model can
// confirm or reuse it. Returns nil and an error on any failure; the caller
// is expected to fall back to regex extraction.
func (a *Analyzer) ExtractResume(ctx context.Context, text, emailHint string) (*types.ResumeRecord, error) {
	const op = "resume extraction"
	if !a.Available() {
		return nil, &UnavailableError{}
	}

	hint := ""
	if emailHint != "" {
		hint = prompts.Format(prompts.MustGet("analysis.json", "extract_resume_email_hint"),
			map[string]string{"Email": emailHint})
	}
	prompt := prompts.Format(prompts.MustGet("analysis.json", "extract_resume"), map[string]string{
		"ResumeText": text,
		"EmailHint":  hint,
	})

	raw, err := a.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &CallError{Operation: op, Err: err}
	}

	payload := llm.ExtractJSONObject(raw)
	if payload == "" {
		return nil, &MalformedResponseError{Operation: op, Reason: "no JSON object in response"}
	}
	if err := schemas.ValidateResumePayload(payload); err != nil {
		return nil, &MalformedResponseError{Operation: op, Reason: "response failed schema validation", Err: err}
	}

	var extracted extractedResume
	if err := json.Unmarshal([]byte(payload), &extracted); err != nil {
		return nil, &MalformedResponseError{Operation: op, Reason: "response is not decodable JSON", Err: err}
	}

	record := &types.ResumeRecord{
		FullName:          extracted.FullName,
		Email:             extracted.Email,
		Phone:             extracted.Phone,
		Location:          extracted.Location,
		LinkedIn:          extracted.LinkedIn,
		GitHub:            extracted.GitHub,
		Website:           extracted.Website,
		Summary:           extracted.Summary,
		YearsOfExperience: int(extracted.YearsOfExperience),
		Skills:            extracted.Skills,
		Education:         extracted.Education,
		Experience:        extracted.Experience,
		Projects:          extracted.Projects,
		Certifications:    extracted.Certifications,
		Languages:         extracted.Languages,
		KeyStrengths:      extracted.KeyStrengths,
	}
	record.Normalize()
	return record, nil
}

// ExtractName asks the model for just the candidate's name. Responses are
// cleaned of "Name:"/"Full Name:" labels; anything 2 characters or shorter
// is rejected as noise.
func (a *Analyzer) ExtractName(ctx context.Context, text string) (string, error) {
	const op = "name extraction"
	if !a.Available() {
		return "", &UnavailableError{}
	}

	if len(text) > nameTextLimit {
		text = text[:nameTextLimit]
	}
	prompt := prompts.Format(prompts.MustGet("analysis.json", "extract_name"),
		map[string]string{"ResumeText": text})

	raw, err := a.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", &CallError{Operation: op, Err: err}
	}

	name := strings.TrimSpace(raw)
	name = strings.TrimSpace(strings.TrimPrefix(name, "Full Name:"))
	name = strings.TrimSpace(strings.TrimPrefix(name, "Name:"))

	if len(name) <= 2 {
		return "", &MalformedResponseError{Operation: op, Reason: fmt.Sprintf("implausible name %q", name)}
	}
	return name, nil
}

// RecommendPlan derives an interview plan from a parsed record. Unlike the
// extraction contracts it never returns an error: any failure yields the
// fixed default plan.
func (a *Analyzer) RecommendPlan(ctx context.Context, record *types.ResumeRecord) types.InterviewPlan {
	if !a.Available() || record == nil {
		log.Printf("[analyzer] plan recommendation unavailable, using default plan")
		return types.DefaultPlan()
	}

	prompt := prompts.Format(prompts.MustGet("analysis.json", "recommend_plan"),
		map[string]string{"Profile": profileSummary(record)})

	raw, err := a.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		log.Printf("[analyzer] plan recommendation call failed: %v", err)
		return types.DefaultPlan()
	}

	payload := llm.ExtractJSONObject(raw)
	if payload == "" {
		log.Printf("[analyzer] plan recommendation returned no JSON object")
		return types.DefaultPlan()
	}

	var plan types.InterviewPlan
	if err := json.Unmarshal([]byte(payload), &plan); err != nil {
		log.Printf("[analyzer] plan recommendation response malformed: %v", err)
		return types.DefaultPlan()
	}
	if plan.Goal == "" || plan.TargetLevel == "" || plan.Domain == "" {
		log.Printf("[analyzer] plan recommendation response incomplete")
		return types.DefaultPlan()
	}
	return plan
}

// profileSummary condenses a record into the prompt block the plan
// recommendation uses, trimming the long lists the way a recruiter would
// skim them.
func profileSummary(record *types.ResumeRecord) string {
	skills := record.Skills
	if len(skills) > 20 {
		skills = skills[:20]
	}
	experience := record.Experience
	if len(experience) > 3 {
		experience = experience[:3]
	}
	projects := record.Projects
	if len(projects) > 2 {
		projects = projects[:2]
	}
	certifications := record.Certifications
	if len(certifications) > 5 {
		certifications = certifications[:5]
	}

	experienceJSON, _ := json.MarshalIndent(experience, "", "  ")
	educationJSON, _ := json.MarshalIndent(record.Education, "", "  ")
	projectsJSON, _ := json.MarshalIndent(projects, "", "  ")

	var sb strings.Builder
	fmt.Fprintf(&sb, "- Name: %s\n", orNA(record.FullName))
	fmt.Fprintf(&sb, "- Email: %s\n", orNA(record.Email))
	fmt.Fprintf(&sb, "- Years of experience: %d\n", record.YearsOfExperience)
	fmt.Fprintf(&sb, "- Skills: %s\n", orNA(strings.Join(skills, ", ")))
	fmt.Fprintf(&sb, "- Experience: %s\n", experienceJSON)
	fmt.Fprintf(&sb, "- Education: %s\n", educationJSON)
	fmt.Fprintf(&sb, "- Projects: %s\n", projectsJSON)
	fmt.Fprintf(&sb, "- Certifications: %s\n", orNA(strings.Join(certifications, ", ")))
	return sb.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
