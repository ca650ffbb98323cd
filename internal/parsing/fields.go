// Package parsing derives structured resume fields from plain text. It is
// the fallback path used when AI extraction is unavailable or fails; every
// function here is total over string input and returns zero values rather
// than errors.
package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/interview-prep/internal/types"
)

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

// phonePatterns are tried in order: North-American style first, then a
// generic international shape. The first match of the first pattern that
// matches anything wins.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+?1?\s*\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`\+?\d{1,3}[-.\s]?\d{3,4}[-.\s]?\d{4}`),
}

var urlPattern = regexp.MustCompile(`https?://(?:www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b(?:[-a-zA-Z0-9()@:%_+.~#?&/=]*)`)

// skillCatalog is the fixed set of recognized technical terms. Matches are
// reported in catalog order, not text order.
var skillCatalog = []string{
	"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "Ruby", "PHP", "Swift", "Kotlin",
	"React", "Angular", "Vue", "Node.js", "Express", "Django", "Flask", "Spring", "Laravel",
	"HTML", "CSS", "SASS", "Tailwind", "Bootstrap",
	"SQL", "MongoDB", "PostgreSQL", "MySQL", "Redis", "Firebase",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Jenkins", "Git", "GitHub", "GitLab",
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Pandas", "NumPy",
	"REST API", "GraphQL", "Microservices", "Agile", "Scrum",
}

var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Bachelor|Master|PhD|B\.S\.|M\.S\.|B\.A\.|M\.A\.|B\.Tech|M\.Tech|MBA)[^\n]*`),
	regexp.MustCompile(`(?i)(?:Bachelors?|Masters?|Doctorate)[^\n]*`),
}

var experienceKeywords = []string{"engineer", "developer", "manager", "analyst", "designer", "intern"}

const maxExperienceEntries = 5

// ExtractEmail returns the first email-shaped token in text, or "".
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// ExtractPhone returns the first phone number matched by the ordered pattern
// list, or "".
func ExtractPhone(text string) string {
	for _, pattern := range phonePatterns {
		if match := pattern.FindString(text); match != "" {
			return strings.TrimSpace(match)
		}
	}
	return ""
}

// Links holds the classified URLs found in resume text.
type Links struct {
	LinkedIn string
	GitHub   string
	Website  string
}

// ExtractLinks scans all http(s) URLs and classifies them. LinkedIn and
// GitHub keep the last URL seen for their host; Website keeps only the first
// URL matching neither, later ones are dropped.
func ExtractLinks(text string) Links {
	var links Links
	for _, url := range urlPattern.FindAllString(text, -1) {
		lower := strings.ToLower(url)
		switch {
		case strings.Contains(lower, "linkedin.com"):
			links.LinkedIn = url
		case strings.Contains(lower, "github.com"):
			links.GitHub = url
		case links.Website == "":
			links.Website = url
		}
	}
	return links
}

// ExtractSkills matches text against the fixed skill catalog using
// case-insensitive substring search. Results come back in catalog order,
// each skill at most once.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	found := []string{}
	for _, skill := range skillCatalog {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}

// ExtractEducation collects degree lines: each regex match runs from a
// degree keyword through the end of its line and becomes one entry.
// Overlapping patterns can produce duplicates; they are kept as-is.
func ExtractEducation(text string) []types.EducationEntry {
	education := []types.EducationEntry{}
	for _, pattern := range degreePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			education = append(education, types.EducationEntry{Degree: strings.TrimSpace(match)})
		}
	}
	return education
}

// ExtractExperience treats any line containing a job-title keyword as an
// entry, with the following line as its description. Capped to the first 5.
func ExtractExperience(text string) []types.ExperienceEntry {
	experience := []types.ExperienceEntry{}
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if !containsExperienceKeyword(line) {
			continue
		}
		entry := types.ExperienceEntry{Title: line}
		if i+1 < len(lines) {
			entry.Description = lines[i+1]
		}
		experience = append(experience, entry)
		if len(experience) == maxExperienceEntries {
			break
		}
	}
	return experience
}

func containsExperienceKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, keyword := range experienceKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
