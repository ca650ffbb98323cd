package parsing

import (
	"regexp"
	"strings"
)

// rollPrefixPattern matches a leading student-roll style prefix in an email
// local part, e.g. "2021.jane.doe" -> "jane.doe".
var rollPrefixPattern = regexp.MustCompile(`^\d{4,}\.`)

var localPartSplitter = regexp.MustCompile(`[._-]`)

// headingWordPattern accepts a capitalized alphabetic word, with hyphens and
// apostrophes allowed after the first letter.
var headingWordPattern = regexp.MustCompile(`^[A-Z][A-Za-z'-]*$`)

// boilerplateKeywords disqualify a line from being a name heading.
var boilerplateKeywords = []string{
	"resume", "cv", "profile", "objective", "summary", "experience",
	"education", "skills", "projects", "contact", "email", "phone",
	"@", "http", "linkedin", "github",
}

const headingScanLimit = 15

// ResolveName derives a display name for the fallback path. It prefers the
// email local part, then a heading-shaped line near the top of the text, and
// returns "" when neither yields a name.
func ResolveName(text, email string) string {
	if email != "" {
		if name := nameFromEmail(email); name != "" {
			return name
		}
	}
	return nameFromHeading(text)
}

// nameFromEmail rebuilds a name from the local part of an email address:
// "jane.doe@example.com" -> "Jane Doe". Numeric roll prefixes and short or
// non-alphabetic segments are dropped.
func nameFromEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 0 {
		return ""
	}
	local := rollPrefixPattern.ReplaceAllString(email[:at], "")

	var parts []string
	for _, segment := range localPartSplitter.Split(local, -1) {
		if len(segment) > 1 && isAlphabetic(segment) {
			parts = append(parts, capitalize(segment))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " ")
}

// nameFromHeading scans the first 15 non-blank lines for a 2-4 word line
// where every word looks like a capitalized name part, skipping lines with
// boilerplate keywords or digit/slash/pipe/plus characters.
func nameFromHeading(text string) string {
	scanned := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		scanned++
		if scanned > headingScanLimit {
			break
		}
		if hasBoilerplate(line) || strings.ContainsAny(line, "0123456789/|+") {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if allNameWords(words) {
			return line
		}
	}
	return ""
}

func hasBoilerplate(line string) bool {
	lower := strings.ToLower(line)
	for _, keyword := range boilerplateKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func allNameWords(words []string) bool {
	for _, word := range words {
		if !headingWordPattern.MatchString(word) {
			return false
		}
	}
	return true
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
