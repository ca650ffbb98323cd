// Package pipeline assembles a normalized resume record from an uploaded
// document: text extraction, AI-preferred structured extraction, and the
// regex fallback. Parse is total: any input yields a well-formed record.
package pipeline

import (
	"context"
	"log"
	"time"

	"github.com/jonathan/interview-prep/internal/analyzer"
	"github.com/jonathan/interview-prep/internal/ingestion"
	"github.com/jonathan/interview-prep/internal/parsing"
	"github.com/jonathan/interview-prep/internal/types"
)

// DefaultAITimeout bounds the blocking LLM call so a hanging capability
// degrades to the fallback path instead of stalling the request.
const DefaultAITimeout = 60 * time.Second

// Parser is the top-level resume parsing entry point.
type Parser struct {
	analyzer  *analyzer.Analyzer
	aiTimeout time.Duration
}

// NewParser creates a Parser. A zero timeout selects DefaultAITimeout.
func NewParser(a *analyzer.Analyzer, aiTimeout time.Duration) *Parser {
	if aiTimeout <= 0 {
		aiTimeout = DefaultAITimeout
	}
	return &Parser{analyzer: a, aiTimeout: aiTimeout}
}

// Parse turns uploaded file bytes into a ResumeRecord. emailHint is the
// caller's best guess at the candidate's email (e.g. from their profile) and
// is only used to seed the AI prompt when the text itself contains no email.
// Parse never fails: degraded inputs produce sparser records.
func (p *Parser) Parse(ctx context.Context, data []byte, fileName, emailHint string) *types.ResumeRecord {
	return p.ParseText(ctx, ingestion.ExtractText(fileName, data), fileName, emailHint)
}

// ParseText is Parse for callers that already hold extracted text.
func (p *Parser) ParseText(ctx context.Context, text, fileName, emailHint string) *types.ResumeRecord {
	record := &types.ResumeRecord{FileName: fileName, RawText: text}
	if text == "" {
		record.Normalize()
		return record
	}

	// Regex email first: the AI path wants it as a hint and the fallback
	// path needs it for name resolution.
	regexEmail := parsing.ExtractEmail(text)
	hint := regexEmail
	if hint == "" {
		hint = emailHint
	}

	if extracted, err := p.extractWithAI(ctx, text, hint); err == nil {
		extracted.RawText = text
		extracted.FileName = fileName
		if extracted.Email == "" {
			extracted.Email = regexEmail
		}
		return extracted
	} else {
		log.Printf("[pipeline] AI extraction failed, using regex fallback: %v", err)
	}

	links := parsing.ExtractLinks(text)
	record.FullName = parsing.ResolveName(text, regexEmail)
	record.Email = regexEmail
	record.Phone = parsing.ExtractPhone(text)
	record.LinkedIn = links.LinkedIn
	record.GitHub = links.GitHub
	record.Website = links.Website
	record.Skills = parsing.ExtractSkills(text)
	record.Education = parsing.ExtractEducation(text)
	record.Experience = parsing.ExtractExperience(text)
	record.Normalize()
	return record
}

func (p *Parser) extractWithAI(ctx context.Context, text, emailHint string) (*types.ResumeRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, p.aiTimeout)
	defer cancel()
	return p.analyzer.ExtractResume(ctx, text, emailHint)
}
