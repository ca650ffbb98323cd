package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/interview-prep/internal/types"
)

// UpsertResume stores the parsed record for a profile, replacing any
// previous upload. One row per profile is the collaborator guarantee the
// parsing pipeline relies on.
func (db *DB) UpsertResume(ctx context.Context, uid string, record *types.ResumeRecord) error {
	education, err := jsonb(record.Education)
	if err != nil {
		return err
	}
	experience, err := jsonb(record.Experience)
	if err != nil {
		return err
	}
	projects, err := jsonb(record.Projects)
	if err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO resume_data (
			profile_uid, full_name, email, phone, location, linkedin, github, website,
			summary, years_of_experience, skills, education, experience, projects,
			certifications, languages, key_strengths, raw_text, file_name
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		 ON CONFLICT (profile_uid) DO UPDATE SET
			full_name = $2, email = $3, phone = $4, location = $5, linkedin = $6,
			github = $7, website = $8, summary = $9, years_of_experience = $10,
			skills = $11, education = $12, experience = $13, projects = $14,
			certifications = $15, languages = $16, key_strengths = $17,
			raw_text = $18, file_name = $19, updated_at = NOW()`,
		uid, record.FullName, record.Email, record.Phone, record.Location,
		record.LinkedIn, record.GitHub, record.Website, record.Summary,
		record.YearsOfExperience, StringArray(record.Skills), education,
		experience, projects, StringArray(record.Certifications),
		StringArray(record.Languages), StringArray(record.KeyStrengths),
		record.RawText, record.FileName,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert resume data: %w", err)
	}
	return nil
}

// GetResume fetches the stored record for a profile. Returns nil, nil when
// no resume has been uploaded.
func (db *DB) GetResume(ctx context.Context, uid string) (*types.ResumeRecord, error) {
	var (
		record     types.ResumeRecord
		skills     StringArray
		education  []byte
		experience []byte
		projects   []byte
		certs      StringArray
		languages  StringArray
		strengths  StringArray
	)

	err := db.pool.QueryRow(ctx,
		`SELECT full_name, email, phone, location, linkedin, github, website,
			summary, years_of_experience, skills, education, experience,
			projects, certifications, languages, key_strengths, raw_text, file_name
		 FROM resume_data WHERE profile_uid = $1`,
		uid,
	).Scan(
		&record.FullName, &record.Email, &record.Phone, &record.Location,
		&record.LinkedIn, &record.GitHub, &record.Website, &record.Summary,
		&record.YearsOfExperience, &skills, &education, &experience,
		&projects, &certs, &languages, &strengths, &record.RawText, &record.FileName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume data: %w", err)
	}

	record.Skills = skills
	record.Certifications = certs
	record.Languages = languages
	record.KeyStrengths = strengths
	if err := scanJSONB(education, &record.Education); err != nil {
		return nil, fmt.Errorf("failed to decode education: %w", err)
	}
	if err := scanJSONB(experience, &record.Experience); err != nil {
		return nil, fmt.Errorf("failed to decode experience: %w", err)
	}
	if err := scanJSONB(projects, &record.Projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %w", err)
	}
	record.Normalize()
	return &record, nil
}
