// Package types defines the shared data structures for the interview prep pipeline.
package types

// ResumeRecord is the normalized result of parsing one uploaded resume.
// Both extraction paths (AI and regex fallback) produce this exact shape.
// Scalar fields stay empty when a value could not be derived; list fields are
// always non-nil so a serialized record carries every key with [] rather than
// null. A record has no identity of its own: persistence keys it by the
// owning profile, and a re-upload replaces the previous record.
type ResumeRecord struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`

	Summary           string `json:"summary"`
	YearsOfExperience int    `json:"years_of_experience"`

	Skills         []string          `json:"skills"`
	Education      []EducationEntry  `json:"education"`
	Experience     []ExperienceEntry `json:"experience"`
	Projects       []Project         `json:"projects"`
	Certifications []string          `json:"certifications"`
	Languages      []string          `json:"languages"`
	KeyStrengths   []string          `json:"key_strengths"`

	// RawText is the full extracted document text; FileName is kept only so
	// callers can tell which upload produced the record.
	RawText  string `json:"raw_text"`
	FileName string `json:"file_name"`
}

// EducationEntry is a single education item. Only Degree is guaranteed on the
// fallback path; Institution and Year come from AI extraction when available.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// ExperienceEntry is a single work history item.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

// Project is a single project item (AI path only).
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// Normalize replaces nil list fields with empty slices so every serialized
// record is fully populated regardless of which extraction path produced it.
func (r *ResumeRecord) Normalize() {
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Education == nil {
		r.Education = []EducationEntry{}
	}
	if r.Experience == nil {
		r.Experience = []ExperienceEntry{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	if r.Certifications == nil {
		r.Certifications = []string{}
	}
	if r.Languages == nil {
		r.Languages = []string{}
	}
	if r.KeyStrengths == nil {
		r.KeyStrengths = []string{}
	}
	for i := range r.Projects {
		if r.Projects[i].Technologies == nil {
			r.Projects[i].Technologies = []string{}
		}
	}
}
