package profile

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Profile holds structured candidate data extracted from a resume. Every field is
// optional upstream; after Normalize absent values are empty strings or empty
// slices, never nil, so downstream formatting never sees null.
type Profile struct {
	Name           string   `json:"name"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email"`
	Education      string   `json:"education"`
	Major          string   `json:"major"`
	GraduationYear string   `json:"graduationYear"`
	HardSkills     []string `json:"hardSkills"`
	SoftSkills     []string `json:"softSkills"`
	Experience     []string `json:"experience"`
	TargetPosition string   `json:"targetPosition"`
	TargetCity     string   `json:"targetCity"`
	Intention      string   `json:"intention"`
}

// StringList tolerates both a JSON array and a single JSON string, which LLM
// replies alternate between for fields like "experience".
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	if one == "" {
		*l = []string{}
		return nil
	}
	*l = []string{one}
	return nil
}

// SkillSet tolerates both the nested {"hard":[...],"soft":[...]} shape and a
// flat array (treated as hard skills).
type SkillSet struct {
	Hard StringList `json:"hard"`
	Soft StringList `json:"soft"`
}

func (s *SkillSet) UnmarshalJSON(data []byte) error {
	var flat []string
	if err := json.Unmarshal(data, &flat); err == nil {
		s.Hard = flat
		s.Soft = nil
		return nil
	}
	type alias SkillSet
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = SkillSet(a)
	return nil
}

// Partial is the raw decode target for LLM output. Defaults are applied once,
// in Normalize, instead of being scattered across render sites.
type Partial struct {
	Name           string     `json:"name"`
	Phone          string     `json:"phone"`
	Email          string     `json:"email"`
	Education      string     `json:"education"`
	Major          string     `json:"major"`
	GraduationYear string     `json:"graduationYear"`
	Skills         SkillSet   `json:"skills"`
	Experience     StringList `json:"experience"`
	TargetPosition string     `json:"targetPosition"`
	TargetCity     string     `json:"targetCity"`
	Intention      string     `json:"intention"`
}

// Normalize converts a partial into a complete Profile with defaults applied.
func (p Partial) Normalize() Profile {
	out := Profile{
		Name:           p.Name,
		Phone:          p.Phone,
		Email:          p.Email,
		Education:      p.Education,
		Major:          p.Major,
		GraduationYear: p.GraduationYear,
		HardSkills:     p.Skills.Hard,
		SoftSkills:     p.Skills.Soft,
		Experience:     p.Experience,
		TargetPosition: p.TargetPosition,
		TargetCity:     p.TargetCity,
		Intention:      p.Intention,
	}
	if out.HardSkills == nil {
		out.HardSkills = []string{}
	}
	if out.SoftSkills == nil {
		out.SoftSkills = []string{}
	}
	if out.Experience == nil {
		out.Experience = []string{}
	}
	return out
}

// Record is a persisted student profile row.
type Record struct {
	ID        uuid.UUID `json:"id"`
	Profile   Profile   `json:"profile"`
	RawText   string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store is the persistence port for student profiles.
type Store interface {
	Save(ctx context.Context, rec Record) error
	Get(ctx context.Context, id uuid.UUID) (Record, error)
	List(ctx context.Context, limit, offset int) ([]Record, error)
}

// ErrValidation is a simple validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
