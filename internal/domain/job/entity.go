package job

import "career-coach/internal/pkg/optional"

type Type string

const (
	TypeFullTime   Type = "full_time"
	TypeInternship Type = "internship"
)

func (t Type) Valid() bool {
	switch t {
	case TypeFullTime, TypeInternship:
		return true
	default:
		return false
	}
}

// Doc is a job posting. Docs are seeded once at start-up and never mutated.
type Doc struct {
	ID              string                 `json:"id"`
	Title           string                 `json:"title"`
	Company         string                 `json:"company"`
	Location        optional.Value[string] `json:"location"`
	Category        optional.Value[string] `json:"category"`
	JobType         optional.Value[Type]   `json:"job_type"`
	SkillsRequired  []string               `json:"skills_required"`
	SkillsPreferred []string               `json:"skills_preferred"`
	Snippet         optional.Value[string] `json:"snippet"`
}
