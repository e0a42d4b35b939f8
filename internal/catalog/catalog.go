package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"career-coach/internal/domain/job"
	"career-coach/internal/pkg/optional"

	"gopkg.in/yaml.v3"
)

//go:embed jobs.yaml
var defaultJobs []byte

var (
	ErrEmptyCatalog = errors.New("empty job catalog")
	ErrDuplicateID  = errors.New("duplicate job id")
	ErrInvalidJob   = errors.New("invalid job")
)

type document struct {
	Jobs []record `yaml:"jobs"`
}

type record struct {
	ID              string   `yaml:"id"`
	Title           string   `yaml:"title"`
	Company         string   `yaml:"company"`
	Location        *string  `yaml:"location"`
	Category        *string  `yaml:"category"`
	JobType         *string  `yaml:"job_type"`
	SkillsRequired  []string `yaml:"skills_required"`
	SkillsPreferred []string `yaml:"skills_preferred"`
	Snippet         *string  `yaml:"snippet"`
}

// Default returns the built-in catalog. It panics if the embedded document is broken.
func Default() []job.Doc {
	jobs, err := Parse(defaultJobs)
	if err != nil {
		panic(fmt.Sprintf("embedded job catalog: %v", err))
	}
	return jobs
}

// Load reads the catalog from path, or returns Default when path is empty.
func Load(path string) ([]job.Doc, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job catalog %s: %w", path, err)
	}
	jobs, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("parse job catalog %s: %w", path, err)
	}
	return jobs, nil
}

func Parse(b []byte) ([]job.Doc, error) {
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	if len(doc.Jobs) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, len(doc.Jobs))
	out := make([]job.Doc, 0, len(doc.Jobs))
	for i, r := range doc.Jobs {
		d, err := r.toDoc()
		if err != nil {
			return nil, fmt.Errorf("job #%d: %w", i+1, err)
		}
		if _, ok := seen[d.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, d.ID)
		}
		seen[d.ID] = struct{}{}
		out = append(out, d)
	}
	return out, nil
}

func (r record) toDoc() (job.Doc, error) {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		return job.Doc{}, fmt.Errorf("%w: missing id", ErrInvalidJob)
	}
	if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.Company) == "" {
		return job.Doc{}, fmt.Errorf("%w: id=%s missing title or company", ErrInvalidJob, id)
	}

	d := job.Doc{
		ID:              id,
		Title:           r.Title,
		Company:         r.Company,
		Location:        fromPtr(r.Location),
		Category:        fromPtr(r.Category),
		Snippet:         fromPtr(r.Snippet),
		SkillsRequired:  nonNil(r.SkillsRequired),
		SkillsPreferred: nonNil(r.SkillsPreferred),
	}
	if r.JobType != nil {
		jt := job.Type(*r.JobType)
		if !jt.Valid() {
			return job.Doc{}, fmt.Errorf("%w: id=%s job_type=%q", ErrInvalidJob, id, *r.JobType)
		}
		d.JobType = optional.Some(jt)
	}
	return d, nil
}

func fromPtr(p *string) optional.Value[string] {
	if p == nil {
		return optional.None[string]()
	}
	return optional.Some(*p)
}

func nonNil(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
