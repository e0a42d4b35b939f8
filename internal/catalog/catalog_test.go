package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"career-coach/internal/domain/job"
)

func TestDefault_SeedJobs(t *testing.T) {
	jobs := Default()
	if len(jobs) != 8 {
		t.Fatalf("expected 8 jobs, got %d", len(jobs))
	}

	first := jobs[0]
	if first.ID != "1" || first.Title != "Software Engineer Intern" || first.Company != "Scale AI" {
		t.Fatalf("unexpected first job: %+v", first)
	}
	if jt, ok := first.JobType.Get(); !ok || jt != job.TypeInternship {
		t.Fatalf("expected internship, got %q ok=%v", jt, ok)
	}
	if len(first.SkillsRequired) != 2 || first.SkillsRequired[0] != "Python" || first.SkillsRequired[1] != "SQL" {
		t.Fatalf("unexpected required skills: %v", first.SkillsRequired)
	}
	if first.Location.IsPresent() {
		t.Fatalf("expected location absent")
	}

	var marketing []string
	for _, j := range jobs {
		if j.Category.OrElse("") == "Marketing" {
			marketing = append(marketing, j.ID)
		}
	}
	if len(marketing) != 2 || marketing[0] != "3" || marketing[1] != "4" {
		t.Fatalf("expected marketing jobs 3 and 4, got %v", marketing)
	}
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a[0].SkillsRequired[0] = "Mutated"
	b := Default()
	if b[0].SkillsRequired[0] != "Python" {
		t.Fatalf("catalog mutation leaked between calls")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{name: "empty", in: "jobs: []", want: ErrEmptyCatalog},
		{name: "duplicate", in: "jobs:\n  - {id: '1', title: a, company: b}\n  - {id: '1', title: c, company: d}", want: ErrDuplicateID},
		{name: "missing id", in: "jobs:\n  - {title: a, company: b}", want: ErrInvalidJob},
		{name: "bad job type", in: "jobs:\n  - {id: '1', title: a, company: b, job_type: contract}", want: ErrInvalidJob},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jobs.yaml")
	content := "jobs:\n  - id: x\n    title: Go Developer\n    company: Gopher Inc\n    location: Remote\n    skills_required: [Go]\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	jobs, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Location.OrElse("") != "Remote" {
		t.Fatalf("unexpected jobs: %+v", jobs)
	}
	if jobs[0].SkillsPreferred == nil {
		t.Fatalf("expected empty, non-nil preferred skills")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error")
	}
}
