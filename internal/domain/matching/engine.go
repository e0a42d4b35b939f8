package matching

import (
	"sort"
	"strings"

	"career-coach/internal/domain/job"
	"career-coach/internal/pkg/optional"
)

const DefaultTopK = 20

type Query struct {
	Skills     []string
	TopK       optional.Value[int]
	JobType    optional.Value[job.Type]
	Categories optional.Value[[]string]
}

type Result struct {
	Job     job.Doc  `json:"job"`
	Score   float64  `json:"score"`
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// Engine ranks a fixed set of jobs. It never modifies the jobs it was given.
type Engine struct {
	jobs []job.Doc
}

func NewEngine(jobs []job.Doc) *Engine {
	cp := make([]job.Doc, len(jobs))
	copy(cp, jobs)
	return &Engine{jobs: cp}
}

func (e *Engine) Match(q Query) []Result {
	if e == nil {
		return []Result{}
	}

	candidates := filterByType(e.jobs, q.JobType)
	candidates = filterByCategories(candidates, q.Categories)

	skills := distinct(q.Skills)
	have := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		have[s] = struct{}{}
	}

	results := make([]Result, 0, len(candidates))
	for _, j := range candidates {
		results = append(results, score(j, skills, have))
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})

	topK := q.TopK.OrElse(DefaultTopK)
	if topK < 0 {
		topK = 0
	}
	if topK < len(results) {
		results = results[:topK]
	}
	return results
}

// skills must be distinct and in query order. Comparison is exact string equality.
func score(j job.Doc, skills []string, have map[string]struct{}) Result {
	required := make(map[string]struct{}, len(j.SkillsRequired))
	for _, s := range j.SkillsRequired {
		required[s] = struct{}{}
	}

	matched := make([]string, 0, len(skills))
	for _, s := range skills {
		if _, ok := required[s]; ok {
			matched = append(matched, s)
		}
	}

	missing := make([]string, 0, len(j.SkillsRequired))
	for _, s := range j.SkillsRequired {
		if _, ok := have[s]; !ok {
			missing = append(missing, s)
		}
	}

	denom := len(j.SkillsRequired)
	if denom < 1 {
		denom = 1
	}

	return Result{
		Job:     j,
		Score:   float64(len(matched)) / float64(denom),
		Matched: matched,
		Missing: missing,
	}
}

func filterByType(jobs []job.Doc, jt optional.Value[job.Type]) []job.Doc {
	want, ok := jt.Get()
	if !ok {
		return jobs
	}
	out := make([]job.Doc, 0, len(jobs))
	for _, j := range jobs {
		if got, ok := j.JobType.Get(); ok && got == want {
			out = append(out, j)
		}
	}
	return out
}

func filterByCategories(jobs []job.Doc, cats optional.Value[[]string]) []job.Doc {
	list, ok := cats.Get()
	if !ok || len(list) == 0 {
		return jobs
	}
	set := make(map[string]struct{}, len(list))
	for _, c := range list {
		set[strings.ToLower(c)] = struct{}{}
	}
	out := make([]job.Doc, 0, len(jobs))
	for _, j := range jobs {
		if _, ok := set[strings.ToLower(j.Category.OrElse(""))]; ok {
			out = append(out, j)
		}
	}
	return out
}

func distinct(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
