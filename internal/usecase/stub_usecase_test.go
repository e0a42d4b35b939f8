package usecase

import (
	"context"
	"encoding/json"
	"testing"
)

func TestPlanner_RoadmapIsConstant(t *testing.T) {
	p := NewPlannerUsecase()
	a, _ := json.Marshal(p.Roadmap(context.Background(), nil))
	b, _ := json.Marshal(p.Roadmap(context.Background(), []string{"Go", "Rust"}))
	if string(a) != string(b) {
		t.Fatalf("roadmap depends on input:\n%s\n%s", a, b)
	}

	plan := p.Roadmap(context.Background(), nil).Plan
	if len(plan) != 2 {
		t.Fatalf("expected 2 milestones, got %d", len(plan))
	}
	if plan[0].Milestone != "Next 3 Months" || plan[0].Items[0].Skill != "Flask" || plan[0].Items[0].Hours != 25 {
		t.Fatalf("unexpected first milestone %+v", plan[0])
	}
	if plan[1].Milestone != "3–6 Months" || plan[1].Items[0].Resource != "Docker Get Started" || plan[1].Items[0].Hours != 12 {
		t.Fatalf("unexpected second milestone %+v", plan[1])
	}
}

func TestQA_AskIsConstant(t *testing.T) {
	q := NewQAUsecase()
	a := q.Ask(context.Background(), "What should I learn?")
	b := q.Ask(context.Background(), "")
	if a.Answer != b.Answer || a.Answer != placeholderAnswer {
		t.Fatalf("unexpected answers %q / %q", a.Answer, b.Answer)
	}
	out, _ := json.Marshal(a)
	if string(out) != `{"answer":"(demo) This will cite job description snippets and resources.","citations":[]}` {
		t.Fatalf("unexpected json %s", out)
	}
}
