package usecase

import (
	"context"

	"career-coach/internal/domain/roadmap"
)

type PlannerUsecase interface {
	Roadmap(ctx context.Context, skills []string) roadmap.Plan
}

// Planner returns the same two milestones for every caller until a skill-gap
// model is wired in.
type Planner struct{}

func NewPlannerUsecase() *Planner {
	return &Planner{}
}

func (Planner) Roadmap(_ context.Context, _ []string) roadmap.Plan {
	return roadmap.Plan{Plan: []roadmap.Milestone{
		{
			Milestone: "Next 3 Months",
			Items:     []roadmap.Item{{Skill: "Flask", Resource: "Flask Mega-Tutorial", Hours: 25}},
		},
		{
			Milestone: "3–6 Months",
			Items:     []roadmap.Item{{Skill: "Docker", Resource: "Docker Get Started", Hours: 12}},
		},
	}}
}
