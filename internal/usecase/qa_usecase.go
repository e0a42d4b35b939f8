package usecase

import (
	"context"

	"career-coach/internal/domain/qa"
)

const placeholderAnswer = "(demo) This will cite job description snippets and resources."

type QAUsecase interface {
	Ask(ctx context.Context, question string) qa.Answer
}

// QA answers every question with a fixed placeholder. Retrieval over job
// snippets is not wired yet.
type QA struct{}

func NewQAUsecase() *QA {
	return &QA{}
}

func (QA) Ask(_ context.Context, _ string) qa.Answer {
	return qa.Answer{Answer: placeholderAnswer, Citations: []qa.Citation{}}
}
