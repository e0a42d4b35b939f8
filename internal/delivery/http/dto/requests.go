package dto

import (
	"encoding/json"
	"fmt"

	"career-coach/internal/pkg/optional"
)

// StringList decodes a JSON array of strings, rejecting null entries that the
// standard decoder would silently turn into "".
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	var raw []*string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make([]string, 0, len(raw))
	for i, s := range raw {
		if s == nil {
			return fmt.Errorf("item %d: expected string, got null", i)
		}
		out = append(out, *s)
	}
	*l = out
	return nil
}

type ResumeRequest struct {
	Text optional.Value[string] `json:"text"`
}

type MatchJobsRequest struct {
	Skills     optional.Value[StringList] `json:"skills"`
	TopK       optional.Value[int]        `json:"top_k"`
	JobType    optional.Value[string]     `json:"job_type"`
	Categories optional.Value[StringList] `json:"categories"`
}

type AskRequest struct {
	Question optional.Value[string] `json:"question"`
}
