package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"career-coach/internal/domain/matching"
)

const matchCacheKeyPrefix = "match:jobs:"

type matchCacheKeyInput struct {
	Skills     []string `json:"skills"`
	TopK       int      `json:"top_k"`
	JobType    *string  `json:"job_type"`
	Categories []string `json:"categories"`
}

// MatchCacheKey derives a stable key for q. Skills are case-sensitive and kept as given;
// categories compare case-insensitively so they are lower-cased.
func MatchCacheKey(q matching.Query) string {
	in := matchCacheKeyInput{
		Skills: q.Skills,
		TopK:   q.TopK.OrElse(matching.DefaultTopK),
	}
	if in.Skills == nil {
		in.Skills = []string{}
	}
	if jt, ok := q.JobType.Get(); ok {
		s := string(jt)
		in.JobType = &s
	}
	if cats, ok := q.Categories.Get(); ok && len(cats) > 0 {
		in.Categories = make([]string, 0, len(cats))
		for _, c := range cats {
			in.Categories = append(in.Categories, strings.ToLower(c))
		}
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return matchCacheKeyPrefix + hex.EncodeToString(sum[:])
}
