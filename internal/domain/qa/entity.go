package qa

// Citation points at the source an answer was drawn from.
type Citation struct {
	JobID   string `json:"job_id"`
	Snippet string `json:"snippet"`
}

type Answer struct {
	Answer    string     `json:"answer"`
	Citations []Citation `json:"citations"`
}
