package dto

type HealthResponse struct {
	OK bool `json:"ok"`
}

type SkillsResponse struct {
	Skills []string `json:"skills"`
}

type ValidationErrorData struct {
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}
