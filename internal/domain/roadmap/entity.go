package roadmap

type Item struct {
	Skill    string `json:"skill"`
	Resource string `json:"resource"`
	Hours    int    `json:"hours"`
}

type Milestone struct {
	Milestone string `json:"milestone"`
	Items     []Item `json:"items"`
}

type Plan struct {
	Plan []Milestone `json:"plan"`
}
