package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"career-coach/internal/infrastructure/coachclient"
)

// Tool is an operation exposed to MCP clients.
type Tool interface {
	Name() string
	Description() string
	InputSchema() map[string]any
	Execute(ctx context.Context, args json.RawMessage) (json.RawMessage, error)
}

// Registry keeps tools in registration order so tools/list is stable.
type Registry struct {
	order []string
	tools map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

func (r *Registry) Register(tool Tool) {
	if _, ok := r.tools[tool.Name()]; !ok {
		r.order = append(r.order, tool.Name())
	}
	r.tools[tool.Name()] = tool
}

func (r *Registry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

func (r *Registry) List() []Tool {
	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

type funcTool struct {
	name        string
	description string
	schema      map[string]any
	exec        func(ctx context.Context, args json.RawMessage) (json.RawMessage, error)
}

func (t funcTool) Name() string                { return t.name }
func (t funcTool) Description() string         { return t.description }
func (t funcTool) InputSchema() map[string]any { return t.schema }

func (t funcTool) Execute(ctx context.Context, args json.RawMessage) (json.RawMessage, error) {
	return t.exec(ctx, args)
}

var errMissingArgument = errors.New("missing required argument")

func stringListSchema() map[string]any {
	return map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
}

func objectSchema(props map[string]any, required ...string) map[string]any {
	s := map[string]any{"type": "object", "properties": props}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// decodeArgs treats absent or null arguments as an empty object.
func decodeArgs(raw json.RawMessage, out any) error {
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		raw = json.RawMessage("{}")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// RegisterCoachTools registers one tool per career-coach HTTP operation.
func RegisterCoachTools(r *Registry, c coachclient.Client) {
	r.Register(funcTool{
		name:        "resume_ingest",
		description: "Extract skills from a resume text via backend /ingest/resume",
		schema: objectSchema(map[string]any{
			"text": map[string]any{"type": "string"},
		}, "text"),
		exec: func(ctx context.Context, raw json.RawMessage) (json.RawMessage, error) {
			var args struct {
				Text *string `json:"text"`
			}
			if err := decodeArgs(raw, &args); err != nil {
				return nil, err
			}
			if args.Text == nil {
				return nil, fmt.Errorf("%w: text", errMissingArgument)
			}
			return c.IngestResume(ctx, *args.Text)
		},
	})

	r.Register(funcTool{
		name:        "match_jobs",
		description: "Get job matches for a set of skills via backend /match/jobs",
		schema: objectSchema(map[string]any{
			"skills":     stringListSchema(),
			"top_k":      map[string]any{"type": "number"},
			"job_type":   map[string]any{"type": "string", "enum": []string{"full_time", "internship"}},
			"categories": stringListSchema(),
		}, "skills"),
		exec: func(ctx context.Context, raw json.RawMessage) (json.RawMessage, error) {
			var args struct {
				Skills     *[]string `json:"skills"`
				TopK       *float64  `json:"top_k"`
				JobType    string    `json:"job_type"`
				Categories []string  `json:"categories"`
			}
			if err := decodeArgs(raw, &args); err != nil {
				return nil, err
			}
			if args.Skills == nil {
				return nil, fmt.Errorf("%w: skills", errMissingArgument)
			}

			req := coachclient.MatchJobsRequest{
				Skills:     *args.Skills,
				JobType:    args.JobType,
				Categories: args.Categories,
			}
			if args.TopK != nil {
				if *args.TopK != math.Trunc(*args.TopK) {
					return nil, fmt.Errorf("invalid arguments: top_k must be an integer, got %v", *args.TopK)
				}
				k := int(*args.TopK)
				req.TopK = &k
			}
			return c.MatchJobs(ctx, req)
		},
	})

	r.Register(funcTool{
		name:        "planner_roadmap",
		description: "Generate a learning roadmap via backend /planner/roadmap",
		schema: objectSchema(map[string]any{
			"skills": stringListSchema(),
		}, "skills"),
		exec: func(ctx context.Context, raw json.RawMessage) (json.RawMessage, error) {
			var args struct {
				Skills *[]string `json:"skills"`
			}
			if err := decodeArgs(raw, &args); err != nil {
				return nil, err
			}
			if args.Skills == nil {
				return nil, fmt.Errorf("%w: skills", errMissingArgument)
			}
			return c.Roadmap(ctx, *args.Skills)
		},
	})

	r.Register(funcTool{
		name:        "qa_ask",
		description: "Ask a question via backend /qa/ask",
		schema: objectSchema(map[string]any{
			"question": map[string]any{"type": "string"},
		}, "question"),
		exec: func(ctx context.Context, raw json.RawMessage) (json.RawMessage, error) {
			var args struct {
				Question *string `json:"question"`
			}
			if err := decodeArgs(raw, &args); err != nil {
				return nil, err
			}
			if args.Question == nil {
				return nil, fmt.Errorf("%w: question", errMissingArgument)
			}
			return c.Ask(ctx, *args.Question)
		},
	})

	r.Register(funcTool{
		name:        "health",
		description: "Check backend health at /health",
		schema:      objectSchema(map[string]any{}),
		exec: func(ctx context.Context, _ json.RawMessage) (json.RawMessage, error) {
			return c.Health(ctx)
		},
	})
}
