package jobdesc

import "context"

// Generator produces structured job-description text for a role. The core
// only depends on this contract; the implementation lives at the edge.
type Generator interface {
	Generate(ctx context.Context, req GenerateJDRequest) (Content, error)
}
