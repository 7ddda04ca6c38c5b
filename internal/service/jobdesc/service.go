package jobdesc

import (
	"context"
	"log/slog"

	"github.com/sheepai/hrms-backend-go/internal/domain/document"
	"github.com/sheepai/hrms-backend-go/internal/domain/jobdesc"
)

type JobDescriptionServiceImpl struct {
	generator jobdesc.Generator
	renderer  document.Renderer
	docs      document.Store
}

func NewJobDescriptionService(generator jobdesc.Generator, renderer document.Renderer, docs document.Store) jobdesc.JobDescriptionService {
	return &JobDescriptionServiceImpl{
		generator: generator,
		renderer:  renderer,
		docs:      docs,
	}
}

func (s *JobDescriptionServiceImpl) GenerateJD(ctx context.Context, req jobdesc.GenerateJDRequest) (jobdesc.JDResponse, error) {
	if err := req.Validate(); err != nil {
		return jobdesc.JDResponse{}, err
	}

	// Generation happens before any disk write, so a malformed reply
	// leaves no document behind.
	content, err := s.generator.Generate(ctx, req)
	if err != nil {
		return jobdesc.JDResponse{}, err
	}

	path, err := s.renderer.RenderJobDescription(ctx, req.Role, content)
	if err != nil {
		return jobdesc.JDResponse{}, err
	}

	slog.Info("Job description generated", "role", req.Role, "file", path)
	return jobdesc.JDResponse{File: path, Role: req.Role}, nil
}

func (s *JobDescriptionServiceImpl) ListRoles(ctx context.Context) ([]string, error) {
	return s.docs.DistinctSubjects(ctx, document.KindJD)
}
