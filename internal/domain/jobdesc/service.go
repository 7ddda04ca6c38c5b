package jobdesc

import "context"

type JobDescriptionService interface {
	GenerateJD(ctx context.Context, req GenerateJDRequest) (JDResponse, error)
	// ListRoles returns every role a JD was ever generated for.
	ListRoles(ctx context.Context) ([]string, error)
}
