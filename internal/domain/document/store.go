package document

import "context"

// Store answers queries over the generated-document directory. The
// directory itself is the index: every query is a fresh scan.
type Store interface {
	// FindLatest returns the path of the newest document matching the
	// kind+subject pattern, or ErrDocumentNotFound when nothing matches.
	FindLatest(ctx context.Context, kind Kind, subject string) (string, error)

	// CountByKind counts documents whose name carries the kind's prefix.
	CountByKind(ctx context.Context, kind Kind) (int, error)

	// DistinctSubjects returns every subject a document of the kind has
	// ever been generated for, in display form.
	DistinctSubjects(ctx context.Context, kind Kind) ([]string, error)
}
