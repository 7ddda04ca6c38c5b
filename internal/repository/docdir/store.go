// Package docdir answers document queries by scanning the flat
// generated-PDF directory. The file names themselves are the index; for
// the volumes a single-operator tool sees, a scan per query is fine.
package docdir

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sheepai/hrms-backend-go/internal/domain/document"
)

type documentStoreImpl struct {
	dir string
}

func NewDocumentStore(dir string) document.Store {
	return &documentStoreImpl{dir: dir}
}

func (s *documentStoreImpl) FindLatest(ctx context.Context, kind document.Kind, subject string) (string, error) {
	prefix := kind.Prefix() + "_" + document.NormalizeSubject(kind, subject) + "_"

	entries, err := s.readDir()
	if err != nil {
		return "", err
	}

	var (
		latestPath string
		latestTime time.Time
	)
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) || !isTimestampSegment(strings.TrimPrefix(name, prefix)) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		// Modification time stands in for creation time: generated
		// documents are write-once, so the two coincide.
		if latestPath == "" || info.ModTime().After(latestTime) {
			latestPath = filepath.Join(s.dir, name)
			latestTime = info.ModTime()
		}
	}

	if latestPath == "" {
		return "", document.ErrDocumentNotFound
	}
	return latestPath, nil
}

func (s *documentStoreImpl) CountByKind(ctx context.Context, kind document.Kind) (int, error) {
	entries, err := s.readDir()
	if err != nil {
		return 0, err
	}

	prefix := kind.Prefix() + "_"
	count := 0
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), prefix) && strings.HasSuffix(entry.Name(), ".pdf") {
			count++
		}
	}
	return count, nil
}

func (s *documentStoreImpl) DistinctSubjects(ctx context.Context, kind document.Kind) ([]string, error) {
	entries, err := s.readDir()
	if err != nil {
		return nil, err
	}

	prefix := kind.Prefix() + "_"
	seen := make(map[string]struct{})
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".pdf") {
			continue
		}
		rest := strings.TrimPrefix(name, prefix)
		cut := strings.LastIndex(rest, "_")
		if cut <= 0 || !isTimestampSegment(rest[cut+1:]) {
			continue
		}
		subject := rest[:cut]
		if kind == document.KindJD {
			subject = document.SubjectFromName(subject)
		}
		seen[subject] = struct{}{}
	}

	subjects := make([]string, 0, len(seen))
	for subject := range seen {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)
	return subjects, nil
}

// readDir lists the document directory. An absent directory means no
// documents were ever generated, which is a soft miss, not an error.
func (s *documentStoreImpl) readDir() ([]os.DirEntry, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	files := entries[:0]
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, entry)
		}
	}
	return files, nil
}

// isTimestampSegment reports whether s is "{14 digits}.pdf", the tail
// BuildName produces. Keeps "E1" from matching files for "E1_extra".
func isTimestampSegment(s string) bool {
	s, ok := strings.CutSuffix(s, ".pdf")
	if !ok || len(s) != len(document.TimestampLayout) {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
