package podlink

import (
	"context"
	"time"
)

// Archive errors.
const (
	ErrArchiveRequired     = Error("archive required")
	ErrArchiveNameRequired = Error("archive name required")
)

// Archive represents a snapshot of resolution history.
type Archive struct {
	Name        string
	CreatedAt   time.Time
	Resolutions []*Resolution
}

// NewArchive returns an archive of a named after the time it was taken.
func NewArchive(a []*Resolution, now time.Time) *Archive {
	now = now.UTC()
	return &Archive{
		Name:        now.Format("20060102T150405Z"),
		CreatedAt:   now,
		Resolutions: a,
	}
}

// Validate returns an error if the archive cannot be written.
func (a *Archive) Validate() error {
	if a == nil {
		return ErrArchiveRequired
	} else if a.Name == "" {
		return ErrArchiveNameRequired
	}
	return nil
}

// ArchiveService represents a service for persisting history snapshots.
type ArchiveService interface {
	CreateArchive(ctx context.Context, a *Archive) error
}

// GroupResolutionsByKind partitions resolutions by deep link kind.
// Unmatched resolutions are grouped under KindNone.
func GroupResolutionsByKind(a []*Resolution) map[string][]*Resolution {
	m := make(map[string][]*Resolution)
	for _, r := range a {
		kind := r.Kind()
		m[kind] = append(m[kind], r)
	}
	return m
}
