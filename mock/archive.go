package mock

import (
	"context"

	"github.com/middlemost/podlink"
)

var _ podlink.ArchiveService = &ArchiveService{}

type ArchiveService struct {
	CreateArchiveFn func(ctx context.Context, a *podlink.Archive) error
}

func (s *ArchiveService) CreateArchive(ctx context.Context, a *podlink.Archive) error {
	return s.CreateArchiveFn(ctx, a)
}
