package mock

import (
	"context"

	"github.com/middlemost/podlink"
)

var _ podlink.ResolutionService = &ResolutionService{}

type ResolutionService struct {
	CreateResolutionFn   func(ctx context.Context, r *podlink.Resolution) error
	FindResolutionByIDFn func(ctx context.Context, id string) (*podlink.Resolution, error)
	FindResolutionsFn    func(ctx context.Context, limit int) ([]*podlink.Resolution, error)
}

func (s *ResolutionService) CreateResolution(ctx context.Context, r *podlink.Resolution) error {
	return s.CreateResolutionFn(ctx, r)
}

func (s *ResolutionService) FindResolutionByID(ctx context.Context, id string) (*podlink.Resolution, error) {
	return s.FindResolutionByIDFn(ctx, id)
}

func (s *ResolutionService) FindResolutions(ctx context.Context, limit int) ([]*podlink.Resolution, error) {
	return s.FindResolutionsFn(ctx, limit)
}

var _ podlink.DispatchService = &DispatchService{}

type DispatchService struct {
	DispatchFn func(ctx context.Context, req *podlink.Request) (*podlink.Resolution, error)
}

func (s *DispatchService) Dispatch(ctx context.Context, req *podlink.Request) (*podlink.Resolution, error) {
	return s.DispatchFn(ctx, req)
}
