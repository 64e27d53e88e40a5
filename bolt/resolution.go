package bolt

import (
	"context"

	"github.com/gogo/protobuf/proto"
	"github.com/middlemost/podlink"
)

// Ensure service implements interface.
var _ podlink.ResolutionService = &ResolutionService{}

// ResolutionService represents a service to manage resolution history.
type ResolutionService struct {
	db *DB
}

// NewResolutionService returns a new instance of ResolutionService.
func NewResolutionService(db *DB) *ResolutionService {
	return &ResolutionService{db: db}
}

// CreateResolution records a resolution. Assigns an id if one is not set.
func (s *ResolutionService) CreateResolution(ctx context.Context, r *podlink.Resolution) error {
	tx, err := s.db.Begin(ctx, true)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Create resolution & commit.
	id := r.ID
	if err := func() error {
		if err := createResolution(ctx, tx, r); err != nil {
			return err
		} else if err := tx.Commit(); err != nil {
			return err
		}
		return nil
	}(); err != nil {
		r.ID = id
		return err
	}

	return nil
}

// FindResolutionByID returns a resolution by id. Returns nil if not found.
func (s *ResolutionService) FindResolutionByID(ctx context.Context, id string) (*podlink.Resolution, error) {
	tx, err := s.db.Begin(ctx, false)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	return findResolutionByID(ctx, tx, id)
}

// FindResolutions returns up to limit resolutions, newest first.
// A limit of zero returns all resolutions.
func (s *ResolutionService) FindResolutions(ctx context.Context, limit int) ([]*podlink.Resolution, error) {
	tx, err := s.db.Begin(ctx, false)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	a := make([]*podlink.Resolution, 0, 10)
	cur := tx.Bucket(resolutionsBucket).Cursor()
	for k, v := cur.Last(); k != nil; k, v = cur.Prev() {
		if limit > 0 && len(a) >= limit {
			break
		}

		var r podlink.Resolution
		if err := unmarshalResolution(v, &r); err != nil {
			return nil, err
		}
		a = append(a, &r)
	}
	return a, nil
}

func findResolutionByID(ctx context.Context, tx *Tx, id string) (*podlink.Resolution, error) {
	key := tx.Bucket(resolutionIDsBucket).Get([]byte(id))
	if key == nil {
		return nil, nil
	}

	var r podlink.Resolution
	if buf := tx.Bucket(resolutionsBucket).Get(key); buf == nil {
		return nil, nil
	} else if err := unmarshalResolution(buf, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func createResolution(ctx context.Context, tx *Tx, r *podlink.Resolution) error {
	if r == nil {
		return podlink.ErrResolutionRequired
	} else if r.Request == nil {
		return podlink.ErrRequestRequired
	}

	// Assign id, if not set, and ensure it is unique.
	if r.ID == "" {
		r.ID = tx.generateID()
	}
	idx := tx.Bucket(resolutionIDsBucket)
	if idx.Get([]byte(r.ID)) != nil {
		return podlink.ErrResolutionExists
	}

	// Retrieve next sequence.
	bkt := tx.Bucket(resolutionsBucket)
	seq, err := bkt.NextSequence()
	if err != nil {
		return err
	}
	key := itob(int(seq))

	// Update timestamp, if not set.
	if r.CreatedAt.IsZero() {
		r.CreatedAt = tx.Now
	}

	// Save data & add to index.
	if buf, err := marshalResolution(r); err != nil {
		return err
	} else if err := bkt.Put(key, buf); err != nil {
		return err
	} else if err := idx.Put([]byte(r.ID), key); err != nil {
		return err
	}
	return nil
}

func marshalResolution(v *podlink.Resolution) ([]byte, error) {
	pb := &Resolution{
		ID:         v.ID,
		Request:    encodeRequest(v.Request),
		Candidates: v.Candidates,
		CreatedAt:  encodeTime(v.CreatedAt),
	}
	if t := podlink.NewTarget(v.DeepLink); t != nil {
		pb.Target = &Target{
			Kind:         t.Kind,
			BookmarkUUID: t.BookmarkUUID,
			PodcastUUID:  t.PodcastUUID,
			EpisodeUUID:  t.EpisodeUUID,
			SourceView:   t.SourceView,
			FilterID:     t.FilterID,
		}
	}
	return proto.Marshal(pb)
}

func unmarshalResolution(data []byte, v *podlink.Resolution) error {
	var pb Resolution
	if err := proto.Unmarshal(data, &pb); err != nil {
		return err
	}

	req, err := decodeRequest(pb.Request)
	if err != nil {
		return err
	}

	*v = podlink.Resolution{
		ID:         pb.ID,
		Request:    req,
		Candidates: pb.Candidates,
		CreatedAt:  decodeTime(pb.CreatedAt),
	}
	if t := pb.Target; t != nil {
		v.DeepLink = (&podlink.Target{
			Kind:         t.Kind,
			BookmarkUUID: t.BookmarkUUID,
			PodcastUUID:  t.PodcastUUID,
			EpisodeUUID:  t.EpisodeUUID,
			SourceView:   t.SourceView,
			FilterID:     t.FilterID,
		}).DeepLink()
	}
	return nil
}

func encodeRequest(req *podlink.Request) *Request {
	pb := &Request{Action: req.Action}
	if req.URI != nil {
		pb.URI = req.URI.String()
	}
	for _, k := range req.Extras.Keys() {
		e := req.Extras[k]
		pb.Extras = append(pb.Extras, &Extra{
			Key:         k,
			StringValue: e.String(),
			LongValue:   e.Int64(),
			IsLong:      e.IsLong(),
		})
	}
	return pb
}

func decodeRequest(pb *Request) (*podlink.Request, error) {
	if pb == nil {
		return nil, nil
	}

	req := podlink.NewRequest(pb.Action)
	for _, e := range pb.Extras {
		if e.IsLong {
			req.Extras.SetLong(e.Key, e.LongValue)
		} else {
			req.Extras.SetString(e.Key, e.StringValue)
		}
	}

	u, err := podlink.ParseURI(pb.URI)
	if err != nil {
		return nil, err
	}
	req.URI = u
	return req, nil
}
