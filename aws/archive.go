package aws

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"path"
	"sort"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/middlemost/podlink"
	"golang.org/x/sync/errgroup"
)

// Archive errors.
const (
	ErrSessionRequired = podlink.Error("aws session required")
	ErrBucketRequired  = podlink.Error("s3 bucket required")
)

// Ensure service implements interface.
var _ podlink.ArchiveService = &ArchiveService{}

// ArchiveService represents a service for uploading history snapshots to S3.
// Each deep link kind is written as a separate object.
type ArchiveService struct {
	Session *Session
	Bucket  string
	Prefix  string

	LogOutput io.Writer
}

// NewArchiveService returns a new instance of ArchiveService.
func NewArchiveService() *ArchiveService {
	return &ArchiveService{LogOutput: ioutil.Discard}
}

// CreateArchive uploads the archive partitions in parallel.
func (s *ArchiveService) CreateArchive(ctx context.Context, a *podlink.Archive) error {
	if err := a.Validate(); err != nil {
		return err
	} else if s.Session == nil {
		return ErrSessionRequired
	} else if s.Bucket == "" {
		return ErrBucketRequired
	}

	// Sort kinds so uploads are logged in a stable order.
	groups := podlink.GroupResolutionsByKind(a.Resolutions)
	kinds := make([]string, 0, len(groups))
	for kind := range groups {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	svc := s3.New(s.Session.session)

	var wg errgroup.Group
	for _, kind := range kinds {
		kind, resolutions := kind, groups[kind]
		key := ObjectKey(s.Prefix, a.Name, kind)
		fmt.Fprintf(s.LogOutput, "archive: uploading partition: bucket=%s key=%s n=%d\n", s.Bucket, key, len(resolutions))

		wg.Go(func() error {
			return s.putObject(ctx, svc, key, resolutions)
		})
	}

	// Wait for the uploads to complete.
	if err := wg.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(s.LogOutput, "archive: uploaded: name=%s partitions=%d\n", a.Name, len(kinds))
	return nil
}

// putObject writes a single partition as a JSON document.
func (s *ArchiveService) putObject(ctx context.Context, svc *s3.S3, key string, resolutions []*podlink.Resolution) error {
	buf, err := json.Marshal(resolutions)
	if err != nil {
		return err
	}

	_, err = svc.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf),
		ContentType: aws.String("application/json"),
	})
	return err
}

// ObjectKey returns the object key for a partition of an archive.
func ObjectKey(prefix, name, kind string) string {
	return path.Join(prefix, name, kind+".json")
}
