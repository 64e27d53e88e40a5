package main

import (
	"context"
	"fmt"
	"time"

	"github.com/middlemost/podlink"
	"github.com/middlemost/podlink/aws"
	"github.com/middlemost/podlink/bolt"
	"github.com/middlemost/podlink/local"
	"github.com/spf13/cobra"
)

func (m *Main) archiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive",
		Short: "Snapshot resolution history to S3 or the local archive path",
		Long: `Snapshot every recorded resolution, partitioned by deep link kind.

Uploads to S3 when archive.bucket is configured; otherwise writes to
archive.path on the local filesystem.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			archiveService, err := m.archiveService()
			if err != nil {
				return err
			}
			return m.withDB(func(db *bolt.DB) error {
				return m.Archive(context.Background(), bolt.NewResolutionService(db), archiveService)
			})
		},
	}
}

// Archive writes all recorded resolutions to archiveService.
func (m *Main) Archive(ctx context.Context, resolutionService podlink.ResolutionService, archiveService podlink.ArchiveService) error {
	a, err := resolutionService.FindResolutions(ctx, 0)
	if err != nil {
		return err
	}

	archive := podlink.NewArchive(a, time.Now())
	if err := archiveService.CreateArchive(ctx, archive); err != nil {
		return err
	}

	fmt.Fprintf(m.Stdout, "archive created: name=%s resolutions=%d\n", archive.Name, len(a))
	return nil
}

// archiveService returns the S3 archive service if a bucket is configured,
// otherwise the local archive service.
func (m *Main) archiveService() (podlink.ArchiveService, error) {
	if m.Config.Archive.Bucket != "" {
		sess, err := aws.NewSession(m.Config.AWS.AccessKeyID, m.Config.AWS.SecretAccessKey, m.Config.AWS.Region)
		if err != nil {
			return nil, err
		}

		s := aws.NewArchiveService()
		s.Session = sess
		s.Bucket = m.Config.Archive.Bucket
		s.Prefix = m.Config.Archive.Prefix
		s.LogOutput = m.Stdout
		return s, nil
	}

	path := m.Config.Archive.Path
	if err := InterpolatePaths(&path); err != nil {
		return nil, err
	}

	s := local.NewArchiveService()
	s.Path = path
	return s, nil
}
