// +build integration

package aws_test

import (
	"bytes"
	"context"
	"flag"
	"testing"
	"time"

	"github.com/middlemost/podlink"
	"github.com/middlemost/podlink/aws"
)

var (
	region = flag.String("region", "", "AWS region")
	bucket = flag.String("bucket", "", "S3 bucket")
)

// Ensure service can upload an archive to S3.
func TestArchiveService_CreateArchive(t *testing.T) {
	if *region == "" {
		t.Fatal("region required")
	} else if *bucket == "" {
		t.Fatal("bucket required")
	}

	sess, err := aws.NewSession("", "", *region)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	s := aws.NewArchiveService()
	s.Session = sess
	s.Bucket = *bucket
	s.Prefix = "podlink-test"
	s.LogOutput = &buf

	a := podlink.NewArchive([]*podlink.Resolution{
		{ID: "1", Request: podlink.NewRequest("OPEN_DOWNLOADS"), DeepLink: podlink.DownloadsDeepLink{}},
		{ID: "2", Request: podlink.NewRequest("UNKNOWN")},
	}, time.Now())
	if err := s.CreateArchive(context.Background(), a); err != nil {
		t.Log(buf.String())
		t.Fatal(err)
	}

	t.Log(buf.String())
}
