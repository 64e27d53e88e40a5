package local

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"

	"github.com/middlemost/podlink"
)

// Archive errors.
const (
	ErrArchivePathRequired  = podlink.Error("archive path required")
	ErrInvalidArchiveName   = podlink.Error("invalid archive name")
	ErrInvalidPartitionKind = podlink.Error("invalid partition kind")
	ErrArchiveExists        = podlink.Error("archive already exists")
)

// Ensure service implements interface.
var _ podlink.ArchiveService = &ArchiveService{}

// ArchiveService represents a service for writing history snapshots to the
// local filesystem. Each archive is a directory with one file per kind.
type ArchiveService struct {
	Path string
}

// NewArchiveService returns a new instance of ArchiveService.
func NewArchiveService() *ArchiveService {
	return &ArchiveService{}
}

// CreateArchive writes a into a new directory under the service path.
func (s *ArchiveService) CreateArchive(ctx context.Context, a *podlink.Archive) error {
	if err := a.Validate(); err != nil {
		return err
	} else if s.Path == "" {
		return ErrArchivePathRequired
	} else if !archiveNameRegex.MatchString(a.Name) {
		return ErrInvalidArchiveName
	}

	// Ensure parent path exists.
	if err := os.MkdirAll(s.Path, 0777); err != nil {
		return err
	}

	// Create archive directory. Fail if it already exists.
	dir := filepath.Join(s.Path, a.Name)
	if err := os.Mkdir(dir, 0777); os.IsExist(err) {
		return ErrArchiveExists
	} else if err != nil {
		return err
	}

	// Write one file per partition.
	for kind, resolutions := range podlink.GroupResolutionsByKind(a.Resolutions) {
		if err := writeFile(filepath.Join(dir, kind+".json"), resolutions); err != nil {
			os.RemoveAll(dir)
			return err
		}
	}
	return nil
}

// ReadArchivePartition reads the resolutions of a single kind from an archive.
// Returns nil if the partition does not exist.
func (s *ArchiveService) ReadArchivePartition(ctx context.Context, name, kind string) ([]*podlink.Resolution, error) {
	if !archiveNameRegex.MatchString(name) {
		return nil, ErrInvalidArchiveName
	} else if !archiveNameRegex.MatchString(kind) {
		return nil, ErrInvalidPartitionKind
	}

	f, err := os.Open(filepath.Join(s.Path, name, kind+".json"))
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	var a []*podlink.Resolution
	if err := json.NewDecoder(f).Decode(&a); err != nil {
		return nil, err
	}
	return a, nil
}

func writeFile(path string, resolutions []*podlink.Resolution) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "\t")
	if err := enc.Encode(resolutions); err != nil {
		return err
	}
	return file.Close()
}

var archiveNameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
