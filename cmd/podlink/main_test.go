package main

import (
	"bytes"
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/middlemost/podlink"
	"github.com/middlemost/podlink/bolt"
	"github.com/middlemost/podlink/mock"
)

// Program wraps Main for testing.
type Program struct {
	*Main

	Dir    string
	Stdout bytes.Buffer
	Stderr bytes.Buffer
}

// NewProgram returns a Main that writes to buffers and stores data in a
// temporary directory.
func NewProgram(t *testing.T) *Program {
	m := &Program{Main: NewMain(), Dir: t.TempDir()}
	m.Main.Stdin = strings.NewReader("")
	m.Main.Stdout = &m.Stdout
	m.Main.Stderr = &m.Stderr
	m.Config.Database.Path = filepath.Join(m.Dir, "db")
	m.Config.Archive.Path = filepath.Join(m.Dir, "archive")
	return m
}

// WriteConfig writes s to a config file and sets the config path.
func (m *Program) WriteConfig(t *testing.T, s string) {
	m.ConfigPath = filepath.Join(m.Dir, "config")
	if err := ioutil.WriteFile(m.ConfigPath, []byte(s), 0600); err != nil {
		t.Fatal(err)
	}
}

// Run executes the root command with args.
func (m *Program) Run(args ...string) error {
	cmd := m.Command()
	cmd.SetArgs(args)
	return cmd.Execute()
}

// Ensure the default configuration is populated.
func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.DeepLink.WebBaseHost != podlink.DefaultWebBaseHost {
		t.Fatalf("unexpected web base host: %s", c.DeepLink.WebBaseHost)
	} else if c.HTTP.Addr != ":3000" {
		t.Fatalf("unexpected addr: %s", c.HTTP.Addr)
	} else if c.Metrics.Namespace != "podlink" {
		t.Fatalf("unexpected namespace: %s", c.Metrics.Namespace)
	}
}

// Ensure the config file overrides defaults.
func TestMain_LoadConfig(t *testing.T) {
	m := NewProgram(t)
	m.WriteConfig(t, `
[deeplink]
web-base-host = "example.com"

[http]
addr = ":8080"

[archive]
bucket = "history"
prefix = "deeplinks"

[aws]
region = "us-east-1"
`)

	if err := m.LoadConfig(); err != nil {
		t.Fatal(err)
	} else if m.Config.DeepLink.WebBaseHost != "example.com" {
		t.Fatalf("unexpected web base host: %s", m.Config.DeepLink.WebBaseHost)
	} else if m.Config.HTTP.Addr != ":8080" {
		t.Fatalf("unexpected addr: %s", m.Config.HTTP.Addr)
	} else if m.Config.Archive.Bucket != "history" || m.Config.Archive.Prefix != "deeplinks" {
		t.Fatalf("unexpected archive config: %#v", m.Config.Archive)
	} else if m.Config.AWS.Region != "us-east-1" {
		t.Fatalf("unexpected region: %s", m.Config.AWS.Region)
	} else if m.Config.Metrics.Namespace != "podlink" {
		t.Fatalf("expected default namespace, got: %s", m.Config.Metrics.Namespace)
	}
}

// Ensure an explicit config path must exist.
func TestMain_LoadConfig_ErrNotExist(t *testing.T) {
	m := NewProgram(t)
	m.ConfigPath = filepath.Join(m.Dir, "no-such-config")
	if err := m.LoadConfig(); !os.IsNotExist(err) {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Ensure a malformed config file returns an error.
func TestMain_LoadConfig_ErrInvalid(t *testing.T) {
	m := NewProgram(t)
	m.WriteConfig(t, `[deeplink`)
	if err := m.LoadConfig(); err == nil {
		t.Fatal("expected error")
	}
}

// Ensure tilde paths are expanded.
func TestInterpolatePaths(t *testing.T) {
	a, b := "~/.podlink/db", "/var/lib/podlink"
	if err := InterpolatePaths(&a, &b); err != nil {
		t.Fatal(err)
	} else if strings.HasPrefix(a, "~") || !strings.HasSuffix(a, filepath.Join(".podlink", "db")) {
		t.Fatalf("unexpected path: %s", a)
	} else if b != "/var/lib/podlink" {
		t.Fatalf("unexpected path: %s", b)
	}
}

// Ensure request arguments are parsed into string and integer extras.
func TestParseRequestArgs(t *testing.T) {
	req, err := ParseRequestArgs([]string{"VIEW", "page=playlist", "filterId:=12", "q=a=b"})
	if err != nil {
		t.Fatal(err)
	}

	exp := podlink.NewRequest("VIEW")
	exp.Extras.SetString("page", "playlist")
	exp.Extras.SetLong("filterId", 12)
	exp.Extras.SetString("q", "a=b")
	if !reflect.DeepEqual(req, exp) {
		t.Fatalf("unexpected request: %#v", req)
	}

	t.Run("ErrActionRequired", func(t *testing.T) {
		if _, err := ParseRequestArgs([]string{""}); err != podlink.ErrActionRequired {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("ErrInvalidExtra", func(t *testing.T) {
		if _, err := ParseRequestArgs([]string{"VIEW", "page"}); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("ErrInvalidInteger", func(t *testing.T) {
		if _, err := ParseRequestArgs([]string{"VIEW", "filterId:=x"}); err == nil {
			t.Fatal("expected error")
		}
	})
}

// Ensure the resolve command prints the target as JSON.
func TestMain_Resolve(t *testing.T) {
	m := NewProgram(t)
	m.WriteConfig(t, "")

	if err := m.Run("--config", m.ConfigPath, "resolve", "OPEN_EPISODE7", "episodeUuid=abc", "podcastUuid=p1"); err != nil {
		t.Fatal(err)
	} else if s := m.Stdout.String(); s != "{\n  \"kind\": \"show_episode\",\n  \"podcast_uuid\": \"p1\",\n  \"episode_uuid\": \"abc\"\n}\n" {
		t.Fatalf("unexpected output: %s", s)
	}
}

// Ensure the resolve command matches website links on the configured host.
func TestMain_Resolve_Website(t *testing.T) {
	m := NewProgram(t)
	m.WriteConfig(t, "[deeplink]\nweb-base-host = \"example.com\"\n")

	if err := m.Run("--config", m.ConfigPath, "resolve", "VIEW", "--uri", "https://example.com/podcast"); err != nil {
		t.Fatal(err)
	} else if !strings.Contains(m.Stdout.String(), `"kind": "website"`) {
		t.Fatalf("unexpected output: %s", m.Stdout.String())
	}
}

// Ensure website links on the default host match when no host is configured.
func TestMain_Resolve_DefaultWebBaseHost(t *testing.T) {
	m := NewProgram(t)
	m.WriteConfig(t, "")

	if err := m.Run("--config", m.ConfigPath, "resolve", "VIEW", "--uri", "https://"+podlink.DefaultWebBaseHost+"/"); err != nil {
		t.Fatal(err)
	} else if !strings.Contains(m.Stdout.String(), `"kind": "website"`) {
		t.Fatalf("unexpected output: %s", m.Stdout.String())
	}
}

// Ensure the resolve command returns an error if nothing matches.
func TestMain_Resolve_ErrNoMatch(t *testing.T) {
	m := NewProgram(t)
	m.WriteConfig(t, "")

	if err := m.Run("--config", m.ConfigPath, "resolve", "OPEN_EPISODE"); err != podlink.ErrNoMatch {
		t.Fatalf("unexpected error: %v", err)
	} else if m.Stdout.Len() != 0 {
		t.Fatalf("unexpected output: %s", m.Stdout.String())
	}
}

// Ensure the resolve command logs routing decisions when verbose.
func TestMain_Resolve_Verbose(t *testing.T) {
	m := NewProgram(t)
	m.WriteConfig(t, "")

	if err := m.Run("--config", m.ConfigPath, "resolve", "-v", "OPEN_DOWNLOADS"); err != nil {
		t.Fatal(err)
	} else if !strings.Contains(m.Stderr.String(), "deeplink: found matching deep link: kind=downloads") {
		t.Fatalf("unexpected log: %s", m.Stderr.String())
	}
}

// Ensure the history command lists resolutions recorded in the database.
func TestMain_History(t *testing.T) {
	m := NewProgram(t)
	m.WriteConfig(t, "[database]\npath = \""+filepath.ToSlash(filepath.Join(m.Dir, "db"))+"\"\n")

	// Record a resolution directly.
	db := bolt.NewDB()
	db.Path = filepath.Join(m.Dir, "db")
	if err := db.Open(); err != nil {
		t.Fatal(err)
	}
	d := podlink.NewDispatcher(podlink.NewRouter(podlink.DefaultWebBaseHost))
	d.ResolutionService = bolt.NewResolutionService(db)
	if _, err := d.Dispatch(context.Background(), podlink.NewRequest("OPEN_DOWNLOADS")); err != nil {
		t.Fatal(err)
	} else if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	if err := m.Run("--config", m.ConfigPath, "history"); err != nil {
		t.Fatal(err)
	} else if s := m.Stdout.String(); !strings.Contains(s, "OPEN_DOWNLOADS") || !strings.Contains(s, "downloads") {
		t.Fatalf("unexpected output: %s", s)
	}
}

// Ensure all resolutions are passed to the archive service.
func TestMain_Archive(t *testing.T) {
	m := NewProgram(t)

	a := []*podlink.Resolution{
		{ID: "1", Request: podlink.NewRequest("OPEN_DOWNLOADS"), DeepLink: podlink.DownloadsDeepLink{}, CreatedAt: time.Unix(0, 0).UTC()},
		{ID: "2", Request: podlink.NewRequest("OPEN_EPISODE"), CreatedAt: time.Unix(1, 0).UTC()},
	}

	var resolutionService mock.ResolutionService
	resolutionService.FindResolutionsFn = func(ctx context.Context, limit int) ([]*podlink.Resolution, error) {
		if limit != 0 {
			t.Fatalf("unexpected limit: %d", limit)
		}
		return a, nil
	}

	var archiveService mock.ArchiveService
	archiveService.CreateArchiveFn = func(ctx context.Context, archive *podlink.Archive) error {
		if !reflect.DeepEqual(archive.Resolutions, a) {
			t.Fatalf("unexpected resolutions: %#v", archive.Resolutions)
		} else if archive.Name == "" {
			t.Fatal("expected archive name")
		}
		return nil
	}

	if err := m.Archive(context.Background(), &resolutionService, &archiveService); err != nil {
		t.Fatal(err)
	} else if !strings.Contains(m.Stdout.String(), "archive created: name=") {
		t.Fatalf("unexpected output: %s", m.Stdout.String())
	}
}

// Ensure the local archive service is used when no bucket is configured.
func TestMain_Archive_Local(t *testing.T) {
	m := NewProgram(t)
	m.WriteConfig(t, "[database]\npath = \""+filepath.ToSlash(filepath.Join(m.Dir, "db"))+"\"\n\n[archive]\npath = \""+filepath.ToSlash(filepath.Join(m.Dir, "archive"))+"\"\n")

	if err := m.Run("--config", m.ConfigPath, "archive"); err != nil {
		t.Fatal(err)
	} else if !strings.Contains(m.Stdout.String(), "archive created: name=") {
		t.Fatalf("unexpected output: %s", m.Stdout.String())
	}

	if fis, err := ioutil.ReadDir(filepath.Join(m.Dir, "archive")); err != nil {
		t.Fatal(err)
	} else if len(fis) != 1 || !fis[0].IsDir() {
		t.Fatalf("unexpected archive entries: %d", len(fis))
	}
}

// Ensure serve opens and shuts down cleanly when the context is done.
func TestMain_Serve(t *testing.T) {
	m := NewProgram(t)
	m.Config.HTTP.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := m.Serve(ctx); err != nil {
		t.Fatal(err)
	} else if s := m.Stdout.String(); !strings.Contains(s, "http listening: http://127.0.0.1:") {
		t.Fatalf("unexpected output: %s", s)
	}
}
