package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/middlemost/podlink"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	m := NewMain()
	if err := m.Command().Execute(); err != nil {
		fmt.Fprintln(m.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the main program execution.
type Main struct {
	ConfigPath string
	Config     Config

	// Input/output streams
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{
		Config: DefaultConfig(),

		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Command returns the root command with all subcommands attached.
func (m *Main) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "podlink",
		Short: "Deep link routing for podcast playback",
		Long: `podlink resolves inbound navigation requests from notifications,
widgets and web links to in-app destinations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return m.LoadConfig()
		},
	}
	cmd.SetIn(m.Stdin)
	cmd.SetOut(m.Stdout)
	cmd.SetErr(m.Stderr)
	cmd.PersistentFlags().StringVar(&m.ConfigPath, "config", "", "config file (default "+DefaultConfigPath+")")

	cmd.AddCommand(
		m.serveCmd(),
		m.resolveCmd(),
		m.historyCmd(),
		m.archiveCmd(),
		versionCmd(),
	)
	return cmd
}

// LoadConfig parses the configuration file.
func (m *Main) LoadConfig() error {
	// Default configuration path if not specified.
	path := m.ConfigPath
	if path == "" {
		path = DefaultConfigPath
	}

	// Interpolate path.
	if err := InterpolatePaths(&path); err != nil {
		return err
	}

	// Read configuration file.
	if _, err := toml.DecodeFile(path, &m.Config); os.IsNotExist(err) {
		if m.ConfigPath != "" {
			return err
		}
	} else if err != nil {
		return err
	}
	return nil
}

// DefaultConfigPath is the default configuration path.
const DefaultConfigPath = "~/.podlink/config"

// Config represents a configuration file.
type Config struct {
	DeepLink struct {
		WebBaseHost string `toml:"web-base-host"`
	} `toml:"deeplink"`

	Database struct {
		Path string `toml:"path"`
	} `toml:"database"`

	HTTP struct {
		Addr     string `toml:"addr"`
		Host     string `toml:"host"`
		Autocert bool   `toml:"autocert"`
	} `toml:"http"`

	Metrics struct {
		Namespace string `toml:"namespace"`
	} `toml:"metrics"`

	Tracing struct {
		TracerName string `toml:"tracer-name"`
	} `toml:"tracing"`

	Archive struct {
		Path   string `toml:"path"`
		Bucket string `toml:"bucket"`
		Prefix string `toml:"prefix"`
	} `toml:"archive"`

	AWS struct {
		Region          string `toml:"region"`
		AccessKeyID     string `toml:"access-key-id"`
		SecretAccessKey string `toml:"secret-access-key"`
	} `toml:"aws"`
}

// DefaultConfig returns a configuration with default settings.
func DefaultConfig() Config {
	var c Config
	c.DeepLink.WebBaseHost = podlink.DefaultWebBaseHost
	c.Database.Path = "~/.podlink/db"
	c.HTTP.Addr = ":3000"
	c.Metrics.Namespace = "podlink"
	c.Tracing.TracerName = "podlink"
	c.Archive.Path = "~/.podlink/archive"
	return c
}

// InterpolatePaths replaces the tilde prefix with the user's home directory.
func InterpolatePaths(a ...*string) error {
	for _, s := range a {
		if !strings.HasPrefix(*s, "~/") {
			continue
		}

		u, err := user.Current()
		if err != nil {
			return err
		} else if u.HomeDir == "" {
			return errors.New("home directory not found")
		}
		*s = filepath.Join(u.HomeDir, strings.TrimPrefix(*s, "~/"))
	}
	return nil
}
