package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/middlemost/podlink"
	"github.com/spf13/cobra"
)

func (m *Main) resolveCmd() *cobra.Command {
	var uri string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "resolve ACTION [KEY=VALUE | KEY:=INT]...",
		Short: "Resolve a request to a deep link without recording it",
		Long: `Resolve a request to a deep link and print the target as JSON.

String extras are passed as KEY=VALUE and integer extras as KEY:=INT.
Exits with an error if no rule matches.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := ParseRequestArgs(args)
			if err != nil {
				return err
			} else if req.URI, err = podlink.ParseURI(uri); err != nil {
				return err
			}

			router := podlink.NewRouter(m.Config.DeepLink.WebBaseHost)
			if verbose {
				router.LogOutput = m.Stderr
			}

			link := router.Resolve(req)
			if link == nil {
				return podlink.ErrNoMatch
			}

			enc := json.NewEncoder(m.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(podlink.NewTarget(link))
		},
	}

	cmd.Flags().StringVar(&uri, "uri", "", "request uri")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log routing decisions to stderr")

	return cmd
}

// ParseRequestArgs builds a request from an action followed by extras.
func ParseRequestArgs(args []string) (*podlink.Request, error) {
	if len(args) == 0 || args[0] == "" {
		return nil, podlink.ErrActionRequired
	}

	req := podlink.NewRequest(args[0])
	for _, arg := range args[1:] {
		if i := strings.Index(arg, ":="); i > 0 && !strings.Contains(arg[:i], "=") {
			n, err := strconv.ParseInt(arg[i+2:], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid integer extra: %s", arg)
			}
			req.Extras.SetLong(arg[:i], n)
			continue
		}

		i := strings.Index(arg, "=")
		if i <= 0 {
			return nil, fmt.Errorf("invalid extra: %s", arg)
		}
		req.Extras.SetString(arg[:i], arg[i+1:])
	}
	return req, nil
}
