package podlink

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"strings"
	"time"
)

// Resolution errors.
const (
	ErrResolutionRequired = Error("resolution required")
	ErrResolutionNotFound = Error("resolution not found")
	ErrResolutionExists   = Error("resolution already exists")
)

// Resolution records the outcome of routing a single request.
type Resolution struct {
	ID         string
	Request    *Request
	DeepLink   DeepLink // nil if no rule matched
	Candidates []string // kinds of every matching rule, in rule order
	CreatedAt  time.Time
}

// Kind returns the kind of the chosen deep link or KindNone.
func (r *Resolution) Kind() string { return KindOf(r.DeepLink) }

// Matched returns true if the request resolved to a deep link.
func (r *Resolution) Matched() bool { return r.DeepLink != nil }

// Ambiguous returns true if more than one rule matched the request.
func (r *Resolution) Ambiguous() bool { return len(r.Candidates) > 1 }

// MarshalJSON encodes the deep link as a flat target.
func (r *Resolution) MarshalJSON() ([]byte, error) {
	return json.Marshal(&resolutionJSON{
		ID:         r.ID,
		Request:    r.Request,
		Target:     NewTarget(r.DeepLink),
		Candidates: r.Candidates,
		CreatedAt:  r.CreatedAt,
	})
}

// UnmarshalJSON decodes a resolution encoded by MarshalJSON.
func (r *Resolution) UnmarshalJSON(data []byte) error {
	var v resolutionJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = Resolution{
		ID:         v.ID,
		Request:    v.Request,
		DeepLink:   v.Target.DeepLink(),
		Candidates: v.Candidates,
		CreatedAt:  v.CreatedAt,
	}
	return nil
}

type resolutionJSON struct {
	ID         string    `json:"id"`
	Request    *Request  `json:"request,omitempty"`
	Target     *Target   `json:"target,omitempty"`
	Candidates []string  `json:"candidates,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ResolutionService represents a service for storing resolution history.
type ResolutionService interface {
	CreateResolution(ctx context.Context, r *Resolution) error
	FindResolutionByID(ctx context.Context, id string) (*Resolution, error)

	// Returns the most recent resolutions, newest first.
	// A limit of zero returns all resolutions.
	FindResolutions(ctx context.Context, limit int) ([]*Resolution, error)
}

// DispatchService routes requests and records the outcome.
type DispatchService interface {
	Dispatch(ctx context.Context, req *Request) (*Resolution, error)
}

// Ensure dispatcher implements interface.
var _ DispatchService = &Dispatcher{}

// Dispatcher resolves requests with a Router and records each resolution.
type Dispatcher struct {
	Router            *Router
	ResolutionService ResolutionService // optional

	Now       func() time.Time
	LogOutput io.Writer
}

// NewDispatcher returns a new instance of Dispatcher.
func NewDispatcher(router *Router) *Dispatcher {
	return &Dispatcher{
		Router:    router,
		Now:       time.Now,
		LogOutput: ioutil.Discard,
	}
}

// Dispatch resolves req. A request that matches no rule is not an error; the
// returned resolution has a nil deep link.
func (d *Dispatcher) Dispatch(ctx context.Context, req *Request) (*Resolution, error) {
	if req == nil {
		return nil, ErrRequestRequired
	} else if req.Action == "" {
		return nil, ErrActionRequired
	}

	// Earliest matching rule wins.
	links := d.Router.Match(req)
	r := &Resolution{
		Request:    req,
		Candidates: kinds(links),
		CreatedAt:  d.Now().UTC(),
	}
	if len(links) > 0 {
		r.DeepLink = links[0]
	}

	if r.Ambiguous() {
		fmt.Fprintf(d.LogOutput, "dispatch: ambiguous request: action=%q candidates=%s chosen=%s\n", req.Action, strings.Join(r.Candidates, ","), r.Kind())
	}

	// Record resolution, if storage is available.
	if d.ResolutionService != nil {
		if err := d.ResolutionService.CreateResolution(ctx, r); err != nil {
			fmt.Fprintf(d.LogOutput, "dispatch: create resolution error: action=%q err=%s\n", req.Action, err)
			return nil, err
		}
	}

	fmt.Fprintf(d.LogOutput, "dispatch: resolved: id=%s action=%q kind=%s\n", r.ID, req.Action, r.Kind())
	return r, nil
}
