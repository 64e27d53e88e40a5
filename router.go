package podlink

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/url"
	"regexp"
	"strings"
)

// episodeActionRegex matches the episode action with an optional numeric
// suffix appended by notifications.
var episodeActionRegex = regexp.MustCompile(`^` + ActionOpenEpisode + `\d*$`)

// rule matches a request against a single deep link kind.
// Returns nil if the request does not match.
type rule func(r *Router, req *Request) DeepLink

// rules is the fixed evaluation order. Earlier rules win when more than one
// rule matches.
var rules = []rule{
	matchDownloads,
	matchAddBookmark,
	matchChangeBookmarkTitle,
	matchShowBookmark,
	matchDeleteBookmark,
	matchShowPodcast,
	matchShowEpisode,
	matchShowPage,
	matchWebsite,
}

// Router resolves requests to deep links. A Router is immutable after
// construction and safe for concurrent use.
type Router struct {
	webBaseHost string

	LogOutput io.Writer
}

// NewRouter returns a new instance of Router that recognizes website links
// on webBaseHost.
func NewRouter(webBaseHost string) *Router {
	return &Router{
		webBaseHost: webBaseHost,
		LogOutput:   ioutil.Discard,
	}
}

// Match returns every deep link matching req in rule order.
func (r *Router) Match(req *Request) []DeepLink {
	if req == nil {
		return nil
	}

	var a []DeepLink
	for _, match := range rules {
		if link := match(r, req); link != nil {
			a = append(a, link)
		}
	}
	return a
}

// Resolve returns the deep link for req or nil if no rule matches.
// If more than one rule matches then the earliest rule wins.
func (r *Router) Resolve(req *Request) DeepLink {
	if req == nil {
		return nil
	}
	fmt.Fprintf(r.LogOutput, "deeplink: resolving: action=%q host=%q\n", req.Action, req.Host())

	links := r.Match(req)
	switch len(links) {
	case 0:
		fmt.Fprintf(r.LogOutput, "deeplink: no matching deep links found: action=%q\n", req.Action)
		return nil
	case 1:
		fmt.Fprintf(r.LogOutput, "deeplink: found matching deep link: kind=%s\n", links[0].Kind())
		return links[0]
	default:
		fmt.Fprintf(r.LogOutput, "deeplink: found multiple matching deep links: kinds=%s\n", strings.Join(kinds(links), ","))
		return links[0]
	}
}

// Request returns the canonical request for link.
func (r *Router) Request(link DeepLink) *Request {
	switch link := link.(type) {
	case DownloadsDeepLink:
		return NewRequest(ActionOpenDownloads)
	case AddBookmarkDeepLink:
		return NewRequest(ActionOpenAddBookmark)
	case ChangeBookmarkTitleDeepLink:
		return bookmarkRequest(ActionOpenChangeBookmarkTitle, link.BookmarkUUID)
	case ShowBookmarkDeepLink:
		return bookmarkRequest(ActionOpenBookmark, link.BookmarkUUID)
	case DeleteBookmarkDeepLink:
		return bookmarkRequest(ActionOpenDeleteBookmark, link.BookmarkUUID)
	case ShowPodcastDeepLink:
		req := NewRequest(ActionOpenPodcast)
		req.Extras.SetString(ExtraPodcastUUID, link.PodcastUUID)
		setOptional(req.Extras, ExtraSourceView, link.SourceView)
		return req
	case ShowEpisodeDeepLink:
		req := NewRequest(ActionOpenEpisode)
		req.Extras.SetString(ExtraEpisodeUUID, link.EpisodeUUID)
		setOptional(req.Extras, ExtraPodcastUUID, link.PodcastUUID)
		setOptional(req.Extras, ExtraSourceView, link.SourceView)
		return req
	case ShowPodcastsDeepLink:
		return pageRequest(PagePodcasts)
	case ShowDiscoverDeepLink:
		return pageRequest(PageSearch)
	case ShowUpNextDeepLink:
		return pageRequest(PageUpNext)
	case ShowFilterDeepLink:
		req := pageRequest(PagePlaylist)
		req.Extras.SetLong(ExtraFilterID, link.FilterID)
		return req
	case WebsiteDeepLink:
		req := NewRequest(ActionView)
		req.URI = &url.URL{Scheme: "https", Host: r.webBaseHost, Path: "/"}
		return req
	default:
		return nil
	}
}

func bookmarkRequest(action, bookmarkUUID string) *Request {
	req := NewRequest(action)
	req.Extras.SetString(ExtraBookmarkUUID, bookmarkUUID)
	return req
}

func pageRequest(page string) *Request {
	req := NewRequest(ActionView)
	req.Extras.SetString(ExtraPage, page)
	return req
}

func setOptional(m Extras, key, value string) {
	if value != "" {
		m.SetString(key, value)
	}
}

func matchDownloads(r *Router, req *Request) DeepLink {
	if req.Action != ActionOpenDownloads {
		return nil
	}
	return DownloadsDeepLink{}
}

func matchAddBookmark(r *Router, req *Request) DeepLink {
	if req.Action != ActionOpenAddBookmark {
		return nil
	}
	return AddBookmarkDeepLink{}
}

func matchChangeBookmarkTitle(r *Router, req *Request) DeepLink {
	if req.Action != ActionOpenChangeBookmarkTitle {
		return nil
	} else if uuid, ok := req.Extras.String(ExtraBookmarkUUID); ok {
		return ChangeBookmarkTitleDeepLink{BookmarkUUID: uuid}
	}
	return nil
}

func matchShowBookmark(r *Router, req *Request) DeepLink {
	if req.Action != ActionOpenBookmark {
		return nil
	} else if uuid, ok := req.Extras.String(ExtraBookmarkUUID); ok {
		return ShowBookmarkDeepLink{BookmarkUUID: uuid}
	}
	return nil
}

func matchDeleteBookmark(r *Router, req *Request) DeepLink {
	if req.Action != ActionOpenDeleteBookmark {
		return nil
	} else if uuid, ok := req.Extras.String(ExtraBookmarkUUID); ok {
		return DeleteBookmarkDeepLink{BookmarkUUID: uuid}
	}
	return nil
}

func matchShowPodcast(r *Router, req *Request) DeepLink {
	if req.Action != ActionOpenPodcast {
		return nil
	}

	podcastUUID, ok := req.Extras.String(ExtraPodcastUUID)
	if !ok {
		return nil
	}
	sourceView, _ := req.Extras.String(ExtraSourceView)
	return ShowPodcastDeepLink{PodcastUUID: podcastUUID, SourceView: sourceView}
}

func matchShowEpisode(r *Router, req *Request) DeepLink {
	if !episodeActionRegex.MatchString(req.Action) {
		return nil
	}

	episodeUUID, ok := req.Extras.String(ExtraEpisodeUUID)
	if !ok {
		return nil
	}
	podcastUUID, _ := req.Extras.String(ExtraPodcastUUID)
	sourceView, _ := req.Extras.String(ExtraSourceView)
	return ShowEpisodeDeepLink{EpisodeUUID: episodeUUID, PodcastUUID: podcastUUID, SourceView: sourceView}
}

func matchShowPage(r *Router, req *Request) DeepLink {
	if req.Action != ActionView {
		return nil
	}

	page, _ := req.Extras.String(ExtraPage)
	switch page {
	case PagePodcasts:
		return ShowPodcastsDeepLink{}
	case PageSearch:
		return ShowDiscoverDeepLink{}
	case PageUpNext:
		return ShowUpNextDeepLink{}
	case PagePlaylist:
		return ShowFilterDeepLink{FilterID: req.Extras.Long(ExtraFilterID, DefaultFilterID)}
	default:
		return nil
	}
}

func matchWebsite(r *Router, req *Request) DeepLink {
	if req.Action != ActionView || req.URI == nil {
		return nil
	} else if host := req.URI.Hostname(); host == "" || host != r.webBaseHost {
		return nil
	}
	return WebsiteDeepLink{}
}

func kinds(links []DeepLink) []string {
	a := make([]string, len(links))
	for i, link := range links {
		a[i] = link.Kind()
	}
	return a
}
