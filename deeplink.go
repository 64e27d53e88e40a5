package podlink

import (
	"strconv"
)

// Deep link kinds.
const (
	KindDownloads           = "downloads"
	KindAddBookmark         = "add_bookmark"
	KindChangeBookmarkTitle = "change_bookmark_title"
	KindShowBookmark        = "show_bookmark"
	KindDeleteBookmark      = "delete_bookmark"
	KindShowPodcast         = "show_podcast"
	KindShowEpisode         = "show_episode"
	KindShowPodcasts        = "show_podcasts"
	KindShowDiscover        = "show_discover"
	KindShowUpNext          = "show_up_next"
	KindShowFilter          = "show_filter"
	KindWebsite             = "website"
)

// KindNone labels a resolution that matched no deep link.
const KindNone = "none"

// Page extra values accepted by the VIEW action.
const (
	PagePodcasts = "podcasts"
	PageSearch   = "search"
	PageUpNext   = "upnext"
	PagePlaylist = "playlist"
)

// DefaultFilterID is used when a filter page request has no usable filter id.
const DefaultFilterID = -1

// DeepLink represents a resolved in-app destination.
type DeepLink interface {
	Kind() string
}

// DownloadsDeepLink opens the downloads screen.
type DownloadsDeepLink struct{}

// AddBookmarkDeepLink opens the add bookmark screen for the playing episode.
type AddBookmarkDeepLink struct{}

// ChangeBookmarkTitleDeepLink opens the rename dialog for a bookmark.
type ChangeBookmarkTitleDeepLink struct {
	BookmarkUUID string
}

// ShowBookmarkDeepLink shows a bookmark.
type ShowBookmarkDeepLink struct {
	BookmarkUUID string
}

// DeleteBookmarkDeepLink opens the delete confirmation for a bookmark.
type DeleteBookmarkDeepLink struct {
	BookmarkUUID string
}

// ShowPodcastDeepLink shows a podcast page.
type ShowPodcastDeepLink struct {
	PodcastUUID string
	SourceView  string // optional
}

// ShowEpisodeDeepLink shows an episode. PodcastUUID and SourceView are optional.
type ShowEpisodeDeepLink struct {
	EpisodeUUID string
	PodcastUUID string
	SourceView  string
}

// NotificationAction returns an episode action suffixed with n. Notifications
// use the suffix to keep each pending action unique.
func (l ShowEpisodeDeepLink) NotificationAction(n int) string {
	return ActionOpenEpisode + strconv.Itoa(n)
}

// ShowPodcastsDeepLink shows the podcasts list.
type ShowPodcastsDeepLink struct{}

// ShowDiscoverDeepLink shows the discover screen.
type ShowDiscoverDeepLink struct{}

// ShowUpNextDeepLink shows the up next queue.
type ShowUpNextDeepLink struct{}

// ShowFilterDeepLink shows an episode filter.
type ShowFilterDeepLink struct {
	FilterID int64
}

// WebsiteDeepLink opens the app home from a website link.
type WebsiteDeepLink struct{}

func (DownloadsDeepLink) Kind() string           { return KindDownloads }
func (AddBookmarkDeepLink) Kind() string         { return KindAddBookmark }
func (ChangeBookmarkTitleDeepLink) Kind() string { return KindChangeBookmarkTitle }
func (ShowBookmarkDeepLink) Kind() string        { return KindShowBookmark }
func (DeleteBookmarkDeepLink) Kind() string      { return KindDeleteBookmark }
func (ShowPodcastDeepLink) Kind() string         { return KindShowPodcast }
func (ShowEpisodeDeepLink) Kind() string         { return KindShowEpisode }
func (ShowPodcastsDeepLink) Kind() string        { return KindShowPodcasts }
func (ShowDiscoverDeepLink) Kind() string        { return KindShowDiscover }
func (ShowUpNextDeepLink) Kind() string          { return KindShowUpNext }
func (ShowFilterDeepLink) Kind() string          { return KindShowFilter }
func (WebsiteDeepLink) Kind() string             { return KindWebsite }

// KindOf returns the kind of link or KindNone if link is nil.
func KindOf(link DeepLink) string {
	if link == nil {
		return KindNone
	}
	return link.Kind()
}

// Target is a flat record of a deep link used for encoding.
type Target struct {
	Kind         string `json:"kind"`
	BookmarkUUID string `json:"bookmark_uuid,omitempty"`
	PodcastUUID  string `json:"podcast_uuid,omitempty"`
	EpisodeUUID  string `json:"episode_uuid,omitempty"`
	SourceView   string `json:"source_view,omitempty"`
	FilterID     int64  `json:"filter_id,omitempty"`
}

// NewTarget returns the flat record for link. Returns nil if link is nil.
func NewTarget(link DeepLink) *Target {
	if link == nil {
		return nil
	}

	t := &Target{Kind: link.Kind()}
	switch link := link.(type) {
	case ChangeBookmarkTitleDeepLink:
		t.BookmarkUUID = link.BookmarkUUID
	case ShowBookmarkDeepLink:
		t.BookmarkUUID = link.BookmarkUUID
	case DeleteBookmarkDeepLink:
		t.BookmarkUUID = link.BookmarkUUID
	case ShowPodcastDeepLink:
		t.PodcastUUID, t.SourceView = link.PodcastUUID, link.SourceView
	case ShowEpisodeDeepLink:
		t.EpisodeUUID, t.PodcastUUID, t.SourceView = link.EpisodeUUID, link.PodcastUUID, link.SourceView
	case ShowFilterDeepLink:
		t.FilterID = link.FilterID
	}
	return t
}

// DeepLink converts the record back to a deep link.
// Returns nil for a nil target or an unknown kind.
func (t *Target) DeepLink() DeepLink {
	if t == nil {
		return nil
	}

	switch t.Kind {
	case KindDownloads:
		return DownloadsDeepLink{}
	case KindAddBookmark:
		return AddBookmarkDeepLink{}
	case KindChangeBookmarkTitle:
		return ChangeBookmarkTitleDeepLink{BookmarkUUID: t.BookmarkUUID}
	case KindShowBookmark:
		return ShowBookmarkDeepLink{BookmarkUUID: t.BookmarkUUID}
	case KindDeleteBookmark:
		return DeleteBookmarkDeepLink{BookmarkUUID: t.BookmarkUUID}
	case KindShowPodcast:
		return ShowPodcastDeepLink{PodcastUUID: t.PodcastUUID, SourceView: t.SourceView}
	case KindShowEpisode:
		return ShowEpisodeDeepLink{EpisodeUUID: t.EpisodeUUID, PodcastUUID: t.PodcastUUID, SourceView: t.SourceView}
	case KindShowPodcasts:
		return ShowPodcastsDeepLink{}
	case KindShowDiscover:
		return ShowDiscoverDeepLink{}
	case KindShowUpNext:
		return ShowUpNextDeepLink{}
	case KindShowFilter:
		return ShowFilterDeepLink{FilterID: t.FilterID}
	case KindWebsite:
		return WebsiteDeepLink{}
	default:
		return nil
	}
}
