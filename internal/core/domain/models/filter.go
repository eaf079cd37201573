package models

import (
	"fmt"
	"strings"
	"time"
)

// Category is the media type of a document.
type Category string

const (
	CategoryArticle   Category = "article"
	CategoryTweet     Category = "tweet"
	CategoryVideo     Category = "video"
	CategoryPDF       Category = "pdf"
	CategoryEPUB      Category = "epub"
	CategoryRSS       Category = "rss"
	CategoryEmail     Category = "email"
	CategoryHighlight Category = "highlight"
	CategoryNote      Category = "note"
)

// Categories lists every category the list endpoint accepts.
var Categories = []Category{
	CategoryArticle, CategoryTweet, CategoryVideo, CategoryPDF, CategoryEPUB,
	CategoryRSS, CategoryEmail, CategoryHighlight, CategoryNote,
}

// ParseCategory validates s. The empty string means no filter.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return "", nil
	}
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: category %q (choose from %s)", ErrInvalidFlag, s, ChoiceList(Categories))
}

// Location is the reading-list workflow state of a document.
type Location string

const (
	LocationNew       Location = "new"
	LocationLater     Location = "later"
	LocationShortlist Location = "shortlist"
	LocationArchive   Location = "archive"
	LocationFeed      Location = "feed"
)

var Locations = []Location{
	LocationNew, LocationLater, LocationShortlist, LocationArchive, LocationFeed,
}

// ParseLocation validates s. The empty string means no filter.
func ParseLocation(s string) (Location, error) {
	if s == "" {
		return "", nil
	}
	for _, l := range Locations {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: location %q (choose from %s)", ErrInvalidFlag, s, ChoiceList(Locations))
}

// ListFilter holds the optional list endpoint filters. Zero values are
// never sent.
type ListFilter struct {
	Category     Category
	Location     Location
	UpdatedAfter time.Time
	WithContent  bool
}

// FetchOptions controls a full paginated fetch. Limit <= 0 means no limit.
type FetchOptions struct {
	ListFilter
	Limit int
}

// ChoiceList renders enum values for help and error messages.
func ChoiceList[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
