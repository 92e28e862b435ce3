// Package gallery turns raw content-service records into the typed domain
// entities the site renders: projects, exhibitions, artworks and timeline
// entries, plus the collection processing (class filtering, index sorting,
// solo/group partitioning) and the relation joins between them.
package gallery

import "github.com/studio-edul/dul-works/blocks"

// Class labels discriminating record kinds inside the work database.
const (
	ClassProject         = "PROJECT"
	ClassSoloExhibition  = "SOLO EXHIBITION"
	ClassGroupExhibition = "GROUP EXHIBITION"
	ClassTimeline        = "TIMELINE"
)

// Project is one listing entry of the work page.
type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Index       *float64 `json:"index"`
	Period      string   `json:"period"`
	Description string   `json:"description"`
	Current     bool     `json:"current"`
}

// Exhibition is one listing entry, solo or group.
type Exhibition struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Index       *float64 `json:"index"`
	Period      string   `json:"period"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Class       string   `json:"classType"`
	Current     bool     `json:"current"`
}

// TimelineEntry is one listing entry of the timeline view.
type TimelineEntry struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Index  *float64 `json:"index"`
	Period string   `json:"period"`
}

// ArtworkImage is one artwork's thumbnail plus listing metadata, grouped
// per project in the work page's artwork map.
type ArtworkImage struct {
	URL         string `json:"url"`
	Index       string `json:"index,omitempty"`
	Name        string `json:"name"`
	Timeline    string `json:"timeline,omitempty"`
	Description string `json:"description,omitempty"`
}

// TimelineArtworkImage is the timeline view's variant, ordered by a
// dedicated timeline index token.
type TimelineArtworkImage struct {
	URL           string `json:"url"`
	TimelineIndex string `json:"timelineIndex,omitempty"`
	Name          string `json:"name"`
}

// ArtworkDetail is the full set of fields behind one artwork page.
type ArtworkDetail struct {
	Name          string         `json:"name"`
	Project       string         `json:"project,omitempty"`
	Timeline      string         `json:"timeline,omitempty"`
	Dimension     string         `json:"dimension,omitempty"`
	Description   string         `json:"description,omitempty"`
	Artist        string         `json:"artist,omitempty"`
	Caption       string         `json:"caption,omitempty"`
	Images        []blocks.Image `json:"images"`
	ExhibitionIDs []string       `json:"exhibitionIds,omitempty"`
	PageID        string         `json:"pageId"`
}

// ExhibitionDetail is the full set of fields behind one exhibition page.
type ExhibitionDetail struct {
	Name        string         `json:"name"`
	Period      string         `json:"period,omitempty"`
	Description string         `json:"description,omitempty"`
	Images      []blocks.Image `json:"images"`
	PageID      string         `json:"pageId"`
}

// ArtworkSummary is one row of an exhibition's artwork list.
type ArtworkSummary struct {
	Name      string `json:"name"`
	Artist    string `json:"artist,omitempty"`
	Dimension string `json:"dimension,omitempty"`
	Caption   string `json:"caption,omitempty"`
	Slug      string `json:"slug"`
	PageID    string `json:"pageId"`
}
