package pages

import (
	"context"

	"github.com/studio-edul/dul-works/gallery"
)

// WorkPage is the work listing's prop shape: every project, exhibition and
// timeline entry, plus the per-project and per-timeline artwork image maps.
type WorkPage struct {
	Projects         []gallery.Project                         `json:"projects"`
	ArtworkMap       map[string][]gallery.ArtworkImage         `json:"artworkMap"`
	Exhibitions      []gallery.Exhibition                      `json:"exhibitions"`
	Timelines        []gallery.TimelineEntry                   `json:"timelines"`
	TimelineImageMap map[string][]gallery.TimelineArtworkImage `json:"timelineImageMap"`
}

func emptyWorkPage() *WorkPage {
	return &WorkPage{
		Projects:         []gallery.Project{},
		ArtworkMap:       map[string][]gallery.ArtworkImage{},
		Exhibitions:      []gallery.Exhibition{},
		Timelines:        []gallery.TimelineEntry{},
		TimelineImageMap: map[string][]gallery.TimelineArtworkImage{},
	}
}

// Work assembles the work listing. A failed fetch yields an empty page.
func (a *Assembler) Work(ctx context.Context) *WorkPage {
	work, err := a.src.QueryDatabase(ctx, a.workDB)
	if err != nil {
		a.log.Error("loading work records", "error", err)
		return emptyWorkPage()
	}
	artworks, err := a.src.QueryDatabase(ctx, a.artworkDB)
	if err != nil {
		a.log.Error("loading artwork records", "error", err)
		return emptyWorkPage()
	}

	timelines := a.ex.Timelines(work)
	page := &WorkPage{
		Projects:         a.ex.Projects(work),
		ArtworkMap:       a.ex.PreloadArtworkImages(work, artworks, a.basePath),
		Exhibitions:      a.ex.Exhibitions(work, a.basePath),
		Timelines:        timelines,
		TimelineImageMap: a.ex.PreloadTimelineImages(timelines, artworks, a.basePath),
	}
	return page
}
