package gallery

import (
	"strings"
	"sync"

	"github.com/studio-edul/dul-works/helpers"
	"github.com/studio-edul/dul-works/mapping"
	"github.com/studio-edul/dul-works/notion"
	"github.com/studio-edul/dul-works/value"
)

// artworkThumbnail resolves an artwork's listing thumbnail from its cover
// image, rewritten to the local asset path. Returns "" when the record has
// no usable cover.
func artworkThumbnail(page *notion.Page, basePath string) string {
	filename := value.CoverFilename(page)
	if filename == "" {
		return ""
	}
	return basePath + "/assets/images/" + filename
}

// belongsToProject reports whether an artwork record belongs to a project,
// preferring the relation field and falling back to name matching for
// legacy records that predate it.
func (e *Extractor) belongsToProject(page *notion.Page, projectID, projectName string, allProjectNames []string) bool {
	ids := value.RelationIDs(e.find(page, mapping.FieldProject))
	if projectID != "" && helpers.ContainsID(ids, projectID) {
		return true
	}

	matched := helpers.MatchProjectName(e.Name(page), allProjectNames)
	return matched != "" && strings.EqualFold(matched, projectName)
}

// ArtworkImagesForProject collects the thumbnails and listing metadata of
// every artwork belonging to the given project. Artworks without a usable
// cover image are dropped.
func (e *Extractor) ArtworkImagesForProject(projectID, projectName string, artworks []notion.Page, allProjectNames []string, basePath string) []ArtworkImage {
	var out []ArtworkImage
	for i := range artworks {
		page := &artworks[i]
		if !e.belongsToProject(page, projectID, projectName, allProjectNames) {
			continue
		}
		url := artworkThumbnail(page, basePath)
		if url == "" {
			continue
		}
		out = append(out, ArtworkImage{
			URL:         url,
			Index:       value.IndexToken(e.find(page, mapping.FieldArtworkIndex)),
			Name:        e.Name(page),
			Timeline:    value.Text(e.find(page, mapping.FieldTimeline)),
			Description: value.Text(e.find(page, mapping.FieldDescription)),
		})
	}
	return out
}

// PreloadArtworkImages builds the work page's artwork map: project name to
// that project's artwork images. Per-project matching is independent, so
// the lookups fan out concurrently and join before the map is assembled;
// each branch writes only its own slot.
func (e *Extractor) PreloadArtworkImages(work, artworks []notion.Page, basePath string) map[string][]ArtworkImage {
	projects := e.Projects(work)
	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.Name
	}

	results := make([][]ArtworkImage, len(projects))
	var wg sync.WaitGroup
	for i, p := range projects {
		wg.Add(1)
		go func(slot int, projectID, projectName string) {
			defer wg.Done()
			results[slot] = e.ArtworkImagesForProject(projectID, projectName, artworks, names, basePath)
		}(i, p.ID, p.Name)
	}
	wg.Wait()

	out := make(map[string][]ArtworkImage, len(projects))
	for i, p := range projects {
		out[p.Name] = results[i]
	}
	return out
}

// ArtworkImagesForTimeline collects the artworks whose timeline relation
// points at the given timeline entry. Unlike project matching there is no
// name fallback: timeline membership only ever existed as a relation.
func (e *Extractor) ArtworkImagesForTimeline(timelineID string, artworks []notion.Page, basePath string) []TimelineArtworkImage {
	if timelineID == "" {
		return nil
	}
	var out []TimelineArtworkImage
	for i := range artworks {
		page := &artworks[i]
		ids := value.RelationIDs(e.find(page, mapping.FieldTimelineRel))
		if !helpers.ContainsID(ids, timelineID) {
			continue
		}
		url := artworkThumbnail(page, basePath)
		if url == "" {
			continue
		}
		out = append(out, TimelineArtworkImage{
			URL:           url,
			TimelineIndex: value.IndexToken(e.find(page, mapping.FieldTimelineIndex)),
			Name:          e.Name(page),
		})
	}
	return out
}

// PreloadTimelineImages builds the timeline image map, one slot per
// timeline entry, fanned out like PreloadArtworkImages.
func (e *Extractor) PreloadTimelineImages(timelines []TimelineEntry, artworks []notion.Page, basePath string) map[string][]TimelineArtworkImage {
	results := make([][]TimelineArtworkImage, len(timelines))
	var wg sync.WaitGroup
	for i, t := range timelines {
		if t.Name == "" {
			continue
		}
		wg.Add(1)
		go func(slot int, id string) {
			defer wg.Done()
			results[slot] = e.ArtworkImagesForTimeline(id, artworks, basePath)
		}(i, t.ID)
	}
	wg.Wait()

	out := make(map[string][]TimelineArtworkImage, len(timelines))
	for i, t := range timelines {
		if t.Name != "" {
			out[t.Name] = results[i]
		}
	}
	return out
}

// Unmatched reports whether an artwork record is reachable from none of
// the given records: its project, exhibition and timeline relations all
// resolve to nothing and the project-name fallback finds no match either.
// Such a record never appears on any page.
func (e *Extractor) Unmatched(page *notion.Page, projects []Project, exhibitions []Exhibition, timelines []TimelineEntry) bool {
	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.Name
	}
	for _, p := range projects {
		if e.belongsToProject(page, p.ID, p.Name, names) {
			return false
		}
	}

	exIDs := value.RelationIDs(e.find(page, mapping.FieldExhibition))
	for _, x := range exhibitions {
		if helpers.ContainsID(exIDs, x.ID) {
			return false
		}
	}

	tlIDs := value.RelationIDs(e.find(page, mapping.FieldTimelineRel))
	for _, t := range timelines {
		if helpers.ContainsID(tlIDs, t.ID) {
			return false
		}
	}
	return true
}

// ArtworksForExhibition returns the artworks whose exhibition relation
// points back at the given exhibition record, by hyphen-normalized ID.
func (e *Extractor) ArtworksForExhibition(exhibitionID string, artworks []notion.Page) []ArtworkSummary {
	if exhibitionID == "" {
		return nil
	}
	var out []ArtworkSummary
	for i := range artworks {
		page := &artworks[i]
		ids := value.RelationIDs(e.find(page, mapping.FieldExhibition))
		if !helpers.ContainsID(ids, exhibitionID) {
			continue
		}
		summary := e.ArtworkSummary(page)
		if summary.Name == "" {
			continue
		}
		out = append(out, summary)
	}
	return out
}
