package pages

import (
	"context"

	"github.com/studio-edul/dul-works/blocks"
	"github.com/studio-edul/dul-works/gallery"
	"github.com/studio-edul/dul-works/helpers"
	"github.com/studio-edul/dul-works/notion"
)

// ArtworkPage is the artwork detail prop shape.
type ArtworkPage struct {
	gallery.ArtworkDetail
	ImageURL string             `json:"imageUrl,omitempty"`
	PageText []blocks.Paragraph `json:"pageText"`
	Slug     string             `json:"slug"`
}

// ArtworkBySlug assembles one artwork detail page, or nil when no artwork
// matches the slug. Matching re-derives slugs from the live collection;
// there is no persistent index.
func (a *Assembler) ArtworkBySlug(ctx context.Context, slug string) *ArtworkPage {
	records, err := a.src.QueryDatabase(ctx, a.artworkDB)
	if err != nil {
		a.log.Error("loading artwork records", "slug", slug, "error", err)
		return nil
	}

	var match *notion.Page
	for i := range records {
		if helpers.Slug(a.ex.Name(&records[i])) == slug {
			match = &records[i]
			break
		}
	}
	if match == nil {
		return nil
	}

	detail := a.ex.ArtworkDetail(match, a.basePath)

	body, err := a.src.PageBlocks(ctx, match.ID)
	if err != nil {
		a.log.Warn("loading artwork body", "slug", slug, "error", err)
		body = nil
	}

	page := &ArtworkPage{
		ArtworkDetail: detail,
		ImageURL:      a.leadImageURL(match, body),
		Slug:          helpers.Slug(detail.Name),
	}

	text, err := a.pageText(ctx, match.ID)
	if err != nil {
		a.log.Warn("extracting artwork text", "slug", slug, "error", err)
		text = nil
	}
	if len(text) == 0 && detail.Description != "" {
		text = descriptionText(detail.Description)
	}
	if text == nil {
		text = []blocks.Paragraph{}
	}
	page.PageText = text

	images, err := blocks.ColumnImages(ctx, a.src, body)
	if err != nil {
		a.log.Warn("extracting artwork images", "slug", slug, "error", err)
		images = nil
	}
	if len(images) == 0 {
		// Legacy positioned filename list from the Image field.
		page.Images = detail.Images
	} else {
		page.Images = a.localizeImages(images)
	}
	if page.Images == nil {
		page.Images = []blocks.Image{}
	}

	return page
}

// leadImageURL finds the first body image URL, falling back to the cover.
// This is the raw service URL used by the asset download step, not the
// rewritten local path.
func (a *Assembler) leadImageURL(page *notion.Page, body []notion.Block) string {
	for i := range body {
		if body[i].Type == notion.TypeImage {
			if url := body[i].Image.URL(); url != "" {
				return url
			}
		}
	}
	return page.Cover.ResolveURL()
}

// AllArtworkSlugs returns the slug of every named artwork, for static
// route generation.
func (a *Assembler) AllArtworkSlugs(ctx context.Context) []string {
	records, err := a.src.QueryDatabase(ctx, a.artworkDB)
	if err != nil {
		a.log.Error("loading artwork records", "error", err)
		return nil
	}

	var slugs []string
	for i := range records {
		if slug := helpers.Slug(a.ex.Name(&records[i])); slug != "" {
			slugs = append(slugs, slug)
		}
	}
	return slugs
}
