package pages

import (
	"context"

	"github.com/studio-edul/dul-works/blocks"
	"github.com/studio-edul/dul-works/gallery"
	"github.com/studio-edul/dul-works/helpers"
	"github.com/studio-edul/dul-works/notion"
)

// ExhibitionPage is the exhibition detail prop shape. RelatedTexts and
// Artworks form the secondary bundle, skipped in basic mode.
type ExhibitionPage struct {
	gallery.ExhibitionDetail
	PageText     []blocks.Paragraph       `json:"pageText"`
	RelatedTexts []RelatedText            `json:"relatedTexts"`
	Artworks     []gallery.ArtworkSummary `json:"artworks"`
	Slug         string                   `json:"slug"`
}

// SecondaryBundle carries just the exhibition's cross-references, for
// callers that already hold the primary fields.
type SecondaryBundle struct {
	RelatedTexts []RelatedText            `json:"relatedTexts"`
	Artworks     []gallery.ArtworkSummary `json:"artworks"`
}

// RelatedTextPage is the prop shape of a related-text page body.
type RelatedTextPage struct {
	PageID  string             `json:"pageId"`
	Content []blocks.Paragraph `json:"content"`
}

func (a *Assembler) exhibitionRecords(ctx context.Context) ([]notion.Page, error) {
	work, err := a.src.QueryDatabase(ctx, a.workDB)
	if err != nil {
		return nil, err
	}
	var out []notion.Page
	for i := range work {
		switch a.ex.Class(&work[i]) {
		case gallery.ClassSoloExhibition, gallery.ClassGroupExhibition:
			out = append(out, work[i])
		}
	}
	return out, nil
}

func (a *Assembler) findExhibition(records []notion.Page, slug string) *notion.Page {
	for i := range records {
		if helpers.Slug(a.ex.Name(&records[i])) == slug {
			return &records[i]
		}
	}
	return nil
}

// ExhibitionBySlug assembles one exhibition detail page, or nil when no
// exhibition matches the slug. Basic mode skips the secondary bundle's
// extra external calls.
func (a *Assembler) ExhibitionBySlug(ctx context.Context, slug string, basic bool) *ExhibitionPage {
	records, err := a.exhibitionRecords(ctx)
	if err != nil {
		a.log.Error("loading exhibition records", "slug", slug, "error", err)
		return nil
	}

	match := a.findExhibition(records, slug)
	if match == nil {
		return nil
	}

	detail := a.ex.ExhibitionDetail(match, a.basePath)

	page := &ExhibitionPage{
		ExhibitionDetail: detail,
		RelatedTexts:     []RelatedText{},
		Artworks:         []gallery.ArtworkSummary{},
		Slug:             helpers.Slug(detail.Name),
	}

	body, err := a.src.PageBlocks(ctx, match.ID)
	if err != nil {
		a.log.Warn("loading exhibition body", "slug", slug, "error", err)
		body = nil
	}

	text, err := a.pageText(ctx, match.ID)
	if err != nil {
		a.log.Warn("extracting exhibition text", "slug", slug, "error", err)
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
		a.log.Warn("extracting exhibition images", "slug", slug, "error", err)
		images = nil
	}
	if len(images) == 0 {
		page.Images = detail.Images
	} else {
		page.Images = a.localizeImages(images)
	}
	if page.Images == nil {
		page.Images = []blocks.Image{}
	}

	if basic {
		return page
	}

	page.RelatedTexts = a.relatedTexts(ctx, match.Properties)
	page.Artworks = a.exhibitionArtworks(ctx, match.ID)
	return page
}

// ExhibitionSecondary resolves just the cross-reference bundle for an
// exhibition found by slug.
func (a *Assembler) ExhibitionSecondary(ctx context.Context, slug string) *SecondaryBundle {
	bundle := &SecondaryBundle{
		RelatedTexts: []RelatedText{},
		Artworks:     []gallery.ArtworkSummary{},
	}

	records, err := a.exhibitionRecords(ctx)
	if err != nil {
		a.log.Error("loading exhibition records", "slug", slug, "error", err)
		return bundle
	}
	match := a.findExhibition(records, slug)
	if match == nil {
		return bundle
	}

	bundle.RelatedTexts = a.relatedTexts(ctx, match.Properties)
	bundle.Artworks = a.exhibitionArtworks(ctx, match.ID)
	return bundle
}

func (a *Assembler) exhibitionArtworks(ctx context.Context, exhibitionID string) []gallery.ArtworkSummary {
	artworks, err := a.src.QueryDatabase(ctx, a.artworkDB)
	if err != nil {
		a.log.Warn("loading artwork records", "exhibition", exhibitionID, "error", err)
		return []gallery.ArtworkSummary{}
	}
	out := a.ex.ArtworksForExhibition(exhibitionID, artworks)
	if out == nil {
		out = []gallery.ArtworkSummary{}
	}
	return out
}

// AllExhibitionSlugs returns the slug of every named exhibition, for
// static route generation.
func (a *Assembler) AllExhibitionSlugs(ctx context.Context) []string {
	records, err := a.exhibitionRecords(ctx)
	if err != nil {
		a.log.Error("loading exhibition records", "error", err)
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

// RelatedTextPageByID assembles a related-text page body: the EN-marker
// section when present, else every text block in document order.
func (a *Assembler) RelatedTextPageByID(ctx context.Context, pageID string) *RelatedTextPage {
	body, err := a.src.PageBlocks(ctx, pageID)
	if err != nil {
		a.log.Error("loading related text page", "page", pageID, "error", err)
		return nil
	}
	if len(body) == 0 {
		return nil
	}

	text, err := blocks.MarkerText(ctx, a.src, body)
	if err != nil {
		a.log.Warn("extracting related text", "page", pageID, "error", err)
		text = nil
	}
	if len(text) == 0 {
		text = blocks.FlattenText(body)
	}

	return &RelatedTextPage{PageID: pageID, Content: text}
}
