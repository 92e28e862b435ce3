// Package pages assembles the per-page prop objects the render templates
// consume: work listing, home, artwork detail, exhibition detail,
// related-text pages and the artist statement. Everything is re-derived
// from the current service snapshot on every call; there is no cache, so
// identical raw input always yields identical props.
//
// External-call failures are absorbed here: a failed fetch produces an
// empty or nil result and a log line, never a failed page. Partial data is
// preferred over no page.
package pages

import (
	"context"
	"log/slog"
	"strings"

	"github.com/studio-edul/dul-works/blocks"
	"github.com/studio-edul/dul-works/gallery"
	"github.com/studio-edul/dul-works/mapping"
	"github.com/studio-edul/dul-works/notion"
)

// Options configures an Assembler.
type Options struct {
	// BasePath is the deployment prefix for asset paths.
	BasePath string
	// WorkDatabaseID holds projects, exhibitions and timelines.
	WorkDatabaseID string
	// ArtworkDatabaseID holds the artwork records.
	ArtworkDatabaseID string
	// Fields overrides the alias table; nil means defaults.
	Fields *mapping.Table
	// Logger receives fail-soft diagnostics; nil means slog.Default.
	Logger *slog.Logger
}

// Assembler builds page props from the content source.
type Assembler struct {
	src       notion.Source
	ex        *gallery.Extractor
	fields    *mapping.Table
	basePath  string
	workDB    string
	artworkDB string
	log       *slog.Logger
}

// New creates an assembler over the given source.
func New(src notion.Source, opts Options) *Assembler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	fields := opts.Fields
	if fields == nil {
		fields = mapping.Default()
	}
	return &Assembler{
		src:       src,
		ex:        gallery.NewExtractor(fields),
		fields:    fields,
		basePath:  opts.BasePath,
		workDB:    opts.WorkDatabaseID,
		artworkDB: opts.ArtworkDatabaseID,
		log:       logger,
	}
}

// pageText resolves a record's body text through the fallback ladder:
// left column of the first column layout, then the EN-marker walk, then
// every text block in document order.
func (a *Assembler) pageText(ctx context.Context, pageID string) ([]blocks.Paragraph, error) {
	body, err := a.src.PageBlocks(ctx, pageID)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, nil
	}

	text, err := blocks.LeftColumnText(ctx, a.src, body)
	if err != nil {
		return nil, err
	}
	if len(text) > 0 {
		return text, nil
	}

	text, err = blocks.MarkerText(ctx, a.src, body)
	if err != nil {
		return nil, err
	}
	if len(text) > 0 {
		return text, nil
	}

	return blocks.FlattenText(body), nil
}

// descriptionText synthesizes paragraph entries from a description field,
// one per non-blank line. Used when a record's body yields no text at all.
func descriptionText(description string) []blocks.Paragraph {
	var out []blocks.Paragraph
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, blocks.Paragraph{{PlainText: line}})
	}
	return out
}

// localizeImages rewrites block-derived image paths from transient service
// URLs to stable local asset paths.
func (a *Assembler) localizeImages(images []blocks.Image) []blocks.Image {
	out := make([]blocks.Image, len(images))
	for i, img := range images {
		img.Path = a.basePath + "/assets/images/" + img.Filename
		out[i] = img
	}
	return out
}
