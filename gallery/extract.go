package gallery

import (
	"strings"

	"github.com/studio-edul/dul-works/blocks"
	"github.com/studio-edul/dul-works/mapping"
	"github.com/studio-edul/dul-works/notion"
	"github.com/studio-edul/dul-works/value"
)

// Extractor turns single raw records into domain entities, resolving every
// logical field through the alias table.
type Extractor struct {
	fields *mapping.Table
}

// NewExtractor creates an extractor over the given alias table.
func NewExtractor(t *mapping.Table) *Extractor {
	if t == nil {
		t = mapping.Default()
	}
	return &Extractor{fields: t}
}

func (e *Extractor) find(page *notion.Page, f mapping.Field) *notion.Property {
	return value.Find(page.Properties, e.fields.Aliases(f)...)
}

// Class returns the record's normalized class discriminator, upper-cased
// and trimmed. Records without one yield "".
func (e *Extractor) Class(page *notion.Page) string {
	return strings.ToUpper(strings.TrimSpace(value.Text(e.find(page, mapping.FieldClass))))
}

// Name returns the record's display name.
func (e *Extractor) Name(page *notion.Page) string {
	return value.Text(e.find(page, mapping.FieldName))
}

// Project extracts a work-listing project entry.
func (e *Extractor) Project(page *notion.Page) Project {
	return Project{
		ID:          page.ID,
		Name:        e.Name(page),
		Index:       value.Number(e.find(page, mapping.FieldIndex)),
		Period:      value.Date(e.find(page, mapping.FieldPeriod)),
		Description: value.Text(e.find(page, mapping.FieldDescriptionEN)),
		Current:     value.Checkbox(e.find(page, mapping.FieldCurrent)),
	}
}

// Exhibition extracts an exhibition listing entry.
func (e *Extractor) Exhibition(page *notion.Page, basePath string) Exhibition {
	return Exhibition{
		ID:          page.ID,
		Name:        e.Name(page),
		Index:       value.Number(e.find(page, mapping.FieldIndex)),
		Period:      value.Date(e.find(page, mapping.FieldPeriod)),
		Description: value.Text(e.find(page, mapping.FieldDescriptionEN)),
		ImageURL:    e.exhibitionThumbnail(page, basePath),
		Class:       e.Class(page),
		Current:     value.Checkbox(e.find(page, mapping.FieldCurrent)),
	}
}

// exhibitionThumbnail resolves the listing thumbnail: the Thumbnail text
// field wins, else the first line of the legacy newline-delimited Image
// field. Filenames from the legacy field are lower-cased for consistency
// with the downloaded asset names.
func (e *Extractor) exhibitionThumbnail(page *notion.Page, basePath string) string {
	if thumb := strings.TrimSpace(value.Text(e.find(page, mapping.FieldThumbnail))); thumb != "" {
		return basePath + "/assets/images/" + thumb
	}
	imageText := value.Text(e.find(page, mapping.FieldImage))
	for _, line := range strings.Split(imageText, "\n") {
		if f := strings.TrimSpace(line); f != "" {
			return basePath + "/assets/images/" + strings.ToLower(f)
		}
	}
	return ""
}

// Timeline extracts a timeline listing entry.
func (e *Extractor) Timeline(page *notion.Page) TimelineEntry {
	return TimelineEntry{
		ID:     page.ID,
		Name:   e.Name(page),
		Index:  value.Number(e.find(page, mapping.FieldIndex)),
		Period: value.Date(e.find(page, mapping.FieldPeriod)),
	}
}

// ArtworkDetail extracts the property-backed fields of one artwork record,
// including the legacy positioned image list. Block-derived images and
// text are resolved separately by the page assembler.
func (e *Extractor) ArtworkDetail(page *notion.Page, basePath string) ArtworkDetail {
	detail := ArtworkDetail{
		Name:          e.Name(page),
		Project:       value.Text(e.find(page, mapping.FieldProject)),
		Timeline:      value.Text(e.find(page, mapping.FieldTimeline)),
		Dimension:     value.Text(e.find(page, mapping.FieldDimension)),
		Description:   value.Text(e.find(page, mapping.FieldDescription)),
		Artist:        value.Text(e.find(page, mapping.FieldArtist)),
		Caption:       value.Text(e.find(page, mapping.FieldCaption)),
		ExhibitionIDs: value.RelationIDs(e.find(page, mapping.FieldExhibition)),
		PageID:        page.ID,
	}
	imageText := value.Text(e.find(page, mapping.FieldImage))
	detail.Images = LegacyImages(imageText, false, basePath)
	return detail
}

// ExhibitionDetail extracts the property-backed fields of one exhibition
// record, including the legacy positioned image list with the
// poster-anchors-top-left rule.
func (e *Extractor) ExhibitionDetail(page *notion.Page, basePath string) ExhibitionDetail {
	detail := ExhibitionDetail{
		Name:        e.Name(page),
		Period:      value.Date(e.find(page, mapping.FieldPeriod)),
		Description: value.Text(e.find(page, mapping.FieldDescriptionEN)),
		PageID:      page.ID,
	}
	imageText := value.Text(e.find(page, mapping.FieldImage))
	detail.Images = LegacyImages(imageText, true, basePath)
	return detail
}

// ArtworkSummary extracts the row shape of an exhibition's artwork list.
func (e *Extractor) ArtworkSummary(page *notion.Page) ArtworkSummary {
	name := e.Name(page)
	return ArtworkSummary{
		Name:      name,
		Artist:    value.Text(e.find(page, mapping.FieldArtist)),
		Dimension: value.Text(e.find(page, mapping.FieldDimension)),
		Caption:   value.Text(e.find(page, mapping.FieldCaption)),
		Slug:      slugOf(name),
		PageID:    page.ID,
	}
}

// LegacyImages parses a newline-delimited filename list from the legacy
// Image text field, infers each filename's grid position, keeps only the
// positioned entries, and sorts column-major then row-minor. posterRule
// enables the exhibition-only poster special case.
func LegacyImages(imageText string, posterRule bool, basePath string) []blocks.Image {
	imageText = strings.TrimSpace(imageText)
	if imageText == "" {
		return nil
	}

	var images []blocks.Image
	for _, line := range strings.Split(imageText, "\n") {
		filename := strings.TrimSpace(line)
		if filename == "" {
			continue
		}
		pos := blocks.ParsePosition(filename, posterRule)
		if pos == nil {
			continue
		}
		col, row := pos.Column, pos.Row
		images = append(images, blocks.Image{
			Filename: filename,
			Path:     basePath + "/assets/images/" + filename,
			Column:   &col,
			Row:      &row,
		})
	}

	sortImages(images)
	return images
}
