// Package notion models the subset of the Notion API this site consumes:
// database rows (pages) with polymorphic properties, and the recursive
// block trees that make up each page body. The types here are read-only
// snapshots of whatever the service returns; nothing in this repository
// ever constructs or mutates them outside of tests.
package notion

import "strings"

// RichText is one styled text run. Annotations are preserved end to end so
// the template layer can keep bold/italic styling.
type RichText struct {
	PlainText   string      `json:"plain_text"`
	Href        string      `json:"href,omitempty"`
	Annotations Annotations `json:"annotations"`
}

// Annotations carries the styling flags of a rich text run.
type Annotations struct {
	Bold          bool   `json:"bold,omitempty"`
	Italic        bool   `json:"italic,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty"`
	Underline     bool   `json:"underline,omitempty"`
	Code          bool   `json:"code,omitempty"`
	Color         string `json:"color,omitempty"`
}

// PlainText joins the plain text of every run.
func PlainText(runs []RichText) string {
	switch len(runs) {
	case 0:
		return ""
	case 1:
		return runs[0].PlainText
	}
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.PlainText)
	}
	return sb.String()
}

// SelectOption is a select/multi_select choice.
type SelectOption struct {
	Name string `json:"name"`
}

// DateValue is a date property payload. End is empty for single dates.
type DateValue struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// RelationRef points at another page by ID.
type RelationRef struct {
	ID string `json:"id"`
}

// Formula is the computed result of a formula property.
type Formula struct {
	Type   string   `json:"type"`
	String string   `json:"string,omitempty"`
	Number *float64 `json:"number,omitempty"`
}

// Property is the tagged union over every property representation this
// system reads. Which payload is populated follows the Type tag, but the
// accessors in the value package deliberately probe payloads directly:
// real-world exports have been seen with degenerate records where the tag
// and the populated payload disagree.
type Property struct {
	ID          string         `json:"id,omitempty"`
	Type        string         `json:"type"`
	Title       []RichText     `json:"title,omitempty"`
	RichText    []RichText     `json:"rich_text,omitempty"`
	Select      *SelectOption  `json:"select,omitempty"`
	MultiSelect []SelectOption `json:"multi_select,omitempty"`
	Date        *DateValue     `json:"date,omitempty"`
	Number      *float64       `json:"number,omitempty"`
	URL         string         `json:"url,omitempty"`
	Relation    []RelationRef  `json:"relation,omitempty"`
	Formula     *Formula       `json:"formula,omitempty"`
	Checkbox    *bool          `json:"checkbox,omitempty"`
}

// HostedFile is a service-hosted file with an expiring URL.
type HostedFile struct {
	URL string `json:"url"`
}

// ExternalFile is a user-provided external URL.
type ExternalFile struct {
	URL string `json:"url"`
}

// FileRef is a file attachment in either hosted or external form.
type FileRef struct {
	Type     string        `json:"type,omitempty"`
	Name     string        `json:"name,omitempty"`
	File     *HostedFile   `json:"file,omitempty"`
	External *ExternalFile `json:"external,omitempty"`
}

// ResolveURL returns whichever variant's URL is present.
func (f *FileRef) ResolveURL() string {
	if f == nil {
		return ""
	}
	if f.File != nil && f.File.URL != "" {
		return f.File.URL
	}
	if f.External != nil {
		return f.External.URL
	}
	return ""
}

// Page is one database row: a record with an ID, a property map, and an
// optional cover image. The body is fetched separately as blocks.
type Page struct {
	ID         string              `json:"id"`
	Properties map[string]Property `json:"properties"`
	Cover      *FileRef            `json:"cover,omitempty"`
}

// Block type names used by the extractors.
const (
	TypeParagraph        = "paragraph"
	TypeHeading1         = "heading_1"
	TypeHeading2         = "heading_2"
	TypeHeading3         = "heading_3"
	TypeBulletedListItem = "bulleted_list_item"
	TypeNumberedListItem = "numbered_list_item"
	TypeToggle           = "toggle"
	TypeQuote            = "quote"
	TypeColumnList       = "column_list"
	TypeColumn           = "column"
	TypeImage            = "image"
	TypeBookmark         = "bookmark"
	TypeFile             = "file"
	TypePDF              = "pdf"
)

// RichTextPayload is the shared payload of text-bearing block types.
type RichTextPayload struct {
	RichText []RichText `json:"rich_text"`
}

// ImagePayload is the payload of an image block.
type ImagePayload struct {
	File     *HostedFile   `json:"file,omitempty"`
	External *ExternalFile `json:"external,omitempty"`
	Caption  []RichText    `json:"caption,omitempty"`
}

// URL returns whichever variant's URL is present.
func (p *ImagePayload) URL() string {
	if p == nil {
		return ""
	}
	if p.File != nil && p.File.URL != "" {
		return p.File.URL
	}
	if p.External != nil {
		return p.External.URL
	}
	return ""
}

// BookmarkPayload is the payload of a bookmark block.
type BookmarkPayload struct {
	URL string `json:"url"`
}

// Block is one node of a page's document tree. Children are never embedded;
// they are fetched by ID through Source.BlockChildren.
type Block struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	HasChildren bool   `json:"has_children,omitempty"`

	Paragraph        *RichTextPayload `json:"paragraph,omitempty"`
	Heading1         *RichTextPayload `json:"heading_1,omitempty"`
	Heading2         *RichTextPayload `json:"heading_2,omitempty"`
	Heading3         *RichTextPayload `json:"heading_3,omitempty"`
	BulletedListItem *RichTextPayload `json:"bulleted_list_item,omitempty"`
	NumberedListItem *RichTextPayload `json:"numbered_list_item,omitempty"`
	Toggle           *RichTextPayload `json:"toggle,omitempty"`
	Quote            *RichTextPayload `json:"quote,omitempty"`
	Image            *ImagePayload    `json:"image,omitempty"`
	Bookmark         *BookmarkPayload `json:"bookmark,omitempty"`
	File             *FileRef         `json:"file,omitempty"`
	PDF              *FileRef         `json:"pdf,omitempty"`
}

// RichText returns the text runs of the block's own payload, keyed by the
// block's type tag. Non-text blocks return nil.
func (b *Block) RichTextRuns() []RichText {
	var p *RichTextPayload
	switch b.Type {
	case TypeParagraph:
		p = b.Paragraph
	case TypeHeading1:
		p = b.Heading1
	case TypeHeading2:
		p = b.Heading2
	case TypeHeading3:
		p = b.Heading3
	case TypeBulletedListItem:
		p = b.BulletedListItem
	case TypeNumberedListItem:
		p = b.NumberedListItem
	case TypeToggle:
		p = b.Toggle
	case TypeQuote:
		p = b.Quote
	}
	if p == nil {
		return nil
	}
	return p.RichText
}

// Parent identifies what a database hangs off of.
type Parent struct {
	Type   string `json:"type"`
	PageID string `json:"page_id,omitempty"`
}

// Database is the metadata of one database (collection). Only the parent
// pointer is consumed, to locate the sibling page hosting the artist
// statement.
type Database struct {
	ID     string `json:"id"`
	Parent Parent `json:"parent"`
}
