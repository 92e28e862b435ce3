package pages

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/studio-edul/dul-works/mapping"
	"github.com/studio-edul/dul-works/notion"
	"github.com/studio-edul/dul-works/value"
)

// Related-reference content kinds.
const (
	ContentText = "text"
	ContentLink = "link"
	ContentFile = "file"
)

// noIndex sorts unindexed references after every indexed one.
const noIndex = 9999

// RelatedText is one resolved cross-reference of an exhibition: a text
// page, an outbound link, or a PDF file.
type RelatedText struct {
	PageID      string  `json:"pageId"`
	Title       string  `json:"title"`
	RawTitle    string  `json:"rawTitle"`
	Type        string  `json:"type,omitempty"`
	URL         string  `json:"url,omitempty"`
	Index       float64 `json:"index"`
	ContentType string  `json:"contentType"`
	FileName    string  `json:"fileName,omitempty"`
	FilePath    string  `json:"filePath,omitempty"`
}

// relatedTexts resolves every reference of the record's Related relation.
// The per-reference lookups are independent, so they fan out concurrently
// into an indexed slice and join before filtering and sorting; a failed
// reference is dropped, never fatal.
func (a *Assembler) relatedTexts(ctx context.Context, props map[string]notion.Property) []RelatedText {
	rel := value.Find(props, a.fields.Aliases(mapping.FieldRelated)...)
	ids := value.RelationIDs(rel)
	if len(ids) == 0 {
		return []RelatedText{}
	}

	results := make([]*RelatedText, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(slot int, pageID string) {
			defer wg.Done()
			ref, err := a.relatedTextRef(ctx, pageID)
			if err != nil {
				a.log.Warn("resolving related reference", "page", pageID, "error", err)
				return
			}
			results[slot] = ref
		}(i, id)
	}
	wg.Wait()

	out := make([]RelatedText, 0, len(ids))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

func (a *Assembler) relatedTextRef(ctx context.Context, pageID string) (*RelatedText, error) {
	page, err := a.src.Page(ctx, pageID)
	if err != nil {
		return nil, err
	}
	if page == nil || len(page.Properties) == 0 {
		return nil, nil
	}

	props := page.Properties

	titleProp := value.TitleProperty(props)
	if titleProp == nil {
		titleProp = value.Find(props, a.fields.Aliases(mapping.FieldTitle)...)
	}
	title := strings.TrimSpace(value.Text(titleProp))
	if title == "" {
		title = "Untitled"
	}

	typeValue := a.refType(props)

	formatted := title
	if typeValue != "" {
		formatted = "[" + typeValue + "] " + title
	}

	contentType := a.refContentType(props)

	link := strings.TrimSpace(value.Text(value.Find(props, a.fields.Aliases(mapping.FieldLink)...)))
	fileName := strings.TrimSpace(value.Text(value.Find(props, a.fields.Aliases(mapping.FieldFile)...)))

	// Legacy references recorded their link or file only in the body.
	if contentType == ContentLink && link == "" {
		link = a.linkFromBody(ctx, pageID)
	}
	if contentType == ContentFile && fileName == "" {
		fileName = a.fileNameFromBody(ctx, pageID)
	}

	ref := &RelatedText{
		PageID:      pageID,
		Title:       formatted,
		RawTitle:    title,
		Type:        typeValue,
		Index:       noIndex,
		ContentType: contentType,
		FileName:    fileName,
	}
	if contentType == ContentLink {
		ref.URL = link
	}
	if contentType == ContentFile && fileName != "" {
		ref.FilePath = a.pdfPath(fileName)
	}
	if idx := value.Number(value.Find(props, a.fields.Aliases(mapping.FieldRelatedIndex)...)); idx != nil {
		ref.Index = *idx
	}
	return ref, nil
}

func (a *Assembler) refType(props map[string]notion.Property) string {
	p := value.Find(props, a.fields.Aliases(mapping.FieldType)...)
	if p == nil {
		return ""
	}
	if p.Type == "select" && p.Select != nil {
		return p.Select.Name
	}
	if p.Type == "multi_select" && len(p.MultiSelect) > 0 {
		return p.MultiSelect[0].Name
	}
	return value.Text(p)
}

func (a *Assembler) refContentType(props map[string]notion.Property) string {
	p := value.Find(props, a.fields.Aliases(mapping.FieldContent)...)
	var raw string
	if p != nil {
		if p.Select != nil {
			raw = p.Select.Name
		} else if len(p.RichText) > 0 {
			raw = value.Text(p)
		}
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ContentLink:
		return ContentLink
	case ContentFile:
		return ContentFile
	default:
		return ContentText
	}
}

var urlRegex = regexp.MustCompile(`https?://\S+`)

// bodyScanLimit bounds the fallback scans; the link or file reference is
// by convention in the first few blocks.
const bodyScanLimit = 5

func (a *Assembler) linkFromBody(ctx context.Context, pageID string) string {
	body, err := a.src.PageBlocks(ctx, pageID)
	if err != nil {
		a.log.Warn("scanning body for link", "page", pageID, "error", err)
		return ""
	}
	for i := 0; i < len(body) && i < bodyScanLimit; i++ {
		b := &body[i]
		switch b.Type {
		case notion.TypeParagraph:
			if m := urlRegex.FindString(notion.PlainText(b.RichTextRuns())); m != "" {
				return m
			}
		case notion.TypeBookmark:
			if b.Bookmark != nil && b.Bookmark.URL != "" {
				return b.Bookmark.URL
			}
		}
	}
	return ""
}

func (a *Assembler) fileNameFromBody(ctx context.Context, pageID string) string {
	body, err := a.src.PageBlocks(ctx, pageID)
	if err != nil {
		a.log.Warn("scanning body for file", "page", pageID, "error", err)
		return ""
	}
	for i := 0; i < len(body) && i < bodyScanLimit; i++ {
		b := &body[i]
		var ref *notion.FileRef
		switch b.Type {
		case notion.TypeFile:
			ref = b.File
		case notion.TypePDF:
			ref = b.PDF
		default:
			continue
		}
		if ref == nil {
			continue
		}
		if ref.Name != "" {
			return ref.Name
		}
		if name := value.FilenameFromURL(ref.ResolveURL()); name != "" {
			return name
		}
	}
	return ""
}

func (a *Assembler) pdfPath(fileName string) string {
	name := strings.TrimSpace(fileName)
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name += ".pdf"
	}
	return a.basePath + "/assets/pdf/" + name
}
