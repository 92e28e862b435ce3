package blocks

import (
	"context"
	"strings"

	"github.com/studio-edul/dul-works/notion"
)

// ChildSource fetches the children of a block. It is the one external call
// the tree walks need; the full client satisfies it.
type ChildSource interface {
	BlockChildren(ctx context.Context, blockID string) ([]notion.Block, error)
}

// Paragraph is one page-text entry: the styled runs of a text block, or
// nil as a blank-line marker preserving paragraph spacing.
type Paragraph []notion.RichText

// textTypes are the block types that contribute paragraphs to page text.
var textTypes = map[string]bool{
	notion.TypeParagraph:        true,
	notion.TypeHeading1:         true,
	notion.TypeHeading2:         true,
	notion.TypeHeading3:         true,
	notion.TypeBulletedListItem: true,
	notion.TypeNumberedListItem: true,
	notion.TypeQuote:            true,
}

// IsTextBlock reports whether the block type contributes page text.
func IsTextBlock(t string) bool {
	return textTypes[t]
}

func paragraphOf(b *notion.Block) Paragraph {
	runs := b.RichTextRuns()
	if len(runs) == 0 {
		return nil
	}
	return Paragraph(runs)
}

// FlattenText collects the paragraphs of every text block among the given
// siblings, in order, one level deep. Blocks without text become nil
// placeholders so blank lines survive.
func FlattenText(siblings []notion.Block) []Paragraph {
	var out []Paragraph
	for i := range siblings {
		b := &siblings[i]
		if !textTypes[b.Type] {
			continue
		}
		out = append(out, paragraphOf(b))
	}
	return out
}

// LeftColumnText returns the text blocks of the first column of the first
// column_list among the given siblings, one level deep. Any later
// column_list (typically the parallel-language section) is ignored.
func LeftColumnText(ctx context.Context, src ChildSource, siblings []notion.Block) ([]Paragraph, error) {
	var columnList *notion.Block
	for i := range siblings {
		if siblings[i].Type == notion.TypeColumnList {
			columnList = &siblings[i]
			break
		}
	}
	if columnList == nil {
		return nil, nil
	}

	columns, err := src.BlockChildren(ctx, columnList.ID)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, nil
	}

	content, err := src.BlockChildren(ctx, columns[0].ID)
	if err != nil {
		return nil, err
	}
	return FlattenText(content), nil
}

// MarkerText walks the siblings depth-first looking for the "EN" language
// marker and collects the paragraphs that follow it. Without a marker
// anywhere in the tree it returns nil; callers apply their own fallback.
func MarkerText(ctx context.Context, src ChildSource, siblings []notion.Block) ([]Paragraph, error) {
	found, out, err := markerWalk(ctx, src, siblings)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return out, nil
}

// markerWalk is a two-state reducer over one sibling list: searching until
// the marker block is seen, then collecting every subsequent text block.
// The found flag and the accumulated paragraphs travel together through
// the recursion so the first-found-wins rule stays explicit.
func markerWalk(ctx context.Context, src ChildSource, siblings []notion.Block) (bool, []Paragraph, error) {
	found := false
	var out []Paragraph

	for i := range siblings {
		b := &siblings[i]

		// The marker may be a plain text block or a toggle title.
		if !found && isMarker(b) {
			found = true
			if b.Type == notion.TypeToggle || b.HasChildren {
				children, err := src.BlockChildren(ctx, b.ID)
				if err != nil {
					return false, nil, err
				}
				for j := range children {
					if textTypes[children[j].Type] {
						out = append(out, paragraphOf(&children[j]))
					}
				}
			}
			// The marker block itself is never emitted.
			continue
		}

		if found && textTypes[b.Type] {
			out = append(out, paragraphOf(b))
		}

		// Containers are recursed into; an unresolved toggle only while
		// still searching (a toggle after the marker belongs to another
		// language section).
		container := b.Type == notion.TypeColumnList || b.Type == notion.TypeColumn ||
			(b.Type == notion.TypeToggle && !found)
		if !container || !b.HasChildren {
			continue
		}

		children, err := src.BlockChildren(ctx, b.ID)
		if err != nil {
			return false, nil, err
		}
		subFound, sub, err := markerWalk(ctx, src, children)
		if err != nil {
			return false, nil, err
		}
		if !subFound {
			continue
		}
		if found {
			out = append(out, sub...)
			continue
		}
		// First found wins: the nested section replaces anything the
		// outer walk might still have produced.
		return true, sub, nil
	}

	return found, out, nil
}

const markerLabel = "EN"

func isMarker(b *notion.Block) bool {
	if !textTypes[b.Type] && b.Type != notion.TypeToggle {
		return false
	}
	label := strings.ToUpper(strings.TrimSpace(notion.PlainText(b.RichTextRuns())))
	return label == markerLabel || strings.HasPrefix(label, markerLabel+":")
}
