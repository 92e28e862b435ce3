package pages

import (
	"context"
	"fmt"

	"github.com/studio-edul/dul-works/notion"
)

// fakeSource serves canned records and block trees, standing in for the
// live service in assembler tests.
type fakeSource struct {
	databases map[string][]notion.Page
	blocks    map[string][]notion.Block
	pages     map[string]*notion.Page
	meta      map[string]*notion.Database
	err       error
}

func (s *fakeSource) QueryDatabase(ctx context.Context, databaseID string) ([]notion.Page, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.databases[databaseID], nil
}

func (s *fakeSource) PageBlocks(ctx context.Context, pageID string) ([]notion.Block, error) {
	return s.BlockChildren(ctx, pageID)
}

func (s *fakeSource) BlockChildren(ctx context.Context, blockID string) ([]notion.Block, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.blocks[blockID], nil
}

func (s *fakeSource) Page(ctx context.Context, pageID string) (*notion.Page, error) {
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.pages[pageID]
	if !ok {
		return nil, fmt.Errorf("no such page %s", pageID)
	}
	return p, nil
}

func (s *fakeSource) DatabaseMeta(ctx context.Context, databaseID string) (*notion.Database, error) {
	if s.err != nil {
		return nil, s.err
	}
	m, ok := s.meta[databaseID]
	if !ok {
		return nil, fmt.Errorf("no such database %s", databaseID)
	}
	return m, nil
}

// Property and block fixtures.

func titleProp(s string) notion.Property {
	return notion.Property{Type: "title", Title: []notion.RichText{{PlainText: s}}}
}

func textProp(s string) notion.Property {
	return notion.Property{Type: "rich_text", RichText: []notion.RichText{{PlainText: s}}}
}

func selProp(s string) notion.Property {
	return notion.Property{Type: "select", Select: &notion.SelectOption{Name: s}}
}

func numberProp(f float64) notion.Property {
	return notion.Property{Type: "number", Number: &f}
}

func checkProp(v bool) notion.Property {
	return notion.Property{Type: "checkbox", Checkbox: &v}
}

func relationProp(ids ...string) notion.Property {
	refs := make([]notion.RelationRef, len(ids))
	for i, id := range ids {
		refs[i] = notion.RelationRef{ID: id}
	}
	return notion.Property{Type: "relation", Relation: refs}
}

func paraBlock(id, text string) notion.Block {
	return notion.Block{
		ID:        id,
		Type:      notion.TypeParagraph,
		Paragraph: &notion.RichTextPayload{RichText: []notion.RichText{{PlainText: text}}},
	}
}

func headingBlock(id, text string) notion.Block {
	return notion.Block{
		ID:       id,
		Type:     notion.TypeHeading2,
		Heading2: &notion.RichTextPayload{RichText: []notion.RichText{{PlainText: text}}},
	}
}

func containerBlock(id, blockType string) notion.Block {
	return notion.Block{ID: id, Type: blockType, HasChildren: true}
}

func imageBlockOf(id, url string) notion.Block {
	return notion.Block{
		ID:    id,
		Type:  notion.TypeImage,
		Image: &notion.ImagePayload{File: &notion.HostedFile{URL: url}},
	}
}

const (
	testWorkDB    = "work-db"
	testArtworkDB = "artwork-db"
)

func newTestAssembler(src notion.Source) *Assembler {
	return New(src, Options{
		BasePath:          "/site",
		WorkDatabaseID:    testWorkDB,
		ArtworkDatabaseID: testArtworkDB,
	})
}
