package pages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studio-edul/dul-works/notion"
)

func TestArtworkBySlug(t *testing.T) {
	src := &fakeSource{
		databases: map[string][]notion.Page{
			testArtworkDB: {
				{
					ID: "art-1",
					Properties: map[string]notion.Property{
						"Name":        titleProp("Harbor Study"),
						"Project":     textProp("Harbor Studies"),
						"Description": textProp("Oil on canvas"),
					},
					Cover: &notion.FileRef{
						Type: "file",
						File: &notion.HostedFile{URL: "https://files.example.com/x/cover.jpg?sig=a"},
					},
				},
			},
		},
		blocks: map[string][]notion.Block{
			"art-1": {
				paraBlock("p1", "About this piece"),
				imageBlockOf("img1", "https://files.example.com/x/lead.jpg"),
			},
		},
	}
	a := newTestAssembler(src)

	page := a.ArtworkBySlug(context.Background(), "harbor-study")
	require.NotNil(t, page)

	assert.Equal(t, "Harbor Study", page.Name)
	assert.Equal(t, "harbor-study", page.Slug)
	assert.Equal(t, "art-1", page.PageID)
	// Lead image is the first body image, not the cover.
	assert.Equal(t, "https://files.example.com/x/lead.jpg", page.ImageURL)

	require.Len(t, page.PageText, 1)
	assert.Equal(t, "About this piece", notion.PlainText(page.PageText[0]))
}

func TestArtworkBySlugNoMatch(t *testing.T) {
	src := &fakeSource{databases: map[string][]notion.Page{testArtworkDB: {}}}
	a := newTestAssembler(src)
	assert.Nil(t, a.ArtworkBySlug(context.Background(), "missing"))
}

func TestArtworkBySlugCoverFallback(t *testing.T) {
	src := &fakeSource{
		databases: map[string][]notion.Page{
			testArtworkDB: {
				{
					ID:         "art-1",
					Properties: map[string]notion.Property{"Name": titleProp("Piece")},
					Cover: &notion.FileRef{
						Type:     "external",
						External: &notion.ExternalFile{URL: "https://example.com/cover.jpg"},
					},
				},
			},
		},
		blocks: map[string][]notion.Block{},
	}
	a := newTestAssembler(src)

	page := a.ArtworkBySlug(context.Background(), "piece")
	require.NotNil(t, page)
	assert.Equal(t, "https://example.com/cover.jpg", page.ImageURL)
}

func TestArtworkBySlugDescriptionFallback(t *testing.T) {
	src := &fakeSource{
		databases: map[string][]notion.Page{
			testArtworkDB: {
				{
					ID: "art-1",
					Properties: map[string]notion.Property{
						"Name":        titleProp("Bare Piece"),
						"Description": textProp("Line1\nLine2"),
					},
				},
			},
		},
		blocks: map[string][]notion.Block{},
	}
	a := newTestAssembler(src)

	page := a.ArtworkBySlug(context.Background(), "bare-piece")
	require.NotNil(t, page)

	// No body text anywhere: the description synthesizes one paragraph per
	// non-blank line.
	require.Len(t, page.PageText, 2)
	assert.Equal(t, "Line1", notion.PlainText(page.PageText[0]))
	assert.Equal(t, "Line2", notion.PlainText(page.PageText[1]))
}

func TestArtworkBySlugLeftColumnWinsOverMarker(t *testing.T) {
	src := &fakeSource{
		databases: map[string][]notion.Page{
			testArtworkDB: {
				{
					ID:         "art-1",
					Properties: map[string]notion.Property{"Name": titleProp("Piece")},
				},
			},
		},
		blocks: map[string][]notion.Block{
			"art-1": {
				containerBlock("cl", notion.TypeColumnList),
				paraBlock("m", "EN"),
				paraBlock("after", "Marker text"),
			},
			"cl":  {containerBlock("col", notion.TypeColumn)},
			"col": {paraBlock("left", "Column text")},
		},
	}
	a := newTestAssembler(src)

	page := a.ArtworkBySlug(context.Background(), "piece")
	require.NotNil(t, page)
	require.Len(t, page.PageText, 1)
	assert.Equal(t, "Column text", notion.PlainText(page.PageText[0]))
}

func TestArtworkBySlugColumnImagesLocalized(t *testing.T) {
	src := &fakeSource{
		databases: map[string][]notion.Page{
			testArtworkDB: {
				{
					ID: "art-1",
					Properties: map[string]notion.Property{
						"Name": titleProp("Piece"),
						// Legacy list that must lose to block images.
						"Image": textProp("legacy-1-1.jpg"),
					},
				},
			},
		},
		blocks: map[string][]notion.Block{
			"art-1": {containerBlock("cl", notion.TypeColumnList)},
			"cl": {
				containerBlock("c0", notion.TypeColumn),
				containerBlock("c1", notion.TypeColumn),
			},
			"c1": {imageBlockOf("i1", "https://files.example.com/x/body-1-1.jpg?sig=a")},
		},
	}
	a := newTestAssembler(src)

	page := a.ArtworkBySlug(context.Background(), "piece")
	require.NotNil(t, page)
	require.Len(t, page.Images, 1)
	assert.Equal(t, "body-1-1.jpg", page.Images[0].Filename)
	assert.Equal(t, "/site/assets/images/body-1-1.jpg", page.Images[0].Path)
}

func TestArtworkBySlugLegacyImagesFallback(t *testing.T) {
	src := &fakeSource{
		databases: map[string][]notion.Page{
			testArtworkDB: {
				{
					ID: "art-1",
					Properties: map[string]notion.Property{
						"Name":  titleProp("Piece"),
						"Image": textProp("legacy-2-1.jpg\nlegacy-1-1.jpg"),
					},
				},
			},
		},
		blocks: map[string][]notion.Block{},
	}
	a := newTestAssembler(src)

	page := a.ArtworkBySlug(context.Background(), "piece")
	require.NotNil(t, page)
	require.Len(t, page.Images, 2)
	assert.Equal(t, "legacy-1-1.jpg", page.Images[0].Filename)
	assert.Equal(t, "/site/assets/images/legacy-1-1.jpg", page.Images[0].Path)
}

func TestAllArtworkSlugs(t *testing.T) {
	src := &fakeSource{
		databases: map[string][]notion.Page{
			testArtworkDB: {
				{ID: "a1", Properties: map[string]notion.Property{"Name": titleProp("First Piece")}},
				{ID: "a2", Properties: map[string]notion.Property{"Name": titleProp("")}},
				{ID: "a3", Properties: map[string]notion.Property{"Name": titleProp("Second Piece")}},
			},
		},
	}
	a := newTestAssembler(src)

	slugs := a.AllArtworkSlugs(context.Background())
	assert.Equal(t, []string{"first-piece", "second-piece"}, slugs)
}

func TestArtworkBySlugEmptyBodyYieldsEmptySlices(t *testing.T) {
	src := &fakeSource{
		databases: map[string][]notion.Page{
			testArtworkDB: {
				{ID: "a1", Properties: map[string]notion.Property{"Name": titleProp("Bare Piece")}},
			},
		},
		blocks: map[string][]notion.Block{},
	}

	page := newTestAssembler(src).ArtworkBySlug(context.Background(), "bare-piece")
	require.NotNil(t, page)
	assert.NotNil(t, page.PageText)
	assert.Empty(t, page.PageText)
	assert.NotNil(t, page.Images)
	assert.Empty(t, page.Images)
}
