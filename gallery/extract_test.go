package gallery

import (
	"testing"

	"github.com/studio-edul/dul-works/notion"
)

func num(f float64) *float64 { return &f }

func text(s string) notion.Property {
	return notion.Property{Type: "rich_text", RichText: []notion.RichText{{PlainText: s}}}
}

func title(s string) notion.Property {
	return notion.Property{Type: "title", Title: []notion.RichText{{PlainText: s}}}
}

func sel(s string) notion.Property {
	return notion.Property{Type: "select", Select: &notion.SelectOption{Name: s}}
}

func number(f float64) notion.Property {
	return notion.Property{Type: "number", Number: num(f)}
}

func check(v bool) notion.Property {
	return notion.Property{Type: "checkbox", Checkbox: &v}
}

func relation(ids ...string) notion.Property {
	refs := make([]notion.RelationRef, len(ids))
	for i, id := range ids {
		refs[i] = notion.RelationRef{ID: id}
	}
	return notion.Property{Type: "relation", Relation: refs}
}

func record(id string, props map[string]notion.Property) notion.Page {
	return notion.Page{ID: id, Properties: props}
}

func TestClass(t *testing.T) {
	e := NewExtractor(nil)

	tests := []struct {
		name  string
		props map[string]notion.Property
		want  string
	}{
		{"select", map[string]notion.Property{"Class": sel("PROJECT")}, ClassProject},
		{"lowercase normalized", map[string]notion.Property{"Class": sel("solo exhibition")}, ClassSoloExhibition},
		{"padded", map[string]notion.Property{"class": text(" group exhibition ")}, ClassGroupExhibition},
		{"type alias", map[string]notion.Property{"Type": sel("TIMELINE")}, ClassTimeline},
		{"absent", map[string]notion.Property{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := record("r", tt.props)
			if got := e.Class(&page); got != tt.want {
				t.Errorf("Class: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProjectExtraction(t *testing.T) {
	e := NewExtractor(nil)
	page := record("proj-1", map[string]notion.Property{
		"Name":           title("Winter Landscape"),
		"Class":          sel("PROJECT"),
		"Index":          number(2),
		"Period":         text("2019 - 2021"),
		"Description EN": text("A winter series."),
		"Current":        check(true),
	})

	p := e.Project(&page)
	if p.ID != "proj-1" {
		t.Errorf("ID: got %q, want %q", p.ID, "proj-1")
	}
	if p.Name != "Winter Landscape" {
		t.Errorf("Name: got %q, want %q", p.Name, "Winter Landscape")
	}
	if p.Index == nil || *p.Index != 2 {
		t.Errorf("Index: got %v, want 2", p.Index)
	}
	if p.Period != "2019 - 2021" {
		t.Errorf("Period: got %q, want %q", p.Period, "2019 - 2021")
	}
	if p.Description != "A winter series." {
		t.Errorf("Description: got %q, want %q", p.Description, "A winter series.")
	}
	if !p.Current {
		t.Error("Current: got false, want true")
	}
}

func TestExhibitionThumbnail(t *testing.T) {
	e := NewExtractor(nil)

	tests := []struct {
		name  string
		props map[string]notion.Property
		want  string
	}{
		{
			"thumbnail field wins",
			map[string]notion.Property{
				"Thumbnail": text("thumb.jpg"),
				"Image":     text("Poster-1-1.jpg"),
			},
			"/site/assets/images/thumb.jpg",
		},
		{
			"legacy image first line, lower-cased",
			map[string]notion.Property{
				"Image": text("Poster-1-1.JPG\nsecond-2-1.jpg"),
			},
			"/site/assets/images/poster-1-1.jpg",
		},
		{
			"blank lines skipped",
			map[string]notion.Property{"Image": text("\n  \nreal.jpg")},
			"/site/assets/images/real.jpg",
		},
		{"nothing", map[string]notion.Property{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := record("x", tt.props)
			ex := e.Exhibition(&page, "/site")
			if ex.ImageURL != tt.want {
				t.Errorf("ImageURL: got %q, want %q", ex.ImageURL, tt.want)
			}
		})
	}
}

func TestArtworkDetailExtraction(t *testing.T) {
	e := NewExtractor(nil)
	page := record("art-1", map[string]notion.Property{
		"Name":        title("Harbor Study"),
		"Project":     text("Harbor Studies"),
		"Dimension":   text("50 x 70 cm"),
		"Description": text("Oil on canvas"),
		"Artist":      text("E. Dul"),
		"Exhibition":  relation("ex-1", "ex-2"),
		"Image":       text("harbor-1-1.jpg\nunpositioned.jpg\nharbor-2-1.jpg"),
	})

	d := e.ArtworkDetail(&page, "/site")
	if d.Name != "Harbor Study" || d.Project != "Harbor Studies" {
		t.Errorf("identity fields: got %q / %q", d.Name, d.Project)
	}
	if d.PageID != "art-1" {
		t.Errorf("PageID: got %q, want %q", d.PageID, "art-1")
	}
	if len(d.ExhibitionIDs) != 2 {
		t.Errorf("ExhibitionIDs: got %v, want 2 entries", d.ExhibitionIDs)
	}
	// Only positioned filenames survive.
	if len(d.Images) != 2 {
		t.Fatalf("Images: got %d, want 2", len(d.Images))
	}
	if d.Images[0].Filename != "harbor-1-1.jpg" || d.Images[1].Filename != "harbor-2-1.jpg" {
		t.Errorf("Images: got %q, %q", d.Images[0].Filename, d.Images[1].Filename)
	}
	if d.Images[0].Path != "/site/assets/images/harbor-1-1.jpg" {
		t.Errorf("Path: got %q", d.Images[0].Path)
	}
}

func TestLegacyImages(t *testing.T) {
	images := LegacyImages("b-2-1.jpg\na-1-2.jpg\nposter.jpg\na-1-1.jpg", true, "")
	// poster anchors {1,1}; column-major, row-minor.
	want := []string{"poster.jpg", "a-1-1.jpg", "a-1-2.jpg", "b-2-1.jpg"}
	if len(images) != len(want) {
		t.Fatalf("got %d images, want %d", len(images), len(want))
	}
	for i, w := range want {
		if images[i].Filename != w {
			t.Errorf("image %d: got %q, want %q", i, images[i].Filename, w)
		}
	}
}

func TestLegacyImagesPosterRuleOff(t *testing.T) {
	images := LegacyImages("poster.jpg\na-1-1.jpg", false, "")
	if len(images) != 1 || images[0].Filename != "a-1-1.jpg" {
		t.Errorf("got %v, want only a-1-1.jpg", images)
	}
}

func TestLegacyImagesEmpty(t *testing.T) {
	if images := LegacyImages("", true, ""); images != nil {
		t.Errorf("LegacyImages(\"\"): got %v, want nil", images)
	}
	if images := LegacyImages("  \n  ", true, ""); images != nil {
		t.Errorf("LegacyImages(blank): got %v, want nil", images)
	}
}
