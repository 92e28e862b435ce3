package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studio-edul/dul-works/blocks"
	"github.com/studio-edul/dul-works/config"
	"github.com/studio-edul/dul-works/gallery"
	"github.com/studio-edul/dul-works/helpers"
	"github.com/studio-edul/dul-works/mapping"
	"github.com/studio-edul/dul-works/notion"
	"github.com/studio-edul/dul-works/value"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit workspace records for content issues",
	Long: `Scan both content databases and report records the generator will
skip or render incompletely: missing or unknown class discriminators,
nameless records, unindexed records that sort last, slug collisions,
artworks no project, exhibition or timeline can reach, and images placed
in a second column layout where the extractor never looks.

Example:
  dul-works audit --config config.yaml
  dul-works audit --json`,
	Args: cobra.NoArgs,
	RunE: runAudit,
}

// AuditReport summarizes the content issues found in one scan.
type AuditReport struct {
	WorkRecords       int      `json:"work_records"`
	ArtworkRecords    int      `json:"artwork_records"`
	MissingClass      []string `json:"missing_class,omitempty"`
	UnknownClass      []string `json:"unknown_class,omitempty"`
	MissingName       []string `json:"missing_name,omitempty"`
	MissingIndex      []string `json:"missing_index,omitempty"`
	SlugCollisions    []string `json:"slug_collisions,omitempty"`
	UnmatchedArtworks []string `json:"unmatched_artworks,omitempty"`
	HiddenImages      []string `json:"hidden_images,omitempty"`
}

// Clean reports whether the scan found no issues.
func (r *AuditReport) Clean() bool {
	return len(r.MissingClass) == 0 &&
		len(r.UnknownClass) == 0 &&
		len(r.MissingName) == 0 &&
		len(r.MissingIndex) == 0 &&
		len(r.SlugCollisions) == 0 &&
		len(r.UnmatchedArtworks) == 0 &&
		len(r.HiddenImages) == 0
}

func init() {
	auditCmd.Flags().StringVarP(&configFile, "config", "c", "config.yaml", "Site config file")
	auditCmd.Flags().Bool("json", false, "Output as JSON")
}

func runAudit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	token, err := config.Token()
	if err != nil {
		return err
	}

	fields := mapping.Default()
	if cfg.AliasFile != "" {
		fields, err = mapping.Load(cfg.AliasFile)
		if err != nil {
			return fmt.Errorf("loading alias file: %w", err)
		}
	}

	src := notion.NewClient(token)
	ctx := cmd.Context()

	work, err := src.QueryDatabase(ctx, cfg.Databases.Work)
	if err != nil {
		return fmt.Errorf("loading work records: %w", err)
	}
	artworks, err := src.QueryDatabase(ctx, cfg.Databases.Artwork)
	if err != nil {
		return fmt.Errorf("loading artwork records: %w", err)
	}

	report := auditRecords(work, artworks, fields)

	records := make([]notion.Page, 0, len(work)+len(artworks))
	records = append(records, work...)
	records = append(records, artworks...)
	report.HiddenImages = auditHiddenImages(ctx, src, fields, records)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	} else {
		fmt.Fprint(cmd.OutOrStdout(), formatAuditReport(report))
	}

	if !report.Clean() {
		return fmt.Errorf("audit found content issues")
	}
	return nil
}

var knownClasses = map[string]bool{
	gallery.ClassProject:         true,
	gallery.ClassSoloExhibition:  true,
	gallery.ClassGroupExhibition: true,
	gallery.ClassTimeline:        true,
}

func auditRecords(work, artworks []notion.Page, fields *mapping.Table) *AuditReport {
	ex := gallery.NewExtractor(fields)
	report := &AuditReport{
		WorkRecords:    len(work),
		ArtworkRecords: len(artworks),
	}

	projects := ex.Projects(work)
	exhibitions := ex.Exhibitions(work, "")
	timelines := ex.Timelines(work)

	slugOwners := map[string][]string{}

	for i := range work {
		page := &work[i]
		name := strings.TrimSpace(ex.Name(page))
		class := ex.Class(page)
		label := recordLabel(name, page.ID)

		switch {
		case class == "":
			report.MissingClass = append(report.MissingClass, label)
		case !knownClasses[class]:
			report.UnknownClass = append(report.UnknownClass, fmt.Sprintf("%s (%s)", label, class))
		}
		if name == "" {
			report.MissingName = append(report.MissingName, page.ID)
		}
		if value.Number(value.Find(page.Properties, fields.Aliases(mapping.FieldIndex)...)) == nil {
			report.MissingIndex = append(report.MissingIndex, label)
		}

		switch class {
		case gallery.ClassSoloExhibition, gallery.ClassGroupExhibition:
			if slug := helpers.Slug(name); slug != "" {
				route := "exhibition/" + slug
				slugOwners[route] = append(slugOwners[route], label)
			}
		}
	}

	for i := range artworks {
		page := &artworks[i]
		name := strings.TrimSpace(ex.Name(page))
		if name == "" {
			report.MissingName = append(report.MissingName, page.ID)
			continue
		}
		if slug := helpers.Slug(name); slug != "" {
			route := "artwork/" + slug
			slugOwners[route] = append(slugOwners[route], recordLabel(name, page.ID))
		}
		if ex.Unmatched(page, projects, exhibitions, timelines) {
			report.UnmatchedArtworks = append(report.UnmatchedArtworks, recordLabel(name, page.ID))
		}
	}

	for route, owners := range slugOwners {
		if len(owners) > 1 {
			report.SlugCollisions = append(report.SlugCollisions,
				fmt.Sprintf("%s: %s", route, strings.Join(owners, ", ")))
		}
	}
	sort.Strings(report.SlugCollisions)

	return report
}

// bodySource is the slice of the content client the body scan needs.
type bodySource interface {
	PageBlocks(ctx context.Context, pageID string) ([]notion.Block, error)
	BlockChildren(ctx context.Context, blockID string) ([]notion.Block, error)
}

// auditHiddenImages flags records whose body places images in a second
// column layout. The extractor reads only the first, so those images
// never reach the site. A failed body fetch skips the record; the audit
// is advisory.
func auditHiddenImages(ctx context.Context, src bodySource, fields *mapping.Table, records []notion.Page) []string {
	ex := gallery.NewExtractor(fields)
	var out []string
	for i := range records {
		page := &records[i]
		body, err := src.PageBlocks(ctx, page.ID)
		if err != nil {
			slog.Warn("skipping body scan", "page", page.ID, "error", err)
			continue
		}
		hidden, err := blocks.SkippedColumnImages(ctx, src, body)
		if err != nil {
			slog.Warn("skipping body scan", "page", page.ID, "error", err)
			continue
		}
		if hidden {
			out = append(out, recordLabel(strings.TrimSpace(ex.Name(page)), page.ID))
		}
	}
	return out
}

func recordLabel(name, id string) string {
	if name == "" {
		return id
	}
	return name
}

func formatAuditReport(report *AuditReport) string {
	var sb strings.Builder

	sb.WriteString("=== Content Audit Report ===\n\n")
	sb.WriteString(fmt.Sprintf("Work records: %d\n", report.WorkRecords))
	sb.WriteString(fmt.Sprintf("Artwork records: %d\n\n", report.ArtworkRecords))

	section := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString(title + ":\n")
		for _, item := range items {
			sb.WriteString(fmt.Sprintf("  - %s\n", item))
		}
		sb.WriteString("\n")
	}

	section("MISSING CLASS (skipped by the generator)", report.MissingClass)
	section("UNKNOWN CLASS (skipped by the generator)", report.UnknownClass)
	section("MISSING NAME (no route, dropped from joins)", report.MissingName)
	section("MISSING INDEX (sorts after every indexed record)", report.MissingIndex)
	section("SLUG COLLISIONS (later record shadowed)", report.SlugCollisions)
	section("UNMATCHED ARTWORKS (reachable from no project, exhibition or timeline)", report.UnmatchedArtworks)
	section("HIDDEN IMAGES (second column layout, never extracted)", report.HiddenImages)

	if report.Clean() {
		sb.WriteString("No issues found.\n")
	}

	return sb.String()
}
