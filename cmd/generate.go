package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/studio-edul/dul-works/config"
	"github.com/studio-edul/dul-works/helpers"
	"github.com/studio-edul/dul-works/mapping"
	"github.com/studio-edul/dul-works/notion"
	"github.com/studio-edul/dul-works/pages"
)

var (
	configFile  string
	outDir      string
	basePathOpt string
	pretty      bool
	basic       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the site's JSON page props",
	Long: `Fetch every record from the content workspace and write the page
props as a JSON tree under the output directory:

  work.json
  home.json
  artwork/<slug>.json
  exhibition/<slug>.json
  exhibition/<slug>/related/<slug>.json

The integration token is read from the ` + config.TokenEnv + ` environment
variable.

Examples:
  dul-works generate --config config.yaml
  dul-works generate --pretty --out public/data
  dul-works generate --basic   # skip exhibition cross-references`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&configFile, "config", "c", "config.yaml", "Site config file")
	generateCmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default: config output)")
	generateCmd.Flags().StringVar(&basePathOpt, "base-path", "", "Deployment prefix override for asset paths")
	generateCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	generateCmd.Flags().BoolVar(&basic, "basic", false, "Skip exhibition cross-reference bundles")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	asm, cfg, err := newAssembler(cmd)
	if err != nil {
		return err
	}
	if outDir == "" {
		outDir = cfg.Output
	}

	ctx := cmd.Context()

	if err := writeJSON(filepath.Join(outDir, "work.json"), asm.Work(ctx)); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(outDir, "home.json"), asm.Home(ctx)); err != nil {
		return err
	}

	artworkSlugs := asm.AllArtworkSlugs(ctx)
	for _, slug := range artworkSlugs {
		page := asm.ArtworkBySlug(ctx, slug)
		if page == nil {
			slog.Warn("artwork page came back empty", "slug", slug)
			continue
		}
		if err := writeJSON(filepath.Join(outDir, "artwork", slug+".json"), page); err != nil {
			return err
		}
	}

	exhibitionSlugs := asm.AllExhibitionSlugs(ctx)
	for _, slug := range exhibitionSlugs {
		page := asm.ExhibitionBySlug(ctx, slug, basic)
		if page == nil {
			slog.Warn("exhibition page came back empty", "slug", slug)
			continue
		}
		if err := writeJSON(filepath.Join(outDir, "exhibition", slug+".json"), page); err != nil {
			return err
		}
		if err := writeRelatedPages(cmd, asm, slug, page.RelatedTexts); err != nil {
			return err
		}
	}

	slog.Info("generated page props",
		"out", outDir,
		"artworks", len(artworkSlugs),
		"exhibitions", len(exhibitionSlugs))
	return nil
}

// writeRelatedPages writes the body of every text-type related reference
// of one exhibition. Link and file references have no page body.
func writeRelatedPages(cmd *cobra.Command, asm *pages.Assembler, slug string, refs []pages.RelatedText) error {
	for _, ref := range refs {
		if ref.ContentType != pages.ContentText {
			continue
		}
		body := asm.RelatedTextPageByID(cmd.Context(), ref.PageID)
		if body == nil {
			slog.Warn("related text page came back empty", "exhibition", slug, "page", ref.PageID)
			continue
		}
		name := helpers.Slug(ref.RawTitle)
		if name == "" {
			name = ref.PageID
		}
		path := filepath.Join(outDir, "exhibition", slug, "related", name+".json")
		if err := writeJSON(path, body); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// newAssembler builds the page assembler from the config file, the alias
// overrides and the environment token.
func newAssembler(cmd *cobra.Command) (*pages.Assembler, *config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	if basePathOpt != "" {
		cfg.BasePath = basePathOpt
	}

	token, err := config.Token()
	if err != nil {
		return nil, nil, err
	}

	var fields *mapping.Table
	if cfg.AliasFile != "" {
		fields, err = mapping.Load(cfg.AliasFile)
		if err != nil {
			return nil, nil, fmt.Errorf("loading alias file: %w", err)
		}
	}

	asm := pages.New(notion.NewClient(token), pages.Options{
		BasePath:          cfg.BasePath,
		WorkDatabaseID:    cfg.Databases.Work,
		ArtworkDatabaseID: cfg.Databases.Artwork,
		Fields:            fields,
	})
	return asm, cfg, nil
}
