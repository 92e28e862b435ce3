package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var slugsCmd = &cobra.Command{
	Use:   "slugs",
	Short: "List every artwork and exhibition slug",
	Long: `List the slug of every routable artwork and exhibition, one per
line, prefixed with its route kind. Static route generation consumes this
to know which detail pages exist.`,
	Args: cobra.NoArgs,
	RunE: runSlugs,
}

func init() {
	slugsCmd.Flags().StringVarP(&configFile, "config", "c", "config.yaml", "Site config file")
}

func runSlugs(cmd *cobra.Command, args []string) error {
	asm, _, err := newAssembler(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	for _, slug := range asm.AllArtworkSlugs(ctx) {
		fmt.Fprintf(cmd.OutOrStdout(), "artwork/%s\n", slug)
	}
	for _, slug := range asm.AllExhibitionSlugs(ctx) {
		fmt.Fprintf(cmd.OutOrStdout(), "exhibition/%s\n", slug)
	}
	return nil
}
