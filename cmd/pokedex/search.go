package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Sternrassler/pokeapi-catalog/pkg/catalog"
	"github.com/spf13/cobra"
)

var (
	searchDimension string
	searchValue     string
	searchPages     int
	searchJSON      bool
	searchFilters   catalog.FilterSet
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Fetch catalog pages and print them",
	Long: `Fetches one or more catalog pages through a session, so later pages are
de-duplicated against earlier ones.

Examples:
  pokedex search --name 25
  pokedex search --dimension type --value fire --ordering -weight
  pokedex search --height small --weakness water --pages 3`,
	RunE: runSearch,
}

func init() {
	f := searchCmd.Flags()
	f.StringVarP(&searchDimension, "dimension", "d", "none", "Category dimension: none, name, type, generation, region, habitat, ability")
	f.StringVar(&searchValue, "value", "", "Category value for the dimension")
	f.IntVar(&searchPages, "pages", 1, "Number of pages to load")
	f.BoolVar(&searchJSON, "json", false, "Print JSON instead of a table")

	f.StringVarP(&searchFilters.Name, "name", "n", "", "Name substring or numeric id")
	f.StringVarP(&searchFilters.Type, "type", "t", "", "Type filter")
	f.StringVar(&searchFilters.Weakness, "weakness", "", "Keep Pokémon weak to this attacking type")
	f.StringVar(&searchFilters.Ability, "ability", "", "Ability filter")
	f.StringVar(&searchFilters.Height, "height", "", "Height bucket: small, medium, large")
	f.StringVar(&searchFilters.Weight, "weight", "", "Weight bucket: light, medium, heavy")
	f.StringVar(&searchFilters.Generation, "generation", "", "Generation 1-9")
	f.StringVar(&searchFilters.Region, "region", "", "Region 1-9")
	f.StringVar(&searchFilters.Habitat, "habitat", "", "Habitat 1-9")
	f.StringVarP(&searchFilters.Ordering, "ordering", "o", "", "name, -name, height, -height, weight, -weight (default: id)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	dim, err := catalog.ParseDimension(searchDimension)
	if err != nil {
		return err
	}

	fetcher, cleanup, err := newFetcher(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	session := catalog.NewSession(fetcher)
	defer session.Close()

	snap, err := session.Apply(cmd.Context(), dim, searchValue, searchFilters)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	for page := 1; page < searchPages && snap.HasMore; page++ {
		if snap, err = session.LoadMore(cmd.Context()); err != nil {
			return fmt.Errorf("load page %d: %w", page+1, err)
		}
	}

	out := cmd.OutOrStdout()
	if searchJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(catalog.Page{Items: snap.Items, HasMore: snap.HasMore})
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPES\tHEIGHT\tWEIGHT\tGENERATION\tHABITAT")
	for _, it := range snap.Items {
		types := make([]string, len(it.Types))
		for i, t := range it.Types {
			types[i] = t.Name
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.1fm\t%.1fkg\t%s\t%s\n",
			it.ID, it.Name, strings.Join(types, "/"), it.HeightMeters, it.WeightKilograms, it.Generation, it.Habitat)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if snap.HasMore {
		fmt.Fprintln(out, "(more available: use --pages)")
	}
	return nil
}
