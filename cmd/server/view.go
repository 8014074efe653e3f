package main

import (
	"fmt"

	"pinkhub/backend/internal/catalog"
	"pinkhub/backend/internal/config"
	"pinkhub/backend/internal/database"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type viewOutput struct {
	Search   string               `yaml:"search"`
	Genre    string               `yaml:"genre"`
	Platform string               `yaml:"platform"`
	Sort     catalog.SortKey      `yaml:"sort"`
	Total    int                  `yaml:"total"`
	Games    []catalog.GameRecord `yaml:"games"`
}

func newViewCmd(a *app) *cobra.Command {
	f := catalog.DefaultFilter()
	var sortKey string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Print the filtered catalog view as YAML",
		Example: `  server view --search star --sort title
  server view --genre RPG --platform PS5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := catalog.ParseSortKey(sortKey)
			if err != nil {
				return err
			}
			f.SortKey = key

			var db *gorm.DB
			if a.cfg.CatalogSource == config.CatalogDatabase {
				db, err = database.Open(a.cfg.DatabaseURL, a.logWriter)
				if err != nil {
					return fmt.Errorf("open database: %w", err)
				}
				if err := database.Migrate(db); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
			}
			cat, err := a.loadCatalog(cmd.Context(), db)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}

			games := catalog.NewEngine(cat, a.cfg.CatalogLocale).View(f)
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(viewOutput{
				Search:   f.SearchTerm,
				Genre:    f.SelectedGenre,
				Platform: f.SelectedPlatform,
				Sort:     f.SortKey,
				Total:    len(games),
				Games:    games,
			}); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	cmd.Flags().StringVar(&f.SearchTerm, "search", f.SearchTerm, "case-insensitive title search")
	cmd.Flags().StringVar(&f.SelectedGenre, "genre", f.SelectedGenre, "genre, or "+catalog.AllGenres+" for every genre")
	cmd.Flags().StringVar(&f.SelectedPlatform, "platform", f.SelectedPlatform, "platform, or "+catalog.AllPlatforms+" for every platform")
	cmd.Flags().StringVar(&sortKey, "sort", string(f.SortKey), "sort key: title|releaseYear|rating")
	return cmd
}
