package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"kbase/internal/domain"
)

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print catalog totals, category counts and tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := loadConfig(opts)
			if err != nil {
				return err
			}
			cat, err := loadCatalog(opts, cfg)
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())

			p.Heading("Статистика")
			p.Line("Всего статей: %d", cat.Len())
			p.Line("Категорий: %d", len(domain.Categories()))
			p.Dim("Источник: %s", cat.Source())
			p.Line("")

			p.Heading("Категории")
			for _, cc := range cat.CategoryCounts() {
				p.Line("  %-16s %d", cc.Category, cc.Count)
			}
			p.Line("")

			tags := cat.TagUniverse()
			p.Heading("Теги")
			p.Line("  %s", strings.Join(tags, ", "))
			p.Dim("  всего: %d", len(tags))
			return nil
		},
	}
}
