package cli

import (
	"github.com/spf13/cobra"

	"kbase/internal/domain"
	"kbase/internal/filter"
)

type listOptions struct {
	search   string
	category string
	tags     []string
}

func newListCmd(opts *options) *cobra.Command {
	lo := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the articles matching a search, category and tags",
		Long: `List prints the articles that match every given filter, in catalog order.

The search is a case-insensitive substring match on title or description.
Repeated --tag flags match articles carrying any of the tags.`,
		Example: `  kbase list --search api
  kbase list --category Разработка --tag Performance --tag SQL`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := loadConfig(opts)
			if err != nil {
				return err
			}
			cat, err := loadCatalog(opts, cfg)
			if err != nil {
				return err
			}

			f := filter.New()
			f.SetSearchQuery(lo.search)
			f.SetSelectedCategory(domain.Category(lo.category))
			for _, tag := range lo.tags {
				if !f.IsTagSelected(tag) {
					f.ToggleTag(tag)
				}
			}

			articles := f.FilteredArticles(cat)
			p := newPrinter(cmd.OutOrStdout())

			p.Heading(f.Heading())
			p.Dim("%s", f.Summary(len(articles)))
			p.Line("")

			if len(articles) == 0 {
				p.Empty()
				return nil
			}
			for i, a := range articles {
				if i > 0 {
					p.Line("")
				}
				p.Article(a)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&lo.search, "search", "s", "", "free-text search over title and description")
	cmd.Flags().StringVarP(&lo.category, "category", "c", string(domain.CategoryAll), "category to show")
	cmd.Flags().StringArrayVarP(&lo.tags, "tag", "t", nil, "tag to match (repeatable)")

	return cmd
}
