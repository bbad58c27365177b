// Package catalog holds the static, read-only article collection and the
// aggregates derived from it.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"kbase/internal/domain"
)

//go:embed articles.yaml
var seedYAML []byte

// SourceEmbedded names the built-in seed catalog
const SourceEmbedded = "embedded"

// ErrInvalidCatalog wraps every parse or validation failure
var ErrInvalidCatalog = errors.New("invalid catalog")

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("category", validateCategory)
}

// validateCategory accepts only members of the fixed enumeration.
// The "all" sentinel is a filter value, not an article category.
func validateCategory(fl validator.FieldLevel) bool {
	return slices.Contains(domain.Categories(), domain.Category(fl.Field().String()))
}

type document struct {
	Articles []record `yaml:"articles" validate:"required,min=1,unique=ID,dive"`
}

type record struct {
	ID          int      `yaml:"id" validate:"gt=0"`
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description"`
	Content     string   `yaml:"content"`
	Category    string   `yaml:"category" validate:"required,category"`
	Tags        []string `yaml:"tags" validate:"dive,required"`
	Author      string   `yaml:"author"`
	LastUpdated string   `yaml:"last_updated" validate:"required,datetime=2006-01-02"`
}

// Catalog is an immutable, ordered collection of articles
type Catalog struct {
	source   string
	articles []domain.Article
	byID     map[int]int // id -> index
}

// New builds a catalog from articles in the given order.
// The slice is copied; later changes by the caller are not observed.
func New(articles []domain.Article) *Catalog {
	c := &Catalog{
		source:   "memory",
		articles: make([]domain.Article, len(articles)),
		byID:     make(map[int]int, len(articles)),
	}
	for i, a := range articles {
		c.articles[i] = a.Clone()
		c.byID[a.ID] = i
	}
	return c
}

// Default returns the built-in seed catalog
func Default() (*Catalog, error) {
	c, err := Parse(seedYAML)
	if err != nil {
		return nil, fmt.Errorf("parsing embedded catalog: %w", err)
	}
	c.source = SourceEmbedded
	return c, nil
}

// Load reads a catalog from a YAML file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	c.source = path
	return c, nil
}

// Parse decodes and validates a YAML catalog document
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	articles := make([]domain.Article, 0, len(doc.Articles))
	for _, r := range doc.Articles {
		updated, err := time.Parse(domain.DateLayout, r.LastUpdated)
		if err != nil {
			return nil, fmt.Errorf("%w: article %d: %v", ErrInvalidCatalog, r.ID, err)
		}
		articles = append(articles, domain.Article{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Content:     r.Content,
			Category:    domain.Category(r.Category),
			Tags:        r.Tags,
			Author:      r.Author,
			LastUpdated: updated,
		})
	}
	return New(articles), nil
}

// Source describes where the catalog came from
func (c *Catalog) Source() string {
	return c.source
}

// Len returns the total number of articles
func (c *Catalog) Len() int {
	return len(c.articles)
}

// Articles returns a copy of every article in catalog order
func (c *Catalog) Articles() []domain.Article {
	out := make([]domain.Article, len(c.articles))
	for i, a := range c.articles {
		out[i] = a.Clone()
	}
	return out
}

// Each calls fn for every article in catalog order until fn returns false.
// fn receives the stored value and must not modify its Tags.
func (c *Catalog) Each(fn func(domain.Article) bool) {
	for _, a := range c.articles {
		if !fn(a) {
			return
		}
	}
}

// Get returns the article with the given id
func (c *Catalog) Get(id int) (domain.Article, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Article{}, false
	}
	return c.articles[i].Clone(), true
}

// Categories returns the selectable categories: the sentinel first,
// then the fixed enumeration.
func (c *Catalog) Categories() []domain.Category {
	return append([]domain.Category{domain.CategoryAll}, domain.Categories()...)
}

// CategoryCounts returns one entry per selectable category. The sentinel
// carries the total; the others count articles by exact category match.
func (c *Catalog) CategoryCounts() []domain.CategoryCount {
	perCategory := make(map[domain.Category]int)
	for _, a := range c.articles {
		perCategory[a.Category]++
	}

	counts := []domain.CategoryCount{{Category: domain.CategoryAll, Count: len(c.articles)}}
	for _, cat := range domain.Categories() {
		counts = append(counts, domain.CategoryCount{Category: cat, Count: perCategory[cat]})
	}
	return counts
}

// TagUniverse returns every distinct tag in order of first appearance
func (c *Catalog) TagUniverse() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, a := range c.articles {
		for _, t := range a.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}
