package domain

import (
	"slices"
	"time"
)

// Category is one value of the fixed category enumeration
type Category string

// Known categories, in display order
const (
	CategoryDevelopment   Category = "Разработка"
	CategorySecurity      Category = "Безопасность"
	CategoryManagement    Category = "Менеджмент"
	CategoryDocumentation Category = "Документация"
)

// CategoryAll is the sentinel that disables the category predicate
const CategoryAll Category = "Все"

// DateLayout is the ISO calendar date format used by the seed data
const DateLayout = "2006-01-02"

// Categories returns the fixed category enumeration without the sentinel
func Categories() []Category {
	return []Category{
		CategoryDevelopment,
		CategorySecurity,
		CategoryManagement,
		CategoryDocumentation,
	}
}

// IsKnown reports whether c is part of the enumeration or the sentinel
func (c Category) IsKnown() bool {
	return c == CategoryAll || slices.Contains(Categories(), c)
}

func (c Category) String() string {
	return string(c)
}

// Article represents a single knowledge-base entry
type Article struct {
	ID          int
	Title       string
	Description string
	Content     string
	Category    Category
	Tags        []string
	Author      string
	LastUpdated time.Time
}

// HasTag reports whether the article carries the given tag
func (a Article) HasTag(tag string) bool {
	return slices.Contains(a.Tags, tag)
}

// Clone returns a copy that shares no slices with the receiver
func (a Article) Clone() Article {
	a.Tags = slices.Clone(a.Tags)
	return a
}

// CategoryCount pairs a category with the number of articles in it
type CategoryCount struct {
	Category Category
	Count    int
}
