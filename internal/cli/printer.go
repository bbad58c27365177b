package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"kbase/internal/domain"
	"kbase/internal/ui/views"
)

// printer writes colored catalog output for the headless commands
type printer struct {
	w      io.Writer
	color  bool
	title  *color.Color
	dim    *color.Color
	tag    *color.Color
	accent *color.Color
	warn   *color.Color
}

func newPrinter(w io.Writer) *printer {
	p := &printer{
		w:      w,
		color:  colorEnabled(w),
		title:  color.New(color.Bold),
		dim:    color.New(color.Faint),
		tag:    color.New(color.FgCyan),
		accent: color.New(color.FgMagenta, color.Bold),
		warn:   color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.title, p.dim, p.tag, p.accent, p.warn} {
		p.setColor(c)
	}
	return p
}

// setColor overrides the global NO_COLOR detection, which only looks at stdout
func (p *printer) setColor(c *color.Color) *color.Color {
	if p.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// colorEnabled reports whether w is a terminal that should get colors.
// NO_COLOR always wins.
func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func categoryColor(c domain.Category) *color.Color {
	switch c {
	case domain.CategoryDevelopment:
		return color.New(color.FgBlue)
	case domain.CategorySecurity:
		return color.New(color.FgRed)
	case domain.CategoryManagement:
		return color.New(color.FgGreen)
	case domain.CategoryDocumentation:
		return color.New(color.FgYellow)
	default:
		return color.New(color.Reset)
	}
}

// Article prints one article as a three-line block
func (p *printer) Article(a domain.Article) {
	badge := p.setColor(categoryColor(a.Category))

	fmt.Fprintf(p.w, "%s %s  %s\n",
		p.dim.Sprintf("#%d", a.ID),
		p.title.Sprint(a.Title),
		badge.Sprintf("[%s]", a.Category))
	fmt.Fprintf(p.w, "    %s\n", a.Description)

	tags := make([]string, len(a.Tags))
	for i, t := range a.Tags {
		tags[i] = p.tag.Sprint("#" + t)
	}
	fmt.Fprintf(p.w, "    %s %s\n",
		strings.Join(tags, " "),
		p.dim.Sprintf("· %s · %s", a.Author, views.FormatDate(a.LastUpdated)))
}

// Heading prints a section heading
func (p *printer) Heading(text string) {
	fmt.Fprintln(p.w, p.accent.Sprint(text))
}

// Line prints plain text
func (p *printer) Line(format string, a ...any) {
	fmt.Fprintf(p.w, format+"\n", a...)
}

// Dim prints faint text
func (p *printer) Dim(format string, a ...any) {
	fmt.Fprintln(p.w, p.dim.Sprintf(format, a...))
}

// Empty prints the empty state message
func (p *printer) Empty() {
	fmt.Fprintln(p.w, p.warn.Sprint("Статьи не найдены"))
	fmt.Fprintln(p.w, p.dim.Sprint("Попробуйте изменить поисковый запрос или фильтры"))
}
