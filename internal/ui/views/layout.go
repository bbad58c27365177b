package views

// Fixed geometry of the screen
const (
	SidebarWidth    = 32 // including border
	minCardWidth    = 30 // including border
	headerHeight    = 2  // header line and a blank line
	headingHeight   = 2  // heading and summary
	footerHeight    = 2  // blank line and status/help
	descriptionRows = 3
	cardBaseHeight  = 2 + 1 + 1 + descriptionRows + 1 + 1 // border, title, badge, description, tags, meta
)

// Layout describes how the article grid fits the terminal
type Layout struct {
	MainWidth   int
	Columns     int
	CardWidth   int // outer width including border
	CardHeight  int // outer height including border
	VisibleRows int
}

// ComputeLayout fits the card grid into a width x height terminal using at
// most maxColumns columns
func ComputeLayout(width, height, maxColumns int, showPreview bool) Layout {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	if maxColumns < 1 {
		maxColumns = 1
	}

	mainWidth := width - SidebarWidth - 2 // main padding
	if mainWidth < minCardWidth {
		mainWidth = minCardWidth
	}

	columns := mainWidth / minCardWidth
	if columns > maxColumns {
		columns = maxColumns
	}
	if columns < 1 {
		columns = 1
	}

	cardHeight := cardBaseHeight
	if showPreview {
		cardHeight++
	}

	rows := (height - headerHeight - headingHeight - footerHeight) / cardHeight
	if rows < 1 {
		rows = 1
	}

	return Layout{
		MainWidth:   mainWidth,
		Columns:     columns,
		CardWidth:   mainWidth / columns,
		CardHeight:  cardHeight,
		VisibleRows: rows,
	}
}
