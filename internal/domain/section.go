package domain

type SectionID string

type Section struct {
	ID    SectionID
	Title string
}

// Bounds is a section's rendered extent relative to the viewport top, in rows.
// Top is negative once the section's first row has scrolled above the viewport.
type Bounds struct {
	Top    int
	Bottom int
}

// Crosses reports whether the horizontal detection line at the given row
// falls inside the section's vertical extent.
func (b Bounds) Crosses(line int) bool {
	return b.Top <= line && b.Bottom >= line
}

func SectionIDs(sections []Section) []SectionID {
	ids := make([]SectionID, 0, len(sections))
	for _, section := range sections {
		ids = append(ids, section.ID)
	}
	return ids
}
