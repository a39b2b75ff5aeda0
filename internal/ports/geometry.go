package ports

import "github.com/degokisss/CS5709/internal/domain"

// Geometry is the navigation core's read-only view of the rendered page. The
// terminal front end implements it over its viewport; tests implement it with
// fixed numbers. All values are rows.
type Geometry interface {
	// ScrollOffset is the index of the first visible document row.
	ScrollOffset() int
	ViewportHeight() int
	// ContentHeight is the total row count of the rendered document.
	ContentHeight() int
	// SectionBounds locates a section relative to the viewport top. Returns
	// domain.ErrSectionNotFound when the section is not in the document.
	SectionBounds(id domain.SectionID) (domain.Bounds, error)
}

// Scroller moves the viewport. ScrollTo brings a section's first row to the
// top of the content area; implementations may animate the move. Returns
// domain.ErrSectionNotFound when the section is not in the document.
type Scroller interface {
	ScrollTo(id domain.SectionID) error
}
