// Package review turns a submitted registration snapshot into the rows shown
// on the read-only details view.
package review

import (
	"fmt"

	"github.com/goliatone/go-regform/pkg/navigation"
	"github.com/goliatone/go-regform/pkg/registration"
)

// Navigator is the navigation contract the review view depends on.
type Navigator = navigation.Navigator[*registration.Snapshot]

// Row is one label/value pair of the details view.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Page is the content of the review view.
type Page struct {
	Title string `json:"title"`
	Rows  []Row  `json:"rows"`
}

// DefaultTitle heads the review view.
const DefaultTitle = "Submitted Details"

// Presenter builds review pages. The zero value is ready to use.
type Presenter struct {
	Title string
}

// Present reads the payload delivered to the review view. Without one it
// redirects to the entry view and reports ok=false; callers render nothing in
// that case.
func (p Presenter) Present(nav Navigator) (Page, bool, error) {
	snapshot, ok := nav.CurrentPayload()
	if !ok || snapshot == nil {
		if err := nav.NavigateTo(navigation.Entry, nil); err != nil {
			return Page{}, false, fmt.Errorf("review: redirect to entry: %w", err)
		}
		return Page{}, false, nil
	}
	return p.Page(snapshot), true, nil
}

// Page renders a snapshot as rows in snapshot order, labelled by field name.
func (p Presenter) Page(snapshot *registration.Snapshot) Page {
	title := p.Title
	if title == "" {
		title = DefaultTitle
	}
	entries := snapshot.Entries()
	page := Page{Title: title, Rows: make([]Row, 0, len(entries))}
	for _, entry := range entries {
		page.Rows = append(page.Rows, Row{Label: entry.Name, Value: entry.Value})
	}
	return page
}

// Back returns to the entry view. The entry view mounts a fresh form.
func (p Presenter) Back(nav Navigator) error {
	if err := nav.NavigateTo(navigation.Entry, nil); err != nil {
		return fmt.Errorf("review: back to entry: %w", err)
	}
	return nil
}
