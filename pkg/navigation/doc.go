// Package navigation moves the application between the entry and review
// views, carrying a payload from the view that navigates to the view that is
// activated.
package navigation
