// Package console renders the search list to a terminal and turns typed
// commands into presenter events.
package console

import (
	"fmt"
	"io"

	"superhero/directory/internal/presenter"
)

// View prints the list as it grows. It is driven from the session loop and
// is not safe for concurrent use.
type View struct {
	out     io.Writer
	items   []presenter.ViewModel
	loading bool
}

func NewView(out io.Writer) *View {
	return &View{out: out}
}

func (v *View) StartLoading() {
	v.loading = true
	fmt.Fprintln(v.out, "⏳ Loading...")
}

func (v *View) StopLoading() {
	v.loading = false
}

// Consume appends presentables to the list and prints them numbered after
// what is already shown.
func (v *View) Consume(presentables []presenter.ViewModel) {
	if len(presentables) == 0 {
		if len(v.items) == 0 {
			fmt.Fprintln(v.out, "No characters found.")
		} else {
			fmt.Fprintln(v.out, "No more characters.")
		}
		return
	}

	for _, vm := range presentables {
		v.items = append(v.items, vm)
		printItem(v.out, len(v.items), vm)
	}
}

func (v *View) Show(title, message string) {
	fmt.Fprintf(v.out, "❌ %s: %s\n", title, message)
}

// Clear forgets the list before a new search or refresh
func (v *View) Clear() {
	v.items = nil
}

// Item returns the n-th shown entry, counting from 1
func (v *View) Item(n int) (presenter.ViewModel, bool) {
	if n < 1 || n > len(v.items) {
		return presenter.ViewModel{}, false
	}
	return v.items[n-1], true
}

func (v *View) Len() int {
	return len(v.items)
}

func (v *View) IsLoading() bool {
	return v.loading
}

// List prints every entry held by the view
func (v *View) List() {
	if len(v.items) == 0 {
		fmt.Fprintln(v.out, "Nothing loaded yet.")
		return
	}
	for i, vm := range v.items {
		printItem(v.out, i+1, vm)
	}
}

func printItem(out io.Writer, n int, vm presenter.ViewModel) {
	fmt.Fprintf(out, "%4d. %s\n", n, vm.Name)
}
