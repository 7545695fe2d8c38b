package history_test

import (
	"fmt"

	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/history"
)

// Example shows click navigation adding entries while scroll updates replace them.
func Example() {
	h := history.NewMemory("/intro")

	// Two link clicks
	h.PushState("/accounts")
	h.PushState("/payments")

	// Scrolling within the page
	h.ReplaceState("/payments/list?limit=10")

	fmt.Println(h.Len(), h.Location().Path, h.Location().Search)

	h.Back()
	fmt.Println(h.Location())

	h.Forward()
	fmt.Println(h.Location())

	// Output:
	// 3 /payments/list ?limit=10
	// /accounts
	// /payments/list?limit=10
}

// Example_pushClearsForward demonstrates that a new push drops redo entries.
func Example_pushClearsForward() {
	h := history.NewMemory("/a")
	h.PushState("/b")
	h.Back()
	h.PushState("/c")

	fmt.Println(h.Forward())
	for _, e := range h.Entries() {
		fmt.Println(e.URL)
	}

	// Output:
	// false
	// /a
	// /c
}
