package history

import (
	"strings"
	"sync"
)

// History is the address bar. Both operations carry no state object and no
// title; only the URL changes.
type History interface {
	// PushState adds a new back-stack entry.
	PushState(url string)
	// ReplaceState overwrites the current entry.
	ReplaceState(url string)
	// Location returns the current entry.
	Location() Location
}

// Location is the current address-bar URL split into its parts.
type Location struct {
	Path   string
	Search string // includes the leading "?" when non-empty
}

// ParseLocation splits url at the first "?". A fragment is dropped.
func ParseLocation(url string) Location {
	url, _, _ = strings.Cut(url, "#")
	path, query, found := strings.Cut(url, "?")
	if !found || query == "" {
		return Location{Path: path}
	}
	return Location{Path: path, Search: "?" + query}
}

func (l Location) String() string {
	return l.Path + l.Search
}

// Memory is an in-process History with back and forward navigation.
type Memory struct {
	mu       sync.Mutex
	back     *Stack
	forward  *Stack
	pushes   int
	replaces int
}

// NewMemory creates a Memory whose first entry is initial.
func NewMemory(initial string) *Memory {
	m := &Memory{
		back:    NewStack(),
		forward: NewStack(),
	}
	m.back.Push(initial)
	return m
}

func (m *Memory) PushState(url string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.back.Push(url)
	m.forward.Clear()
	m.pushes++
}

func (m *Memory) ReplaceState(url string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.back.Replace(url)
	m.replaces++
}

func (m *Memory) Location() Location {
	m.mu.Lock()
	defer m.mu.Unlock()

	if top := m.back.Peek(); top != nil {
		return ParseLocation(top.URL)
	}
	return Location{}
}

// Back moves to the previous entry. It returns false on the first entry.
func (m *Memory) Back() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.back.Len() <= 1 {
		return false
	}
	m.forward.Push(m.back.Pop().URL)
	return true
}

// Forward undoes a Back. It returns false when there is nothing to redo.
func (m *Memory) Forward() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := m.forward.Pop()
	if entry == nil {
		return false
	}
	m.back.Push(entry.URL)
	return true
}

// Len returns the number of entries up to and including the current one.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.back.Len()
}

// Entries returns the back stack, oldest first.
func (m *Memory) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.back.Entries()
}

// Counts returns how many PushState and ReplaceState calls were made.
func (m *Memory) Counts() (pushes, replaces int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pushes, m.replaces
}
