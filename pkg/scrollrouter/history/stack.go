package history

// Entry is a single address-bar entry.
type Entry struct {
	URL string
}

// Stack stores address-bar entries, most recent last.
type Stack struct {
	entries []Entry
}

// NewStack creates a new empty stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]Entry, 0),
	}
}

// Push adds a new entry to the top of the stack.
func (s *Stack) Push(url string) {
	s.entries = append(s.entries, Entry{URL: url})
}

// Replace overwrites the top entry. On an empty stack it behaves like Push.
func (s *Stack) Replace(url string) {
	if len(s.entries) == 0 {
		s.Push(url)
		return
	}
	s.entries[len(s.entries)-1] = Entry{URL: url}
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}

// Entries returns a copy of the entries, oldest first.
func (s *Stack) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
