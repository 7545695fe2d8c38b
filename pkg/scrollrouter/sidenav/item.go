package sidenav

// Link is one entry of the side navigation.
type Link struct {
	Title string // Display text for the link
	Route string // Route of the section the link points at
}

// Item is a Link as rendered, with highlighting resolved.
type Item struct {
	Text   string // Display text for the item
	Route  string // Route of the section
	Index  int    // Position in the navigation, starting at 0
	Active bool   // Whether the section is the active one
}
