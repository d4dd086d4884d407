package sidebar

import "encoding/json"

// Entry is a single sidebar item: either a leaf link to one document or a
// named group of further entries. Build the two shapes with Leaf and Group.
type Entry struct {
	Text      string
	Link      string
	Collapsed bool
	Items     []Entry

	group bool
}

// Leaf returns a link entry.
func Leaf(text, link string) Entry {
	return Entry{Text: text, Link: link}
}

// Group returns a group entry. A nil items slice is stored as empty so the
// group always serializes an items list.
func Group(text string, collapsed bool, items []Entry) Entry {
	if items == nil {
		items = []Entry{}
	}
	return Entry{Text: text, Collapsed: collapsed, Items: items, group: true}
}

// IsGroup reports whether e is a group.
func (e Entry) IsGroup() bool {
	return e.group
}

// Tree maps a category URL prefix such as "/学习/" to its entries.
type Tree map[string][]Entry

// Count returns the number of leaves and groups below and including entries.
func Count(entries []Entry) int {
	n := 0
	for _, e := range entries {
		n++
		if e.group {
			n += Count(e.Items)
		}
	}
	return n
}

type leafDoc struct {
	Text string `json:"text" yaml:"text"`
	Link string `json:"link" yaml:"link"`
}

type groupDoc struct {
	Text      string  `json:"text" yaml:"text"`
	Collapsed bool    `json:"collapsed" yaml:"collapsed"`
	Items     []Entry `json:"items" yaml:"items"`
}

// MarshalJSON emits the {text, link} or {text, collapsed, items} shape the
// site framework expects.
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.group {
		return json.Marshal(groupDoc{Text: e.Text, Collapsed: e.Collapsed, Items: e.Items})
	}
	return json.Marshal(leafDoc{Text: e.Text, Link: e.Link})
}

// MarshalYAML implements yaml.Marshaler with the same shape as MarshalJSON.
func (e Entry) MarshalYAML() (interface{}, error) {
	if e.group {
		return groupDoc{Text: e.Text, Collapsed: e.Collapsed, Items: e.Items}, nil
	}
	return leafDoc{Text: e.Text, Link: e.Link}, nil
}
