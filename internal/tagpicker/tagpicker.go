// Package tagpicker models the admin table's multi-select tag widget
// as an explicit state machine: a free-text query, the set of selected
// tag names, and a transient inline suggestion. Every transition is
// synchronous and idempotent given the same inputs.
package tagpicker

import (
	"sort"
	"strings"
)

// OnSelect receives the full selection after every toggle.
type OnSelect func(selected []string)

// OnCreate is notified when the query names a tag that does not exist
// yet and the user asks to create it.
type OnCreate func(name string)

type Picker struct {
	available  []string
	selected   map[string]struct{}
	query      string
	suggestion string

	onSelect OnSelect
	onCreate OnCreate
}

func New(available, selected []string, onSelect OnSelect, onCreate OnCreate) *Picker {
	p := &Picker{
		available: append([]string(nil), available...),
		selected:  make(map[string]struct{}, len(selected)),
		onSelect:  onSelect,
		onCreate:  onCreate,
	}
	for _, tag := range selected {
		p.selected[tag] = struct{}{}
	}
	return p
}

func (p *Picker) Query() string      { return p.query }
func (p *Picker) Suggestion() string { return p.suggestion }

// Selected returns the current selection, sorted.
func (p *Picker) Selected() []string {
	out := make([]string, 0, len(p.selected))
	for tag := range p.selected {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// SetQuery updates the free-text query and recomputes the inline
// suggestion: the first candidate that extends the query and is not
// already selected.
func (p *Picker) SetQuery(query string) {
	p.query = query
	p.suggestion = ""
	if query == "" {
		return
	}
	for _, tag := range p.Filter(query) {
		if _, ok := p.selected[tag]; ok {
			continue
		}
		if strings.HasPrefix(strings.ToLower(tag), strings.ToLower(query)) {
			p.suggestion = tag
			return
		}
	}
}

// Toggle adds the tag if absent and removes it if present, then clears
// the query and suggestion and notifies the parent with the new full
// selection.
func (p *Picker) Toggle(tag string) {
	if _, ok := p.selected[tag]; ok {
		delete(p.selected, tag)
	} else {
		p.selected[tag] = struct{}{}
	}
	p.query = ""
	p.suggestion = ""
	if p.onSelect != nil {
		p.onSelect(p.Selected())
	}
}

// CreateAndSelect creates the trimmed query as a new tag, unless it is
// empty or already available, and selects it.
func (p *Picker) CreateAndSelect() {
	name := strings.TrimSpace(p.query)
	if name != "" && !contains(p.available, name) {
		if p.onCreate != nil {
			p.onCreate(name)
		}
		p.available = append(p.available, name)
		p.Toggle(name)
		return
	}
	p.query = ""
	p.suggestion = ""
}

// Filter returns the candidates matching the query: a case-insensitive
// substring match over the union of available and selected tags, sorted
// and de-duplicated. An empty query returns every candidate.
func (p *Picker) Filter(query string) []string {
	all := p.allTags()
	if query == "" {
		return all
	}
	needle := strings.ToLower(query)
	matched := all[:0]
	for _, tag := range all {
		if strings.Contains(strings.ToLower(tag), needle) {
			matched = append(matched, tag)
		}
	}
	return matched
}

// CanCreate reports whether the query matches no known tag exactly, in
// which case the UI offers tag creation.
func (p *Picker) CanCreate(query string) bool {
	query = strings.TrimSpace(query)
	return query != "" && !contains(p.allTags(), query)
}

func (p *Picker) allTags() []string {
	seen := make(map[string]struct{}, len(p.available)+len(p.selected))
	all := make([]string, 0, len(p.available)+len(p.selected))
	for _, tag := range p.available {
		if _, ok := seen[tag]; !ok {
			seen[tag] = struct{}{}
			all = append(all, tag)
		}
	}
	for tag := range p.selected {
		if _, ok := seen[tag]; !ok {
			seen[tag] = struct{}{}
			all = append(all, tag)
		}
	}
	sort.Strings(all)
	return all
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
