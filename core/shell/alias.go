package shell

import "errors"

// ErrAliasNotFound is returned by Aliases.Unset for names that were never
// defined.
var ErrAliasNotFound = errors.New("alias not found")

// Alias is a single name to replacement-text binding.
type Alias struct {
	Name string
	Text string
}

// Aliases maps verb names to replacement text. Listing preserves insertion
// order; redefining a name keeps its original position.
type Aliases struct {
	order []string
	text  map[string]string
}

// NewAliases returns an empty alias table.
func NewAliases() *Aliases {
	return &Aliases{text: make(map[string]string)}
}

// Set binds name to text, overwriting any previous binding.
func (a *Aliases) Set(name, text string) {
	if _, ok := a.text[name]; !ok {
		a.order = append(a.order, name)
	}
	a.text[name] = text
}

// Get returns the replacement text for name.
func (a *Aliases) Get(name string) (string, bool) {
	text, ok := a.text[name]
	return text, ok
}

// Unset removes name, reporting ErrAliasNotFound if it was never set.
func (a *Aliases) Unset(name string) error {
	if _, ok := a.text[name]; !ok {
		return ErrAliasNotFound
	}
	delete(a.text, name)
	for i, n := range a.order {
		if n == name {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns all aliases in insertion order.
func (a *Aliases) List() []Alias {
	out := make([]Alias, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, Alias{Name: name, Text: a.text[name]})
	}
	return out
}

// Len returns the number of defined aliases.
func (a *Aliases) Len() int {
	return len(a.text)
}
