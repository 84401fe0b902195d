package keys

// Table resolves key ids while a GraphML document is being read.
type Table struct {
	byID map[string]Key
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{byID: make(map[string]Key)}
}

// Declare records k. A later declaration with the same id replaces the
// earlier one.
func (t *Table) Declare(k Key) {
	t.byID[k.ID] = k
}

// Get returns the declaration for id.
func (t *Table) Get(id string) (Key, bool) {
	k, ok := t.byID[id]
	return k, ok
}

// Len returns the number of declared keys.
func (t *Table) Len() int { return len(t.byID) }
