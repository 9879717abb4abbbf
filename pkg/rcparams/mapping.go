// ABOUTME: Insertion-ordered key/value mapping used for definitions and snapshots
// ABOUTME: Set keeps the first position of a key; Equal ignores order

package rcparams

// Entry is a single key/value pair of a Mapping.
type Entry struct {
	Key   string
	Value Value
}

// Mapping is an insertion-ordered map from configuration key to Value.
// The zero Mapping is empty and ready to use.
type Mapping struct {
	entries []Entry
	index   map[string]int
}

// NewMapping returns a mapping holding entries in order.
func NewMapping(entries ...Entry) *Mapping {
	m := &Mapping{}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Len returns the number of keys.
func (m *Mapping) Len() int { return len(m.entries) }

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Value, bool) {
	i, ok := m.index[key]
	if !ok {
		return Value{}, false
	}
	return m.entries[i].Value, true
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.index[key]
	return ok
}

// Set stores v under key. An existing key keeps its position.
func (m *Mapping) Set(key string, v Value) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = v
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: key, Value: v})
}

// Delete removes key and reports whether it was present.
func (m *Mapping) Delete(key string) bool {
	i, ok := m.index[key]
	if !ok {
		return false
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	delete(m.index, key)
	for j := i; j < len(m.entries); j++ {
		m.index[m.entries[j].Key] = j
	}
	return true
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the entries in insertion order.
func (m *Mapping) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// Clone returns an independent copy of m.
func (m *Mapping) Clone() *Mapping {
	return NewMapping(m.entries...)
}

// Equal reports whether m and o hold the same keys with equal values,
// regardless of order.
func (m *Mapping) Equal(o *Mapping) bool {
	if m.Len() != o.Len() {
		return false
	}
	for _, e := range m.entries {
		v, ok := o.Get(e.Key)
		if !ok || !v.Equal(e.Value) {
			return false
		}
	}
	return true
}
