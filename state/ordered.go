// SPDX-License-Identifier: MIT
// Package: hydrovary/state
//
// ordered.go - insertion-ordered string-keyed maps.
//
// Go's builtin maps iterate in randomized order, which would scramble the
// sequence of random draws between runs. Parameter and data maps therefore
// keep their own insertion order; iteration order is discovery order, always.

package state

// OrderedMap is a string-keyed map that iterates in insertion order.
// Overwriting an existing key keeps its original position.
type OrderedMap[V any] struct {
	names []string
	items map[string]V
}

// NewOrderedMap returns an empty ordered map.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{items: make(map[string]V)}
}

// Set inserts or overwrites the value under name.
func (m *OrderedMap[V]) Set(name string, v V) {
	if _, ok := m.items[name]; !ok {
		m.names = append(m.names, name)
	}
	m.items[name] = v
}

// Get returns the value under name and whether it exists.
func (m *OrderedMap[V]) Get(name string) (V, bool) {
	v, ok := m.items[name]
	return v, ok
}

// Has reports whether name exists.
func (m *OrderedMap[V]) Has(name string) bool {
	_, ok := m.items[name]
	return ok
}

// Names returns the keys in insertion order. The slice is a copy.
func (m *OrderedMap[V]) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int { return len(m.names) }

// Range calls fn for every entry in insertion order, stopping early when fn
// returns false.
func (m *OrderedMap[V]) Range(fn func(name string, v V) bool) {
	for _, n := range m.names {
		if !fn(n, m.items[n]) {
			return
		}
	}
}

// ParamMap is an insertion-ordered map of parameter declarations.
type ParamMap = OrderedMap[Parameter]

// DataMap is an insertion-ordered map of resolved data items.
type DataMap = OrderedMap[Data]

// NewParamMap returns an empty parameter map.
func NewParamMap() *ParamMap { return NewOrderedMap[Parameter]() }

// NewDataMap returns an empty data map.
func NewDataMap() *DataMap { return NewOrderedMap[Data]() }
