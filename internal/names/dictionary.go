// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package names holds the static tables that map internal save-file keys to
// the names shown to players.
//
// Tables are built once at package initialisation and never change, so they
// can be shared between goroutines without locking.
package names

// Entry is one row of a table.
type Entry struct {
	Key      string
	Label    string
	Category string
}

// Dictionary is an immutable key to label table that remembers the order in
// which entries were declared.
type Dictionary struct {
	name    string
	entries []Entry
	index   map[string]int
}

func newDictionary(name string, entries []Entry) Dictionary {
	d := Dictionary{
		name:    name,
		entries: entries,
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if _, dup := d.index[e.Key]; dup {
			panic("names: duplicate key " + e.Key + " in " + name)
		}
		d.index[e.Key] = i
	}
	return d
}

// Name returns the table name, e.g. "Bosses".
func (d Dictionary) Name() string { return d.name }

// Len returns the number of entries.
func (d Dictionary) Len() int { return len(d.entries) }

// Contains reports whether key is in the table.
func (d Dictionary) Contains(key string) bool {
	_, ok := d.index[key]
	return ok
}

// Label returns the display name for key. Unknown keys and entries without a
// label fall back to the key itself.
func (d Dictionary) Label(key string) string {
	i, ok := d.index[key]
	if !ok || d.entries[i].Label == "" {
		return key
	}
	return d.entries[i].Label
}

// Category returns the category of key, or "" if it has none.
func (d Dictionary) Category(key string) string {
	if i, ok := d.index[key]; ok {
		return d.entries[i].Category
	}
	return ""
}

// Keys returns the keys in declaration order.
func (d Dictionary) Keys() []string {
	keys := make([]string, len(d.entries))
	for i, e := range d.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the table rows in declaration order.
func (d Dictionary) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}
