package lexicon

import (
	"sort"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Entry is one dictionary word keyed by its hiragana reading.
type Entry struct {
	Key     string
	Value   string
	LeftID  int
	RightID int
	Cost    int
}

// Index maps readings to entries. It is built once and then only read, so lookups may run concurrently.
type Index struct {
	trie *patricia.Trie
	size int
}

func NewIndex() *Index {
	return &Index{trie: patricia.NewTrie()}
}

// Add inserts e. A duplicate of the same value and ids keeps the cheaper cost.
func (ix *Index) Add(e Entry) {
	if e.Key == "" || e.Value == "" {
		return
	}
	key := patricia.Prefix(e.Key)
	item := ix.trie.Get(key)
	if item == nil {
		ix.trie.Insert(key, []Entry{e})
		ix.size++
		return
	}

	entries := item.([]Entry)
	for i := range entries {
		if entries[i].Value == e.Value && entries[i].LeftID == e.LeftID && entries[i].RightID == e.RightID {
			entries[i].Cost = min(entries[i].Cost, e.Cost)
			return
		}
	}
	ix.trie.Set(key, append(entries, e))
	ix.size++
}

func (ix *Index) Len() int {
	return ix.size
}

// Lookup returns the entries whose reading is exactly key.
func (ix *Index) Lookup(key string) []Entry {
	item := ix.trie.Get(patricia.Prefix(key))
	if item == nil {
		return nil
	}
	entries := item.([]Entry)
	return append([]Entry(nil), entries...)
}

// CommonPrefixes returns the entries whose reading is a prefix of key, shortest reading first.
func (ix *Index) CommonPrefixes(key string) []Entry {
	var out []Entry
	_ = ix.trie.VisitPrefixes(patricia.Prefix(key), func(p patricia.Prefix, item patricia.Item) error {
		if item == nil || len(p) == 0 {
			return nil
		}
		out = append(out, item.([]Entry)...)
		return nil
	})
	return out
}

// Predictive returns at most limit entries whose reading starts with prefix, cheapest first.
// An empty prefix matches every entry.
func (ix *Index) Predictive(prefix string, limit int) []Entry {
	if limit <= 0 {
		return nil
	}
	var out []Entry
	_ = ix.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		if item != nil {
			out = append(out, item.([]Entry)...)
		}
		return nil
	})

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Cost != out[j].Cost {
			return out[i].Cost < out[j].Cost
		}
		return out[i].Key < out[j].Key
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Filter builds a new index holding the entries keep accepts.
func (ix *Index) Filter(keep func(Entry) bool) *Index {
	out := NewIndex()
	_ = ix.trie.Visit(func(p patricia.Prefix, item patricia.Item) error {
		if item == nil {
			return nil
		}
		for _, e := range item.([]Entry) {
			if keep(e) {
				out.Add(e)
			}
		}
		return nil
	})
	return out
}
