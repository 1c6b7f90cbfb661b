package pnp

import (
	"container/list"
	"sort"
	"strings"
	"sync"

	"github.com/zeebo/xxh3"

	"github.com/pnpgo/resolver/internal/tspath"
)

// indexDefaultCacheSize bounds the owning-locator LRU; an unbounded cache
// would let a long-lived resolver grow its memory use without limit.
const indexDefaultCacheSize = 4096

// indexEntry is one package location registered for reverse lookup, sorted
// so FindOwningLocator can binary-search for the longest matching prefix.
type indexEntry struct {
	prefix  string
	locator Locator
}

// manifestIndex answers "which package owns this path" (C3): given an
// absolute, normalized path, find the longest registered package location
// that is a prefix of it at a path-segment boundary.
type manifestIndex struct {
	caseSensitive bool
	entries       []indexEntry

	cacheMu sync.Mutex
	cache   *lruCache
}

// buildIndex constructs the reverse-lookup index from m's package registry.
// Packages marked DiscardFromLookup are omitted: they still participate in
// the dependency graph, but must never be the *answer* to a
// path->locator query (virtual copies of a package are the usual case).
//
// caseSensitive matches the host filesystem (the negation of
// pnp.Options.CaseInsensitive): when false, every registered prefix is
// folded with tspath.ComparisonKey
// before sorting, and FindOwningLocator folds its query path the same way,
// so a path that differs from its package's registered location only in
// case still matches on a case-insensitive filesystem.
//
// Grounded on esbuild's yarnpnp.go findLocator, which trims one trailing
// path segment at a time against a location map; this replaces that walk
// with a sorted slice searched by binary search, held in a dedicated index
// type separate from the parsed Manifest so
// rebuilding the index (e.g. after Reload) doesn't require reparsing.
func buildIndex(m *Manifest, caseSensitive bool) *manifestIndex {
	idx := &manifestIndex{
		caseSensitive: caseSensitive,
		cache:         newLRUCache(indexDefaultCacheSize),
	}

	addEntry := func(prefix string, locator Locator) {
		idx.entries = append(idx.entries, indexEntry{
			prefix:  tspath.ComparisonKey(prefix, caseSensitive),
			locator: locator,
		})
	}

	if m.ManifestDir != "" {
		addEntry(tspath.EnsureTrailingSeparator(m.ManifestDir), Top)
	}

	for ident, byRef := range m.PackageRegistry {
		for ref, info := range byRef {
			if info.DiscardFromLookup {
				continue
			}
			loc := Locator{Ident: ident, Reference: ref}
			if loc.IsTop() {
				// TOP's own location is the manifest directory itself
				// (open question resolved in DESIGN.md): an empty
				// PackageLocation means "the manifest's directory", not
				// "an empty relative path joined onto it".
				continue
			}
			abs := tspath.EnsureTrailingSeparator(tspath.Join(m.ManifestDir, info.PackageLocation))
			addEntry(abs, loc)
		}
	}

	sort.Slice(idx.entries, func(i, j int) bool {
		return idx.entries[i].prefix < idx.entries[j].prefix
	})

	return idx
}

// FindOwningLocator returns the locator of the package that contains path,
// or (nil, nil) if no registered package claims it (the path lies outside
// the install tree entirely). Deterministic tie-breaking for overlapping
// locations is unnecessary here since package locations never overlap in a
// well-formed manifest; the longest match is simply the
// most specific one.
func (m *Manifest) FindOwningLocator(path string) (*Locator, error) {
	norm := tspath.Normalize(path)
	key := tspath.ComparisonKey(norm, m.index.caseSensitive)

	if loc, ok := m.index.lookup(key); ok {
		m.log().Debug("pnp: index cache hit", "path", norm)
		return loc, nil
	}

	m.log().Debug("pnp: index cache miss", "path", norm)
	loc := m.index.find(key)
	m.index.store(key, loc)
	return loc, nil
}

func (idx *manifestIndex) lookup(path string) (*Locator, bool) {
	idx.cacheMu.Lock()
	defer idx.cacheMu.Unlock()
	return idx.cache.get(path)
}

func (idx *manifestIndex) store(path string, loc *Locator) {
	idx.cacheMu.Lock()
	defer idx.cacheMu.Unlock()
	idx.cache.put(path, loc)
}

func (idx *manifestIndex) find(path string) *Locator {
	pathForMatch := path
	if !strings.HasSuffix(pathForMatch, "/") {
		pathForMatch += "/"
	}

	i := sort.Search(len(idx.entries), func(i int) bool {
		return idx.entries[i].prefix > pathForMatch
	})

	for j := i - 1; j >= 0; j-- {
		if strings.HasPrefix(pathForMatch, idx.entries[j].prefix) {
			loc := idx.entries[j].locator
			return &loc
		}
	}
	return nil
}

// lruCache is a small bounded LRU keyed by an xxh3 hash of the path, used to
// skip the O(log n) binary search (and its string comparisons) for paths
// resolved repeatedly, e.g. the same file re-required across a build.
type lruCache struct {
	capacity int
	ll       *list.List
	items    map[uint64]*list.Element
}

type lruEntry struct {
	key   uint64
	path  string
	value *Locator
	found bool
}

func newLRUCache(capacity int) *lruCache {
	return &lruCache{
		capacity: capacity,
		ll:       list.New(),
		items:    make(map[uint64]*list.Element),
	}
}

func hashPath(path string) uint64 {
	return xxh3.HashString(path)
}

func (c *lruCache) get(path string) (*Locator, bool) {
	key := hashPath(path)
	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	entry := el.Value.(*lruEntry)
	if entry.path != path {
		// hash collision: treat as a miss rather than risk a wrong answer.
		return nil, false
	}
	c.ll.MoveToFront(el)
	return entry.value, entry.found
}

func (c *lruCache) put(path string, value *Locator) {
	key := hashPath(path)
	if el, ok := c.items[key]; ok {
		c.ll.MoveToFront(el)
		el.Value.(*lruEntry).value = value
		el.Value.(*lruEntry).found = value != nil
		return
	}

	el := c.ll.PushFront(&lruEntry{key: key, path: path, value: value, found: value != nil})
	c.items[key] = el

	if c.ll.Len() > c.capacity {
		oldest := c.ll.Back()
		if oldest != nil {
			c.ll.Remove(oldest)
			delete(c.items, oldest.Value.(*lruEntry).key)
		}
	}
}
