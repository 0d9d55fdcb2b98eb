// Package maputil provides an insertion-ordered map with mixed text/integer
// keys, together with standalone helper functions for the operations that
// loosely-typed associative arrays make easy: template formatting,
// extract-and-remove, delimited-path lookup, key renaming, conditional
// insertion, grouping, sub-selection, and chunking.
//
// # The Map type
//
// [Map] preserves insertion order and accepts [Key] values that are either
// text or non-negative integers, so a single map can model both records and
// index-keyed lists:
//
//	ages := maputil.New[any]().
//	    Set(maputil.StringKey("Sam"), 34).
//	    Set(maputil.StringKey("John"), 28)
//	letters := maputil.FromSlice([]string{"a", "b", "c"}) // keys 0, 1, 2
//
// # Helper functions
//
// All helpers are generic package-level functions over *Map[V]:
//
//	maputil.Format(ages, "Name: {key} Age: {value}\n")
//	maputil.Pull(letters, maputil.IntKey(1))       // "b"; map keeps {0:a, 2:c}
//	maputil.GetNested(cfg, "db.login.username")
//	maputil.Only(fruits, maputil.StringKey("d"), maputil.StringKey("c"))
//	maputil.Split(letters, 2)                      // 2 chunks of ceil(n/2)
//
// Lookups come in two forms: the plain form returns a (value, ok) pair, and
// the OrFail form returns [ErrKeyNotFound] when the referenced key is absent.
//
// # Serialisation
//
// Map implements order-preserving JSON (via github.com/goccy/go-json) and
// YAML (via gopkg.in/yaml.v3) marshalling and unmarshalling; nested mappings
// decode as *Map[any], keeping their document order.
//
// Helpers that mutate their argument (Pull, Rename, SetIf, SetNested,
// ForgetNested) require exclusive access to the map for the duration of the
// call; the package imposes no locking.
package maputil
