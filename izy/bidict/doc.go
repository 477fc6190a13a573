// Package bidict provides a bidirectional map: a one-to-one relation between
// keys and values that can be queried efficiently from either side.
//
// Uniqueness on both sides is kept by eviction. Setting a key to a new value
// drops the key's previous pair, and setting a value that another key already
// owns drops that other key's pair entirely. No error is reported for either;
// the last write wins on both sides:
//
//	b := bidict.New[string, int]()
//	b.Set("a", 1)
//	b.Set("b", 2)
//	b.Set("c", 1) // evicts ("a", 1)
//
// Both directions are views of the same entries, so the forward and reverse
// indexes can never disagree or differ in size. Iteration follows insertion
// order of the live pairs.
//
// A Bidict is not safe for concurrent use; wrap it in a Synchronized when it
// is shared between goroutines.
package bidict
