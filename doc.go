// Package kvlist provides a generic key/value container backed by a singly
// linked chain of nodes. Keys are unique, traversal follows insertion order
// until the list is sorted with a caller supplied less-than predicate, and the
// whole list renders as "{key}.{value}" lines.
//
// A List is not safe for concurrent use.
package kvlist
