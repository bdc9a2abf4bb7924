/*
Package iteratable implements an iteratable container data structure.

Set is a special-purpose set type, suitable for algorithms around
automata and grammars that repeatedly grow a working set while
iterating over it — closures, worklists, CFPQ triple accumulation.
Unusually, Add, Remove and Union are destructive (they change the
receiver in place; only Copy and Difference return a new set), mirroring
the contract
the sibling module's lr/iteratable package documents for its own
(parser-table-oriented) Set type: construct one, mutate it in place,
iterate over a frozen snapshot with IterateOnce/Next.

License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.
*/
package iteratable

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Set is a destructive, iteratable set of comparable values. Zero value
// is not usable; construct with New.
type Set struct {
	items      *treeset.Set
	comparator utils.Comparator
	// snapshot holds the values frozen at the last IterateOnce call;
	// Next/Item walk this slice while Add/Union may still grow items.
	snapshot []interface{}
	cursor   int
}

// New creates an empty Set ordered by comparator.
func New(comparator utils.Comparator) *Set {
	return &Set{items: treeset.NewWith(comparator), comparator: comparator}
}

// Copy returns a shallow copy of s (same comparator, same elements).
func (s *Set) Copy() *Set {
	c := &Set{items: treeset.NewWith(s.comparator), comparator: s.comparator}
	for _, v := range s.items.Values() {
		c.items.Add(v)
	}
	return c
}

// Add inserts v into s.
func (s *Set) Add(v interface{}) {
	s.items.Add(v)
}

// Remove deletes v from s.
func (s *Set) Remove(v interface{}) {
	s.items.Remove(v)
}

// Contains reports whether v is in s.
func (s *Set) Contains(v interface{}) bool {
	return s.items.Contains(v)
}

// Size returns the number of elements in s.
func (s *Set) Size() int {
	return s.items.Size()
}

// Empty reports whether s has no elements.
func (s *Set) Empty() bool {
	return s.items.Empty()
}

// Values returns every element of s in comparator order.
func (s *Set) Values() []interface{} {
	return s.items.Values()
}

// Union destructively adds every element of other into s, returning s.
func (s *Set) Union(other *Set) *Set {
	for _, v := range other.items.Values() {
		s.items.Add(v)
	}
	return s
}

// Difference returns a new Set containing the elements of s not present
// in other. s itself is not mutated.
func (s *Set) Difference(other *Set) *Set {
	d := &Set{items: treeset.NewWith(s.comparator), comparator: s.comparator}
	for _, v := range s.items.Values() {
		if !other.items.Contains(v) {
			d.items.Add(v)
		}
	}
	return d
}

// Equals reports whether s and other contain the same elements.
func (s *Set) Equals(other *Set) bool {
	if s.Size() != other.Size() {
		return false
	}
	for _, v := range s.items.Values() {
		if !other.items.Contains(v) {
			return false
		}
	}
	return true
}

// IterateOnce freezes a snapshot of s's current elements, in comparator
// order, for iteration via Next/Item. Elements added to s via Add/Union
// after IterateOnce are not in that snapshot; once the cursor runs past
// its end and s has grown, Next re-takes the snapshot and continues at
// the same cursor position — this is what lets a worklist-style closure
// loop keep discovering newly added items. Since the re-taken snapshot
// is again in comparator order, a new element is reached this way only
// if it sorts after every element of the earlier snapshot.
func (s *Set) IterateOnce() {
	s.snapshot = s.items.Values()
	s.cursor = 0
}

// Next advances the iteration cursor, returning false when exhausted.
// If s has grown since the snapshot was taken, Next re-takes the
// snapshot before reporting exhaustion, so a typical
//
//	S.IterateOnce()
//	for S.Next() {
//	    x := S.Item()
//	    if grows(S) { S.Add(...) }
//	}
//
// loop runs to a true fixed point.
func (s *Set) Next() bool {
	if s.cursor >= len(s.snapshot) {
		fresh := s.items.Values()
		if len(fresh) > len(s.snapshot) {
			s.snapshot = fresh
		} else {
			return false
		}
	}
	s.cursor++
	return s.cursor <= len(s.snapshot)
}

// Item returns the element the cursor currently points to. Valid only
// between a true-returning Next call and the next call to Next.
func (s *Set) Item() interface{} {
	return s.snapshot[s.cursor-1]
}

// Dump is a debugging helper printing every element via tracer().
func Dump(s *Set) {
	for _, v := range s.Values() {
		tracer().Debugf("  %v", v)
	}
}
