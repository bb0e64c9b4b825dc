package dllist

// Link is the list state embedded in a record. A record participates in
// one list per Link it embeds.
//
// A Link holds element pointers, not link pointers: neighbor access
// returns the neighboring records directly. The zero value is the
// unlinked state, and every removal resets the removed element's Link
// back to it, so a stale Link is never silently traversed as a valid
// neighbor.
type Link[E comparable] struct {
	next, prev E
}

// Next returns the next element in the list. In a single element list,
// the element is its own successor.
func (l *Link[E]) Next() E {
	return l.next
}

// Prev returns the previous element in the list. In a single element
// list, the element is its own predecessor.
func (l *Link[E]) Prev() E {
	return l.prev
}

// Linked reports whether the link is currently part of a list.
func (l *Link[E]) Linked() bool {
	var zero E
	return l.next != zero
}

// Reset returns the link to the unlinked state. The link must not be
// part of a list; use Unlink or List.Remove to take a linked element
// out first.
func (l *Link[E]) Reset() {
	var zero E
	l.next = zero
	l.prev = zero
}
