/*
Package dllist implements an intrusive circular doubly linked list.

The list never allocates: every record that participates in a list embeds
its own Link, and the caller owns the record's storage for as long as it
is linked. The list performs no locking of its own; mutation of a list
must be serialized by the caller. The package is intended as a low-level
building block for run queues, free lists and wait queues, including
synchronization primitives themselves, which could not be built on a
locking list without circularity.

A record type declares its membership by embedding a Link and exposing it
through the Linkable interface:

	type task struct {
		name string
		link dllist.Link[*task]
	}

	func (t *task) ListLink() *dllist.Link[*task] { return &t.link }

	var runq dllist.List[task, *task]

Traversal is raw: Next and Prev never signal end of list because the
chain is a cycle. Callers walk a list by comparing against a saved
starting element, typically the front.
*/
package dllist

// Linkable is the constraint for a record type that embeds a Link.
//
// Every element of one list must return a Link embedded at the same
// place in the same record type; the constraint makes mixing record
// types within a list impossible.
type Linkable[E comparable] interface {
	ListLink() *Link[E]
}

// Next returns the element after e in its list. In a single element
// list, the element is its own successor. e must be linked.
func Next[T any, E interface {
	*T
	Linkable[E]
}](e E) E {
	return e.ListLink().next
}

// Prev returns the element before e in its list. In a single element
// list, the element is its own predecessor. e must be linked.
func Prev[T any, E interface {
	*T
	Linkable[E]
}](e E) E {
	return e.ListLink().prev
}

// InsertAfter inserts e immediately after the linked element after.
// The designated front of the list, if any, never moves: inserting
// after the back element makes e the new back.
func InsertAfter[T any, E interface {
	*T
	Linkable[E]
}](after, e E) {
	n := e.ListLink()
	if n.Linked() {
		panic("dllist: element is already linked")
	}
	a := after.ListLink()
	if !a.Linked() {
		panic("dllist: element is not linked")
	}

	right := a.next
	n.next = right
	n.prev = after
	a.next = e
	right.ListLink().prev = e
}

// InsertBefore inserts e immediately before the linked element before,
// ignoring any designated front. Inserting before the front element
// therefore degenerates to inserting after the back element; use
// List.InsertBefore when the front must move instead.
func InsertBefore[T any, E interface {
	*T
	Linkable[E]
}](before, e E) {
	n := e.ListLink()
	if n.Linked() {
		panic("dllist: element is already linked")
	}
	b := before.ListLink()
	if !b.Linked() {
		panic("dllist: element is not linked")
	}

	left := b.prev
	n.next = before
	n.prev = left
	left.ListLink().next = e
	b.prev = e
}

// Unlink removes e from its list, re-stitching its former neighbors
// together, and resets e's link to the unlinked state. Unlink ignores
// any designated front; if e may be the front of a rooted list, use
// List.Remove so the root can move off e.
func Unlink[T any, E interface {
	*T
	Linkable[E]
}](e E) {
	n := e.ListLink()
	if !n.Linked() {
		panic("dllist: element is not linked")
	}

	if n.next != e {
		n.prev.ListLink().next = n.next
		n.next.ListLink().prev = n.prev
	}
	n.Reset()
}
