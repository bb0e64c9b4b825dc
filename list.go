package dllist

// List is an intrusive circular doubly linked list of T.
//
// A List holds only the designated front element; the cycle itself
// lives in the elements' own links. The zero value is an empty list
// ready to use.
type List[T any, E interface {
	*T
	Linkable[E]
}] struct {
	front E
}

// Reset makes l an empty list. It does not touch the links of any
// elements still in the cycle; pop the elements off instead if their
// links must be reset.
func (l *List[T, E]) Reset() {
	l.front = nil
}

// Empty reports whether the list has no elements.
func (l *List[T, E]) Empty() bool {
	return l.front == nil
}

// Len returns the number of elements in the list by walking the cycle.
// It takes time proportional to the number of elements.
func (l *List[T, E]) Len() int {
	if l.front == nil {
		return 0
	}

	n := 1
	for e := l.front.ListLink().next; e != l.front; e = e.ListLink().next {
		n++
	}
	return n
}

// Front returns the first element of the list or nil.
func (l *List[T, E]) Front() E {
	return l.front
}

// Back returns the last element of the list or nil.
func (l *List[T, E]) Back() E {
	if l.front == nil {
		return nil
	}
	return l.front.ListLink().prev
}

// PushBack inserts e at the back of the list. e must not be linked.
func (l *List[T, E]) PushBack(e E) {
	n := e.ListLink()
	if n.Linked() {
		panic("dllist: element is already linked")
	}

	if l.front == nil {
		// One is all and all is one.
		n.next = e
		n.prev = e
		l.front = e
		return
	}

	right := l.front
	left := right.ListLink().prev
	n.next = right
	n.prev = left
	left.ListLink().next = e
	right.ListLink().prev = e
}

// PushFront inserts e at the front of the list. e must not be linked.
func (l *List[T, E]) PushFront(e E) {
	l.PushBack(e)
	l.front = e
}

// PopFront removes and returns the front element, or nil if the list is
// empty. The removed element's link is reset to the unlinked state.
func (l *List[T, E]) PopFront() E {
	e := l.front
	if e == nil {
		return nil
	}

	n := e.ListLink()
	if n.next != e {
		left, right := n.prev, n.next
		left.ListLink().next = right
		right.ListLink().prev = left
		l.front = right
	} else {
		l.front = nil
	}
	n.Reset()

	return e
}

// PopBack removes and returns the back element, or nil if the list is
// empty. The removed element's link is reset to the unlinked state.
func (l *List[T, E]) PopBack() E {
	e := l.Back()
	if e == nil {
		return nil
	}
	l.Remove(e)
	return e
}

// InsertAfter inserts e immediately after after, which must be an
// element of l. The front never moves: inserting after the back element
// makes e the new back. e must not be linked.
func (l *List[T, E]) InsertAfter(after, e E) {
	InsertAfter[T, E](after, e)
}

// InsertBefore inserts e immediately before before, which must be an
// element of l. If before is the front element, e becomes the new
// front. e must not be linked.
func (l *List[T, E]) InsertBefore(before, e E) {
	if before == l.front {
		l.PushFront(e)
		return
	}
	InsertBefore[T, E](before, e)
}

// Remove removes e, which must be an element of l, and resets its link
// to the unlinked state. If e is the front element, the front advances
// to the next element; removing the only element leaves l empty.
func (l *List[T, E]) Remove(e E) {
	if e == l.front {
		l.PopFront()
		return
	}
	Unlink[T, E](e)
}
