package doubly

// Doubly linked list: O(1) push/pop at both ends, forward iteration.
// A list is owned by a single caller; see iterator.go for traversal.
func NewLinkedList[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

type LinkedList[T any] struct {
	head *node[T]
	tail *node[T]
	len  int
}

// region Node
type node[T any] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

// endregion

func (l *LinkedList[T]) Len() int {
	return l.len
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.len == 0
}

func (l *LinkedList[T]) Append(v T) {
	n := &node[T]{value: v, prev: l.tail}

	if l.tail != nil {
		l.tail.next = n
	}

	l.tail = n
	if l.head == nil {
		l.head = n
	}

	l.len++
}

func (l *LinkedList[T]) Prepend(v T) {
	n := &node[T]{value: v, next: l.head}

	if l.head != nil {
		l.head.prev = n
	}

	l.head = n
	if l.tail == nil {
		l.tail = n
	}

	l.len++
}

func (l *LinkedList[T]) PopFront() (T, bool) {
	var zero T
	if l.head == nil {
		return zero, false
	}

	n := l.head
	l.head = n.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}

	l.len--

	// Detached node must not retain anything
	v := n.value
	n.next, n.prev, n.value = nil, nil, zero
	return v, true
}

func (l *LinkedList[T]) PopBack() (T, bool) {
	var zero T
	if l.tail == nil {
		return zero, false
	}

	n := l.tail
	l.tail = n.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}

	l.len--

	v := n.value
	n.next, n.prev, n.value = nil, nil, zero
	return v, true
}

// Clear releases every remaining node through the same unlink path
// as PopFront.
func (l *LinkedList[T]) Clear() {
	for _, ok := l.PopFront(); ok; _, ok = l.PopFront() {
	}
}
