package doubly

// region Iterator
// WARN: NOT SAFE AGAINST CONCURRENT MUTATION!
// Readers may share a list; a mutating call invalidates every live iterator.
type iterator[T any] struct {
	curr *node[T]
	list *LinkedList[T]
}

func (l *LinkedList[T]) Iterator() *iterator[T] {
	return NewIterator(l)
}

func NewIterator[T any](list *LinkedList[T]) *iterator[T] {
	return &iterator[T]{
		list: list,
		curr: list.head,
	}
}

func (it *iterator[T]) Next() (*T, bool) {
	if it.curr == nil {
		return nil, false
	}

	n := it.curr
	it.curr = n.next

	return &n.value, true
}

// endregion

// region DrainIterator
// Each Next is a PopFront: the list shrinks as the iterator advances.
// Close releases whatever is left; abandoning the iterator without Close
// leaves the remaining nodes in the (still valid) list.
type drainiterator[T any] struct {
	list *LinkedList[T]
}

func (l *LinkedList[T]) DrainIterator() *drainiterator[T] {
	return NewDrainIterator(l)
}

func NewDrainIterator[T any](list *LinkedList[T]) *drainiterator[T] {
	return &drainiterator[T]{list: list}
}

func (it *drainiterator[T]) Next() (T, bool) {
	return it.list.PopFront()
}

func (it *drainiterator[T]) Close() {
	it.list.Clear()
}

// endregion
