package dllist

// Iter итератор по значениям списка от начала к концу.
// Изменение списка во время итерации не поддерживается.
func (l *DLList[T]) Iter() *Iterator[T] {
	return &Iterator[T]{
		next: l.first,
	}
}

// Iterator итератор по значениям списка.
type Iterator[T any] struct {
	next *Node[T]
	cur  *Node[T]
}

// Next переход к следующему значению.
func (it *Iterator[T]) Next() bool {
	if it.next == nil {
		it.cur = nil
		return false
	}

	it.cur = it.next
	it.next = it.next.next
	return true
}

// Value текущее значение. До первого Next и после исчерпания возвращает нулевое значение.
func (it *Iterator[T]) Value() T {
	if it.cur == nil {
		var zero T
		return zero
	}

	return it.cur.value
}

// Values слепок значений списка от начала к концу.
func (l *DLList[T]) Values() []T {
	res := make([]T, 0, l.size)
	it := l.Iter()
	for it.Next() {
		res = append(res, it.Value())
	}

	return res
}
