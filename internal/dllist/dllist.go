package dllist

// New конструктор пустого двусвязного списка.
func New[T any]() *DLList[T] {
	return &DLList[T]{}
}

// DLList двусвязный список с добавлением в конец и извлечением из начала.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type DLList[T any] struct {
	first *Node[T]
	last  *Node[T]
	size  int
}

// Push добавление нового значения в конец списка с возвратом созданного узла.
func (l *DLList[T]) Push(v T) *Node[T] {
	n := NewNode(v)
	n.prev = l.last
	l.size++

	if l.first == nil {
		l.first = n
		l.last = n
		return n
	}

	l.last.next = n
	l.last = n

	return n
}

// Add то же, что и Push.
func (l *DLList[T]) Add(v T) *Node[T] {
	return l.Push(v)
}

// RemoveFront извлечение первого элемента списка с возвратом его значения.
// Для пустого списка возвращается ошибка ErrEmptyStructure, список не меняется.
func (l *DLList[T]) RemoveFront() (T, error) {
	f := l.first
	if f == nil {
		var zero T
		return zero, errEmptyStructure("remove front")
	}

	l.DeleteFirst()
	return f.value, nil
}

// Remove то же, что и RemoveFront.
func (l *DLList[T]) Remove() (T, error) {
	return l.RemoveFront()
}

// DeleteFirst удаление первого элемента списка.
func (l *DLList[T]) DeleteFirst() {
	if l.first == nil {
		return
	}

	f := l.first
	l.first = f.next
	if f.next == nil {
		// в списке был только один элемент
		l.last = nil
	} else {
		f.next.prev = nil
	}

	f.next = nil // для упрощения работы GC
	l.size--
}

// Delete удаление данного узла из списка.
// Повторное удаление уже отцепленного узла ничего не делает.
func (l *DLList[T]) Delete(n *Node[T]) {
	if n.prev == nil && n.next == nil && l.first != n {
		// узел уже отцеплен
		return
	}

	if n.prev != nil {
		n.prev.next = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	}

	if l.first == n {
		l.first = n.next
	}

	if l.last == n {
		l.last = n.prev
	}

	n.cleanup()
	l.size--
}

// Len количество элементов списка.
func (l *DLList[T]) Len() int {
	return l.size
}

// First получение первого элемента списка.
func (l *DLList[T]) First() *Node[T] {
	return l.first
}

// Last получение последнего элемента списка.
func (l *DLList[T]) Last() *Node[T] {
	return l.last
}

// SetHeadValue замена значения первого элемента. Для пустого списка ничего не делает.
func (l *DLList[T]) SetHeadValue(v T) {
	if l.first == nil {
		return
	}

	l.first.SetValue(v)
}
