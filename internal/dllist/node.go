package dllist

// NewNode конструктор узла с начальным значением v. Связи узла не установлены.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{
		value: v,
	}
}

// Node узел содержащий данное значение в связанном списке.
type Node[T any] struct {
	prev *Node[T]
	next *Node[T]

	value T
}

// Value возврат значения лежащего в узле.
func (n *Node[T]) Value() T {
	return n.value
}

// SetValue замена значения лежащего в узле.
func (n *Node[T]) SetValue(v T) {
	n.value = v
}

// Next следующий узел или nil, если узел последний.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev предыдущий узел или nil, если узел первый.
// Обратная ссылка, список владеет узлами только через next.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

func (n *Node[T]) cleanup() {
	n.prev = nil
	n.next = nil
}
