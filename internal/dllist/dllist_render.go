package dllist

import (
	"fmt"
	"strings"
)

// Separator разделитель значений в текстовом представлении списка.
const Separator = " --> "

// String текстовое представление списка: значения через Separator.
// Для пустого списка возвращается пустая строка.
func (l *DLList[T]) String() string {
	var b strings.Builder
	for n := l.first; n != nil; n = n.next {
		if n != l.first {
			b.WriteString(Separator)
		}
		_, _ = fmt.Fprint(&b, n.value)
	}

	return b.String()
}

// Backward текстовое представление списка от конца к началу, обход идёт по обратным ссылкам.
func (l *DLList[T]) Backward() string {
	var b strings.Builder
	for n := l.last; n != nil; n = n.prev {
		if n != l.last {
			b.WriteString(Separator)
		}
		_, _ = fmt.Fprint(&b, n.value)
	}

	return b.String()
}
