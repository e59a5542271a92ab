package dllist

import "github.com/sirkon/errors"

// ErrEmptyStructure возвращается при попытке извлечь элемент из пустого списка.
const ErrEmptyStructure errors.Const = "empty structure"

func errEmptyStructure(op string) error {
	return errors.Wrap(ErrEmptyStructure, "precondition failed").Str("op", op)
}
