// Package demo заполняет список числами, извлекает часть из начала и выводит остаток.
package demo

import (
	"io"

	"github.com/sirkon/errors"

	"github.com/sirkon/linkedlist/internal/dllist"
	"github.com/sirkon/linkedlist/internal/logging"
)

// Config параметры прогона.
type Config struct {
	// Count количество значений 0, 1, …, Count-1 добавляемых в список.
	Count int
	// Drop количество элементов извлекаемых из начала списка.
	Drop int
	// Backward вывод от конца к началу.
	Backward bool
}

// Run прогон с данной конфигурацией, результат пишется в dst.
func Run(cfg Config, logger logging.Logger, dst io.Writer) error {
	if cfg.Count < 0 {
		return errors.New("negative count").Int("count", cfg.Count)
	}
	if cfg.Drop < 0 {
		return errors.New("negative drop").Int("drop", cfg.Drop)
	}

	l := dllist.New[int]()
	for i := 0; i < cfg.Count; i++ {
		l.Push(i)
	}
	logger.ListFilled(l.Len())

	for i := 0; i < cfg.Drop; i++ {
		if _, err := l.RemoveFront(); err != nil {
			logger.FrontRemoveFailed(i, err)
			return errors.Wrap(err, "drop front element").Int("dropped", i).Int("drop", cfg.Drop)
		}
	}
	logger.ListDrained(cfg.Drop, l.Len())

	res := l.String()
	if cfg.Backward {
		res = l.Backward()
	}

	if _, err := io.WriteString(dst, res+"\n"); err != nil {
		return errors.Wrap(err, "write rendered list")
	}

	return nil
}
