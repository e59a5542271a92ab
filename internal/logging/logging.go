//go:generate mockgen -destination mocks/logger_mock.go -package mocks -mock_names Logger=LoggerMock github.com/sirkon/linkedlist/internal/logging Logger

package logging

// Logger абстракция предназначенная для логирования в строго определённых ситуациях.
// Реализация логирования должна делаться пользователями библиотеки.
type Logger interface {
	ListFilled(count int)
	ListDrained(removed int, rest int)
	FrontRemoveFailed(removed int, err error)
}
