// Package apperr описывает типизированные ошибки прикладного уровня.
// Вид ошибки задается явно и не восстанавливается по тексту сообщения.
package apperr

import (
	"errors"
	"fmt"

	"github.com/rotisserie/eris"
)

// Kind - категория ошибки
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUpstreamFailure
	KindPersistenceFailure
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUpstreamFailure:
		return "upstream_failure"
	case KindPersistenceFailure:
		return "persistence_failure"
	default:
		return "internal"
	}
}

// Error - ошибка с явной категорией и сообщением для пользователя
type Error struct {
	Kind    Kind
	Message string
	Err     error

	// trace хранит причину, обернутую eris в месте создания ошибки
	trace error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New создает ошибку без причины
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap создает ошибку с причиной; причина оборачивается eris для сохранения стека
func Wrap(kind Kind, err error, message string) *Error {
	if err == nil {
		return New(kind, message)
	}
	return &Error{Kind: kind, Message: message, Err: err, trace: eris.Wrap(err, message)}
}

func Validation(message string) *Error { return New(KindValidation, message) }

func NotFound(message string) *Error { return New(KindNotFound, message) }

func Conflict(message string) *Error { return New(KindConflict, message) }

func Upstream(err error, message string) *Error { return Wrap(KindUpstreamFailure, err, message) }

func Persistence(err error, message string) *Error { return Wrap(KindPersistenceFailure, err, message) }

// KindOf возвращает категорию первой типизированной ошибки в цепочке
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is сообщает, относится ли ошибка к указанной категории
func Is(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}

// UserMessage возвращает сообщение, безопасное для клиента
func UserMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return "internal server error"
}

// Trace возвращает развернутую причину со стеком для логов
func Trace(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.trace != nil {
		return eris.ToString(appErr.trace, true)
	}
	return eris.ToString(err, true)
}
