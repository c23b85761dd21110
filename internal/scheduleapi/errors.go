package scheduleapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kaidigital/schedulekai_bot/internal/model"
)

// Закрытая таксономия ошибок API. Обработчики никогда не смотрят на
// сырые HTTP-коды — только на конкретный тип ошибки.

// APIError — базовая ошибка schedule API: статус + сырое тело для диагностики.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("schedule api: HTTP %d: %s", e.StatusCode, e.Body)
}

// NotFoundError — HTTP 404.
type NotFoundError struct {
	APIError
}

// BadRequestError — HTTP 400 без структурированного тела.
type BadRequestError struct {
	APIError
}

// OutOfRangeDateError — HTTP 400 с телом {startDate, endDate}:
// запрошенная дата вне диапазона расписания.
type OutOfRangeDateError struct {
	BadRequestError
	Range model.OutOfRange
}

// TooManyElementsError — HTTP 400 с маркером "Too many elements":
// поиск вернул слишком много совпадений, нужен более точный запрос.
type TooManyElementsError struct {
	BadRequestError
}

// ServerError — HTTP 5xx.
type ServerError struct {
	APIError
}

// TransportError — сбой транспорта (таймаут, обрыв соединения,
// некорректный JSON в ответе). Отдельный временный класс,
// никогда не маскируется под HTTP-ошибку.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("schedule api: transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// tooManyElementsMarker — хрупкий контракт с сервером: признак определяется
// подстрокой в теле ошибки, структурированного кода у API нет.
const tooManyElementsMarker = "Too many elements"

// errorFromStatus переводит не-2xx ответ в ошибку таксономии.
func errorFromStatus(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	text := strings.TrimSpace(string(body))
	base := APIError{StatusCode: status, Body: text}

	switch {
	case status == 404:
		return &NotFoundError{base}
	case status == 400:
		var rng model.OutOfRange
		if err := json.Unmarshal(body, &rng); err == nil && rng.StartDate != "" && rng.EndDate != "" {
			return &OutOfRangeDateError{BadRequestError{base}, rng}
		}
		if strings.Contains(text, tooManyElementsMarker) {
			return &TooManyElementsError{BadRequestError{base}}
		}
		return &BadRequestError{base}
	case status >= 500:
		return &ServerError{base}
	default:
		return &base
	}
}

// IsNotFound сообщает, является ли ошибка NotFound (404).
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsTooManyElements сообщает, вернул ли поиск слишком много совпадений.
func IsTooManyElements(err error) bool {
	var e *TooManyElementsError
	return errors.As(err, &e)
}

// AsOutOfRange извлекает допустимый диапазон дат из OutOfRangeDateError.
func AsOutOfRange(err error) (model.OutOfRange, bool) {
	var e *OutOfRangeDateError
	if errors.As(err, &e) {
		return e.Range, true
	}
	return model.OutOfRange{}, false
}

// IsTransient сообщает, является ли ошибка временной (транспорт или 5xx).
// Вызывающие обрабатывают оба случая одинаково: "попробуйте позже".
func IsTransient(err error) bool {
	var te *TransportError
	if errors.As(err, &te) {
		return true
	}
	var se *ServerError
	return errors.As(err, &se)
}
