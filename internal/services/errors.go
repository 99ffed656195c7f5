package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknown            = errors.New("[service]: unknown error")
	ErrRecordNotFound     = errors.New("[service]: record not found")
	ErrSlugTaken          = errors.New("[service]: slug has already been taken")
	ErrSlugSpaceExhausted = errors.New("[service]: could not generate a free slug")
)

// Сообщения валидации, отдаются клиенту как есть.
const (
	MsgURLBlank     = "Url can't be blank"
	MsgSlugBlank    = "Slug can't be blank"
	MsgSlugInvalid  = "Slug can only include letters, numbers, `-`, and `_`"
	MsgSlugReserved = "Slug is reserved"
	MsgSlugTaken    = "Slug has already been taken"
	MsgURLDuplicate = "A short link for the url already exists at: "
)

// Ограничения длины совпадают с размерами колонок links.url и links.slug.
const (
	MaxURLLength  = 2048
	MaxSlugLength = 255
)

var (
	MsgURLTooLong  = fmt.Sprintf("Url is too long (maximum is %d characters)", MaxURLLength)
	MsgSlugTooLong = fmt.Sprintf("Slug is too long (maximum is %d characters)", MaxSlugLength)
)

// ReservedSlugs заняты служебными маршрутами и не могут быть слагом ссылки.
var ReservedSlugs = map[string]struct{}{
	"api":     {},
	"metrics": {},
	"ping":    {},
}

// IsReservedSlug сравнивает без учета регистра.
func IsReservedSlug(s string) bool {
	_, ok := ReservedSlugs[strings.ToLower(s)]
	return ok
}

// ValidationError входные данные не прошли проверку. Messages содержит все найденные нарушения.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "[service]: validation failed: " + strings.Join(e.Messages, "; ")
}

// DuplicateURLError для url уже существует короткая ссылка со слагом ExistingSlug.
type DuplicateURLError struct {
	ExistingSlug string
}

func (e *DuplicateURLError) Error() string {
	return "[service]: url already shortened as " + e.ExistingSlug
}
