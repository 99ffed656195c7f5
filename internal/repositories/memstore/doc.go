// Package memstore предоставляет реализацию репозиториев ссылок и визитов для in-memory хранилища.
//
// Ссылка хранится под тремя ключами (по слагу, по url и по id), визиты под ключом
// `visits:<linkID>:<visitID>`. Создание ссылки проверяет и записывает все ключи в одной
// транзакции хранилища, поэтому уникальность слага и url соблюдается при конкурентной записи.
//
// Все методы репозиториев преобразуют внутренние ошибки хранилища в общие ошибки уровня репозитория
// с помощью convertErrorType:
//   - memory.ErrNotFound -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
package memstore
