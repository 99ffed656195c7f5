// Package sql предоставляет реализацию репозиториев ссылок и визитов поверх gorm (SQLite и PostgreSQL).
//
// Уникальность слага и url обеспечивается уникальными индексами таблицы links, ссылочная
// целостность визитов внешним ключом с каскадным удалением. Ошибки драйверов приводятся к
// общим ошибкам уровня репозитория с помощью ConvertErrorType:
//   - gorm.ErrRecordNotFound -> repositories.ErrNotFound
//   - gorm.ErrForeignKeyViolated -> repositories.ErrLinkNotFound
//   - другие ошибки -> repositories.ErrUnknown
package sql
