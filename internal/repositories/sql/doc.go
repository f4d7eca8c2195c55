// Package sql предоставляет реализацию репозиториев пользователей и ссылок
// поверх gorm (sqlite).
//
// Все методы репозиториев преобразуют ошибки gorm в общие ошибки уровня репозитория
// с помощью convertErrorType:
//   - gorm.ErrDuplicatedKey -> repositories.ErrDuplicateKey
//   - gorm.ErrRecordNotFound -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
package sql
