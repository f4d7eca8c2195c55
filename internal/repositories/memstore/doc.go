// Package memstore предоставляет реализацию репозиториев пользователей и ссылок
// для in-memory хранилища. Пользователи хранятся по ключу username,
// ссылки — по ключу short_link.
//
// Все методы репозиториев преобразуют внутренние ошибки хранилища в общие
// ошибки уровня репозитория с помощью convertErrorType:
//   - memory.ErrDuplicateKey -> repositories.ErrDuplicateKey
//   - memory.ErrNotFound -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
package memstore
