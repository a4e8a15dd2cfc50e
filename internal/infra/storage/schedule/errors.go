package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда правило расписания не найдено
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrProviderNotFound возвращается при нарушении внешнего ключа на providers
	ErrProviderNotFound = errors.New("schedule.repository: provider not found")

	// ErrConstraintViolation возвращается при нарушении CHECK ограничения (день недели, диапазоны)
	ErrConstraintViolation = errors.New("schedule.repository: check constraint violated")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
