package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда приём не найден
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrOverlap возвращается, когда ограничение appointments_no_overlap отклонило запись
	// (параллельная транзакция успела занять это время)
	ErrOverlap = errors.New("appointment.repository: overlapping appointment exists")

	// ErrReferenceNotFound возвращается при нарушении внешнего ключа (пациент или врач не существует)
	ErrReferenceNotFound = errors.New("appointment.repository: referenced patient or provider not found")

	// ErrConstraintViolation возвращается при нарушении CHECK ограничения
	ErrConstraintViolation = errors.New("appointment.repository: check constraint violated")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
