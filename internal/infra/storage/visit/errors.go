package visit

import "errors"

var (
	// ErrVisitNotFound возвращается, когда визит не найден
	ErrVisitNotFound = errors.New("visit.repository: visit not found")

	// ErrAlreadyExists возвращается, когда для приёма уже есть визит (UNIQUE appointment_id)
	ErrAlreadyExists = errors.New("visit.repository: visit already exists for appointment")

	// ErrReferenceNotFound возвращается при нарушении внешнего ключа
	ErrReferenceNotFound = errors.New("visit.repository: referenced appointment, patient or provider not found")

	// ErrConstraintViolation возвращается при нарушении CHECK ограничения (follow-up без даты)
	ErrConstraintViolation = errors.New("visit.repository: check constraint violated")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("visit.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("visit.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("visit.repository: failed to scan row")
)
