package provider

import "errors"

var (
	// ErrProviderNotFound возвращается, когда врач не найден
	ErrProviderNotFound = errors.New("provider.repository: provider not found")

	// ErrDuplicate возвращается при повторе лицензии или email
	ErrDuplicate = errors.New("provider.repository: license number or email already registered")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("provider.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("provider.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("provider.repository: failed to scan row")
)
