package appointment

import (
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
