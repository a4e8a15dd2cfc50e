package schedule

import (
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
