package catalog

import "github.com/BruksfildServices01/slot-booking/internal/httperr"

const (
	CodeServiceExist        = "SERVICE_EXIST"
	CodeInvalidName         = "INVALID_NAME"
	CodeInvalidEmail        = "INVALID_EMAIL"
	CodeInvalidPrice        = "INVALID_PRICE"
	CodeInvalidData         = "INVALID_DATA"
	CodeInvalidServiceHours = "INVALID_SERVICE_HOURS"
	CodeInvalidWorkDays     = "INVALID_WORK_DAYS"
	CodeInvalidWorkShifts   = "INVALID_WORK_SHIFTS"
	CodeDuplicateWorkDays   = "DUPLICATE_WORK_DAYS"
	CodeDuplicateWorkShifts = "DUPLICATE_WORK_SHIFTS"
	CodeServicesNotFound    = "SERVICES_NOT_FOUND"
	CodeEmployeeNotFound    = "EMPLOYEE_NOT_FOUND"
)

func ErrEmployeeNotFound() error { return httperr.ErrNotFound(CodeEmployeeNotFound) }
