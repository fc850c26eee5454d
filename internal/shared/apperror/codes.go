package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"

	// Scheduling errors
	CodeWallNotFound     = "WALL_NOT_FOUND"
	CodeSetterNotFound   = "SETTER_NOT_FOUND"
	CodeInvalidDate      = "INVALID_DATE"
	CodeScheduleConflict = "SCHEDULE_CONFLICT"
	CodeDataFetchError   = "DATA_FETCH_ERROR"
	CodeDataUpdateError  = "DATA_UPDATE_ERROR"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
