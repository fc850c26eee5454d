package apperror

const genericMessage = "Something went wrong. Please try again."

var messages = map[string]string{
	CodeWallNotFound:       "One or more selected walls could not be found.",
	CodeSetterNotFound:     "One or more selected setters could not be found.",
	CodeInvalidDate:        "The selected date is not valid for scheduling.",
	CodeScheduleConflict:   "This schedule was changed by someone else or conflicts with existing assignments.",
	CodeDataFetchError:     "Unable to load schedule data.",
	CodeDataUpdateError:    "Unable to save your changes.",
	CodeUnauthorized:       "Please sign in again.",
	CodeForbidden:          "You do not have permission to do that.",
	CodeServiceUnavailable: "The service is temporarily unavailable.",
}

// Message returns the human readable text for code, or a generic message.
func Message(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return genericMessage
}
