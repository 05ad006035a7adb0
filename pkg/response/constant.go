package response

const (
	// MessageSuccess is the message returned on every successful response.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internals from callers on 500s.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the envelope error code for 500s.
	InternalServerErrorCode = 500

	// DateFormat and DateTimeFormat are the wire formats for Date/DateTime.
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
