package usecase

// Domain error codes. Handlers map these to HTTP statuses; everything else
// is a TechnicalError and surfaces as a 500.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeInvalidInterval    = "INVALID_INTERVAL"
	CodeSchedulingConflict = "SCHEDULING_CONFLICT"
	CodeNotFound           = "NOT_FOUND"
	CodeNothingToUpdate    = "NOTHING_TO_UPDATE"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

func databaseError(msg string, err error) *TechnicalError {
	return &TechnicalError{
		Code:    "DATABASE_ERROR",
		Message: msg + ": " + err.Error(),
	}
}

func notFound(what string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: what + " not found"}
}

func nothingToUpdate() *DomainError {
	return &DomainError{Code: CodeNothingToUpdate, Message: "nothing to update"}
}
