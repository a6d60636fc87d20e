package store

import (
	"github.com/samber/oops"
)

// Error codes carried by errors returned from the store.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeValidationFailure  = "VALIDATION_FAILURE"
	CodePersistenceFailure = "PERSISTENCE_FAILURE"
)

func ownerNotFound(id int64) error {
	return oops.Code(CodeNotFound).With("owner_id", id).Errorf("owner %d not found", id)
}

func itemNotFound(id int64) error {
	return oops.Code(CodeNotFound).With("item_id", id).Errorf("item %d not found", id)
}

// ErrorCode returns the oops code attached to err, or "" if there is none.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return ""
	}
	code, _ := any(oopsErr.Code()).(string)
	return code
}

// IsNotFound reports whether err carries the NOT_FOUND code.
func IsNotFound(err error) bool {
	return ErrorCode(err) == CodeNotFound
}

// IsValidation reports whether err carries the VALIDATION_FAILURE code.
func IsValidation(err error) bool {
	return ErrorCode(err) == CodeValidationFailure
}
