package apierror

import (
	"errors"
	"fmt"
)

// MaxUpload is the largest number of contacts one bulk request may carry.
const MaxUpload = 100

// ErrUploadLimitExceeded is returned for a bulk request above MaxUpload contacts.
var ErrUploadLimitExceeded = fmt.Errorf("maximum contact upload is %d", MaxUpload)

// ErrBulkSave is matched by every *BulkSaveError.
var ErrBulkSave = errors.New("failed to upload contacts in bulk")

// BulkSaveError names the contact a bulk upload failed on.
type BulkSaveError struct {
	Index int
	Email string
}

func (e *BulkSaveError) Error() string {
	return fmt.Sprintf("failed to upload contacts in bulk. Failed contact #%d: %q", e.Index, e.Email)
}

func (e *BulkSaveError) Is(target error) bool {
	return target == ErrBulkSave
}

// ErrContactIDConflict is matched by every *ContactIDConflictError.
var ErrContactIDConflict = errors.New("cannot overwrite contact id")

// ContactIDConflictError is returned when a save reports a contact id other
// than the one the contact already holds.
type ContactIDConflictError struct {
	Original string
	New      string
}

func (e *ContactIDConflictError) Error() string {
	return fmt.Sprintf("original contact id (%s) is different from contact id (%s) to save", e.Original, e.New)
}

func (e *ContactIDConflictError) Is(target error) bool {
	return target == ErrContactIDConflict
}
