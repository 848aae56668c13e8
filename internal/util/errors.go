package util

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailRegistered      = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserDisabled         = errors.New("user disabled")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrSubjectNotFound      = errors.New("subject not found")
	ErrSubjectNameTaken     = errors.New("subject name already exists")
	ErrSubjectInUse         = errors.New("subject still has questions")
	ErrInvalidSubject       = errors.New("invalid subject")
	ErrQuestionNotFound     = errors.New("question not found")
	ErrNotQuestionOwner     = errors.New("question belongs to another author")
	ErrInvalidQuestion      = errors.New("invalid question")
	ErrNoPrimarySubject     = errors.New("no primary subject selected")
	ErrPrimarySubjectLocked = errors.New("primary subject already set")
	ErrSetNotFound          = errors.New("daily question set not found")
	ErrSetExists            = errors.New("daily question set already exists")
	ErrSetAlreadyCompleted  = errors.New("daily question set already completed")
	ErrInvalidSubmission    = errors.New("invalid submission")
)
