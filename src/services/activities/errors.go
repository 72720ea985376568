package activities

import "errors"

// ข้อความของ error ถูกส่งกลับไปเป็น detail ของ API ตรงๆ
var (
	ErrActivityNotFound = errors.New("Activity not found")
	ErrAlreadySignedUp  = errors.New("Student already signed up")
	ErrActivityFull     = errors.New("Activity is full")
	ErrNotSignedUp      = errors.New("Student is not signed up for this activity")
	ErrValidation       = errors.New("A valid email is required")
)
