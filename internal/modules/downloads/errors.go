package downloads

import "errors"

var (
	ErrResourceNotFound  = errors.New("resource not found")
	ErrResourceNotFree   = errors.New("resource requires purchase")
	ErrCredentialMissing = errors.New("download credential missing")
	ErrCredentialInvalid = errors.New("download credential invalid or expired")
)
