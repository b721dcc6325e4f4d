package utils

import (
	"strings"

	internal_errors "github.com/itchan-dev/anonboard/shared/errors"
)

// bcrypt ignores everything past 72 bytes, so longer passwords are refused
const maxPasswordBytes = 72

type BoardValidator struct{}

func (v *BoardValidator) Text(text string) error {
	if strings.TrimSpace(text) == "" {
		return internal_errors.BadRequest("Text is required")
	}
	return nil
}

func (v *BoardValidator) Password(password string) error {
	if password == "" {
		return internal_errors.BadRequest("Delete password is required")
	}
	if len(password) > maxPasswordBytes {
		return internal_errors.BadRequest("Delete password is too long")
	}
	return nil
}
