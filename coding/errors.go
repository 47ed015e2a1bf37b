package coding

import (
	"errors"
)

//goland:noinspection ALL
var (
	ErrNullInput        = errors.New("coding: argument required")
	ErrInvalidCharacter = errors.New("coding: character outside the gsm7 alphabet")
	ErrInvalidGSM7      = errors.New("coding: invalid gsm7 data")
)
