package gihari

import "errors"

var ErrEmptyCommand = errors.New("command text is empty")
