package telegram

import "errors"

var errMissingChat = errors.New("telegram: message without chat")
