package client

import "errors"

var (
	ErrNoAdapter      = errors.New("server adapter is required")
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidArgs    = errors.New("invalid arguments")
)
