package domain

import "errors"

// Fatal initialization errors. Either one aborts the process the first time
// a translation is requested.
var (
	ErrParseLanguage = errors.New("parsing language failed")
	ErrBuildLoader   = errors.New("unable to build loader")
)
