package domain

import "errors"

// ErrNotLoaded is returned by read paths before the first successful load.
var ErrNotLoaded = errors.New("dashboard not loaded")
