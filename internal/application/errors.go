package application

import "errors"

var ErrStore = errors.New("counter store")
