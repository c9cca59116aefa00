package settings

import "errors"

var errNothingToSet = errors.New("at least one of --name or --color is required")
