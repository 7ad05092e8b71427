package quicktween

import "sync"

var defaultRandom *lockedSource
var defaultRandomOnce sync.Once
