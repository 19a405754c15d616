package memory

import "time"

// zeroTime disables the future-timestamp check; the store has no clock of its own
var zeroTime time.Time
