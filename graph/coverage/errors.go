package coverage

import "errors"

// ErrInvalidSnapshot signals a snapshot carrying a negative counter
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// ErrChainIntegrity signals a malformed snapshot chain: a cycle, a dangling link or fewer points than requested
var ErrChainIntegrity = errors.New("chain integrity violated")
