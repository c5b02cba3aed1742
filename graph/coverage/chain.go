package coverage

import "fmt"

// Chain is a backward-linked coverage history kept in an arena. Head is the newest snapshot,
// every snapshot links to its predecessor through Previous.
type Chain struct {
	Snapshots []Snapshot
	Head      int
	// Length is the number of historical points requested, 0 means the whole chain
	Length int
}

// NewLinearChain links the provided snapshots (oldest first) into a chain whose head is the last one
func NewLinearChain(oldestFirst ...Snapshot) Chain {
	snapshots := make([]Snapshot, len(oldestFirst))
	for i, s := range oldestFirst {
		s.Previous = i - 1
		snapshots[i] = s
	}

	return Chain{
		Snapshots: snapshots,
		Head:      len(snapshots) - 1,
	}
}

// WithLength returns a copy of the chain requesting the provided number of points
func (c Chain) WithLength(length int) Chain {
	c.Length = length
	return c
}

// Chronological walks the chain from Head back to its root and returns the snapshots oldest first.
// Chains longer than Length are cut to the newest Length points, shorter ones fail.
func (c Chain) Chronological() ([]Snapshot, error) {
	if c.Length < 0 {
		return nil, fmt.Errorf("%w: negative requested length %d", ErrChainIntegrity, c.Length)
	}
	if len(c.Snapshots) == 0 {
		if c.Length > 0 {
			return nil, fmt.Errorf("%w: empty chain, %d points requested", ErrChainIntegrity, c.Length)
		}
		return make([]Snapshot, 0), nil
	}

	if c.Head < 0 || c.Head >= len(c.Snapshots) {
		return nil, fmt.Errorf("%w: head %d outside of %d snapshots", ErrChainIntegrity, c.Head, len(c.Snapshots))
	}

	visited := make([]bool, len(c.Snapshots))
	newestFirst := make([]int, 0, len(c.Snapshots))
	for idx := c.Head; idx != NoPrevious; idx = c.Snapshots[idx].Previous {
		if idx < 0 || idx >= len(c.Snapshots) {
			return nil, fmt.Errorf("%w: link to index %d outside of %d snapshots", ErrChainIntegrity, idx, len(c.Snapshots))
		}
		if visited[idx] {
			return nil, fmt.Errorf("%w: cycle detected at index %d", ErrChainIntegrity, idx)
		}

		visited[idx] = true
		newestFirst = append(newestFirst, idx)
	}

	if c.Length > 0 {
		if len(newestFirst) < c.Length {
			return nil, fmt.Errorf("%w: chain holds %d points, %d requested", ErrChainIntegrity, len(newestFirst), c.Length)
		}
		newestFirst = newestFirst[:c.Length]
	}

	result := make([]Snapshot, len(newestFirst))
	for i, idx := range newestFirst {
		result[len(newestFirst)-1-i] = c.Snapshots[idx]
	}

	return result, nil
}
