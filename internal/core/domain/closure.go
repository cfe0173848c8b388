// Package domain contains the core domain models for dependency closure computation.
package domain

// Edge records that Child was reported as a direct dependency of Parent.
// Depth is the distance of Parent from the root target and is only used for indentation.
type Edge struct {
	Parent string
	Child  string
	Depth  int
}

// OracleFailure records an oracle query that did not complete cleanly.
type OracleFailure struct {
	Name string
	Err  error
}

// Closure is the result of one top-level closure computation.
type Closure struct {
	// Target is the root the computation started from.
	Target string

	// Members holds every name discovered as some node's direct dependency, sorted.
	Members []string

	// Edges lists discovery edges in traversal order.
	Edges []Edge

	// Failures lists oracle queries that failed or exited non-zero.
	Failures []OracleFailure
}

// Len returns the number of distinct dependencies in the closure.
func (c *Closure) Len() int {
	return len(c.Members)
}

// Degraded reports whether at least one oracle query failed during the computation.
func (c *Closure) Degraded() bool {
	return len(c.Failures) > 0
}
