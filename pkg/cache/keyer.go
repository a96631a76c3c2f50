package cache

import "fmt"

// Keyer derives cache keys for the values cyclekit caches.
type Keyer interface {
	// AnalysisKey returns the key of the analysis of a permutation table.
	AnalysisKey(table []int, opts AnalysisKeyOpts) string

	// ClassesKey returns the key of the conjugacy class listing of S_n.
	ClassesKey(n int) string
}

// AnalysisKeyOpts holds the analysis options that change the cached value.
type AnalysisKeyOpts struct {
	Normalize bool     `json:"normalize"`
	Render    bool     `json:"render"`
	Labels    []string `json:"labels,omitempty"`
}

// DefaultKeyer builds keys by hashing the request.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// AnalysisKey hashes the table together with the options.
func (DefaultKeyer) AnalysisKey(table []int, opts AnalysisKeyOpts) string {
	return hashKey("analysis", table, opts)
}

// ClassesKey returns "classes:<n>".
func (DefaultKeyer) ClassesKey(n int) string {
	return fmt.Sprintf("classes:%d", n)
}

var _ Keyer = DefaultKeyer{}
