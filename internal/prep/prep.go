// Package prep implements the feature extraction pipeline. Each extractor
// consumes one raw text column of the listing record and fills its derived
// columns, clearing the raw text when done. Extractors touch disjoint
// fields, so the orchestrator runs them concurrently over the same rows.
package prep

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
