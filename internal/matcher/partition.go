package matcher

// threadThreshold is the collection size below which a query always runs
// on a single worker; the spawn overhead dominates under this.
const threadThreshold = 1000

// span is one worker's strided slice of the path indices: it owns
// start, start+stride, start+2*stride, ... Disjoint by construction, so
// workers write the shared buffer without synchronization.
type span struct {
	start  int
	stride int
}

// partition computes the worker assignment for a collection. Interleaved
// striding balances load when scoring cost tracks path position (deep
// subtrees cluster in directory order), with no work stealing needed.
func partition(pathCount, requested int) []span {
	workers := requested
	if workers < 1 {
		workers = 1
	}
	if pathCount < threadThreshold {
		workers = 1
	}
	spans := make([]span, workers)
	for k := range spans {
		spans[k] = span{start: k, stride: workers}
	}
	return spans
}
