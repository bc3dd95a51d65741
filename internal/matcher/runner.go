package matcher

import (
	"fmt"
	"sync"
)

// runScoring populates buf[i] for every path index. All spans except the
// last run on spawned goroutines; the last runs on the calling goroutine,
// so one fewer goroutine is spawned and a single-span plan never spawns
// at all. The call returns only after every worker has finished: the
// ranker never sees a partially written buffer.
//
// A panicking scorer fails the whole query. Workers that already ran are
// joined first and their output is discarded; no partial result escapes.
func (m *Matcher) runScoring(paths []string, buf []scoredPath, q Query, spans []span) error {
	errs := make([]error, len(spans))

	var wg sync.WaitGroup
	for k := 0; k < len(spans)-1; k++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			m.scoreSpan(paths, buf, q, spans[k], &errs[k])
		}(k)
	}

	last := len(spans) - 1
	m.scoreSpan(paths, buf, q, spans[last], &errs[last])
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Matcher) scoreSpan(paths []string, buf []scoredPath, q Query, sp span, errSlot *error) {
	defer func() {
		if r := recover(); r != nil {
			*errSlot = fmt.Errorf("matcher: scoring worker failed: %v", r)
		}
	}()
	for i := sp.start; i < len(paths); i += sp.stride {
		buf[i] = scoredPath{path: paths[i], score: m.scorer.Score(paths[i], q)}
	}
}
