// Copyright 2025 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package corpus

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"gaelcheck/check"

	"github.com/rs/zerolog/log"
)

const (
	dfltMaxNumWorkers = 4
)

// DefaultNumWorkers returns min(4, NumCPU)
func DefaultNumWorkers() int {
	v := dfltMaxNumWorkers
	if v >= runtime.NumCPU() {
		v = runtime.NumCPU()
	}
	return v
}

// ProgressFn is called once per checked sentence. It may be
// called from multiple goroutines.
type ProgressFn func()

// Check runs the checker over all sentences using numWorkers
// goroutines. Results keep the document order regardless of the
// order in which workers finish. A cancelled context stops the
// workers and the context error is returned.
func (c *Corpus) Check(ctx context.Context, checker *check.Checker, numWorkers int, onProgress ProgressFn) error {
	if numWorkers < 1 {
		numWorkers = DefaultNumWorkers()
	}
	results := make([][]check.Diagnostic, len(c.sentences))
	errs := make([]error, numWorkers)
	tasks := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for i := range tasks {
				if errs[workerID] != nil {
					continue
				}
				diags, err := checker.CheckSentence(c.sentences[i], c.approvals)
				if err != nil {
					errs[workerID] = err
					continue
				}
				results[i] = diags
				if onProgress != nil {
					onProgress()
				}
			}
		}(w)
	}

	var ctxErr error
loop:
	for i := range c.sentences {
		if ctxErr = ctx.Err(); ctxErr != nil {
			break
		}
		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break loop
		case tasks <- i:
		}
	}
	close(tasks)
	wg.Wait()

	if ctxErr != nil {
		log.Warn().Err(ctxErr).Str("source", c.Source).Msg("corpus check interrupted")
		return fmt.Errorf("failed to check corpus %s: %w", c.Source, ctxErr)
	}
	for _, err := range errs {
		if err != nil {
			return fmt.Errorf("failed to check corpus %s: %w", c.Source, err)
		}
	}
	c.diagnostics = results
	c.checked = true
	return nil
}
