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

package jobs

import (
	"context"
	"fmt"
	"sync"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Manager runs queued jobs using a fixed number of workers
// and keeps information about all of them.
type Manager struct {
	ctx           context.Context
	jobs          *collections.ConcurrentMap[string, CheckJobInfo]
	queue         JobQueue
	queueLock     sync.Mutex
	wakeup        chan struct{}
	maxConcurrent int
	printer       *message.Printer
	startOnce     sync.Once
}

func NewManager(ctx context.Context, maxConcurrent int, uiLang string) *Manager {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	tag, err := language.Parse(uiLang)
	if err != nil {
		tag = language.English
	}
	return &Manager{
		ctx:           ctx,
		jobs:          collections.NewConcurrentMap[string, CheckJobInfo](),
		wakeup:        make(chan struct{}, maxConcurrent),
		maxConcurrent: maxConcurrent,
		printer:       message.NewPrinter(tag),
	}
}

// Start launches the workers. Calling it repeatedly has no effect.
func (m *Manager) Start() {
	m.startOnce.Do(func() {
		for i := 0; i < m.maxConcurrent; i++ {
			go m.worker(i)
		}
		log.Info().Int("numWorkers", m.maxConcurrent).Msg("job manager started")
	})
}

// Submit enqueues a new check job
func (m *Manager) Submit(lang string, fn CheckFunc) CheckJobInfo {
	info := CheckJobInfo{
		ID:       uuid.New().String(),
		Type:     JobTypeCheck,
		Language: lang,
		Start:    CurrentDatetime(),
		Update:   CurrentDatetime(),
	}
	m.jobs.Set(info.ID, info)
	m.queueLock.Lock()
	m.queue.Enqueue(fn, info)
	m.queueLock.Unlock()
	select {
	case m.wakeup <- struct{}{}:
	default:
	}
	log.Info().Str("jobId", info.ID).Str("language", lang).Msg("check job submitted")
	return info
}

func (m *Manager) Get(jobID string) (CheckJobInfo, bool) {
	return m.jobs.GetWithTest(jobID)
}

// View returns a localized job info
func (m *Manager) View(info CheckJobInfo) CheckJobView {
	return info.FullInfo(m.printer)
}

func (m *Manager) NumQueued() int {
	m.queueLock.Lock()
	defer m.queueLock.Unlock()
	return m.queue.Size()
}

func (m *Manager) dequeue() (CheckFunc, CheckJobInfo, error) {
	m.queueLock.Lock()
	defer m.queueLock.Unlock()
	return m.queue.Dequeue()
}

func (m *Manager) worker(workerID int) {
	for {
		select {
		case <-m.ctx.Done():
			log.Debug().Int("workerId", workerID).Msg("job worker stopped")
			return
		case <-m.wakeup:
			for {
				fn, info, err := m.dequeue()
				if err == ErrorEmptyQueue {
					break
				}
				m.run(fn, info)
			}
		}
	}
}

func (m *Manager) run(fn CheckFunc, info CheckJobInfo) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("job panicked: %v", r)
			log.Error().Err(err).Str("jobId", info.ID).Msg("check job failed")
			m.jobs.Set(info.ID, info.WithError(err))
		}
	}()
	result, err := fn(m.ctx)
	if err != nil {
		log.Error().Err(err).Str("jobId", info.ID).Msg("check job failed")
		m.jobs.Set(info.ID, info.WithError(err))
		return
	}
	m.jobs.Set(info.ID, info.AsFinished(result))
	log.Info().Str("jobId", info.ID).Msg("check job finished")
}
