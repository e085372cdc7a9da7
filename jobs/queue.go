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
	"errors"

	"gaelcheck/report"
)

var (
	ErrorEmptyQueue = errors.New("empty queue")
)

// CheckFunc performs the actual work of a job
type CheckFunc = func(ctx context.Context) (*report.Report, error)

type jobEntry struct {
	next         *jobEntry
	job          CheckFunc
	initialState CheckJobInfo
}

// JobQueue is a FIFO of pending jobs. It is not synchronized.
type JobQueue struct {
	firstEntry *jobEntry
	lastEntry  *jobEntry
	size       int
}

func (jq *JobQueue) Size() int {
	return jq.size
}

func (jq *JobQueue) Enqueue(item CheckFunc, initialState CheckJobInfo) {
	entry := &jobEntry{
		job:          item,
		initialState: initialState,
	}
	if jq.firstEntry == nil {
		jq.firstEntry = entry
	}
	if jq.lastEntry != nil {
		jq.lastEntry.next = entry
	}
	jq.lastEntry = entry
	jq.size++
}

func (jq *JobQueue) Dequeue() (CheckFunc, CheckJobInfo, error) {
	ret := jq.firstEntry
	if ret == nil {
		return nil, CheckJobInfo{}, ErrorEmptyQueue
	}
	jq.firstEntry = ret.next
	if jq.firstEntry == nil {
		jq.lastEntry = nil
	}
	jq.size--
	return ret.job, ret.initialState, nil
}

func (jq *JobQueue) PeekID() (string, error) {
	if jq.firstEntry == nil {
		return "", ErrorEmptyQueue
	}
	return jq.firstEntry.initialState.ID, nil
}
