/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package workers

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/csdept/dept-portal/internal/sync/model"
	sysContext "github.com/csdept/dept-portal/internal/system/context"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/system/log"
)

// Job origins.
const (
	TriggerSchedule = "schedule"
	TriggerStartup  = "startup"
)

// SyncJob asks the worker to reconcile one entity type, or everything.
type SyncJob struct {
	Entity  string
	Trigger string
}

// SyncRunner executes a reconciliation.
type SyncRunner interface {
	Sync(ctx context.Context, entity string) (*model.SyncResult, error)
}

// A single slot: one job may wait while another runs. Further jobs are dropped.
const defaultQueueSize = 1

// SyncWorker runs queued sync jobs one after another in the background.
type SyncWorker struct {
	runner    SyncRunner
	queue     chan SyncJob
	startOnce sync.Once
	done      chan struct{}
}

func NewSyncWorker(runner SyncRunner) *SyncWorker {
	return &SyncWorker{
		runner: runner,
		queue:  make(chan SyncJob, defaultQueueSize),
		done:   make(chan struct{}),
	}
}

// Start launches the worker goroutine. It stops when ctx is cancelled.
// This function can be called multiple times safely; it will only start once.
func (w *SyncWorker) Start(ctx context.Context) {
	w.startOnce.Do(func() {
		go func() {
			defer close(w.done)
			for {
				select {
				case <-ctx.Done():
					return
				case job := <-w.queue:
					w.process(ctx, job)
				}
			}
		}()
	})
}

// Done is closed once the worker goroutine has exited.
func (w *SyncWorker) Done() <-chan struct{} {
	return w.done
}

// Enqueue adds a job without blocking. Returns false if a job is already waiting.
func (w *SyncWorker) Enqueue(job SyncJob) bool {
	select {
	case w.queue <- job:
		return true
	default:
		log.GetLogger().Warn(fmt.Sprintf("A sync job is already pending. Dropping %s job for '%s'.",
			job.Trigger, job.Entity))
		return false
	}
}

func (w *SyncWorker) process(ctx context.Context, job SyncJob) {

	traceID := sysContext.GenerateTraceID()
	logger := log.GetLogger().With(log.String("traceId", traceID), log.String("trigger", job.Trigger))
	logger.Info(fmt.Sprintf("Processing sync job for '%s'", job.Entity))

	_, err := w.runner.Sync(sysContext.WithTraceID(ctx, traceID), job.Entity)
	if err == nil {
		logger.Info(fmt.Sprintf("Sync job for '%s' completed", job.Entity))
		return
	}
	if errors2.StatusCode(err) == http.StatusConflict {
		logger.Warn("Skipping sync job, another synchronization is running")
		return
	}
	logger.Error(fmt.Sprintf("Sync job for '%s' failed", job.Entity), log.Error(err))
}
