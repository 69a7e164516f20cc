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

package schedulers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/csdept/dept-portal/internal/sync/model"
	"github.com/csdept/dept-portal/internal/system/config"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/system/log"
	"github.com/csdept/dept-portal/internal/system/workers"
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday accepts full english day names, case-insensitive.
func ParseWeekday(name string) (time.Weekday, error) {
	day, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return time.Sunday, scheduleError(fmt.Sprintf("Unknown weekday '%s'.", name))
	}
	return day, nil
}

// NextRun returns the first instant strictly after now that falls on the given weekday, hour and minute,
// in now's location.
func NextRun(now time.Time, day time.Weekday, hour, minute int) time.Time {
	candidate := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	offset := (int(day) - int(now.Weekday()) + 7) % 7
	candidate = candidate.AddDate(0, 0, offset)
	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, 7)
	}
	return candidate
}

// Enqueuer accepts sync jobs without blocking.
type Enqueuer interface {
	Enqueue(job workers.SyncJob) bool
}

// WeeklySyncScheduler fires a full sync once a week.
type WeeklySyncScheduler struct {
	day    time.Weekday
	hour   int
	minute int
	queue  Enqueuer
	now    func() time.Time
}

func NewWeeklySyncScheduler(cfg config.ScheduleConfig, queue Enqueuer) (*WeeklySyncScheduler, error) {
	day, err := ParseWeekday(cfg.Weekday)
	if err != nil {
		return nil, err
	}
	if cfg.Hour < 0 || cfg.Hour > 23 || cfg.Minute < 0 || cfg.Minute > 59 {
		return nil, scheduleError(fmt.Sprintf("Invalid sync schedule time %02d:%02d.", cfg.Hour, cfg.Minute))
	}
	return &WeeklySyncScheduler{
		day:    day,
		hour:   cfg.Hour,
		minute: cfg.Minute,
		queue:  queue,
		now:    time.Now,
	}, nil
}

// Start runs the timer loop until ctx is cancelled.
func (s *WeeklySyncScheduler) Start(ctx context.Context) {
	go func() {
		logger := log.GetLogger()
		for {
			now := s.now()
			next := NextRun(now, s.day, s.hour, s.minute)
			logger.Info("Next scheduled BRS sync", log.String("at", next.Format(time.RFC3339)))

			timer := time.NewTimer(next.Sub(now))
			select {
			case <-ctx.Done():
				timer.Stop()
				logger.Info("Weekly sync scheduler stopped")
				return
			case <-timer.C:
				s.queue.Enqueue(workers.SyncJob{Entity: model.EntityAll, Trigger: workers.TriggerSchedule})
			}
		}
	}()
}

func scheduleError(description string) error {
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.INVALID_SCHEDULE.Code,
		Message:     errors2.INVALID_SCHEDULE.Message,
		Description: description,
	}, errors.New(description))
}
