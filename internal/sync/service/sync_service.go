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

package service

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	unitModel "github.com/csdept/dept-portal/internal/curriculum_unit/model"
	linkModel "github.com/csdept/dept-portal/internal/link/model"
	subjectModel "github.com/csdept/dept-portal/internal/subject/model"
	groupModel "github.com/csdept/dept-portal/internal/stud_group/model"
	"github.com/csdept/dept-portal/internal/sync/model"
	"github.com/csdept/dept-portal/internal/sync/store"
	"github.com/csdept/dept-portal/internal/system/config"
	sysContext "github.com/csdept/dept-portal/internal/system/context"
	"github.com/csdept/dept-portal/internal/system/database/lock"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/system/log"
	teacherModel "github.com/csdept/dept-portal/internal/teacher/model"
)

// SourceClient is the read side of BRS.
type SourceClient interface {
	FetchTeachers(ctx context.Context) ([]teacherModel.Teacher, error)
	FetchSubjects(ctx context.Context) ([]subjectModel.Subject, error)
	FetchStudGroups(ctx context.Context) ([]groupModel.StudGroup, error)
	FetchCurriculumUnits(ctx context.Context) ([]unitModel.CurriculumUnit, error)
}

type SyncServiceInterface interface {
	SyncAll(ctx context.Context) (*model.SyncResult, error)
	SyncTeachers(ctx context.Context) (*model.SyncResult, error)
	SyncSubjects(ctx context.Context) (*model.SyncResult, error)
	SyncStudGroups(ctx context.Context) (*model.SyncResult, error)
	SyncCurriculumUnits(ctx context.Context) (*model.SyncResult, error)
	Sync(ctx context.Context, entity string) (*model.SyncResult, error)
	Status() model.RunStatus
}

// SyncService reconciles the local mirror with BRS. Every run fetches before it mutates and
// applies all mutations in one transaction. Runs never overlap.
type SyncService struct {
	icons   config.IconsConfig
	source  SourceClient
	txm     store.TxManagerInterface
	runLock lock.RunLock

	hooksMu sync.Mutex
	hooks   []func()

	statusMu sync.RWMutex
	status   model.RunStatus

	now func() time.Time
}

func NewSyncService(icons config.IconsConfig, source SourceClient, txm store.TxManagerInterface,
	runLock lock.RunLock) *SyncService {

	return &SyncService{
		icons:   icons,
		source:  source,
		txm:     txm,
		runLock: runLock,
		now:     time.Now,
	}
}

// OnSynced registers fn to run after every committed run.
func (s *SyncService) OnSynced(fn func()) {
	s.hooksMu.Lock()
	defer s.hooksMu.Unlock()
	s.hooks = append(s.hooks, fn)
}

func (s *SyncService) Status() model.RunStatus {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}

// Sync dispatches by entity name: "all" is a full replace, the rest are incremental.
func (s *SyncService) Sync(ctx context.Context, entity string) (*model.SyncResult, error) {
	switch entity {
	case model.EntityAll:
		return s.SyncAll(ctx)
	case model.EntityTeachers:
		return s.SyncTeachers(ctx)
	case model.EntitySubjects:
		return s.SyncSubjects(ctx)
	case model.EntityStudGroups:
		return s.SyncStudGroups(ctx)
	case model.EntityCurriculumUnits:
		return s.SyncCurriculumUnits(ctx)
	}
	return nil, errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.BAD_REQUEST.Code,
		Message:     errors2.BAD_REQUEST.Message,
		Description: fmt.Sprintf("Unknown sync target '%s'.", entity),
	}, http.StatusBadRequest)
}

type fetchedMirror struct {
	teachers []teacherModel.Teacher
	subjects []subjectModel.Subject
	groups   []groupModel.StudGroup
	units    []unitModel.CurriculumUnit
}

// SyncAll replaces the whole mirror with the current BRS state.
func (s *SyncService) SyncAll(ctx context.Context) (*model.SyncResult, error) {

	return s.run(ctx, model.EntityAll, model.PolicyFullReplace, func(ctx context.Context, result *model.SyncResult) error {
		fetched, err := s.fetchAll(ctx)
		if err != nil {
			return err
		}
		return s.txm.WithinTx(ctx, func(ctx context.Context, repos store.Repositories) error {
			return s.replaceAll(ctx, repos, fetched, result)
		})
	})
}

func (s *SyncService) fetchAll(ctx context.Context) (*fetchedMirror, error) {

	teachers, err := s.source.FetchTeachers(ctx)
	if err != nil {
		return nil, err
	}
	subjects, err := s.source.FetchSubjects(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := s.source.FetchStudGroups(ctx)
	if err != nil {
		return nil, err
	}
	units, err := s.source.FetchCurriculumUnits(ctx)
	if err != nil {
		return nil, err
	}
	return &fetchedMirror{teachers: teachers, subjects: subjects, groups: groups, units: units}, nil
}

func (s *SyncService) replaceAll(ctx context.Context, repos store.Repositories, fetched *fetchedMirror,
	result *model.SyncResult) error {

	existing, err := repos.Teachers.ListAll(ctx)
	if err != nil {
		return err
	}
	icons := make(map[int64]string)
	mirrored := make([]int64, 0, len(existing))
	for _, t := range existing {
		if t.BrsID == nil {
			continue
		}
		mirrored = append(mirrored, t.ID)
		if t.Icon != nil {
			icons[*t.BrsID] = *t.Icon
		}
	}

	if err := repos.Links.DeleteAll(ctx); err != nil {
		return err
	}
	if err := repos.Units.DeleteAll(ctx); err != nil {
		return err
	}
	if err := repos.StudGroups.DeleteAll(ctx); err != nil {
		return err
	}
	if err := repos.Subjects.DeleteAll(ctx); err != nil {
		return err
	}
	// Teachers created by an administrator have no brs_id and are not part of the mirror.
	if err := repos.Teachers.DeleteByIDs(ctx, mirrored); err != nil {
		return err
	}

	teacherIDs := make(map[int64]int64, len(fetched.teachers))
	for _, t := range fetched.teachers {
		if icon, ok := icons[*t.BrsID]; ok {
			t.Icon = &icon
		} else if t.Icon == nil {
			t.Icon = s.defaultIcon(t.Gender)
		}
		if err := repos.Teachers.Upsert(ctx, &t); err != nil {
			return err
		}
		teacherIDs[*t.BrsID] = t.ID
	}
	result.Teachers = len(teacherIDs)

	if result.Subjects, err = upsertSubjects(ctx, repos, fetched.subjects); err != nil {
		return err
	}
	if result.StudGroups, err = upsertStudGroups(ctx, repos, fetched.groups); err != nil {
		return err
	}
	units, err := upsertUnits(ctx, repos, fetched.units)
	if err != nil {
		return err
	}
	result.CurriculumUnits = len(units)

	result.Links, err = addLinks(ctx, repos, units, teacherIDs)
	return err
}

// SyncTeachers upserts the fetched teachers and drops the links of teachers BRS no longer lists.
func (s *SyncService) SyncTeachers(ctx context.Context) (*model.SyncResult, error) {

	return s.run(ctx, model.EntityTeachers, model.PolicyIncremental, func(ctx context.Context, result *model.SyncResult) error {
		fetched, err := s.source.FetchTeachers(ctx)
		if err != nil {
			return err
		}
		return s.txm.WithinTx(ctx, func(ctx context.Context, repos store.Repositories) error {
			teacherIDs := make(map[int64]int64, len(fetched))
			for _, t := range fetched {
				if t.Icon == nil {
					t.Icon = s.defaultIcon(t.Gender)
				}
				if err := repos.Teachers.Upsert(ctx, &t); err != nil {
					return err
				}
				teacherIDs[*t.BrsID] = t.ID
			}
			result.Teachers = len(teacherIDs)

			existing, err := repos.Teachers.ListAll(ctx)
			if err != nil {
				return err
			}
			var absent []int64
			for _, t := range existing {
				if t.BrsID == nil {
					continue
				}
				if _, ok := teacherIDs[*t.BrsID]; !ok {
					absent = append(absent, t.ID)
				}
			}
			if err := repos.Links.DeleteByTeacherIDs(ctx, absent); err != nil {
				return err
			}

			units, err := repos.Units.ListAll(ctx)
			if err != nil {
				return err
			}
			result.Links, err = addLinks(ctx, repos, units, teacherIDs)
			return err
		})
	})
}

func (s *SyncService) SyncSubjects(ctx context.Context) (*model.SyncResult, error) {

	return s.run(ctx, model.EntitySubjects, model.PolicyIncremental, func(ctx context.Context, result *model.SyncResult) error {
		fetched, err := s.source.FetchSubjects(ctx)
		if err != nil {
			return err
		}
		return s.txm.WithinTx(ctx, func(ctx context.Context, repos store.Repositories) error {
			result.Subjects, err = upsertSubjects(ctx, repos, fetched)
			return err
		})
	})
}

func (s *SyncService) SyncStudGroups(ctx context.Context) (*model.SyncResult, error) {

	return s.run(ctx, model.EntityStudGroups, model.PolicyIncremental, func(ctx context.Context, result *model.SyncResult) error {
		fetched, err := s.source.FetchStudGroups(ctx)
		if err != nil {
			return err
		}
		return s.txm.WithinTx(ctx, func(ctx context.Context, repos store.Repositories) error {
			result.StudGroups, err = upsertStudGroups(ctx, repos, fetched)
			return err
		})
	})
}

// SyncCurriculumUnits upserts the fetched units and rebuilds their links. Links of units BRS no
// longer lists are dropped.
func (s *SyncService) SyncCurriculumUnits(ctx context.Context) (*model.SyncResult, error) {

	return s.run(ctx, model.EntityCurriculumUnits, model.PolicyIncremental, func(ctx context.Context, result *model.SyncResult) error {
		fetched, err := s.source.FetchCurriculumUnits(ctx)
		if err != nil {
			return err
		}
		return s.txm.WithinTx(ctx, func(ctx context.Context, repos store.Repositories) error {
			existing, err := repos.Units.ListAll(ctx)
			if err != nil {
				return err
			}
			units, err := upsertUnits(ctx, repos, fetched)
			if err != nil {
				return err
			}
			result.CurriculumUnits = len(units)

			current := make(map[int64]bool, len(units))
			refreshed := make([]int64, 0, len(units))
			for _, u := range units {
				current[u.BrsID] = true
				refreshed = append(refreshed, u.ID)
			}
			var absent []int64
			for _, u := range existing {
				if !current[u.BrsID] {
					absent = append(absent, u.ID)
				}
			}
			if err := repos.Links.DeleteByUnitIDs(ctx, absent); err != nil {
				return err
			}
			if err := repos.Links.DeleteByUnitIDs(ctx, refreshed); err != nil {
				return err
			}

			teachers, err := repos.Teachers.ListAll(ctx)
			if err != nil {
				return err
			}
			teacherIDs := make(map[int64]int64, len(teachers))
			for _, t := range teachers {
				if t.BrsID != nil {
					teacherIDs[*t.BrsID] = t.ID
				}
			}
			result.Links, err = addLinks(ctx, repos, units, teacherIDs)
			return err
		})
	})
}

// run serializes reconciliations and records their outcome.
func (s *SyncService) run(ctx context.Context, entity, policy string,
	body func(ctx context.Context, result *model.SyncResult) error) (*model.SyncResult, error) {

	release, acquired, err := s.runLock.TryAcquire(ctx)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.SYNC_IN_PROGRESS.Code,
			Message:     errors2.SYNC_IN_PROGRESS.Message,
			Description: "Another synchronization is running. Try again later.",
		}, http.StatusConflict)
	}
	defer release()

	result := &model.SyncResult{
		RunID:     sysContext.GetOrGenerateTraceID(ctx),
		Entity:    entity,
		Policy:    policy,
		StartedAt: s.now(),
	}
	logger := log.GetLogger().With(log.String("runId", result.RunID), log.String("entity", entity))
	logger.Info(fmt.Sprintf("Starting %s synchronization", policy))

	err = body(ctx, result)
	result.FinishedAt = s.now()
	s.record(result, err)
	if err != nil {
		logger.Error("Synchronization failed, no changes were applied", log.Error(err))
		return nil, err
	}

	logger.Info("Synchronization committed",
		log.Int("teachers", result.Teachers),
		log.Int("subjects", result.Subjects),
		log.Int("studGroups", result.StudGroups),
		log.Int("curriculumUnits", result.CurriculumUnits),
		log.Int("links", result.Links),
		log.Duration("took", result.FinishedAt.Sub(result.StartedAt)))

	action := log.ActionSyncIncremental
	if policy == model.PolicyFullReplace {
		action = log.ActionSyncAll
	}
	logger.Audit(log.AuditEvent{
		InitiatorID:   "brs-sync",
		InitiatorType: log.InitiatorTypeSystem,
		TargetID:      entity,
		TargetType:    log.TargetTypeMirror,
		ActionID:      action,
		TraceID:       result.RunID,
		Data:          result,
	})

	s.hooksMu.Lock()
	hooks := append([]func(){}, s.hooks...)
	s.hooksMu.Unlock()
	for _, hook := range hooks {
		hook()
	}
	return result, nil
}

func (s *SyncService) record(result *model.SyncResult, err error) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	attempt := result.FinishedAt
	s.status.LastAttempt = &attempt
	if err != nil {
		s.status.LastError = err.Error()
		return
	}
	s.status.LastError = ""
	s.status.LastSuccess = result
}

// defaultIcon is the icon given to a teacher seen for the first time without one.
func (s *SyncService) defaultIcon(gender string) *string {
	return teacherModel.DefaultIcon(s.icons.DefaultMale, s.icons.DefaultFemale, gender)
}

func upsertSubjects(ctx context.Context, repos store.Repositories, subjects []subjectModel.Subject) (int, error) {
	seen := make(map[int64]bool, len(subjects))
	for _, subject := range subjects {
		if err := repos.Subjects.Upsert(ctx, &subject); err != nil {
			return 0, err
		}
		seen[subject.BrsID] = true
	}
	return len(seen), nil
}

func upsertStudGroups(ctx context.Context, repos store.Repositories, groups []groupModel.StudGroup) (int, error) {
	seen := make(map[int64]bool, len(groups))
	for _, group := range groups {
		if err := repos.StudGroups.Upsert(ctx, &group); err != nil {
			return 0, err
		}
		seen[group.BrsID] = true
	}
	return len(seen), nil
}

// upsertUnits stores every fetched unit and returns the stored state, one entry per brs_id.
// When BRS repeats a brs_id the last record wins.
func upsertUnits(ctx context.Context, repos store.Repositories,
	units []unitModel.CurriculumUnit) ([]unitModel.CurriculumUnit, error) {

	index := make(map[int64]int, len(units))
	stored := make([]unitModel.CurriculumUnit, 0, len(units))
	for _, unit := range units {
		if err := repos.Units.Upsert(ctx, &unit); err != nil {
			return nil, err
		}
		if i, ok := index[unit.BrsID]; ok {
			stored[i] = unit
			continue
		}
		index[unit.BrsID] = len(stored)
		stored = append(stored, unit)
	}
	return stored, nil
}

// addLinks inserts the primary and practice links of each unit whose teacher ids resolve through
// teacherIDs (brs_id to local id). Unresolved ids are skipped.
func addLinks(ctx context.Context, repos store.Repositories, units []unitModel.CurriculumUnit,
	teacherIDs map[int64]int64) (int, error) {

	seen := make(map[linkModel.Link]bool)
	insert := func(link linkModel.Link) error {
		if seen[link] {
			return nil
		}
		seen[link] = true
		return repos.Links.Insert(ctx, link)
	}

	for _, unit := range units {
		if unit.TeacherBrsID != nil {
			if teacherID, ok := teacherIDs[*unit.TeacherBrsID]; ok {
				if err := insert(linkModel.Link{TeacherID: teacherID, CurriculumUnitID: unit.ID}); err != nil {
					return 0, err
				}
			}
		}
		for _, brsID := range unit.PracticeTeacherBrsIDs {
			teacherID, ok := teacherIDs[brsID]
			if !ok {
				continue
			}
			link := linkModel.Link{TeacherID: teacherID, CurriculumUnitID: unit.ID, IsPractice: true}
			if err := insert(link); err != nil {
				return 0, err
			}
		}
	}
	return len(seen), nil
}
