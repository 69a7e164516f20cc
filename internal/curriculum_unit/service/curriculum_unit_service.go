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

	"github.com/csdept/dept-portal/internal/curriculum_unit/model"
	"github.com/csdept/dept-portal/internal/curriculum_unit/store"
	groupModel "github.com/csdept/dept-portal/internal/stud_group/model"
	subjectModel "github.com/csdept/dept-portal/internal/subject/model"
	"github.com/csdept/dept-portal/internal/system/cache"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/system/log"
	teacherModel "github.com/csdept/dept-portal/internal/teacher/model"
)

const fullUnitsCacheKey = "units:full"

type CurriculumUnitServiceInterface interface {
	ListUnits(ctx context.Context) ([]model.CurriculumUnit, error)
	ListFullUnits(ctx context.Context) ([]model.CurriculumUnitFull, error)
	GetUnitByBrsID(ctx context.Context, brsID int64) (*model.CurriculumUnit, error)
	GetFullUnit(ctx context.Context, id int64) (*model.CurriculumUnitFull, error)
	GetFullUnitByBrsID(ctx context.Context, brsID int64) (*model.CurriculumUnitFull, error)
	InvalidateCache()
}

type TeacherReader interface {
	ListAll(ctx context.Context) ([]teacherModel.Teacher, error)
	FindByBrsIDs(ctx context.Context, brsIDs []int64) ([]teacherModel.Teacher, error)
}

type SubjectReader interface {
	ListAll(ctx context.Context) ([]subjectModel.Subject, error)
	FindByBrsID(ctx context.Context, brsID int64) (*subjectModel.Subject, error)
}

type StudGroupReader interface {
	ListAll(ctx context.Context) ([]groupModel.StudGroup, error)
	FindByBrsID(ctx context.Context, brsID int64) (*groupModel.StudGroup, error)
}

// CurriculumUnitService serves units and their resolved views. The full list is cached until the
// next sync.
type CurriculumUnitService struct {
	units    store.CurriculumUnitStoreInterface
	teachers TeacherReader
	subjects SubjectReader
	groups   StudGroupReader
	cache    *cache.Cache[[]model.CurriculumUnitFull]
}

func NewCurriculumUnitService(units store.CurriculumUnitStoreInterface, teachers TeacherReader,
	subjects SubjectReader, groups StudGroupReader) *CurriculumUnitService {

	return &CurriculumUnitService{
		units:    units,
		teachers: teachers,
		subjects: subjects,
		groups:   groups,
		cache:    cache.NewCache[[]model.CurriculumUnitFull](0),
	}
}

func (s *CurriculumUnitService) ListUnits(ctx context.Context) ([]model.CurriculumUnit, error) {
	return s.units.ListAll(ctx)
}

func (s *CurriculumUnitService) ListFullUnits(ctx context.Context) ([]model.CurriculumUnitFull, error) {

	if cached, ok := s.cache.Get(fullUnitsCacheKey); ok {
		return cached, nil
	}

	units, err := s.units.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	teachers, err := s.teachers.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	subjects, err := s.subjects.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := s.groups.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	teacherByBrs := make(map[int64]teacherModel.Teacher, len(teachers))
	for _, t := range teachers {
		if t.BrsID != nil {
			teacherByBrs[*t.BrsID] = t
		}
	}
	subjectByBrs := make(map[int64]subjectModel.Subject, len(subjects))
	for _, subject := range subjects {
		subjectByBrs[subject.BrsID] = subject
	}
	groupByBrs := make(map[int64]groupModel.StudGroup, len(groups))
	for _, group := range groups {
		groupByBrs[group.BrsID] = group
	}

	full := make([]model.CurriculumUnitFull, 0, len(units))
	for _, unit := range units {
		view := newFullView(unit)
		if unit.TeacherBrsID != nil {
			if t, ok := teacherByBrs[*unit.TeacherBrsID]; ok {
				view.Teacher = &t
			}
		}
		if unit.SubjectBrsID != nil {
			if subject, ok := subjectByBrs[*unit.SubjectBrsID]; ok {
				view.Subject = &subject
			}
		}
		if unit.StudGroupBrsID != nil {
			if group, ok := groupByBrs[*unit.StudGroupBrsID]; ok {
				view.StudGroup = &group
			}
		}
		for _, brsID := range unit.PracticeTeacherBrsIDs {
			if t, ok := teacherByBrs[brsID]; ok {
				view.PracticeTeachers = append(view.PracticeTeachers, t)
			}
		}
		full = append(full, view)
	}

	s.cache.Set(fullUnitsCacheKey, full)
	log.GetLogger().Debug("Built full curriculum unit views", log.Int("count", len(full)))
	return full, nil
}

func (s *CurriculumUnitService) GetUnitByBrsID(ctx context.Context, brsID int64) (*model.CurriculumUnit, error) {

	unit, err := s.units.FindByBrsID(ctx, brsID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, notFound(fmt.Sprintf("No curriculum unit found with brs_id %d.", brsID))
	}
	return unit, nil
}

func (s *CurriculumUnitService) GetFullUnit(ctx context.Context, id int64) (*model.CurriculumUnitFull, error) {

	unit, err := s.units.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, notFound(fmt.Sprintf("No curriculum unit found with id %d.", id))
	}
	return s.resolve(ctx, *unit)
}

func (s *CurriculumUnitService) GetFullUnitByBrsID(ctx context.Context, brsID int64) (*model.CurriculumUnitFull, error) {

	unit, err := s.GetUnitByBrsID(ctx, brsID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, *unit)
}

// InvalidateCache drops the cached full list. Registered as a post-sync hook.
func (s *CurriculumUnitService) InvalidateCache() {
	s.cache.Clear()
}

func (s *CurriculumUnitService) resolve(ctx context.Context, unit model.CurriculumUnit) (*model.CurriculumUnitFull, error) {

	view := newFullView(unit)

	brsIDs := make([]int64, 0, len(unit.PracticeTeacherBrsIDs)+1)
	if unit.TeacherBrsID != nil {
		brsIDs = append(brsIDs, *unit.TeacherBrsID)
	}
	brsIDs = append(brsIDs, unit.PracticeTeacherBrsIDs...)
	teachers, err := s.teachers.FindByBrsIDs(ctx, brsIDs)
	if err != nil {
		return nil, err
	}
	teacherByBrs := make(map[int64]teacherModel.Teacher, len(teachers))
	for _, t := range teachers {
		teacherByBrs[*t.BrsID] = t
	}
	if unit.TeacherBrsID != nil {
		if t, ok := teacherByBrs[*unit.TeacherBrsID]; ok {
			view.Teacher = &t
		}
	}
	for _, brsID := range unit.PracticeTeacherBrsIDs {
		if t, ok := teacherByBrs[brsID]; ok {
			view.PracticeTeachers = append(view.PracticeTeachers, t)
		}
	}

	if unit.SubjectBrsID != nil {
		if view.Subject, err = s.subjects.FindByBrsID(ctx, *unit.SubjectBrsID); err != nil {
			return nil, err
		}
	}
	if unit.StudGroupBrsID != nil {
		if view.StudGroup, err = s.groups.FindByBrsID(ctx, *unit.StudGroupBrsID); err != nil {
			return nil, err
		}
	}
	return &view, nil
}

func newFullView(unit model.CurriculumUnit) model.CurriculumUnitFull {
	return model.CurriculumUnitFull{
		ID:               unit.ID,
		BrsID:            unit.BrsID,
		MarkType:         unit.MarkType,
		PracticeTeachers: make([]teacherModel.Teacher, 0, len(unit.PracticeTeacherBrsIDs)),
	}
}

func notFound(description string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.CURRICULUM_UNIT_NOT_FOUND.Code,
		Message:     errors2.CURRICULUM_UNIT_NOT_FOUND.Message,
		Description: description,
	}, http.StatusNotFound)
}
