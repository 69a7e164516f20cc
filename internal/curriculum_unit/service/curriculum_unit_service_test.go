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
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csdept/dept-portal/internal/curriculum_unit/model"
	groupModel "github.com/csdept/dept-portal/internal/stud_group/model"
	subjectModel "github.com/csdept/dept-portal/internal/subject/model"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	teacherModel "github.com/csdept/dept-portal/internal/teacher/model"
)

type memUnits struct {
	units     []model.CurriculumUnit
	listCalls int
}

func (m *memUnits) FindByID(_ context.Context, id int64) (*model.CurriculumUnit, error) {
	for _, u := range m.units {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memUnits) FindByBrsID(_ context.Context, brsID int64) (*model.CurriculumUnit, error) {
	for _, u := range m.units {
		if u.BrsID == brsID {
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memUnits) ListAll(context.Context) ([]model.CurriculumUnit, error) {
	m.listCalls++
	return m.units, nil
}

func (m *memUnits) Upsert(context.Context, *model.CurriculumUnit) error { return nil }
func (m *memUnits) DeleteByIDs(context.Context, []int64) error        { return nil }
func (m *memUnits) DeleteAll(context.Context) error                   { return nil }

type memTeachers []teacherModel.Teacher

func (m memTeachers) ListAll(context.Context) ([]teacherModel.Teacher, error) { return m, nil }

func (m memTeachers) FindByBrsIDs(_ context.Context, brsIDs []int64) ([]teacherModel.Teacher, error) {
	want := make(map[int64]bool, len(brsIDs))
	for _, id := range brsIDs {
		want[id] = true
	}
	out := make([]teacherModel.Teacher, 0)
	for _, t := range m {
		if t.BrsID != nil && want[*t.BrsID] {
			out = append(out, t)
		}
	}
	return out, nil
}

type memSubjects []subjectModel.Subject

func (m memSubjects) ListAll(context.Context) ([]subjectModel.Subject, error) { return m, nil }

func (m memSubjects) FindByBrsID(_ context.Context, brsID int64) (*subjectModel.Subject, error) {
	for _, s := range m {
		if s.BrsID == brsID {
			return &s, nil
		}
	}
	return nil, nil
}

type memGroups []groupModel.StudGroup

func (m memGroups) ListAll(context.Context) ([]groupModel.StudGroup, error) { return m, nil }

func (m memGroups) FindByBrsID(_ context.Context, brsID int64) (*groupModel.StudGroup, error) {
	for _, g := range m {
		if g.BrsID == brsID {
			return &g, nil
		}
	}
	return nil, nil
}

func int64Ptr(v int64) *int64 { return &v }

func newFixture() (*CurriculumUnitService, *memUnits) {
	units := &memUnits{units: []model.CurriculumUnit{
		{ID: 1, BrsID: 100, TeacherBrsID: int64Ptr(5), SubjectBrsID: int64Ptr(20), StudGroupBrsID: int64Ptr(30),
			PracticeTeacherBrsIDs: []int64{7, 9}, MarkType: "exam"},
		{ID: 2, BrsID: 101, TeacherBrsID: int64Ptr(99), MarkType: "unspecified"},
	}}
	teachers := memTeachers{
		{ID: 50, BrsID: int64Ptr(5), Surname: "Lecturer"},
		{ID: 70, BrsID: int64Ptr(7), Surname: "Practice"},
	}
	subjects := memSubjects{{ID: 200, BrsID: 20, Name: "Algebra"}}
	groups := memGroups{{ID: 300, BrsID: 30, Course: 2, Semester: 3}}
	return NewCurriculumUnitService(units, teachers, subjects, groups), units
}

func TestListFullUnits_ResolvesReferences(t *testing.T) {
	svc, _ := newFixture()

	full, err := svc.ListFullUnits(context.Background())
	require.NoError(t, err)
	require.Len(t, full, 2)

	first := full[0]
	require.NotNil(t, first.Teacher)
	assert.Equal(t, int64(50), first.Teacher.ID)
	require.NotNil(t, first.Subject)
	assert.Equal(t, "Algebra", first.Subject.Name)
	require.NotNil(t, first.StudGroup)
	assert.Equal(t, 2, first.StudGroup.Course)
	require.Len(t, first.PracticeTeachers, 1, "unresolved practice teacher 9 is omitted")
	assert.Equal(t, int64(70), first.PracticeTeachers[0].ID)

	second := full[1]
	assert.Nil(t, second.Teacher)
	assert.Nil(t, second.Subject)
	assert.NotNil(t, second.PracticeTeachers)
}

func TestListFullUnits_CachedUntilInvalidated(t *testing.T) {
	svc, units := newFixture()
	ctx := context.Background()

	_, err := svc.ListFullUnits(ctx)
	require.NoError(t, err)
	_, err = svc.ListFullUnits(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, units.listCalls)

	svc.InvalidateCache()
	_, err = svc.ListFullUnits(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, units.listCalls)
}

func TestGetFullUnit(t *testing.T) {
	svc, _ := newFixture()
	ctx := context.Background()

	byID, err := svc.GetFullUnit(ctx, 1)
	require.NoError(t, err)
	byBrs, err := svc.GetFullUnitByBrsID(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, byID, byBrs)
	assert.Equal(t, "exam", byID.MarkType)
	assert.Len(t, byID.PracticeTeachers, 1)

	_, err = svc.GetFullUnitByBrsID(ctx, 404)
	var clientError *errors2.ClientError
	require.True(t, errors.As(err, &clientError))
	assert.Equal(t, http.StatusNotFound, clientError.StatusCode)
	assert.Equal(t, errors2.CURRICULUM_UNIT_NOT_FOUND.Code, clientError.Code)
}
