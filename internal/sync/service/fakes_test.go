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
	"sort"

	unitModel "github.com/csdept/dept-portal/internal/curriculum_unit/model"
	linkModel "github.com/csdept/dept-portal/internal/link/model"
	subjectModel "github.com/csdept/dept-portal/internal/subject/model"
	groupModel "github.com/csdept/dept-portal/internal/stud_group/model"
	"github.com/csdept/dept-portal/internal/sync/store"
	teacherModel "github.com/csdept/dept-portal/internal/teacher/model"
)

var errInjected = errors.New("injected failure")

// memState is an in-memory mirror. memTxManager runs each transaction on a copy and swaps it in
// only on success.
type memState struct {
	nextID   int64
	teachers map[int64]teacherModel.Teacher
	subjects map[int64]subjectModel.Subject
	groups   map[int64]groupModel.StudGroup
	units    map[int64]unitModel.CurriculumUnit
	links    map[linkModel.Link]bool

	failLinkInsertAt int
	linkInserts      int
}

func newMemState() *memState {
	return &memState{
		teachers: map[int64]teacherModel.Teacher{},
		subjects: map[int64]subjectModel.Subject{},
		groups:   map[int64]groupModel.StudGroup{},
		units:    map[int64]unitModel.CurriculumUnit{},
		links:    map[linkModel.Link]bool{},
	}
}

func (m *memState) clone() *memState {
	c := newMemState()
	c.nextID = m.nextID
	c.failLinkInsertAt = m.failLinkInsertAt
	for k, v := range m.teachers {
		c.teachers[k] = v
	}
	for k, v := range m.subjects {
		c.subjects[k] = v
	}
	for k, v := range m.groups {
		c.groups[k] = v
	}
	for k, v := range m.units {
		c.units[k] = v
	}
	for k, v := range m.links {
		c.links[k] = v
	}
	return c
}

func (m *memState) newID() int64 {
	m.nextID++
	return m.nextID
}

type memTxManager struct {
	state *memState
	calls int
}

func (t *memTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repos store.Repositories) error) error {
	t.calls++
	work := t.state.clone()
	if err := fn(ctx, reposFor(work)); err != nil {
		return err
	}
	work.linkInserts = 0
	t.state = work
	return nil
}

func reposFor(s *memState) store.Repositories {
	return store.Repositories{
		Teachers:   &memTeachers{s},
		Subjects:   &memSubjects{s},
		StudGroups: &memGroups{s},
		Units:      &memUnits{s},
		Links:      &memLinks{s},
	}
}

type memTeachers struct{ s *memState }

func (r *memTeachers) FindByID(_ context.Context, id int64) (*teacherModel.Teacher, error) {
	if t, ok := r.s.teachers[id]; ok {
		return &t, nil
	}
	return nil, nil
}

func (r *memTeachers) FindByBrsID(_ context.Context, brsID int64) (*teacherModel.Teacher, error) {
	for _, t := range r.s.teachers {
		if t.BrsID != nil && *t.BrsID == brsID {
			return &t, nil
		}
	}
	return nil, nil
}

func (r *memTeachers) FindByPersonID(_ context.Context, personID int64) (*teacherModel.Teacher, error) {
	for _, t := range r.s.teachers {
		if t.PersonID == personID {
			return &t, nil
		}
	}
	return nil, nil
}

func (r *memTeachers) FindByBrsIDs(ctx context.Context, brsIDs []int64) ([]teacherModel.Teacher, error) {
	out := []teacherModel.Teacher{}
	for _, id := range brsIDs {
		if t, _ := r.FindByBrsID(ctx, id); t != nil {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *memTeachers) ListAll(_ context.Context) ([]teacherModel.Teacher, error) {
	out := make([]teacherModel.Teacher, 0, len(r.s.teachers))
	for _, t := range r.s.teachers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memTeachers) Insert(_ context.Context, t *teacherModel.Teacher) error {
	t.ID = r.s.newID()
	r.s.teachers[t.ID] = *t
	return nil
}

func (r *memTeachers) Upsert(ctx context.Context, t *teacherModel.Teacher) error {
	existing, _ := r.FindByBrsID(ctx, *t.BrsID)
	if existing == nil {
		return r.Insert(ctx, t)
	}
	t.ID = existing.ID
	t.Icon = existing.Icon
	r.s.teachers[t.ID] = *t
	return nil
}

func (r *memTeachers) Update(_ context.Context, t *teacherModel.Teacher) error {
	r.s.teachers[t.ID] = *t
	return nil
}

func (r *memTeachers) UpdateIcon(_ context.Context, id int64, icon string) error {
	t := r.s.teachers[id]
	t.Icon = &icon
	r.s.teachers[id] = t
	return nil
}

func (r *memTeachers) DeleteByIDs(_ context.Context, ids []int64) error {
	for _, id := range ids {
		delete(r.s.teachers, id)
	}
	return nil
}

func (r *memTeachers) DeleteAll(_ context.Context) error {
	r.s.teachers = map[int64]teacherModel.Teacher{}
	return nil
}

func (r *memTeachers) ListSubjects(context.Context, int64) ([]teacherModel.TeacherSubject, error) {
	return nil, nil
}

func (r *memTeachers) ListBySubject(context.Context, int64) ([]teacherModel.SubjectTeacher, error) {
	return nil, nil
}

type memSubjects struct{ s *memState }

func (r *memSubjects) FindByID(_ context.Context, id int64) (*subjectModel.Subject, error) {
	if v, ok := r.s.subjects[id]; ok {
		return &v, nil
	}
	return nil, nil
}

func (r *memSubjects) FindByBrsID(_ context.Context, brsID int64) (*subjectModel.Subject, error) {
	for _, v := range r.s.subjects {
		if v.BrsID == brsID {
			return &v, nil
		}
	}
	return nil, nil
}

func (r *memSubjects) ListAll(_ context.Context) ([]subjectModel.Subject, error) {
	out := []subjectModel.Subject{}
	for _, v := range r.s.subjects {
		out = append(out, v)
	}
	return out, nil
}

func (r *memSubjects) Upsert(ctx context.Context, v *subjectModel.Subject) error {
	if existing, _ := r.FindByBrsID(ctx, v.BrsID); existing != nil {
		v.ID = existing.ID
	} else {
		v.ID = r.s.newID()
	}
	r.s.subjects[v.ID] = *v
	return nil
}

func (r *memSubjects) DeleteByIDs(_ context.Context, ids []int64) error {
	for _, id := range ids {
		delete(r.s.subjects, id)
	}
	return nil
}

func (r *memSubjects) DeleteAll(_ context.Context) error {
	r.s.subjects = map[int64]subjectModel.Subject{}
	return nil
}

type memGroups struct{ s *memState }

func (r *memGroups) FindByBrsID(_ context.Context, brsID int64) (*groupModel.StudGroup, error) {
	for _, v := range r.s.groups {
		if v.BrsID == brsID {
			return &v, nil
		}
	}
	return nil, nil
}

func (r *memGroups) ListAll(_ context.Context) ([]groupModel.StudGroup, error) {
	out := []groupModel.StudGroup{}
	for _, v := range r.s.groups {
		out = append(out, v)
	}
	return out, nil
}

func (r *memGroups) Upsert(ctx context.Context, v *groupModel.StudGroup) error {
	if existing, _ := r.FindByBrsID(ctx, v.BrsID); existing != nil {
		v.ID = existing.ID
	} else {
		v.ID = r.s.newID()
	}
	r.s.groups[v.ID] = *v
	return nil
}

func (r *memGroups) DeleteByIDs(_ context.Context, ids []int64) error {
	for _, id := range ids {
		delete(r.s.groups, id)
	}
	return nil
}

func (r *memGroups) DeleteAll(_ context.Context) error {
	r.s.groups = map[int64]groupModel.StudGroup{}
	return nil
}

type memUnits struct{ s *memState }

func (r *memUnits) FindByID(_ context.Context, id int64) (*unitModel.CurriculumUnit, error) {
	if v, ok := r.s.units[id]; ok {
		return &v, nil
	}
	return nil, nil
}

func (r *memUnits) FindByBrsID(_ context.Context, brsID int64) (*unitModel.CurriculumUnit, error) {
	for _, v := range r.s.units {
		if v.BrsID == brsID {
			return &v, nil
		}
	}
	return nil, nil
}

func (r *memUnits) ListAll(_ context.Context) ([]unitModel.CurriculumUnit, error) {
	out := []unitModel.CurriculumUnit{}
	for _, v := range r.s.units {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memUnits) Upsert(ctx context.Context, v *unitModel.CurriculumUnit) error {
	if existing, _ := r.FindByBrsID(ctx, v.BrsID); existing != nil {
		v.ID = existing.ID
	} else {
		v.ID = r.s.newID()
	}
	r.s.units[v.ID] = *v
	return nil
}

func (r *memUnits) DeleteByIDs(_ context.Context, ids []int64) error {
	for _, id := range ids {
		delete(r.s.units, id)
	}
	return nil
}

func (r *memUnits) DeleteAll(_ context.Context) error {
	r.s.units = map[int64]unitModel.CurriculumUnit{}
	return nil
}

type memLinks struct{ s *memState }

func (r *memLinks) Insert(_ context.Context, link linkModel.Link) error {
	r.s.linkInserts++
	if r.s.failLinkInsertAt > 0 && r.s.linkInserts >= r.s.failLinkInsertAt {
		return errInjected
	}
	r.s.links[link] = true
	return nil
}

func (r *memLinks) ListAll(_ context.Context) ([]linkModel.Link, error) {
	out := []linkModel.Link{}
	for l := range r.s.links {
		out = append(out, l)
	}
	return out, nil
}

func (r *memLinks) DeleteAll(_ context.Context) error {
	r.s.links = map[linkModel.Link]bool{}
	return nil
}

func (r *memLinks) DeleteByTeacherIDs(_ context.Context, ids []int64) error {
	for _, id := range ids {
		for l := range r.s.links {
			if l.TeacherID == id {
				delete(r.s.links, l)
			}
		}
	}
	return nil
}

func (r *memLinks) DeleteByUnitIDs(_ context.Context, ids []int64) error {
	for _, id := range ids {
		for l := range r.s.links {
			if l.CurriculumUnitID == id {
				delete(r.s.links, l)
			}
		}
	}
	return nil
}

type fakeSource struct {
	teachers []teacherModel.Teacher
	subjects []subjectModel.Subject
	groups   []groupModel.StudGroup
	units    []unitModel.CurriculumUnit
	unitsErr error
}

func (f *fakeSource) FetchTeachers(context.Context) ([]teacherModel.Teacher, error) {
	return append([]teacherModel.Teacher(nil), f.teachers...), nil
}

func (f *fakeSource) FetchSubjects(context.Context) ([]subjectModel.Subject, error) {
	return append([]subjectModel.Subject(nil), f.subjects...), nil
}

func (f *fakeSource) FetchStudGroups(context.Context) ([]groupModel.StudGroup, error) {
	return append([]groupModel.StudGroup(nil), f.groups...), nil
}

func (f *fakeSource) FetchCurriculumUnits(context.Context) ([]unitModel.CurriculumUnit, error) {
	if f.unitsErr != nil {
		return nil, f.unitsErr
	}
	return append([]unitModel.CurriculumUnit(nil), f.units...), nil
}

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

func teacher(brsID int64, gender string) teacherModel.Teacher {
	return teacherModel.Teacher{
		BrsID:     int64Ptr(brsID),
		Firstname: "First",
		Surname:   "Surname",
		Gender:    gender,
		Rank:      "docent",
		PersonID:  brsID * 10,
	}
}

func unit(brsID, teacherBrsID int64, practice ...int64) unitModel.CurriculumUnit {
	return unitModel.CurriculumUnit{
		BrsID:                 brsID,
		TeacherBrsID:          int64Ptr(teacherBrsID),
		SubjectBrsID:          int64Ptr(1),
		StudGroupBrsID:        int64Ptr(1),
		PracticeTeacherBrsIDs: practice,
		MarkType:              unitModel.DefaultMarkType,
	}
}
