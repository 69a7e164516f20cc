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

	"github.com/csdept/dept-portal/internal/subject/model"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	teacherModel "github.com/csdept/dept-portal/internal/teacher/model"
)

type memSubjects struct {
	subjects map[int64]model.Subject
}

func (m *memSubjects) FindByID(_ context.Context, id int64) (*model.Subject, error) {
	if s, ok := m.subjects[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (m *memSubjects) FindByBrsID(context.Context, int64) (*model.Subject, error) { return nil, nil }

func (m *memSubjects) ListAll(context.Context) ([]model.Subject, error) {
	out := make([]model.Subject, 0, len(m.subjects))
	for _, s := range m.subjects {
		out = append(out, s)
	}
	return out, nil
}

func (m *memSubjects) Upsert(context.Context, *model.Subject) error  { return nil }
func (m *memSubjects) DeleteByIDs(context.Context, []int64) error    { return nil }
func (m *memSubjects) DeleteAll(context.Context) error               { return nil }

type teachersBySubject map[int64][]teacherModel.SubjectTeacher

func (t teachersBySubject) ListBySubject(_ context.Context, id int64) ([]teacherModel.SubjectTeacher, error) {
	return t[id], nil
}

func TestListSubjectTeachers(t *testing.T) {
	subjects := &memSubjects{subjects: map[int64]model.Subject{1: {ID: 1, BrsID: 11, Name: "Algebra"}}}
	lookup := teachersBySubject{1: {
		{ID: 5, Surname: "Ivanov", IsPractice: false},
		{ID: 5, Surname: "Ivanov", IsPractice: true},
	}}
	svc := NewSubjectService(subjects, lookup)

	teachers, err := svc.ListSubjectTeachers(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, teachers, 2)

	_, err = svc.ListSubjectTeachers(context.Background(), 2)
	var clientError *errors2.ClientError
	require.True(t, errors.As(err, &clientError))
	assert.Equal(t, http.StatusNotFound, clientError.StatusCode)
}
