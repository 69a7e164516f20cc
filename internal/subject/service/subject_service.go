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

	"github.com/csdept/dept-portal/internal/subject/model"
	"github.com/csdept/dept-portal/internal/subject/store"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	teacherModel "github.com/csdept/dept-portal/internal/teacher/model"
)

type SubjectServiceInterface interface {
	ListSubjects(ctx context.Context) ([]model.Subject, error)
	ListSubjectTeachers(ctx context.Context, id int64) ([]teacherModel.SubjectTeacher, error)
}

// TeacherLookup resolves the teachers linked to a subject.
type TeacherLookup interface {
	ListBySubject(ctx context.Context, subjectID int64) ([]teacherModel.SubjectTeacher, error)
}

type SubjectService struct {
	store    store.SubjectStoreInterface
	teachers TeacherLookup
}

func NewSubjectService(store store.SubjectStoreInterface, teachers TeacherLookup) *SubjectService {
	return &SubjectService{store: store, teachers: teachers}
}

func (s *SubjectService) ListSubjects(ctx context.Context) ([]model.Subject, error) {
	return s.store.ListAll(ctx)
}

// ListSubjectTeachers returns each teacher of the subject once per role (lecturer or practice).
func (s *SubjectService) ListSubjectTeachers(ctx context.Context, id int64) ([]teacherModel.SubjectTeacher, error) {

	subject, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.SUBJECT_NOT_FOUND.Code,
			Message:     errors2.SUBJECT_NOT_FOUND.Message,
			Description: fmt.Sprintf("No subject found with id %d.", id),
		}, http.StatusNotFound)
	}
	return s.teachers.ListBySubject(ctx, id)
}
