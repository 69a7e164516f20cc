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
	"mime/multipart"
	"net/http"
	"sort"

	"github.com/csdept/dept-portal/internal/system/config"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/system/log"
	"github.com/csdept/dept-portal/internal/teacher/model"
	"github.com/csdept/dept-portal/internal/teacher/store"
)

type TeacherServiceInterface interface {
	ListTeachers(ctx context.Context) ([]model.Teacher, error)
	GetTeacher(ctx context.Context, id int64) (*model.Teacher, error)
	CreateTeacher(ctx context.Context, req model.TeacherCreateRequest, admin string) (*model.Teacher, error)
	PatchTeacher(ctx context.Context, id int64, patch model.TeacherPatch, admin string) (*model.Teacher, error)
	UpdateTeacherIcon(ctx context.Context, id int64, file multipart.File, header *multipart.FileHeader,
		admin string) (*model.Teacher, error)
	ListTeacherSubjects(ctx context.Context, id int64) ([]model.TeacherSubject, error)
}

// ImageStore persists uploaded images and returns their public URL.
type ImageStore interface {
	SaveImage(file multipart.File, header *multipart.FileHeader) (string, error)
}

type TeacherService struct {
	store  store.TeacherStoreInterface
	images ImageStore
	icons  config.IconsConfig
	site   config.SiteConfig
}

func NewTeacherService(store store.TeacherStoreInterface, images ImageStore, icons config.IconsConfig,
	site config.SiteConfig) *TeacherService {

	return &TeacherService{store: store, images: images, icons: icons, site: site}
}

// ListTeachers returns the public teacher list: teachers with the hidden rank are left out and
// teachers with the pinned surname come first.
func (s *TeacherService) ListTeachers(ctx context.Context) ([]model.Teacher, error) {

	all, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	teachers := make([]model.Teacher, 0, len(all))
	for _, t := range all {
		if s.site.HiddenRankShort != "" && t.RankShort != nil && *t.RankShort == s.site.HiddenRankShort {
			continue
		}
		teachers = append(teachers, t)
	}
	if s.site.PinnedTeacherSurname != "" {
		sort.SliceStable(teachers, func(i, j int) bool {
			return teachers[i].Surname == s.site.PinnedTeacherSurname &&
				teachers[j].Surname != s.site.PinnedTeacherSurname
		})
	}
	return teachers, nil
}

func (s *TeacherService) GetTeacher(ctx context.Context, id int64) (*model.Teacher, error) {

	teacher, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if teacher == nil {
		return nil, notFound(id)
	}
	return teacher, nil
}

// CreateTeacher adds a teacher unknown to BRS. Person ids are unique.
func (s *TeacherService) CreateTeacher(ctx context.Context, req model.TeacherCreateRequest,
	admin string) (*model.Teacher, error) {

	existing, err := s.store.FindByPersonID(ctx, req.PersonID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.TEACHER_ALREADY_EXISTS.Code,
			Message:     errors2.TEACHER_ALREADY_EXISTS.Message,
			Description: fmt.Sprintf("A teacher with person_id %d already exists.", req.PersonID),
		}, http.StatusConflict)
	}

	teacher := req.ToTeacher()
	teacher.Icon = model.DefaultIcon(s.icons.DefaultMale, s.icons.DefaultFemale, teacher.Gender)
	if err := s.store.Insert(ctx, &teacher); err != nil {
		return nil, err
	}
	s.audit(admin, log.ActionAddTeacher, teacher.ID)
	return &teacher, nil
}

func (s *TeacherService) PatchTeacher(ctx context.Context, id int64, patch model.TeacherPatch,
	admin string) (*model.Teacher, error) {

	teacher, err := s.GetTeacher(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(teacher)
	if err := s.store.Update(ctx, teacher); err != nil {
		return nil, err
	}
	s.audit(admin, log.ActionUpdateTeacher, id)
	return teacher, nil
}

// UpdateTeacherIcon stores the upload and points the teacher at it. The icon survives later syncs.
func (s *TeacherService) UpdateTeacherIcon(ctx context.Context, id int64, file multipart.File,
	header *multipart.FileHeader, admin string) (*model.Teacher, error) {

	teacher, err := s.GetTeacher(ctx, id)
	if err != nil {
		return nil, err
	}
	url, err := s.images.SaveImage(file, header)
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdateIcon(ctx, id, url); err != nil {
		return nil, err
	}
	teacher.Icon = &url
	s.audit(admin, log.ActionUpdateTeacherIcon, id)
	return teacher, nil
}

func (s *TeacherService) ListTeacherSubjects(ctx context.Context, id int64) ([]model.TeacherSubject, error) {

	if _, err := s.GetTeacher(ctx, id); err != nil {
		return nil, err
	}
	return s.store.ListSubjects(ctx, id)
}

func (s *TeacherService) audit(admin, action string, id int64) {
	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   admin,
		InitiatorType: log.InitiatorTypeAdmin,
		TargetID:      fmt.Sprint(id),
		TargetType:    log.TargetTypeTeacher,
		ActionID:      action,
	})
}

func notFound(id int64) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.TEACHER_NOT_FOUND.Code,
		Message:     errors2.TEACHER_NOT_FOUND.Message,
		Description: fmt.Sprintf("No teacher found with id %d.", id),
	}, http.StatusNotFound)
}
