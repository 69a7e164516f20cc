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
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/csdept/dept-portal/internal/system/config"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/teacher/model"
)

type MockTeacherStore struct {
	mock.Mock
}

func (m *MockTeacherStore) FindByID(ctx context.Context, id int64) (*model.Teacher, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*model.Teacher), args.Error(1)
}

func (m *MockTeacherStore) FindByBrsID(ctx context.Context, brsID int64) (*model.Teacher, error) {
	args := m.Called(ctx, brsID)
	return args.Get(0).(*model.Teacher), args.Error(1)
}

func (m *MockTeacherStore) FindByPersonID(ctx context.Context, personID int64) (*model.Teacher, error) {
	args := m.Called(ctx, personID)
	return args.Get(0).(*model.Teacher), args.Error(1)
}

func (m *MockTeacherStore) FindByBrsIDs(ctx context.Context, brsIDs []int64) ([]model.Teacher, error) {
	args := m.Called(ctx, brsIDs)
	return args.Get(0).([]model.Teacher), args.Error(1)
}

func (m *MockTeacherStore) ListAll(ctx context.Context) ([]model.Teacher, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Teacher), args.Error(1)
}

func (m *MockTeacherStore) Insert(ctx context.Context, teacher *model.Teacher) error {
	args := m.Called(ctx, teacher)
	teacher.ID = 42
	return args.Error(0)
}

func (m *MockTeacherStore) Upsert(ctx context.Context, teacher *model.Teacher) error {
	return m.Called(ctx, teacher).Error(0)
}

func (m *MockTeacherStore) Update(ctx context.Context, teacher *model.Teacher) error {
	return m.Called(ctx, teacher).Error(0)
}

func (m *MockTeacherStore) UpdateIcon(ctx context.Context, id int64, icon string) error {
	return m.Called(ctx, id, icon).Error(0)
}

func (m *MockTeacherStore) DeleteByIDs(ctx context.Context, ids []int64) error {
	return m.Called(ctx, ids).Error(0)
}

func (m *MockTeacherStore) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTeacherStore) ListSubjects(ctx context.Context, teacherID int64) ([]model.TeacherSubject, error) {
	args := m.Called(ctx, teacherID)
	return args.Get(0).([]model.TeacherSubject), args.Error(1)
}

func (m *MockTeacherStore) ListBySubject(ctx context.Context, subjectID int64) ([]model.SubjectTeacher, error) {
	args := m.Called(ctx, subjectID)
	return args.Get(0).([]model.SubjectTeacher), args.Error(1)
}

type stubImages struct {
	url string
	err error
}

func (s stubImages) SaveImage(multipart.File, *multipart.FileHeader) (string, error) {
	return s.url, s.err
}

var icons = config.IconsConfig{DefaultMale: "/static/icons/m.png", DefaultFemale: "/static/icons/w.png"}

func strPtr(s string) *string { return &s }

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var clientError *errors2.ClientError
	require.True(t, errors.As(err, &clientError), "expected a client error, got %v", err)
	return clientError.StatusCode
}

func TestListTeachers_HidesRankAndPinsSurname(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockTeacherStore)
	mockStore.On("ListAll", ctx).Return([]model.Teacher{
		{ID: 1, Surname: "Abramov", RankShort: strPtr("doc.")},
		{ID: 2, Surname: "Ivanova", RankShort: strPtr("assist.")},
		{ID: 3, Surname: "Head", RankShort: strPtr("prof.")},
		{ID: 4, Surname: "Borisov"},
	}, nil)

	svc := NewTeacherService(mockStore, stubImages{}, icons,
		config.SiteConfig{PinnedTeacherSurname: "Head", HiddenRankShort: "assist."})

	teachers, err := svc.ListTeachers(ctx)
	require.NoError(t, err)
	ids := make([]int64, 0, len(teachers))
	for _, teacher := range teachers {
		ids = append(ids, teacher.ID)
	}
	assert.Equal(t, []int64{3, 1, 4}, ids)
}

func TestGetTeacher_NotFound(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockTeacherStore)
	mockStore.On("FindByID", ctx, int64(9)).Return((*model.Teacher)(nil), nil)

	_, err := NewTeacherService(mockStore, stubImages{}, icons, config.SiteConfig{}).GetTeacher(ctx, 9)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestCreateTeacher(t *testing.T) {
	ctx := context.Background()
	req := model.TeacherCreateRequest{DepartmentID: 1, Firstname: "Anna", Gender: model.GenderFemale, PersonID: 77,
		Rank: "Docent", Surname: "Petrova"}

	t.Run("assigns the default icon", func(t *testing.T) {
		mockStore := new(MockTeacherStore)
		mockStore.On("FindByPersonID", ctx, int64(77)).Return((*model.Teacher)(nil), nil)
		mockStore.On("Insert", ctx, mock.MatchedBy(func(teacher *model.Teacher) bool {
			return teacher.BrsID == nil && teacher.Icon != nil && *teacher.Icon == icons.DefaultFemale
		})).Return(nil)

		teacher, err := NewTeacherService(mockStore, stubImages{}, icons, config.SiteConfig{}).
			CreateTeacher(ctx, req, "admin")
		require.NoError(t, err)
		assert.Equal(t, int64(42), teacher.ID)
		mockStore.AssertExpectations(t)
	})

	t.Run("conflicts on an existing person id", func(t *testing.T) {
		mockStore := new(MockTeacherStore)
		mockStore.On("FindByPersonID", ctx, int64(77)).Return(&model.Teacher{ID: 5, PersonID: 77}, nil)

		_, err := NewTeacherService(mockStore, stubImages{}, icons, config.SiteConfig{}).
			CreateTeacher(ctx, req, "admin")
		assert.Equal(t, http.StatusConflict, statusOf(t, err))
		mockStore.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestPatchTeacher_OnlyTouchesGivenFields(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockTeacherStore)
	brsID := int64(5)
	mockStore.On("FindByID", ctx, int64(1)).Return(&model.Teacher{ID: 1, BrsID: &brsID, Surname: "Old",
		Firstname: "Ivan", Rank: "Docent"}, nil)
	mockStore.On("Update", ctx, mock.Anything).Return(nil)

	teacher, err := NewTeacherService(mockStore, stubImages{}, icons, config.SiteConfig{}).
		PatchTeacher(ctx, 1, model.TeacherPatch{Surname: strPtr("New")}, "admin")
	require.NoError(t, err)
	assert.Equal(t, "New", teacher.Surname)
	assert.Equal(t, "Ivan", teacher.Firstname)
	assert.Equal(t, int64(5), *teacher.BrsID)
}

func TestUpdateTeacherIcon(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the uploaded icon", func(t *testing.T) {
		mockStore := new(MockTeacherStore)
		mockStore.On("FindByID", ctx, int64(1)).Return(&model.Teacher{ID: 1}, nil)
		mockStore.On("UpdateIcon", ctx, int64(1), "/static/icons/abc.png").Return(nil)

		teacher, err := NewTeacherService(mockStore, stubImages{url: "/static/icons/abc.png"}, icons,
			config.SiteConfig{}).UpdateTeacherIcon(ctx, 1, nil, &multipart.FileHeader{}, "admin")
		require.NoError(t, err)
		assert.Equal(t, "/static/icons/abc.png", *teacher.Icon)
		mockStore.AssertExpectations(t)
	})

	t.Run("rejected upload leaves the teacher untouched", func(t *testing.T) {
		mockStore := new(MockTeacherStore)
		mockStore.On("FindByID", ctx, int64(1)).Return(&model.Teacher{ID: 1}, nil)
		rejected := errors2.NewClientError(errors2.INVALID_FILE_TYPE, http.StatusBadRequest)

		_, err := NewTeacherService(mockStore, stubImages{err: rejected}, icons, config.SiteConfig{}).
			UpdateTeacherIcon(ctx, 1, nil, &multipart.FileHeader{}, "admin")
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		mockStore.AssertNotCalled(t, "UpdateIcon", mock.Anything, mock.Anything, mock.Anything)
	})
}
