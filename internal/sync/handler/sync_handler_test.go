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

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csdept/dept-portal/internal/sync/model"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
)

type fakeSyncService struct {
	busy    bool
	entities []string
}

func (f *fakeSyncService) Sync(_ context.Context, entity string) (*model.SyncResult, error) {
	f.entities = append(f.entities, entity)
	if f.busy {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:    errors2.SYNC_IN_PROGRESS.Code,
			Message: errors2.SYNC_IN_PROGRESS.Message,
		}, http.StatusConflict)
	}
	return &model.SyncResult{RunID: "run-1", Entity: entity, Teachers: 3}, nil
}

func (f *fakeSyncService) SyncAll(ctx context.Context) (*model.SyncResult, error) {
	return f.Sync(ctx, model.EntityAll)
}

func (f *fakeSyncService) SyncTeachers(ctx context.Context) (*model.SyncResult, error) {
	return f.Sync(ctx, model.EntityTeachers)
}

func (f *fakeSyncService) SyncSubjects(ctx context.Context) (*model.SyncResult, error) {
	return f.Sync(ctx, model.EntitySubjects)
}

func (f *fakeSyncService) SyncStudGroups(ctx context.Context) (*model.SyncResult, error) {
	return f.Sync(ctx, model.EntityStudGroups)
}

func (f *fakeSyncService) SyncCurriculumUnits(ctx context.Context) (*model.SyncResult, error) {
	return f.Sync(ctx, model.EntityCurriculumUnits)
}

func (f *fakeSyncService) Status() model.RunStatus {
	return model.RunStatus{LastError: "boom"}
}

func newMux(svc *fakeSyncService) *http.ServeMux {
	h := NewSyncHandler(svc)
	mux := http.NewServeMux()
	mux.HandleFunc("POST /sync/all", h.SyncAll)
	mux.HandleFunc("POST /sync/{entity}", h.SyncEntity)
	mux.HandleFunc("GET /sync/status", h.Status)
	return mux
}

func TestSyncRoutesDispatchByEntity(t *testing.T) {
	svc := &fakeSyncService{}
	mux := newMux(svc)

	for _, path := range []string{"/sync/all", "/sync/units"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, []string{"all", "units"}, svc.entities)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sync/teachers", nil))
	var result model.SyncResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "teachers", result.Entity)
	assert.Equal(t, 3, result.Teachers)
}

func TestSyncBusyIsConflict(t *testing.T) {
	mux := newMux(&fakeSyncService{busy: true})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sync/all", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSyncStatus(t *testing.T) {
	mux := newMux(&fakeSyncService{})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sync/status", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"last_error":"boom"`)
}
