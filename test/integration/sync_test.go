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

//go:build integration

package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	unitStore "github.com/csdept/dept-portal/internal/curriculum_unit/store"
	syncModel "github.com/csdept/dept-portal/internal/sync/model"
	syncProvider "github.com/csdept/dept-portal/internal/sync/provider"
	"github.com/csdept/dept-portal/internal/system/config"
	teacherStore "github.com/csdept/dept-portal/internal/teacher/store"
)

const (
	teachersBody = `{"ok":true,"teachers":[
		{"id":1,"person_id":101,"surname":"Ivanov","firstname":"Ivan","gender":"M","rank":"docent","department_id":3},
		{"id":2,"person_id":102,"surname":"Petrova","firstname":"Anna","gender":"F","rank":"professor","department_id":3}]}`
	subjectsBody = `{"subjects":[{"id":11,"name":"Algebra"}]}`
	groupsBody   = `{"stud_groups":[{"id":21,"course":1,"semester":2,"education_level":"bachelor"}]}`
	unitsBody    = `{"curriculum_units":[
		{"id":31,"teacher_id":1,"subject_id":11,"stud_group_id":21,"practice_teacher_ids":[2,99],"mark_type":"exam"}]}`
)

func newBRSServer(t *testing.T) *httptest.Server {
	t.Helper()
	bodies := map[string]string{
		"/teachers": teachersBody,
		"/subjects": subjectsBody,
		"/groups":   groupsBody,
		"/units":    unitsBody,
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFullSyncAgainstPostgres(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	brs := newBRSServer(t)

	cfg := config.Config{
		BRS: config.BRSConfig{
			TeachersURL: brs.URL + "/teachers",
			SubjectsURL: brs.URL + "/subjects",
			GroupsURL:   brs.URL + "/groups",
			UnitsURL:    brs.URL + "/units",
			Timeout:     5 * time.Second,
		},
		Sync:  config.SyncConfig{LockKey: "integration-sync"},
		Icons: config.IconsConfig{DefaultMale: "/static/icons/male.png", DefaultFemale: "/static/icons/female.png"},
	}
	engine := syncProvider.NewSyncProvider(testDB, cfg).GetSyncService()

	result, err := engine.Sync(ctx, syncModel.EntityAll)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Teachers)
	assert.Equal(t, 1, result.CurriculumUnits)
	assert.Equal(t, 2, result.Links)

	teachers := teacherStore.NewTeacherStore(testDB)
	petrova, err := teachers.FindByBrsID(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, petrova)
	require.NotNil(t, petrova.Icon)
	assert.Equal(t, "/static/icons/female.png", *petrova.Icon)

	subjects, err := teachers.ListSubjects(ctx, petrova.ID)
	require.NoError(t, err)
	require.Len(t, subjects, 1)
	assert.True(t, subjects[0].IsPractice)

	// A second run must leave the same mirror behind.
	_, err = engine.Sync(ctx, syncModel.EntityAll)
	require.NoError(t, err)
	units, err := unitStore.NewCurriculumUnitStore(testDB).ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, units, 1)

	_, err = engine.Sync(ctx, syncModel.EntityTeachers)
	require.NoError(t, err)
	all, err := teachers.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
