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

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminModel "github.com/csdept/dept-portal/internal/admin_user/model"
	syncModel "github.com/csdept/dept-portal/internal/sync/model"
)

type recordingRegistrar struct {
	creds     adminModel.Credentials
	initiator string
}

func (r *recordingRegistrar) Register(_ context.Context, creds adminModel.Credentials,
	initiator string) (*adminModel.AdminUser, error) {
	r.creds, r.initiator = creds, initiator
	return &adminModel.AdminUser{ID: 1, Username: creds.Username}, nil
}

type recordingSyncer struct{ entity string }

func (r *recordingSyncer) Sync(_ context.Context, entity string) (*syncModel.SyncResult, error) {
	r.entity = entity
	return &syncModel.SyncResult{Entity: entity, Teachers: 2}, nil
}

func withPassword(t *testing.T, pwd string) {
	t.Helper()
	original := readPasswordFunc
	readPasswordFunc = func(int) ([]byte, error) { return []byte(pwd), nil }
	t.Cleanup(func() { readPasswordFunc = original })
}

func TestAddUser(t *testing.T) {
	withPassword(t, "correct horse")
	registrar := &recordingRegistrar{}
	cmd := newAddUserCmd(func() (Registrar, error) { return registrar, nil })
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"alice"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, "alice", registrar.creds.Username)
	assert.Equal(t, "correct horse", registrar.creds.Password)
	assert.Equal(t, cliInitiator, registrar.initiator)
	assert.Contains(t, out.String(), "Admin alice created.")
}

func TestAddUserRejectsShortPassword(t *testing.T) {
	withPassword(t, "short")
	opened := false
	cmd := newAddUserCmd(func() (Registrar, error) { opened = true; return &recordingRegistrar{}, nil })
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"alice"})

	assert.Error(t, cmd.ExecuteContext(context.Background()))
	assert.False(t, opened)
}

func TestSyncCommand(t *testing.T) {
	syncer := &recordingSyncer{}
	cmd := newSyncCmd(func() (Syncer, error) { return syncer, nil })
	var out bytes.Buffer
	cmd.SetOut(&out)

	cmd.SetArgs([]string{})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, syncModel.EntityAll, syncer.entity)

	cmd.SetArgs([]string{"units"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, syncModel.EntityCurriculumUnits, syncer.entity)
	assert.Contains(t, out.String(), `"teachers": 2`)

	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"everything"})
	assert.Error(t, cmd.ExecuteContext(context.Background()))
}
