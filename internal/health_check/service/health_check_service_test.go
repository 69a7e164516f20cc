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
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	syncModel "github.com/csdept/dept-portal/internal/sync/model"
	"github.com/csdept/dept-portal/internal/system/database/scripts"
)

type staticStatus struct{ status syncModel.RunStatus }

func (s staticStatus) Status() syncModel.RunStatus { return s.status }

func TestCheck(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	svc := NewHealthCheckService(db, staticStatus{syncModel.RunStatus{LastError: "BRS unreachable"}})

	mock.ExpectQuery(regexp.QuoteMeta(scripts.HealthCheck[dialect])).
		WillReturnRows(sqlmock.NewRows([]string{"ok"}).AddRow(1))
	report := svc.Check(context.Background())
	assert.Equal(t, StatusHealthy, report.Status)
	assert.Equal(t, "BRS unreachable", report.Sync.LastError)

	mock.ExpectQuery(regexp.QuoteMeta(scripts.HealthCheck[dialect])).WillReturnError(errors.New("connection refused"))
	report = svc.Check(context.Background())
	assert.Equal(t, StatusDegraded, report.Status)
	assert.Contains(t, report.Database, "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}
