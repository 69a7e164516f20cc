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

	syncModel "github.com/csdept/dept-portal/internal/sync/model"
	"github.com/csdept/dept-portal/internal/system/database/client"
	"github.com/csdept/dept-portal/internal/system/database/scripts"
	"github.com/csdept/dept-portal/internal/system/log"
)

const dialect = "postgres"

const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

// Report is the body of the health endpoint.
type Report struct {
	Status   string              `json:"status"`
	Database string              `json:"database"`
	Sync     syncModel.RunStatus `json:"sync"`
}

// HealthCheckServiceInterface defines the service interface.
type HealthCheckServiceInterface interface {
	Check(ctx context.Context) Report
}

// SyncStatusSource reports the outcome of the latest reconciliation run.
type SyncStatusSource interface {
	Status() syncModel.RunStatus
}

// HealthCheckService is the default implementation.
type HealthCheckService struct {
	db   client.Executor
	sync SyncStatusSource
}

func NewHealthCheckService(db client.Executor, sync SyncStatusSource) *HealthCheckService {
	return &HealthCheckService{db: db, sync: sync}
}

// Check pings the database and attaches the sync status. A failed last sync does not degrade
// health since the mirror keeps serving its previous snapshot.
func (h *HealthCheckService) Check(ctx context.Context) Report {
	report := Report{Status: StatusHealthy, Database: "ok"}
	if h.sync != nil {
		report.Sync = h.sync.Status()
	}

	var ok int
	if err := h.db.QueryRowContext(ctx, scripts.HealthCheck[dialect]).Scan(&ok); err != nil {
		log.GetLogger().Warn("Database connectivity check failed", log.Error(err))
		report.Status = StatusDegraded
		report.Database = fmt.Sprintf("unreachable: %v", err)
	}
	return report
}
