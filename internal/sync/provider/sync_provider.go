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

package provider

import (
	"database/sql"
	"sync"

	"github.com/csdept/dept-portal/internal/sync/service"
	"github.com/csdept/dept-portal/internal/sync/store"
	"github.com/csdept/dept-portal/internal/system/client"
	"github.com/csdept/dept-portal/internal/system/config"
	"github.com/csdept/dept-portal/internal/system/database/lock"
)

type SyncProviderInterface interface {
	GetSyncService() *service.SyncService
}

// SyncProvider builds one reconciliation engine per process so that the HTTP routes, the worker
// and the health endpoint share the same run lock and status.
type SyncProvider struct {
	db   *sql.DB
	cfg  config.Config
	once sync.Once
	svc  *service.SyncService
}

func NewSyncProvider(db *sql.DB, cfg config.Config) SyncProviderInterface {
	return &SyncProvider{db: db, cfg: cfg}
}

func (p *SyncProvider) GetSyncService() *service.SyncService {
	p.once.Do(func() {
		p.svc = service.NewSyncService(
			p.cfg.Icons,
			client.NewBRSClient(p.cfg.BRS),
			store.NewTxManager(p.db),
			lock.NewPostgresLock(p.db, p.cfg.Sync.LockKey),
		)
	})
	return p.svc
}
