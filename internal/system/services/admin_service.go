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

package services

import (
	"fmt"
	"net/http"

	adminHandler "github.com/csdept/dept-portal/internal/admin_user/handler"
	adminProvider "github.com/csdept/dept-portal/internal/admin_user/provider"
	syncHandler "github.com/csdept/dept-portal/internal/sync/handler"
	syncProvider "github.com/csdept/dept-portal/internal/sync/provider"
	"github.com/csdept/dept-portal/internal/system/security"
)

// AdminService groups authentication and the manual sync triggers.
type AdminService struct {
	admins *adminHandler.AdminUserHandler
	sync   *syncHandler.SyncHandler
}

func NewAdminService(mux *http.ServeMux, apiBasePath string, admins adminProvider.AdminUserProviderInterface,
	sync syncProvider.SyncProviderInterface, auth *security.Authenticator) *AdminService {

	instance := &AdminService{
		admins: adminHandler.NewAdminUserHandler(admins.GetAdminUserService()),
		sync:   syncHandler.NewSyncHandler(sync.GetSyncService()),
	}
	instance.RegisterRoutes(mux, apiBasePath, auth)
	return instance
}

func (s *AdminService) RegisterRoutes(mux *http.ServeMux, apiBasePath string, auth *security.Authenticator) {
	mux.HandleFunc(fmt.Sprintf("POST %s/auth/login", apiBasePath), s.admins.Login)
	mux.HandleFunc(fmt.Sprintf("POST %s/auth/register", apiBasePath), auth.RequireAdmin(s.admins.Register))

	mux.HandleFunc(fmt.Sprintf("POST %s/sync/all", apiBasePath), auth.RequireAdmin(s.sync.SyncAll))
	mux.HandleFunc(fmt.Sprintf("POST %s/sync/{entity}", apiBasePath), auth.RequireAdmin(s.sync.SyncEntity))
	mux.HandleFunc(fmt.Sprintf("GET %s/sync/status", apiBasePath), auth.RequireAdmin(s.sync.Status))
}
