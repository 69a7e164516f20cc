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
	"github.com/csdept/dept-portal/internal/admin_user/service"
	"github.com/csdept/dept-portal/internal/admin_user/store"
	"github.com/csdept/dept-portal/internal/system/database/client"
)

type AdminUserProviderInterface interface {
	GetAdminUserService() service.AdminUserServiceInterface
}

type AdminUserProvider struct {
	db     client.Executor
	tokens service.TokenIssuer
}

func NewAdminUserProvider(db client.Executor, tokens service.TokenIssuer) AdminUserProviderInterface {
	return &AdminUserProvider{db: db, tokens: tokens}
}

func (p *AdminUserProvider) GetAdminUserService() service.AdminUserServiceInterface {
	return service.NewAdminUserService(store.NewAdminUserStore(p.db), p.tokens)
}
