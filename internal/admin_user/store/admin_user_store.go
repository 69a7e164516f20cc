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

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/csdept/dept-portal/internal/admin_user/model"
	"github.com/csdept/dept-portal/internal/system/database/client"
	"github.com/csdept/dept-portal/internal/system/database/scripts"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/system/log"
)

const dialect = "postgres"

type AdminUserStoreInterface interface {
	FindByUsername(ctx context.Context, username string) (*model.AdminUser, error)
	Insert(ctx context.Context, user *model.AdminUser) error
}

type AdminUserStore struct {
	db client.Executor
}

func NewAdminUserStore(db client.Executor) *AdminUserStore {
	return &AdminUserStore{db: db}
}

func (s *AdminUserStore) FindByUsername(ctx context.Context, username string) (*model.AdminUser, error) {

	var user model.AdminUser
	err := s.db.QueryRowContext(ctx, scripts.GetAdminUserByUsername[dialect], username).
		Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch admin user: %s", username)
		log.GetLogger().Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_ADMIN_USER.Code,
			Message:     errors2.FETCH_ADMIN_USER.Message,
			Description: errorMsg,
		}, err)
	}
	return &user, nil
}

func (s *AdminUserStore) Insert(ctx context.Context, user *model.AdminUser) error {

	err := s.db.QueryRowContext(ctx, scripts.InsertAdminUser[dialect], user.Username, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to insert admin user: %s", user.Username)
		log.GetLogger().Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_ADMIN_USER.Code,
			Message:     errors2.ADD_ADMIN_USER.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}
