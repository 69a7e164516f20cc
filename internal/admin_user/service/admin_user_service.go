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
	"net/http"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/csdept/dept-portal/internal/admin_user/model"
	"github.com/csdept/dept-portal/internal/admin_user/store"
	"github.com/csdept/dept-portal/internal/system/constants"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/system/log"
)

type AdminUserServiceInterface interface {
	Register(ctx context.Context, creds model.Credentials, initiator string) (*model.AdminUser, error)
	Login(ctx context.Context, creds model.Credentials) (*model.TokenResponse, error)
}

// TokenIssuer signs access tokens for authenticated admins.
type TokenIssuer interface {
	IssueToken(username string) (string, error)
}

type AdminUserService struct {
	store   store.AdminUserStoreInterface
	tokens  TokenIssuer
	cost    int
	compare func(hash, password []byte) error

	// Unknown usernames are checked against this hash so both failures cost one bcrypt compare.
	dummyOnce sync.Once
	dummyHash []byte
}

func NewAdminUserService(store store.AdminUserStoreInterface, tokens TokenIssuer) *AdminUserService {
	return &AdminUserService{
		store:   store,
		tokens:  tokens,
		cost:    bcrypt.DefaultCost,
		compare: bcrypt.CompareHashAndPassword,
	}
}

func (s *AdminUserService) unknownUserHash() []byte {
	s.dummyOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("no-such-admin-user"), s.cost)
		if err != nil {
			log.GetLogger().Error("Failed to prepare the unknown user hash", log.Error(err))
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

// Register stores a new admin with a bcrypt password hash. Usernames are unique.
func (s *AdminUserService) Register(ctx context.Context, creds model.Credentials,
	initiator string) (*model.AdminUser, error) {

	existing, err := s.store.FindByUsername(ctx, creds.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.ADMIN_ALREADY_EXISTS.Code,
			Message:     errors2.ADMIN_ALREADY_EXISTS.Message,
			Description: fmt.Sprintf("Admin user '%s' already exists.", creds.Username),
		}, http.StatusConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), s.cost)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_ADMIN_USER.Code,
			Message:     errors2.ADD_ADMIN_USER.Message,
			Description: "Failed to hash the admin password.",
		}, err)
	}
	user := &model.AdminUser{Username: creds.Username, PasswordHash: string(hash)}
	if err := s.store.Insert(ctx, user); err != nil {
		return nil, err
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   initiator,
		InitiatorType: log.InitiatorTypeAdmin,
		TargetID:      user.Username,
		TargetType:    log.TargetTypeAdmin,
		ActionID:      log.ActionRegisterAdmin,
	})
	return user, nil
}

// Login verifies the credentials and issues a bearer token. Unknown users and wrong passwords get
// the same response.
func (s *AdminUserService) Login(ctx context.Context, creds model.Credentials) (*model.TokenResponse, error) {

	logger := log.GetLogger()
	user, err := s.store.FindByUsername(ctx, creds.Username)
	if err != nil {
		return nil, err
	}
	hash := s.unknownUserHash()
	if user != nil {
		hash = []byte(user.PasswordHash)
	}
	if s.compare(hash, []byte(creds.Password)) != nil || user == nil {
		logger.Audit(log.AuditEvent{
			InitiatorID:   creds.Username,
			InitiatorType: log.InitiatorTypeAdmin,
			TargetID:      creds.Username,
			TargetType:    log.TargetTypeAdmin,
			ActionID:      log.ActionAuthenticationFailure,
		})
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.UN_AUTHORIZED.Code,
			Message:     errors2.UN_AUTHORIZED.Message,
			Description: "Invalid credentials.",
		}, http.StatusUnauthorized)
	}

	token, err := s.tokens.IssueToken(user.Username)
	if err != nil {
		return nil, err
	}
	logger.Audit(log.AuditEvent{
		InitiatorID:   user.Username,
		InitiatorType: log.InitiatorTypeAdmin,
		TargetID:      user.Username,
		TargetType:    log.TargetTypeAdmin,
		ActionID:      log.ActionAuthenticationSuccess,
	})
	return &model.TokenResponse{AccessToken: token, TokenType: constants.TokenType}, nil
}
