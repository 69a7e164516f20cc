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
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/csdept/dept-portal/internal/admin_user/model"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
)

type memAdmins map[string]*model.AdminUser

func (m memAdmins) FindByUsername(_ context.Context, username string) (*model.AdminUser, error) {
	return m[username], nil
}

func (m memAdmins) Insert(_ context.Context, user *model.AdminUser) error {
	user.ID = int64(len(m) + 1)
	m[user.Username] = user
	return nil
}

type stubTokens struct{}

func (stubTokens) IssueToken(username string) (string, error) { return "token-for-" + username, nil }

func newService() (*AdminUserService, memAdmins) {
	admins := memAdmins{}
	svc := NewAdminUserService(admins, stubTokens{})
	svc.cost = bcrypt.MinCost
	return svc, admins
}

func clientError(t *testing.T, err error) *errors2.ClientError {
	t.Helper()
	var ce *errors2.ClientError
	require.True(t, errors.As(err, &ce), "expected a client error, got %v", err)
	return ce
}

func TestRegister(t *testing.T) {
	svc, admins := newService()
	ctx := context.Background()

	user, err := svc.Register(ctx, model.Credentials{Username: "alice", Password: "correct horse"}, "cli")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", admins["alice"].PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse")))

	_, err = svc.Register(ctx, model.Credentials{Username: "alice", Password: "another one"}, "cli")
	assert.Equal(t, http.StatusConflict, clientError(t, err).StatusCode)
}

func TestLogin(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	_, err := svc.Register(ctx, model.Credentials{Username: "alice", Password: "correct horse"}, "cli")
	require.NoError(t, err)

	token, err := svc.Login(ctx, model.Credentials{Username: "alice", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "token-for-alice", token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)

	_, wrongPassword := svc.Login(ctx, model.Credentials{Username: "alice", Password: "wrong password"})
	_, unknownUser := svc.Login(ctx, model.Credentials{Username: "bob", Password: "correct horse"})
	first, second := clientError(t, wrongPassword), clientError(t, unknownUser)
	assert.Equal(t, http.StatusUnauthorized, first.StatusCode)
	assert.Equal(t, first.ErrorMessage, second.ErrorMessage)
}

func TestLogin_UnknownUserStillComparesHash(t *testing.T) {
	svc, _ := newService()
	var compared [][]byte
	svc.compare = func(hash, password []byte) error {
		compared = append(compared, hash)
		return bcrypt.CompareHashAndPassword(hash, password)
	}

	_, err := svc.Login(context.Background(), model.Credentials{Username: "ghost", Password: "no-such-admin-user"})
	assert.Equal(t, http.StatusUnauthorized, clientError(t, err).StatusCode)

	require.Len(t, compared, 1)
	cost, err := bcrypt.Cost(compared[0])
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}
