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

package security

import (
	"context"
	"net/http"

	"github.com/csdept/dept-portal/internal/system/authn"
	"github.com/csdept/dept-portal/internal/system/constants"
	"github.com/csdept/dept-portal/internal/system/log"
	"github.com/csdept/dept-portal/internal/system/utils"
)

// TokenValidator resolves an access token to the admin username it was issued for.
type TokenValidator interface {
	ValidateToken(token string) (string, error)
}

// Authenticator guards admin-only routes.
type Authenticator struct {
	tokens TokenValidator
}

func NewAuthenticator(tokens TokenValidator) *Authenticator {
	return &Authenticator{tokens: tokens}
}

// RequireAdmin rejects requests without a valid bearer token and otherwise stores the admin username in
// the request context.
func (a *Authenticator) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := authn.BearerToken(r)
		if err != nil {
			utils.HandleError(w, r, err)
			return
		}
		username, err := a.tokens.ValidateToken(token)
		if err != nil {
			log.GetLogger().Debug("Rejected admin request", log.String("path", r.URL.Path))
			utils.HandleError(w, r, err)
			return
		}
		next(w, r.WithContext(WithAdmin(r.Context(), username)))
	}
}

func WithAdmin(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, constants.AdminContextKey, username)
}

// AdminFromContext returns the authenticated admin username, if any.
func AdminFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(constants.AdminContextKey).(string)
	return username, ok && username != ""
}
