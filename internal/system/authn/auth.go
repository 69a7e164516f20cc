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

package authn

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/csdept/dept-portal/internal/system/config"
	"github.com/csdept/dept-portal/internal/system/constants"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/system/log"
)

const defaultTokenTTL = 12 * time.Hour

var errEmptySecret = errors.New("signing secret is not configured")

// TokenManager issues and validates HS256 signed admin access tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(cfg config.AuthConfig) *TokenManager {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenManager{
		secret: []byte(cfg.SigningSecret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// IssueToken signs a token whose subject is the admin username.
func (m *TokenManager) IssueToken(username string) (string, error) {

	if len(m.secret) == 0 {
		return "", errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.TOKEN_ISSUE.Code,
			Message:     errors2.TOKEN_ISSUE.Message,
			Description: "Unable to sign the access token.",
		}, errEmptySecret)
	}
	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		Issuer:    constants.TokenIssuer,
		Audience:  jwt.ClaimStrings{constants.TokenAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.TOKEN_ISSUE.Code,
			Message:     errors2.TOKEN_ISSUE.Message,
			Description: "Unable to sign the access token.",
		}, err)
	}
	return signed, nil
}

// ValidateToken verifies signature, issuer, audience and expiry, and returns the subject.
func (m *TokenManager) ValidateToken(token string) (string, error) {

	logger := log.GetLogger()
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if len(m.secret) == 0 {
			return nil, errEmptySecret
		}
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(constants.TokenAudience),
		jwt.WithIssuer(constants.TokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid {
		logger.Debug("Access token rejected.", log.Error(err))
		return "", unauthorizedError("Invalid or expired access token.")
	}
	if claims.Subject == "" {
		logger.Debug("Access token does not carry a subject.")
		return "", unauthorizedError("Invalid or expired access token.")
	}
	return claims.Subject, nil
}

// BearerToken extracts the token from an Authorization: Bearer header.
func BearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", unauthorizedError("Missing or invalid Authorization header.")
	}
	return strings.TrimSpace(header[len(prefix):]), nil
}

func unauthorizedError(description string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.UN_AUTHORIZED.Code,
		Message:     errors2.UN_AUTHORIZED.Message,
		Description: description,
	}, http.StatusUnauthorized)
}
