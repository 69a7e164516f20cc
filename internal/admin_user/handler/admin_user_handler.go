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

package handler

import (
	"mime"
	"net/http"

	"github.com/csdept/dept-portal/internal/admin_user/model"
	"github.com/csdept/dept-portal/internal/admin_user/service"
	"github.com/csdept/dept-portal/internal/system/security"
	"github.com/csdept/dept-portal/internal/system/utils"
)

type AdminUserHandler struct {
	service service.AdminUserServiceInterface
}

func NewAdminUserHandler(service service.AdminUserServiceInterface) *AdminUserHandler {
	return &AdminUserHandler{service: service}
}

// Register handles POST /auth/register
func (h *AdminUserHandler) Register(w http.ResponseWriter, r *http.Request) {
	creds, err := readCredentials(r)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	initiator, _ := security.AdminFromContext(r.Context())
	user, err := h.service.Register(r.Context(), creds, initiator)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, map[string]string{
		"message": "Admin " + user.Username + " created successfully",
	})
}

// Login handles POST /auth/login
func (h *AdminUserHandler) Login(w http.ResponseWriter, r *http.Request) {
	creds, err := readCredentials(r)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	token, err := h.service.Login(r.Context(), creds)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, token)
}

// readCredentials accepts a JSON body or an OAuth2 password form.
func readCredentials(r *http.Request) (model.Credentials, error) {
	var creds model.Credentials
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		creds.Username = r.FormValue("username")
		creds.Password = r.FormValue("password")
		return creds, utils.ValidateStruct(&creds)
	default:
		return creds, utils.DecodeJSON(r, &creds, "credentials")
	}
}
