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
	"net/http"

	"github.com/csdept/dept-portal/internal/system/security"
	"github.com/csdept/dept-portal/internal/system/utils"
	"github.com/csdept/dept-portal/internal/tag/model"
	"github.com/csdept/dept-portal/internal/tag/service"
)

type TagHandler struct {
	service service.TagServiceInterface
}

func NewTagHandler(service service.TagServiceInterface) *TagHandler {
	return &TagHandler{service: service}
}

// ListTags handles GET /tags
func (h *TagHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.service.ListTags(r.Context())
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, tags)
}

// CreateTag handles POST /tags
func (h *TagHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req model.TagCreateRequest
	if err := utils.DecodeJSON(r, &req, "tag"); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	admin, _ := security.AdminFromContext(r.Context())
	tag, err := h.service.CreateTag(r.Context(), req, admin)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, tag)
}
