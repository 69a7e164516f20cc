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

	"github.com/csdept/dept-portal/internal/sync/model"
	"github.com/csdept/dept-portal/internal/sync/service"
	"github.com/csdept/dept-portal/internal/system/utils"
)

type SyncHandler struct {
	service service.SyncServiceInterface
}

func NewSyncHandler(service service.SyncServiceInterface) *SyncHandler {
	return &SyncHandler{service: service}
}

// SyncAll handles POST /sync/all
func (h *SyncHandler) SyncAll(w http.ResponseWriter, r *http.Request) {
	h.sync(w, r, model.EntityAll)
}

// SyncEntity handles POST /sync/{entity}
func (h *SyncHandler) SyncEntity(w http.ResponseWriter, r *http.Request) {
	h.sync(w, r, r.PathValue("entity"))
}

// Status handles GET /sync/status
func (h *SyncHandler) Status(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.service.Status())
}

func (h *SyncHandler) sync(w http.ResponseWriter, r *http.Request, entity string) {
	result, err := h.service.Sync(r.Context(), entity)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}
