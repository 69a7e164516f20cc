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

	"github.com/csdept/dept-portal/internal/curriculum_unit/service"
	"github.com/csdept/dept-portal/internal/system/utils"
)

type CurriculumUnitHandler struct {
	service service.CurriculumUnitServiceInterface
}

func NewCurriculumUnitHandler(service service.CurriculumUnitServiceInterface) *CurriculumUnitHandler {
	return &CurriculumUnitHandler{service: service}
}

// ListUnits handles GET /units
func (h *CurriculumUnitHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	units, err := h.service.ListUnits(r.Context())
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, units)
}

// ListFullUnits handles GET /units/full
func (h *CurriculumUnitHandler) ListFullUnits(w http.ResponseWriter, r *http.Request) {
	units, err := h.service.ListFullUnits(r.Context())
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, units)
}

// GetUnitByBrsID handles GET /units/brs/{brs_id}
func (h *CurriculumUnitHandler) GetUnitByBrsID(w http.ResponseWriter, r *http.Request) {
	brsID, err := utils.PathInt64(r, "brs_id")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	unit, err := h.service.GetUnitByBrsID(r.Context(), brsID)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, unit)
}

// GetFullUnit handles GET /units/full/{id}
func (h *CurriculumUnitHandler) GetFullUnit(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt64(r, "id")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	unit, err := h.service.GetFullUnit(r.Context(), id)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, unit)
}

// GetFullUnitByBrsID handles GET /units/full/brs/{brs_id}
func (h *CurriculumUnitHandler) GetFullUnitByBrsID(w http.ResponseWriter, r *http.Request) {
	brsID, err := utils.PathInt64(r, "brs_id")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	unit, err := h.service.GetFullUnitByBrsID(r.Context(), brsID)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, unit)
}
