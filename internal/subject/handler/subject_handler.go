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

	"github.com/csdept/dept-portal/internal/subject/service"
	"github.com/csdept/dept-portal/internal/system/utils"
)

type SubjectHandler struct {
	service service.SubjectServiceInterface
}

func NewSubjectHandler(service service.SubjectServiceInterface) *SubjectHandler {
	return &SubjectHandler{service: service}
}

// ListSubjects handles GET /subjects
func (h *SubjectHandler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.service.ListSubjects(r.Context())
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, subjects)
}

// ListSubjectTeachers handles GET /subjects/{id}/teachers
func (h *SubjectHandler) ListSubjectTeachers(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt64(r, "id")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	teachers, err := h.service.ListSubjectTeachers(r.Context(), id)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, teachers)
}
