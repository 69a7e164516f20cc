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
	"github.com/csdept/dept-portal/internal/teacher/model"
	"github.com/csdept/dept-portal/internal/teacher/service"
)

type TeacherHandler struct {
	service service.TeacherServiceInterface
}

func NewTeacherHandler(service service.TeacherServiceInterface) *TeacherHandler {
	return &TeacherHandler{service: service}
}

// ListTeachers handles GET /teachers
func (h *TeacherHandler) ListTeachers(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.service.ListTeachers(r.Context())
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, teachers)
}

// GetTeacher handles GET /teachers/{id}
func (h *TeacherHandler) GetTeacher(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt64(r, "id")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	teacher, err := h.service.GetTeacher(r.Context(), id)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, teacher)
}

// CreateTeacher handles POST /teachers
func (h *TeacherHandler) CreateTeacher(w http.ResponseWriter, r *http.Request) {
	var req model.TeacherCreateRequest
	if err := utils.DecodeJSON(r, &req, "teacher"); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	admin, _ := security.AdminFromContext(r.Context())
	teacher, err := h.service.CreateTeacher(r.Context(), req, admin)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, teacher)
}

// PatchTeacher handles PATCH /teachers/{id}
func (h *TeacherHandler) PatchTeacher(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt64(r, "id")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	var patch model.TeacherPatch
	if err := utils.DecodeJSON(r, &patch, "teacher"); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	admin, _ := security.AdminFromContext(r.Context())
	teacher, err := h.service.PatchTeacher(r.Context(), id, patch, admin)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, teacher)
}

// UploadTeacherIcon handles POST /teachers/{id}/icon with a multipart "icon" field.
func (h *TeacherHandler) UploadTeacherIcon(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt64(r, "id")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	if err := utils.ParseMultipart(w, r); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	file, header, err := utils.FormFile(r, "icon", true)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	defer file.Close()

	admin, _ := security.AdminFromContext(r.Context())
	teacher, err := h.service.UpdateTeacherIcon(r.Context(), id, file, header, admin)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, teacher)
}

// ListTeacherSubjects handles GET /teachers/{id}/subjects
func (h *TeacherHandler) ListTeacherSubjects(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt64(r, "id")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	subjects, err := h.service.ListTeacherSubjects(r.Context(), id)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, subjects)
}
