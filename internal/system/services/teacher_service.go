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

package services

import (
	"fmt"
	"net/http"

	"github.com/csdept/dept-portal/internal/system/security"
	"github.com/csdept/dept-portal/internal/teacher/handler"
	"github.com/csdept/dept-portal/internal/teacher/provider"
)

type TeacherService struct {
	handler *handler.TeacherHandler
}

func NewTeacherService(mux *http.ServeMux, apiBasePath string, teachers provider.TeacherProviderInterface,
	auth *security.Authenticator) *TeacherService {

	instance := &TeacherService{
		handler: handler.NewTeacherHandler(teachers.GetTeacherService()),
	}
	instance.RegisterRoutes(mux, apiBasePath, auth)
	return instance
}

func (s *TeacherService) RegisterRoutes(mux *http.ServeMux, apiBasePath string, auth *security.Authenticator) {
	mux.HandleFunc(fmt.Sprintf("GET %s/teachers", apiBasePath), s.handler.ListTeachers)
	mux.HandleFunc(fmt.Sprintf("GET %s/teachers/{id}", apiBasePath), s.handler.GetTeacher)
	mux.HandleFunc(fmt.Sprintf("GET %s/teachers/{id}/subjects", apiBasePath), s.handler.ListTeacherSubjects)
	mux.HandleFunc(fmt.Sprintf("POST %s/teachers", apiBasePath), auth.RequireAdmin(s.handler.CreateTeacher))
	mux.HandleFunc(fmt.Sprintf("PATCH %s/teachers/{id}", apiBasePath), auth.RequireAdmin(s.handler.PatchTeacher))
	mux.HandleFunc(fmt.Sprintf("POST %s/teachers/{id}/icon", apiBasePath),
		auth.RequireAdmin(s.handler.UploadTeacherIcon))
}
