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

	unitHandler "github.com/csdept/dept-portal/internal/curriculum_unit/handler"
	unitProvider "github.com/csdept/dept-portal/internal/curriculum_unit/provider"
	groupHandler "github.com/csdept/dept-portal/internal/stud_group/handler"
	groupProvider "github.com/csdept/dept-portal/internal/stud_group/provider"
	subjectHandler "github.com/csdept/dept-portal/internal/subject/handler"
	subjectProvider "github.com/csdept/dept-portal/internal/subject/provider"
)

// CatalogService exposes the read-only mirror of subjects, groups and curriculum units.
type CatalogService struct {
	subjects *subjectHandler.SubjectHandler
	groups   *groupHandler.StudGroupHandler
	units    *unitHandler.CurriculumUnitHandler
}

func NewCatalogService(mux *http.ServeMux, apiBasePath string, subjects subjectProvider.SubjectProviderInterface,
	groups groupProvider.StudGroupProviderInterface, units unitProvider.CurriculumUnitProviderInterface) *CatalogService {

	instance := &CatalogService{
		subjects: subjectHandler.NewSubjectHandler(subjects.GetSubjectService()),
		groups:   groupHandler.NewStudGroupHandler(groups.GetStudGroupService()),
		units:    unitHandler.NewCurriculumUnitHandler(units.GetCurriculumUnitService()),
	}
	instance.RegisterRoutes(mux, apiBasePath)
	return instance
}

func (s *CatalogService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {
	mux.HandleFunc(fmt.Sprintf("GET %s/subjects", apiBasePath), s.subjects.ListSubjects)
	mux.HandleFunc(fmt.Sprintf("GET %s/subjects/{id}/teachers", apiBasePath), s.subjects.ListSubjectTeachers)
	mux.HandleFunc(fmt.Sprintf("GET %s/groups", apiBasePath), s.groups.ListStudGroups)
	mux.HandleFunc(fmt.Sprintf("GET %s/units", apiBasePath), s.units.ListUnits)
	mux.HandleFunc(fmt.Sprintf("GET %s/units/full", apiBasePath), s.units.ListFullUnits)
	mux.HandleFunc(fmt.Sprintf("GET %s/units/brs/{brs_id}", apiBasePath), s.units.GetUnitByBrsID)
	mux.HandleFunc(fmt.Sprintf("GET %s/units/full/{id}", apiBasePath), s.units.GetFullUnit)
	mux.HandleFunc(fmt.Sprintf("GET %s/units/full/brs/{brs_id}", apiBasePath), s.units.GetFullUnitByBrsID)
}
