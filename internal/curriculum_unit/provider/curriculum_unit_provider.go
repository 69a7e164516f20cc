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

package provider

import (
	"sync"

	"github.com/csdept/dept-portal/internal/curriculum_unit/service"
	"github.com/csdept/dept-portal/internal/curriculum_unit/store"
	groupStore "github.com/csdept/dept-portal/internal/stud_group/store"
	subjectStore "github.com/csdept/dept-portal/internal/subject/store"
	"github.com/csdept/dept-portal/internal/system/database/client"
	teacherStore "github.com/csdept/dept-portal/internal/teacher/store"
)

type CurriculumUnitProviderInterface interface {
	GetCurriculumUnitService() service.CurriculumUnitServiceInterface
}

// CurriculumUnitProvider hands out a single service instance so every caller shares one cache.
type CurriculumUnitProvider struct {
	db      client.Executor
	once    sync.Once
	service service.CurriculumUnitServiceInterface
}

func NewCurriculumUnitProvider(db client.Executor) CurriculumUnitProviderInterface {
	return &CurriculumUnitProvider{db: db}
}

func (p *CurriculumUnitProvider) GetCurriculumUnitService() service.CurriculumUnitServiceInterface {
	p.once.Do(func() {
		p.service = service.NewCurriculumUnitService(store.NewCurriculumUnitStore(p.db),
			teacherStore.NewTeacherStore(p.db), subjectStore.NewSubjectStore(p.db), groupStore.NewStudGroupStore(p.db))
	})
	return p.service
}
