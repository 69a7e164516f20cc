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
	"github.com/csdept/dept-portal/internal/subject/service"
	"github.com/csdept/dept-portal/internal/subject/store"
	"github.com/csdept/dept-portal/internal/system/database/client"
	teacherStore "github.com/csdept/dept-portal/internal/teacher/store"
)

type SubjectProviderInterface interface {
	GetSubjectService() service.SubjectServiceInterface
}

type SubjectProvider struct {
	db client.Executor
}

func NewSubjectProvider(db client.Executor) SubjectProviderInterface {
	return &SubjectProvider{db: db}
}

func (p *SubjectProvider) GetSubjectService() service.SubjectServiceInterface {
	return service.NewSubjectService(store.NewSubjectStore(p.db), teacherStore.NewTeacherStore(p.db))
}
