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
	"github.com/csdept/dept-portal/internal/system/config"
	"github.com/csdept/dept-portal/internal/system/database/client"
	"github.com/csdept/dept-portal/internal/system/uploads"
	"github.com/csdept/dept-portal/internal/teacher/service"
	"github.com/csdept/dept-portal/internal/teacher/store"
)

// TeacherProviderInterface defines the interface for the teacher provider.
type TeacherProviderInterface interface {
	GetTeacherService() service.TeacherServiceInterface
}

// TeacherProvider wires the teacher service to the shared pool.
type TeacherProvider struct {
	db     client.Executor
	images *uploads.Store
	cfg    config.Config
}

// NewTeacherProvider creates a new instance of TeacherProvider.
func NewTeacherProvider(db client.Executor, images *uploads.Store, cfg config.Config) TeacherProviderInterface {
	return &TeacherProvider{db: db, images: images, cfg: cfg}
}

// GetTeacherService returns the teacher service instance.
func (p *TeacherProvider) GetTeacherService() service.TeacherServiceInterface {
	return service.NewTeacherService(store.NewTeacherStore(p.db), p.images, p.cfg.Icons, p.cfg.Site)
}
