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

package managers

import (
	"database/sql"
	"fmt"
	"net/http"
	"strings"

	adminProvider "github.com/csdept/dept-portal/internal/admin_user/provider"
	articleProvider "github.com/csdept/dept-portal/internal/article/provider"
	unitProvider "github.com/csdept/dept-portal/internal/curriculum_unit/provider"
	healthProvider "github.com/csdept/dept-portal/internal/health_check/provider"
	groupProvider "github.com/csdept/dept-portal/internal/stud_group/provider"
	subjectProvider "github.com/csdept/dept-portal/internal/subject/provider"
	syncProvider "github.com/csdept/dept-portal/internal/sync/provider"
	"github.com/csdept/dept-portal/internal/system/authn"
	"github.com/csdept/dept-portal/internal/system/config"
	"github.com/csdept/dept-portal/internal/system/log"
	"github.com/csdept/dept-portal/internal/system/security"
	"github.com/csdept/dept-portal/internal/system/services"
	"github.com/csdept/dept-portal/internal/system/uploads"
	tagProvider "github.com/csdept/dept-portal/internal/tag/provider"
	teacherProvider "github.com/csdept/dept-portal/internal/teacher/provider"
)

type ServiceManagerInterface interface {
	RegisterServices(apiBasePath string) error
}

type ServiceManager struct {
	mux    *http.ServeMux
	db     *sql.DB
	cfg    config.Config
	sync   syncProvider.SyncProviderInterface
	tokens *authn.TokenManager
}

// NewServiceManager creates a new instance of ServiceManager. The sync provider is passed in because the
// background worker shares its engine.
func NewServiceManager(mux *http.ServeMux, db *sql.DB, cfg config.Config,
	sync syncProvider.SyncProviderInterface) ServiceManagerInterface {

	return &ServiceManager{
		mux:    mux,
		db:     db,
		cfg:    cfg,
		sync:   sync,
		tokens: authn.NewTokenManager(cfg.Auth),
	}
}

func (sm *ServiceManager) RegisterServices(apiBasePath string) error {

	images := uploads.NewStore(sm.cfg.Uploads)
	auth := security.NewAuthenticator(sm.tokens)

	units := unitProvider.NewCurriculumUnitProvider(sm.db)
	syncService := sm.sync.GetSyncService()
	syncService.OnSynced(units.GetCurriculumUnitService().InvalidateCache)

	services.NewTeacherService(sm.mux, apiBasePath, teacherProvider.NewTeacherProvider(sm.db, images, sm.cfg), auth)
	services.NewCatalogService(sm.mux, apiBasePath, subjectProvider.NewSubjectProvider(sm.db),
		groupProvider.NewStudGroupProvider(sm.db), units)
	services.NewArticleService(sm.mux, apiBasePath, articleProvider.NewArticleProvider(sm.db, images, sm.cfg.Icons),
		tagProvider.NewTagProvider(sm.db), auth)
	services.NewAdminService(sm.mux, apiBasePath, adminProvider.NewAdminUserProvider(sm.db, sm.tokens), sm.sync, auth)
	services.NewHealthService(sm.mux, apiBasePath, healthProvider.NewHealthCheckProvider(sm.db, syncService))

	prefix := "/" + strings.Trim(sm.cfg.Uploads.URLPrefix, "/") + "/"
	sm.mux.Handle(fmt.Sprintf("GET %s", prefix), images.Handler(prefix))

	log.GetLogger().Info("Registered portal routes", log.String("basePath", apiBasePath),
		log.String("staticPrefix", prefix))
	return nil
}
