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
	"database/sql"

	"github.com/csdept/dept-portal/internal/article/service"
	"github.com/csdept/dept-portal/internal/article/store"
	"github.com/csdept/dept-portal/internal/system/config"
	"github.com/csdept/dept-portal/internal/system/uploads"
	tagStore "github.com/csdept/dept-portal/internal/tag/store"
)

type ArticleProviderInterface interface {
	GetArticleService() service.ArticleServiceInterface
}

type ArticleProvider struct {
	db     *sql.DB
	images *uploads.Store
	icons  config.IconsConfig
}

func NewArticleProvider(db *sql.DB, images *uploads.Store, icons config.IconsConfig) ArticleProviderInterface {
	return &ArticleProvider{db: db, images: images, icons: icons}
}

func (p *ArticleProvider) GetArticleService() service.ArticleServiceInterface {
	return service.NewArticleService(store.NewArticleStore(p.db), store.NewTxManager(p.db),
		tagStore.NewTagStore(p.db), p.images, p.icons.DefaultArticle)
}
