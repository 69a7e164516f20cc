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

	articleHandler "github.com/csdept/dept-portal/internal/article/handler"
	articleProvider "github.com/csdept/dept-portal/internal/article/provider"
	"github.com/csdept/dept-portal/internal/system/security"
	tagHandler "github.com/csdept/dept-portal/internal/tag/handler"
	tagProvider "github.com/csdept/dept-portal/internal/tag/provider"
)

type ArticleService struct {
	articles *articleHandler.ArticleHandler
	tags     *tagHandler.TagHandler
}

func NewArticleService(mux *http.ServeMux, apiBasePath string, articles articleProvider.ArticleProviderInterface,
	tags tagProvider.TagProviderInterface, auth *security.Authenticator) *ArticleService {

	instance := &ArticleService{
		articles: articleHandler.NewArticleHandler(articles.GetArticleService()),
		tags:     tagHandler.NewTagHandler(tags.GetTagService()),
	}
	instance.RegisterRoutes(mux, apiBasePath, auth)
	return instance
}

func (s *ArticleService) RegisterRoutes(mux *http.ServeMux, apiBasePath string, auth *security.Authenticator) {
	mux.HandleFunc(fmt.Sprintf("GET %s/tags", apiBasePath), s.tags.ListTags)
	mux.HandleFunc(fmt.Sprintf("POST %s/tags", apiBasePath), auth.RequireAdmin(s.tags.CreateTag))

	mux.HandleFunc(fmt.Sprintf("GET %s/articles", apiBasePath), s.articles.ListArticles)
	mux.HandleFunc(fmt.Sprintf("GET %s/articles/latest", apiBasePath), s.articles.ListLatestArticles)
	mux.HandleFunc(fmt.Sprintf("GET %s/articles/{id}", apiBasePath), s.articles.GetArticle)
	mux.HandleFunc(fmt.Sprintf("POST %s/articles", apiBasePath), auth.RequireAdmin(s.articles.CreateArticle))
	mux.HandleFunc(fmt.Sprintf("PUT %s/articles/{id}", apiBasePath), auth.RequireAdmin(s.articles.UpdateArticle))
	mux.HandleFunc(fmt.Sprintf("DELETE %s/articles/{id}", apiBasePath), auth.RequireAdmin(s.articles.DeleteArticle))
}
