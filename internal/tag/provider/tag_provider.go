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
	"github.com/csdept/dept-portal/internal/system/database/client"
	"github.com/csdept/dept-portal/internal/tag/service"
	"github.com/csdept/dept-portal/internal/tag/store"
)

type TagProviderInterface interface {
	GetTagService() service.TagServiceInterface
}

type TagProvider struct {
	db client.Executor
}

func NewTagProvider(db client.Executor) TagProviderInterface {
	return &TagProvider{db: db}
}

func (p *TagProvider) GetTagService() service.TagServiceInterface {
	return service.NewTagService(store.NewTagStore(p.db))
}
