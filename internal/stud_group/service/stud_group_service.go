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

package service

import (
	"context"

	"github.com/csdept/dept-portal/internal/stud_group/model"
	"github.com/csdept/dept-portal/internal/stud_group/store"
)

type StudGroupServiceInterface interface {
	ListStudGroups(ctx context.Context) ([]model.StudGroup, error)
}

type StudGroupService struct {
	store store.StudGroupStoreInterface
}

func NewStudGroupService(store store.StudGroupStoreInterface) *StudGroupService {
	return &StudGroupService{store: store}
}

func (s *StudGroupService) ListStudGroups(ctx context.Context) ([]model.StudGroup, error) {
	return s.store.ListAll(ctx)
}
