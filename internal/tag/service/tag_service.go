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
	"fmt"
	"net/http"
	"strings"

	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/system/log"
	"github.com/csdept/dept-portal/internal/tag/model"
	"github.com/csdept/dept-portal/internal/tag/store"
)

type TagServiceInterface interface {
	ListTags(ctx context.Context) ([]model.Tag, error)
	CreateTag(ctx context.Context, req model.TagCreateRequest, admin string) (*model.Tag, error)
}

type TagService struct {
	store store.TagStoreInterface
}

func NewTagService(store store.TagStoreInterface) *TagService {
	return &TagService{store: store}
}

func (s *TagService) ListTags(ctx context.Context) ([]model.Tag, error) {
	return s.store.ListAll(ctx)
}

// CreateTag adds a tag. Names are unique.
func (s *TagService) CreateTag(ctx context.Context, req model.TagCreateRequest, admin string) (*model.Tag, error) {

	name := strings.TrimSpace(req.Name)
	existing, err := s.store.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.TAG_ALREADY_EXISTS.Code,
			Message:     errors2.TAG_ALREADY_EXISTS.Message,
			Description: fmt.Sprintf("Tag '%s' already exists.", name),
		}, http.StatusConflict)
	}

	tag := &model.Tag{Name: name}
	if err := s.store.Insert(ctx, tag); err != nil {
		return nil, err
	}
	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   admin,
		InitiatorType: log.InitiatorTypeAdmin,
		TargetID:      fmt.Sprint(tag.ID),
		TargetType:    log.TargetTypeTag,
		ActionID:      log.ActionAddTag,
	})
	return tag, nil
}
