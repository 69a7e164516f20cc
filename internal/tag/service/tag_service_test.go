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
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/tag/model"
)

type memTagStore struct {
	tags []model.Tag
}

func (m *memTagStore) ListAll(context.Context) ([]model.Tag, error) { return m.tags, nil }

func (m *memTagStore) FindByName(_ context.Context, name string) (*model.Tag, error) {
	for _, tag := range m.tags {
		if tag.Name == name {
			return &tag, nil
		}
	}
	return nil, nil
}

func (m *memTagStore) FindByIDs(context.Context, []int64) ([]model.Tag, error) { return nil, nil }

func (m *memTagStore) Insert(_ context.Context, tag *model.Tag) error {
	tag.ID = int64(len(m.tags) + 1)
	m.tags = append(m.tags, *tag)
	return nil
}

func TestCreateTag(t *testing.T) {
	svc := NewTagService(&memTagStore{})
	ctx := context.Background()

	tag, err := svc.CreateTag(ctx, model.TagCreateRequest{Name: " news "}, "admin")
	require.NoError(t, err)
	assert.Equal(t, "news", tag.Name)

	_, err = svc.CreateTag(ctx, model.TagCreateRequest{Name: "news"}, "admin")
	var clientError *errors2.ClientError
	require.True(t, errors.As(err, &clientError))
	assert.Equal(t, http.StatusConflict, clientError.StatusCode)

	tags, err := svc.ListTags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}
