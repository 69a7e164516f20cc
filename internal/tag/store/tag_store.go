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

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/csdept/dept-portal/internal/system/database/client"
	"github.com/csdept/dept-portal/internal/system/database/scripts"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/system/log"
	"github.com/csdept/dept-portal/internal/tag/model"
)

const dialect = "postgres"

type TagStoreInterface interface {
	ListAll(ctx context.Context) ([]model.Tag, error)
	FindByName(ctx context.Context, name string) (*model.Tag, error)
	FindByIDs(ctx context.Context, ids []int64) ([]model.Tag, error)
	Insert(ctx context.Context, tag *model.Tag) error
}

type TagStore struct {
	db client.Executor
}

func NewTagStore(db client.Executor) *TagStore {
	return &TagStore{db: db}
}

func (s *TagStore) query(ctx context.Context, query string, args ...interface{}) ([]model.Tag, error) {

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fetchError("Failed to execute query for fetching tags.", err)
	}
	defer rows.Close()

	tags := make([]model.Tag, 0)
	for rows.Next() {
		var tag model.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, fetchError("Failed to scan tag row.", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

func (s *TagStore) ListAll(ctx context.Context) ([]model.Tag, error) {
	return s.query(ctx, scripts.ListTags[dialect])
}

func (s *TagStore) FindByIDs(ctx context.Context, ids []int64) ([]model.Tag, error) {
	if len(ids) == 0 {
		return []model.Tag{}, nil
	}
	return s.query(ctx, scripts.GetTagsByIDs[dialect], pq.Array(ids))
}

func (s *TagStore) FindByName(ctx context.Context, name string) (*model.Tag, error) {

	var tag model.Tag
	err := s.db.QueryRowContext(ctx, scripts.GetTagByName[dialect], name).Scan(&tag.ID, &tag.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fetchError(fmt.Sprintf("Failed to fetch tag: %s", name), err)
	}
	return &tag, nil
}

func (s *TagStore) Insert(ctx context.Context, tag *model.Tag) error {

	if err := s.db.QueryRowContext(ctx, scripts.InsertTag[dialect], tag.Name).Scan(&tag.ID); err != nil {
		errorMsg := fmt.Sprintf("Failed to insert tag: %s", tag.Name)
		log.GetLogger().Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_TAG.Code,
			Message:     errors2.ADD_TAG.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}

func fetchError(description string, err error) error {
	log.GetLogger().Debug(description, log.Error(err))
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.FETCH_TAGS.Code,
		Message:     errors2.FETCH_TAGS.Message,
		Description: description,
	}, err)
}
