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

	"github.com/lib/pq"

	"github.com/csdept/dept-portal/internal/link/model"
	"github.com/csdept/dept-portal/internal/system/database/client"
	"github.com/csdept/dept-portal/internal/system/database/scripts"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/system/log"
)

const dialect = "postgres"

type LinkStoreInterface interface {
	Insert(ctx context.Context, link model.Link) error
	ListAll(ctx context.Context) ([]model.Link, error)
	DeleteAll(ctx context.Context) error
	DeleteByTeacherIDs(ctx context.Context, teacherIDs []int64) error
	DeleteByUnitIDs(ctx context.Context, unitIDs []int64) error
}

type LinkStore struct {
	db client.Executor
}

func NewLinkStore(db client.Executor) *LinkStore {
	return &LinkStore{db: db}
}

func serverError(code errors2.ErrorMessage, description string, err error) error {
	log.GetLogger().Debug(description, log.Error(err))
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        code.Code,
		Message:     code.Message,
		Description: description,
	}, err)
}

// Insert is a no-op when the (teacher, unit, role) triple already exists.
func (s *LinkStore) Insert(ctx context.Context, link model.Link) error {

	_, err := s.db.ExecContext(ctx, scripts.InsertLink[dialect], link.TeacherID, link.CurriculumUnitID, link.IsPractice)
	if err != nil {
		return serverError(errors2.ADD_LINK, "Failed to insert teacher curriculum unit link.", err)
	}
	return nil
}

func (s *LinkStore) ListAll(ctx context.Context) ([]model.Link, error) {

	rows, err := s.db.QueryContext(ctx, scripts.ListLinks[dialect])
	if err != nil {
		return nil, serverError(errors2.FETCH_LINKS, "Failed to execute query for fetching links.", err)
	}
	defer rows.Close()

	links := make([]model.Link, 0)
	for rows.Next() {
		var l model.Link
		if err := rows.Scan(&l.TeacherID, &l.CurriculumUnitID, &l.IsPractice); err != nil {
			return nil, serverError(errors2.FETCH_LINKS, "Failed to scan link row.", err)
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

func (s *LinkStore) DeleteAll(ctx context.Context) error {

	if _, err := s.db.ExecContext(ctx, scripts.DeleteAllLinks[dialect]); err != nil {
		return serverError(errors2.DELETE_LINKS, "Failed to delete links.", err)
	}
	return nil
}

func (s *LinkStore) DeleteByTeacherIDs(ctx context.Context, teacherIDs []int64) error {

	if len(teacherIDs) == 0 {
		return nil
	}
	if _, err := s.db.ExecContext(ctx, scripts.DeleteLinksByTeacherIDs[dialect], pq.Array(teacherIDs)); err != nil {
		return serverError(errors2.DELETE_LINKS, "Failed to delete links by teacher.", err)
	}
	return nil
}

func (s *LinkStore) DeleteByUnitIDs(ctx context.Context, unitIDs []int64) error {

	if len(unitIDs) == 0 {
		return nil
	}
	if _, err := s.db.ExecContext(ctx, scripts.DeleteLinksByUnitIDs[dialect], pq.Array(unitIDs)); err != nil {
		return serverError(errors2.DELETE_LINKS, "Failed to delete links by curriculum unit.", err)
	}
	return nil
}
