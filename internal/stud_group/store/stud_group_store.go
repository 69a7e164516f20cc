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

	"github.com/csdept/dept-portal/internal/stud_group/model"
	"github.com/csdept/dept-portal/internal/system/database/client"
	"github.com/csdept/dept-portal/internal/system/database/scripts"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/system/log"
)

const dialect = "postgres"

type StudGroupStoreInterface interface {
	FindByBrsID(ctx context.Context, brsID int64) (*model.StudGroup, error)
	ListAll(ctx context.Context) ([]model.StudGroup, error)
	Upsert(ctx context.Context, group *model.StudGroup) error
	DeleteByIDs(ctx context.Context, ids []int64) error
	DeleteAll(ctx context.Context) error
}

type StudGroupStore struct {
	db client.Executor
}

func NewStudGroupStore(db client.Executor) *StudGroupStore {
	return &StudGroupStore{db: db}
}

func serverError(code errors2.ErrorMessage, description string, err error) error {
	log.GetLogger().Debug(description, log.Error(err))
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        code.Code,
		Message:     code.Message,
		Description: description,
	}, err)
}

func (s *StudGroupStore) FindByBrsID(ctx context.Context, brsID int64) (*model.StudGroup, error) {

	var g model.StudGroup
	err := s.db.QueryRowContext(ctx, scripts.GetStudGroupByBrsID[dialect], brsID).
		Scan(&g.ID, &g.BrsID, &g.Course, &g.Semester, &g.EducationLevel)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, serverError(errors2.FETCH_STUD_GROUPS, fmt.Sprintf("Failed to fetch group with brs_id: %d", brsID), err)
	}
	return &g, nil
}

func (s *StudGroupStore) ListAll(ctx context.Context) ([]model.StudGroup, error) {

	rows, err := s.db.QueryContext(ctx, scripts.ListStudGroups[dialect])
	if err != nil {
		return nil, serverError(errors2.FETCH_STUD_GROUPS, "Failed to execute query for fetching groups.", err)
	}
	defer rows.Close()

	groups := make([]model.StudGroup, 0)
	for rows.Next() {
		var g model.StudGroup
		if err := rows.Scan(&g.ID, &g.BrsID, &g.Course, &g.Semester, &g.EducationLevel); err != nil {
			return nil, serverError(errors2.FETCH_STUD_GROUPS, "Failed to scan group row.", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (s *StudGroupStore) Upsert(ctx context.Context, g *model.StudGroup) error {

	err := s.db.QueryRowContext(ctx, scripts.UpsertStudGroup[dialect], g.BrsID, g.Course, g.Semester,
		g.EducationLevel).Scan(&g.ID)
	if err != nil {
		return serverError(errors2.UPSERT_STUD_GROUP, fmt.Sprintf("Failed to upsert group with brs_id: %d", g.BrsID), err)
	}
	return nil
}

func (s *StudGroupStore) DeleteByIDs(ctx context.Context, ids []int64) error {

	if len(ids) == 0 {
		return nil
	}
	if _, err := s.db.ExecContext(ctx, scripts.DeleteStudGroupsByIDs[dialect], pq.Array(ids)); err != nil {
		return serverError(errors2.DELETE_STUD_GROUPS, "Failed to delete groups by id.", err)
	}
	return nil
}

func (s *StudGroupStore) DeleteAll(ctx context.Context) error {

	if _, err := s.db.ExecContext(ctx, scripts.DeleteAllStudGroups[dialect]); err != nil {
		return serverError(errors2.DELETE_STUD_GROUPS, "Failed to delete groups.", err)
	}
	return nil
}
