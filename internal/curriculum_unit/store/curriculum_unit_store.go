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

	"github.com/csdept/dept-portal/internal/curriculum_unit/model"
	"github.com/csdept/dept-portal/internal/system/database/client"
	"github.com/csdept/dept-portal/internal/system/database/scripts"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/system/log"
)

const dialect = "postgres"

type CurriculumUnitStoreInterface interface {
	FindByID(ctx context.Context, id int64) (*model.CurriculumUnit, error)
	FindByBrsID(ctx context.Context, brsID int64) (*model.CurriculumUnit, error)
	ListAll(ctx context.Context) ([]model.CurriculumUnit, error)
	Upsert(ctx context.Context, unit *model.CurriculumUnit) error
	DeleteByIDs(ctx context.Context, ids []int64) error
	DeleteAll(ctx context.Context) error
}

type CurriculumUnitStore struct {
	db client.Executor
}

func NewCurriculumUnitStore(db client.Executor) *CurriculumUnitStore {
	return &CurriculumUnitStore{db: db}
}

func serverError(code errors2.ErrorMessage, description string, err error) error {
	log.GetLogger().Debug(description, log.Error(err))
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        code.Code,
		Message:     code.Message,
		Description: description,
	}, err)
}

func scanUnit(row interface{ Scan(...interface{}) error }) (model.CurriculumUnit, error) {
	var u model.CurriculumUnit
	err := row.Scan(&u.ID, &u.BrsID, &u.TeacherBrsID, &u.SubjectBrsID, &u.StudGroupBrsID,
		pq.Array(&u.PracticeTeacherBrsIDs), &u.MarkType)
	return u, err
}

func (s *CurriculumUnitStore) findOne(ctx context.Context, query string, arg int64) (*model.CurriculumUnit, error) {

	u, err := scanUnit(s.db.QueryRowContext(ctx, query, arg))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, serverError(errors2.FETCH_CURRICULUM_UNITS, fmt.Sprintf("Failed to fetch curriculum unit: %d", arg), err)
	}
	return &u, nil
}

func (s *CurriculumUnitStore) FindByID(ctx context.Context, id int64) (*model.CurriculumUnit, error) {
	return s.findOne(ctx, scripts.GetCurriculumUnitByID[dialect], id)
}

func (s *CurriculumUnitStore) FindByBrsID(ctx context.Context, brsID int64) (*model.CurriculumUnit, error) {
	return s.findOne(ctx, scripts.GetCurriculumUnitByBrsID[dialect], brsID)
}

func (s *CurriculumUnitStore) ListAll(ctx context.Context) ([]model.CurriculumUnit, error) {

	rows, err := s.db.QueryContext(ctx, scripts.ListCurriculumUnits[dialect])
	if err != nil {
		return nil, serverError(errors2.FETCH_CURRICULUM_UNITS, "Failed to execute query for fetching curriculum units.", err)
	}
	defer rows.Close()

	units := make([]model.CurriculumUnit, 0)
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, serverError(errors2.FETCH_CURRICULUM_UNITS, "Failed to scan curriculum unit row.", err)
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

// Upsert inserts or updates by brs_id and sets the local id. An empty mark type is stored as the default.
func (s *CurriculumUnitStore) Upsert(ctx context.Context, u *model.CurriculumUnit) error {

	if u.MarkType == "" {
		u.MarkType = model.DefaultMarkType
	}
	practice := u.PracticeTeacherBrsIDs
	if practice == nil {
		practice = []int64{}
	}
	err := s.db.QueryRowContext(ctx, scripts.UpsertCurriculumUnit[dialect], u.BrsID, u.TeacherBrsID, u.SubjectBrsID,
		u.StudGroupBrsID, pq.Array(practice), u.MarkType).Scan(&u.ID)
	if err != nil {
		return serverError(errors2.UPSERT_CURRICULUM_UNIT,
			fmt.Sprintf("Failed to upsert curriculum unit with brs_id: %d", u.BrsID), err)
	}
	return nil
}

func (s *CurriculumUnitStore) DeleteByIDs(ctx context.Context, ids []int64) error {

	if len(ids) == 0 {
		return nil
	}
	if _, err := s.db.ExecContext(ctx, scripts.DeleteCurriculumUnitsByIDs[dialect], pq.Array(ids)); err != nil {
		return serverError(errors2.DELETE_CURRICULUM_UNITS, "Failed to delete curriculum units by id.", err)
	}
	return nil
}

func (s *CurriculumUnitStore) DeleteAll(ctx context.Context) error {

	if _, err := s.db.ExecContext(ctx, scripts.DeleteAllCurriculumUnits[dialect]); err != nil {
		return serverError(errors2.DELETE_CURRICULUM_UNITS, "Failed to delete curriculum units.", err)
	}
	return nil
}
