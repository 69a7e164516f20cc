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

	"github.com/csdept/dept-portal/internal/subject/model"
	"github.com/csdept/dept-portal/internal/system/database/client"
	"github.com/csdept/dept-portal/internal/system/database/scripts"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/system/log"
)

const dialect = "postgres"

type SubjectStoreInterface interface {
	FindByID(ctx context.Context, id int64) (*model.Subject, error)
	FindByBrsID(ctx context.Context, brsID int64) (*model.Subject, error)
	ListAll(ctx context.Context) ([]model.Subject, error)
	Upsert(ctx context.Context, subject *model.Subject) error
	DeleteByIDs(ctx context.Context, ids []int64) error
	DeleteAll(ctx context.Context) error
}

type SubjectStore struct {
	db client.Executor
}

func NewSubjectStore(db client.Executor) *SubjectStore {
	return &SubjectStore{db: db}
}

func serverError(code errors2.ErrorMessage, description string, err error) error {
	log.GetLogger().Debug(description, log.Error(err))
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        code.Code,
		Message:     code.Message,
		Description: description,
	}, err)
}

func (s *SubjectStore) findOne(ctx context.Context, query string, arg int64) (*model.Subject, error) {

	var subject model.Subject
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&subject.ID, &subject.BrsID, &subject.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, serverError(errors2.FETCH_SUBJECTS, fmt.Sprintf("Failed to fetch subject: %d", arg), err)
	}
	return &subject, nil
}

func (s *SubjectStore) FindByID(ctx context.Context, id int64) (*model.Subject, error) {
	return s.findOne(ctx, scripts.GetSubjectByID[dialect], id)
}

func (s *SubjectStore) FindByBrsID(ctx context.Context, brsID int64) (*model.Subject, error) {
	return s.findOne(ctx, scripts.GetSubjectByBrsID[dialect], brsID)
}

func (s *SubjectStore) ListAll(ctx context.Context) ([]model.Subject, error) {

	rows, err := s.db.QueryContext(ctx, scripts.ListSubjects[dialect])
	if err != nil {
		return nil, serverError(errors2.FETCH_SUBJECTS, "Failed to execute query for fetching subjects.", err)
	}
	defer rows.Close()

	subjects := make([]model.Subject, 0)
	for rows.Next() {
		var subject model.Subject
		if err := rows.Scan(&subject.ID, &subject.BrsID, &subject.Name); err != nil {
			return nil, serverError(errors2.FETCH_SUBJECTS, "Failed to scan subject row.", err)
		}
		subjects = append(subjects, subject)
	}
	return subjects, rows.Err()
}

// Upsert inserts or updates by brs_id and sets the local id.
func (s *SubjectStore) Upsert(ctx context.Context, subject *model.Subject) error {

	err := s.db.QueryRowContext(ctx, scripts.UpsertSubject[dialect], subject.BrsID, subject.Name).Scan(&subject.ID)
	if err != nil {
		return serverError(errors2.UPSERT_SUBJECT, fmt.Sprintf("Failed to upsert subject with brs_id: %d", subject.BrsID), err)
	}
	return nil
}

func (s *SubjectStore) DeleteByIDs(ctx context.Context, ids []int64) error {

	if len(ids) == 0 {
		return nil
	}
	if _, err := s.db.ExecContext(ctx, scripts.DeleteSubjectsByIDs[dialect], pq.Array(ids)); err != nil {
		return serverError(errors2.DELETE_SUBJECTS, "Failed to delete subjects by id.", err)
	}
	return nil
}

func (s *SubjectStore) DeleteAll(ctx context.Context) error {

	if _, err := s.db.ExecContext(ctx, scripts.DeleteAllSubjects[dialect]); err != nil {
		return serverError(errors2.DELETE_SUBJECTS, "Failed to delete subjects.", err)
	}
	return nil
}
