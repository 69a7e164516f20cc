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

package lock

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/system/log"
)

// RunLock serializes runs that must never overlap. TryAcquire never blocks on a busy lock:
// it reports acquired=false and the caller decides what to do.
type RunLock interface {
	TryAcquire(ctx context.Context) (release func(), acquired bool, err error)
}

// PostgresLock combines an in-process mutex with a PostgreSQL session advisory lock held on a
// dedicated connection, so a CLI run and the server cannot overlap either.
// With a nil pool only the mutex is used.
type PostgresLock struct {
	db  *sql.DB
	key string
	mu  sync.Mutex
}

func NewPostgresLock(db *sql.DB, key string) *PostgresLock {
	return &PostgresLock{db: db, key: key}
}

// PostgreSQL advisory locks use bigint or two integers. We'll use a single bigint.
func generateLockKey(key string) (int64, error) {

	h := fnv.New64a()
	if _, err := h.Write([]byte(key)); err != nil {
		errorMsg := fmt.Sprintf("failed to hash lock key '%s'", key)
		log.GetLogger().Debug(errorMsg, log.Error(err))
		return 0, errors.NewServerError(errors.ErrorMessage{
			Code:        errors.LOCK_KEY_GEN.Code,
			Message:     errors.LOCK_KEY_GEN.Message,
			Description: errorMsg,
		}, err)
	}
	return int64(h.Sum64()), nil
}

func (l *PostgresLock) TryAcquire(ctx context.Context) (func(), bool, error) {

	logger := log.GetLogger()
	if !l.mu.TryLock() {
		logger.Debug("Run lock is held by this process", log.String("key", l.key))
		return nil, false, nil
	}
	if l.db == nil {
		return l.mu.Unlock, true, nil
	}

	lockID, err := generateLockKey(l.key)
	if err != nil {
		l.mu.Unlock()
		return nil, false, err
	}

	conn, err := l.db.Conn(ctx)
	if err != nil {
		l.mu.Unlock()
		errorMsg := "Failed to reserve a connection for the advisory lock."
		logger.Error(errorMsg, log.Error(err))
		return nil, false, errors.NewServerError(errors.ErrorMessage{
			Code:        errors.DB_CLIENT_INIT.Code,
			Message:     errors.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}

	var acquired bool
	if err := conn.QueryRowContext(ctx, "SELECT pg_try_advisory_lock($1)", lockID).Scan(&acquired); err != nil {
		_ = conn.Close()
		l.mu.Unlock()
		errorMsg := "Failed to execute pg_try_advisory_lock"
		logger.Error(errorMsg, log.Error(err))
		return nil, false, errors.NewServerError(errors.ErrorMessage{
			Code:        errors.LOCK_ACQUIRE.Code,
			Message:     errors.LOCK_ACQUIRE.Message,
			Description: errorMsg,
		}, err)
	}
	if !acquired {
		_ = conn.Close()
		l.mu.Unlock()
		logger.Debug(fmt.Sprintf("Advisory lock %d is held by another session", lockID))
		return nil, false, nil
	}

	release := func() {
		defer l.mu.Unlock()
		defer conn.Close()
		if err := unlock(conn, lockID); err != nil {
			logger.Error("Failed to release the advisory lock", log.Int64("lockId", lockID), log.Error(err))
			return
		}
		logger.Debug(fmt.Sprintf("Advisory lock released for lock id: %d", lockID))
	}
	return release, true, nil
}

func unlock(conn *sql.Conn, lockID int64) error {
	var released bool
	err := conn.QueryRowContext(context.Background(), "SELECT pg_advisory_unlock($1)", lockID).Scan(&released)
	if err == nil && released {
		return nil
	}
	description := fmt.Sprintf("pg_advisory_unlock did not release lock id %d", lockID)
	if err == nil {
		err = fmt.Errorf("lock %d was not held by this session", lockID)
	}
	return errors.NewServerError(errors.ErrorMessage{
		Code:        errors.LOCK_RELEASE.Code,
		Message:     errors.LOCK_RELEASE.Message,
		Description: description,
	}, err)
}
