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

package uploads

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/csdept/dept-portal/internal/system/config"
	errors2 "github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/system/log"
)

// sniffLen matches the default read limit of mimetype.
const sniffLen = 3072

// Store writes uploaded images to a directory served under a URL prefix.
type Store struct {
	dir       string
	urlPrefix string
}

func NewStore(cfg config.UploadsConfig) *Store {
	return &Store{
		dir:       cfg.Dir,
		urlPrefix: strings.TrimSuffix(cfg.URLPrefix, "/"),
	}
}

// SaveImage stores an image upload under a random name and returns its public URL. The content is
// checked before anything is written.
func (s *Store) SaveImage(file multipart.File, header *multipart.FileHeader) (string, error) {

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", s.storeError("Failed to read uploaded file.", err)
	}
	head = head[:n]

	declared := header.Header.Get("Content-Type")
	sniffed := mimetype.Detect(head)
	if !strings.HasPrefix(declared, "image/") || !strings.HasPrefix(sniffed.String(), "image/") {
		log.GetLogger().Debug("Rejected upload", log.String("filename", header.Filename),
			log.String("declared", declared), log.String("sniffed", sniffed.String()))
		return "", errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_FILE_TYPE.Code,
			Message:     errors2.INVALID_FILE_TYPE.Message,
			Description: fmt.Sprintf("File '%s' is not an image.", header.Filename),
		}, http.StatusBadRequest)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", s.storeError("Failed to create upload directory.", err)
	}
	// The client's file name never reaches the disk; the served type follows the content.
	name := uuid.New().String() + sniffed.Extension()
	out, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", s.storeError("Failed to create upload file.", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, io.MultiReader(bytes.NewReader(head), file)); err != nil {
		_ = os.Remove(out.Name())
		return "", s.storeError("Failed to write upload file.", err)
	}
	return s.urlPrefix + "/" + name, nil
}

// Handler serves stored images. Uploaded SVG may carry script, so responses are sandboxed.
func (s *Store) Handler(prefix string) http.Handler {
	files := http.StripPrefix(prefix, http.FileServer(http.Dir(s.dir)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'; sandbox")
		files.ServeHTTP(w, r)
	})
}

func (s *Store) storeError(description string, err error) error {
	log.GetLogger().Error(description, log.String("dir", s.dir), log.Error(err))
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.FILE_STORE.Code,
		Message:     errors2.FILE_STORE.Message,
		Description: description,
	}, err)
}
