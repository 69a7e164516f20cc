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

package utils

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/csdept/dept-portal/internal/system/constants"
	sysContext "github.com/csdept/dept-portal/internal/system/context"
	customerrors "github.com/csdept/dept-portal/internal/system/errors"
	"github.com/csdept/dept-portal/internal/system/log"
)

// HandleError sends an HTTP error response based on the provided error
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var clientError *customerrors.ClientError
	w.Header().Set("Content-Type", "application/json")
	if ok := errors.As(err, &clientError); ok {
		w.WriteHeader(clientError.StatusCode)
		_ = json.NewEncoder(w).Encode(struct {
			Code        string `json:"code"`
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			Code:        clientError.ErrorMessage.Code,
			Message:     clientError.ErrorMessage.Message,
			Description: clientError.ErrorMessage.Description,
		})
		return
	}

	traceID := sysContext.GetTraceID(r.Context())
	log.GetLogger().Error(err.Error(), log.String("traceId", traceID))
	w.WriteHeader(http.StatusInternalServerError)
	body := map[string]string{
		"error": "Internal server error",
	}
	if traceID != "" {
		body["trace_id"] = traceID
	}
	_ = json.NewEncoder(w).Encode(body)
}

// WriteJSON writes v with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// PathInt64 parses the named path value as a positive integer.
func PathInt64(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, customerrors.NewClientErrorf(customerrors.BAD_REQUEST, http.StatusBadRequest,
			"Path parameter '%s' must be a positive integer.", name)
	}
	return id, nil
}

// DecodeJSON decodes the request body into v and validates it.
func DecodeJSON(r *http.Request, v interface{}, resourceName string) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return customerrors.NewClientError(customerrors.ErrorMessage{
			Code:        customerrors.BAD_REQUEST.Code,
			Message:     customerrors.BAD_REQUEST.Message,
			Description: HandleDecodeError(err, resourceName),
		}, http.StatusBadRequest)
	}
	return ValidateStruct(v)
}

// ParseMultipart limits the body size and parses a multipart form.
func ParseMultipart(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxUploadSizeBytes)
	if err := r.ParseMultipartForm(constants.MultipartMemoryBytes); err != nil {
		return badRequest("Request body must be a multipart form no larger than 10 MiB.")
	}
	return nil
}

// FormFile returns the named file of a parsed multipart form. A missing optional file yields nil values.
func FormFile(r *http.Request, field string, required bool) (multipart.File, *multipart.FileHeader, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		if required {
			return nil, nil, badRequest("Form field '" + field + "' is required.")
		}
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, badRequest("Form field '" + field + "' could not be read.")
	}
	return file, header, nil
}

func badRequest(description string) error {
	return customerrors.NewClientErrorf(customerrors.BAD_REQUEST, http.StatusBadRequest, "%s", description)
}
