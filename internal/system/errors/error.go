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

package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorMessage is the body of every error response. Code is one of the DPT- catalog entries.
type ErrorMessage struct {
	Code        string `json:"error_code"`
	Message     string `json:"error_message"`
	Description string `json:"error_description"`
	TraceID     string `json:"trace_id,omitempty"`
}

// ClientError is returned to the caller as is.
type ClientError struct {
	ErrorMessage
	StatusCode int
}

// ServerError is logged and answered with a generic 500.
type ServerError struct {
	ErrorMessage
	Err error
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
}

func (e *ServerError) Unwrap() error {
	return e.Err
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func NewServerError(msg ErrorMessage, cause error) *ServerError {
	return &ServerError{
		ErrorMessage: msg,
		Err:          cause,
	}
}

func NewClientError(msg ErrorMessage, code int) *ClientError {
	return &ClientError{
		ErrorMessage: msg,
		StatusCode:   code,
	}
}

// NewClientErrorf copies code and message from a catalog entry and formats the description.
func NewClientErrorf(entry ErrorMessage, status int, format string, args ...interface{}) *ClientError {
	return NewClientError(ErrorMessage{
		Code:        entry.Code,
		Message:     entry.Message,
		Description: fmt.Sprintf(format, args...),
	}, status)
}

// StatusCode maps err to the HTTP status it is answered with.
func StatusCode(err error) int {
	var clientError *ClientError
	if errors.As(err, &clientError) {
		return clientError.StatusCode
	}
	return http.StatusInternalServerError
}
