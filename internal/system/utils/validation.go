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
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	customerrors "github.com/csdept/dept-portal/internal/system/errors"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateStruct checks the validate tags of v and reports every failing field in one client error.
func ValidateStruct(v interface{}) error {

	err := getValidator().Struct(v)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return customerrors.NewClientError(customerrors.ErrorMessage{
			Code:        customerrors.VALIDATION_FAILED.Code,
			Message:     customerrors.VALIDATION_FAILED.Message,
			Description: err.Error(),
		}, http.StatusBadRequest)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		problems = append(problems, fmt.Sprintf("%s failed on '%s'", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return customerrors.NewClientError(customerrors.ErrorMessage{
		Code:        customerrors.VALIDATION_FAILED.Code,
		Message:     customerrors.VALIDATION_FAILED.Message,
		Description: strings.Join(problems, "; "),
	}, http.StatusBadRequest)
}
