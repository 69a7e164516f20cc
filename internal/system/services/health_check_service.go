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

package services

import (
	"fmt"
	"net/http"

	"github.com/csdept/dept-portal/internal/health_check/handler"
	"github.com/csdept/dept-portal/internal/health_check/provider"
)

// HealthService handles routing for the health endpoint.
type HealthService struct {
	handler *handler.HealthHandler
}

// NewHealthService creates a new HealthService instance.
func NewHealthService(mux *http.ServeMux, apiBasePath string, health provider.HealthCheckProviderInterface) *HealthService {
	instance := &HealthService{
		handler: handler.NewHealthHandler(health.GetHealthCheckService()),
	}
	mux.HandleFunc(fmt.Sprintf("GET %s/health", apiBasePath), instance.handler.HandleHealth)
	return instance
}
