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

package constants

const ApiBasePath = "/api/v1"

type contextKey string

const (
	TraceIDContextKey contextKey = "traceId"
	AdminContextKey   contextKey = "adminUser"
)

const TraceIDHeader = "X-Request-ID"

// Article listing
const (
	DefaultPage          = 1
	DefaultArticleLimit  = 12
	MaxArticleLimit      = 100
	LatestArticlesCount  = 6
	MaxUploadSizeBytes   = 10 << 20
	MultipartMemoryBytes = 2 << 20
)

// Tokens
const (
	TokenType     = "bearer"
	TokenAudience = "dept-portal"
	TokenIssuer   = "dept-portal"
)
