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

package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	page, err := Parse(httptest.NewRequest(http.MethodGet, "/articles", nil))
	require.NoError(t, err)
	assert.Equal(t, Page{Page: 1, Limit: 12}, page)
	assert.Equal(t, 0, page.Offset())

	page, err = Parse(httptest.NewRequest(http.MethodGet, "/articles?page=3&limit=500", nil))
	require.NoError(t, err)
	assert.Equal(t, Page{Page: 3, Limit: 100}, page)
	assert.Equal(t, 200, page.Offset())

	_, err = Parse(httptest.NewRequest(http.MethodGet, "/articles?page=0", nil))
	assert.Error(t, err)
	_, err = Parse(httptest.NewRequest(http.MethodGet, "/articles?limit=x", nil))
	assert.Error(t, err)
}
