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

const errorPrefix = "DPT-"

var (
	// Server error codes

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Unable to initialize database client.",
	}

	LOCK_ACQUIRE = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Advisory lock acquisition failed",
	}

	LOCK_RELEASE = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while releasing the lock.",
	}

	LOCK_KEY_GEN = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while generating the lock key.",
	}

	BRS_UNREACHABLE = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "BRS source is unreachable.",
	}

	BRS_INVALID_RESPONSE = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "BRS source returned an invalid response.",
	}

	BRS_NO_DATA = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "No BRS data found within the search window.",
	}

	SYNC_FAILED = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while synchronizing with BRS.",
	}

	FETCH_TEACHERS = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Error while fetching teachers.",
	}

	UPSERT_TEACHER = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Error while saving teacher.",
	}

	DELETE_TEACHERS = ErrorMessage{
		Code:    errorPrefix + "15011",
		Message: "Error while deleting teachers.",
	}

	FETCH_SUBJECTS = ErrorMessage{
		Code:    errorPrefix + "15012",
		Message: "Error while fetching subjects.",
	}

	UPSERT_SUBJECT = ErrorMessage{
		Code:    errorPrefix + "15013",
		Message: "Error while saving subject.",
	}

	DELETE_SUBJECTS = ErrorMessage{
		Code:    errorPrefix + "15014",
		Message: "Error while deleting subjects.",
	}

	FETCH_STUD_GROUPS = ErrorMessage{
		Code:    errorPrefix + "15015",
		Message: "Error while fetching student groups.",
	}

	UPSERT_STUD_GROUP = ErrorMessage{
		Code:    errorPrefix + "15016",
		Message: "Error while saving student group.",
	}

	DELETE_STUD_GROUPS = ErrorMessage{
		Code:    errorPrefix + "15017",
		Message: "Error while deleting student groups.",
	}

	FETCH_CURRICULUM_UNITS = ErrorMessage{
		Code:    errorPrefix + "15018",
		Message: "Error while fetching curriculum units.",
	}

	UPSERT_CURRICULUM_UNIT = ErrorMessage{
		Code:    errorPrefix + "15019",
		Message: "Error while saving curriculum unit.",
	}

	DELETE_CURRICULUM_UNITS = ErrorMessage{
		Code:    errorPrefix + "15020",
		Message: "Error while deleting curriculum units.",
	}

	FETCH_LINKS = ErrorMessage{
		Code:    errorPrefix + "15021",
		Message: "Error while fetching teacher curriculum links.",
	}

	ADD_LINK = ErrorMessage{
		Code:    errorPrefix + "15022",
		Message: "Error while adding teacher curriculum link.",
	}

	DELETE_LINKS = ErrorMessage{
		Code:    errorPrefix + "15023",
		Message: "Error while deleting teacher curriculum links.",
	}

	FETCH_TAGS = ErrorMessage{
		Code:    errorPrefix + "15024",
		Message: "Error while fetching tags.",
	}

	ADD_TAG = ErrorMessage{
		Code:    errorPrefix + "15025",
		Message: "Error while adding tag.",
	}

	FETCH_ARTICLES = ErrorMessage{
		Code:    errorPrefix + "15026",
		Message: "Error while fetching articles.",
	}

	ADD_ARTICLE = ErrorMessage{
		Code:    errorPrefix + "15027",
		Message: "Error while adding article.",
	}

	UPDATE_ARTICLE = ErrorMessage{
		Code:    errorPrefix + "15028",
		Message: "Error while updating article.",
	}

	DELETE_ARTICLE = ErrorMessage{
		Code:    errorPrefix + "15029",
		Message: "Error while deleting article.",
	}

	FETCH_ADMIN_USER = ErrorMessage{
		Code:    errorPrefix + "15030",
		Message: "Error while fetching admin user.",
	}

	ADD_ADMIN_USER = ErrorMessage{
		Code:    errorPrefix + "15031",
		Message: "Error while adding admin user.",
	}

	TOKEN_ISSUE = ErrorMessage{
		Code:    errorPrefix + "15032",
		Message: "Error while issuing access token.",
	}

	FILE_STORE = ErrorMessage{
		Code:    errorPrefix + "15033",
		Message: "Error while storing uploaded file.",
	}

	TX_BEGIN = ErrorMessage{
		Code:    errorPrefix + "15034",
		Message: "Error while starting a transaction.",
	}

	TX_COMMIT = ErrorMessage{
		Code:    errorPrefix + "15035",
		Message: "Error while committing a transaction.",
	}

	INVALID_SCHEDULE = ErrorMessage{
		Code:    errorPrefix + "15036",
		Message: "Invalid sync schedule configuration.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "10001",
		Message: "Bad request.",
	}

	UN_AUTHORIZED = ErrorMessage{
		Code:    errorPrefix + "10002",
		Message: "Unauthorized.",
	}

	SYNC_IN_PROGRESS = ErrorMessage{
		Code:    errorPrefix + "10003",
		Message: "A synchronization run is already in progress.",
	}

	TEACHER_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "10004",
		Message: "Teacher not found.",
	}

	TEACHER_ALREADY_EXISTS = ErrorMessage{
		Code:    errorPrefix + "10005",
		Message: "Teacher already exists.",
	}

	CURRICULUM_UNIT_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "10006",
		Message: "Curriculum unit not found.",
	}

	TAG_ALREADY_EXISTS = ErrorMessage{
		Code:    errorPrefix + "10007",
		Message: "Tag already exists.",
	}

	ARTICLE_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "10008",
		Message: "Article not found.",
	}

	ARTICLE_ALREADY_EXISTS = ErrorMessage{
		Code:    errorPrefix + "10009",
		Message: "Article already exists.",
	}

	ARTICLE_FILTER_INVALID = ErrorMessage{
		Code:    errorPrefix + "10010",
		Message: "Invalid article filter.",
	}

	ADMIN_ALREADY_EXISTS = ErrorMessage{
		Code:    errorPrefix + "10011",
		Message: "Admin user already exists.",
	}

	INVALID_FILE_TYPE = ErrorMessage{
		Code:    errorPrefix + "10012",
		Message: "Invalid file type.",
	}

	VALIDATION_FAILED = ErrorMessage{
		Code:    errorPrefix + "10013",
		Message: "Request validation failed.",
	}

	SUBJECT_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "10014",
		Message: "Subject not found.",
	}
)
