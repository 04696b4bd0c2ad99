package validate

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"orgchart/internal/dto"
	cErr "orgchart/internal/pkg/error"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/update-manager?depth=3", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestBindAndValidate(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		detail string
	}{
		{name: "ok", body: `{"employee_id": 2, "new_manager_id": 3}`},
		{name: "null manager", body: `{"employee_id": 2, "new_manager_id": null}`},
		{name: "missing employee", body: `{"new_manager_id": 3}`, detail: "employee_id is required"},
		{name: "negative position", body: `{"employee_id": 2, "new_manager_id": 3, "position": -1}`, detail: "position must not be negative"},
		{name: "wrong type", body: `{"employee_id": "two"}`, detail: `field "employee_id" must be of type int64`},
		{name: "malformed", body: `{"employee_id": `, detail: "Validation error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.UpdateManagerDto
			cause, responseErr := BindAndValidate(newContext(tt.body), &req)
			if tt.detail == "" {
				require.NoError(t, cause)
				require.NoError(t, responseErr)
				return
			}
			require.Error(t, cause)
			appErr, ok := responseErr.(*cErr.Error)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, appErr.HttpCode())
			assert.Equal(t, cErr.BAD_REQUEST_BODY, appErr.ErrorCode())
			assert.Contains(t, appErr.ErrorDesc(), tt.detail)
		})
	}
}

func TestValidationErrorResponse_FieldNames(t *testing.T) {
	var req dto.SwapPositionsDto
	cause, _ := BindAndValidate(newContext(`{"employee1_id": 1}`), &req)
	require.Error(t, cause)

	msg := ValidationErrorResponse(&req, cause)
	assert.Contains(t, msg, `"employee2_id"`)
	assert.Contains(t, msg, "int64")
	assert.Contains(t, msg, "required")
}

func TestGetInt64Query(t *testing.T) {
	c := newContext(`{}`)
	n, err := GetInt64Query(c, "depth", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = GetInt64Query(c, "missing", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}
