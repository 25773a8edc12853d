package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketbrief/domain"
	"marketbrief/utils/errors"
	"marketbrief/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   errors.ErrorCode
		wantStatus int
	}{
		{
			name:       "summary not found maps to 404",
			err:        domain.ErrSummaryNotFound,
			wantCode:   errors.ErrCodeNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "symbol not found maps to 404",
			err:        domain.ErrSymbolNotFound,
			wantCode:   errors.ErrCodeNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid summary maps to 400",
			err:        domain.ErrSummaryInvalid,
			wantCode:   errors.ErrCodeValidation,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "provider timeout maps to 504",
			err:        domain.ErrMarketDataTimeout,
			wantCode:   errors.ErrCodeTimeout,
			wantStatus: http.StatusGatewayTimeout,
		},
		{
			name:       "provider outage maps to 502",
			err:        domain.ErrMarketDataUnavailable,
			wantCode:   errors.ErrCodeExternalAPI,
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "existing app error passes through",
			err:        errors.ValidationError("page must be positive", nil),
			wantCode:   errors.ErrCodeValidation,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unrecognized error becomes opaque 500",
			err:        assert.AnError,
			wantCode:   errors.ErrCodeUnknown,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := classifyError(tt.err, "TestOp")
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, tt.wantStatus, appErr.HTTPStatusCode())
		})
	}
}

func TestClassifyError_UnknownHidesDetail(t *testing.T) {
	appErr := classifyError(assert.AnError, "TestOp")
	resp := appErr.ToHTTPResponse()
	assert.False(t, resp.Success)
	assert.Equal(t, "internal server error", resp.Error)
	assert.NotContains(t, resp.Error, assert.AnError.Error())
}

func TestHandleValidationError(t *testing.T) {
	logger.InitLogger()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/summaries/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handleValidationError(c, "id must be a positive integer", "id", "abc")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"under a minute", now.Add(-30 * time.Second), "just now"},
		{"exactly one minute", now.Add(-time.Minute), "1 minute ago"},
		{"minutes", now.Add(-45 * time.Minute), "45 minutes ago"},
		{"one hour", now.Add(-90 * time.Minute), "1 hour ago"},
		{"hours", now.Add(-5 * time.Hour), "5 hours ago"},
		{"one day", now.Add(-25 * time.Hour), "1 day ago"},
		{"days", now.Add(-72 * time.Hour), "3 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timeAgo(tt.t, now))
		})
	}
}
