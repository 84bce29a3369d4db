package handler

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"praxis/internal/intake/handler/mocks"
	"praxis/pkg/cnp"
	dErrors "praxis/pkg/domain-errors"
	"praxis/pkg/testutil"
)

func newTestRouter(svc Service) http.Handler {
	h := New(svc, slog.New(slog.DiscardHandler))
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func validResult() cnp.Result {
	return cnp.Result{
		Valid:       true,
		BirthDate:   time.Date(2008, time.September, 4, 0, 0, 0, 0, time.UTC),
		Sex:         cnp.SexFemale,
		County:      cnp.UnknownCounty,
		Century:     20,
		Description: "Female born in 21st century",
	}
}

func TestHandleValidate(t *testing.T) {
	t.Run("returns the analysis for a valid identifier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockService(ctrl)

		mockService.EXPECT().
			Validate(gomock.Any(), "6080904000000").
			Return(validResult())

		req := testutil.NewJSONRequest(t, http.MethodPost, "/intake/validate",
			map[string]string{"cnp": "6080904000000"})
		rr := testutil.DoRequest(newTestRouter(mockService), req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp cnp.Result
		testutil.UnmarshalResponse(t, rr, &resp)
		assert.True(t, resp.Valid)
		assert.Equal(t, "Female born in 21st century", resp.Description)
	})

	t.Run("an invalid identifier is still a 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockService(ctrl)

		mockService.EXPECT().
			Validate(gomock.Any(), "123").
			Return(cnp.Result{Kind: cnp.KindWrongLength, Message: "must have exactly 13 digits"})

		req := testutil.NewJSONRequest(t, http.MethodPost, "/intake/validate",
			map[string]string{"cnp": "123"})
		rr := testutil.DoRequest(newTestRouter(mockService), req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp cnp.Result
		testutil.UnmarshalResponse(t, rr, &resp)
		assert.False(t, resp.Valid)
		assert.Equal(t, "must have exactly 13 digits", resp.Message)
	})

	t.Run("rejects malformed body without touching the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockService(ctrl)

		req := testutil.NewRequestWithBody(t, http.MethodPost, "/intake/validate", "{not json")
		rr := testutil.DoRequest(newTestRouter(mockService), req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleValidateBatch(t *testing.T) {
	t.Run("returns results in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockService(ctrl)

		mockService.EXPECT().
			ValidateBatch(gomock.Any(), []string{"6080904000000", "123"}).
			Return([]cnp.Result{validResult(), {Kind: cnp.KindWrongLength, Message: "must have exactly 13 digits"}}, nil)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/intake/validate/batch",
			map[string][]string{"cnps": {"6080904000000", "123"}})
		rr := testutil.DoRequest(newTestRouter(mockService), req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"count":2`)
	})

	t.Run("maps oversized batch to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockService(ctrl)

		mockService.EXPECT().
			ValidateBatch(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeBadRequest, "batch exceeds 5000 entries"))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/intake/validate/batch",
			map[string][]string{"cnps": {"123"}})
		rr := testutil.DoRequest(newTestRouter(mockService), req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "batch exceeds 5000 entries")
	})
}

func TestHandleFormat(t *testing.T) {
	t.Run("returns the display grouping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockService(ctrl)

		mockService.EXPECT().
			Format("6080904000000").
			Return("6 08 09 04 00 000 0", nil)

		req := testutil.NewRequest(t, http.MethodGet, "/intake/format?cnp=6080904000000")
		rr := testutil.DoRequest(newTestRouter(mockService), req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "6 08 09 04 00 000 0")
	})

	t.Run("maps formatter rejection to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockService(ctrl)

		mockService.EXPECT().
			Format("608").
			Return("", dErrors.New(dErrors.CodeValidation, "must have exactly 13 digits"))

		req := testutil.NewRequest(t, http.MethodGet, "/intake/format?cnp=608")
		rr := testutil.DoRequest(newTestRouter(mockService), req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
