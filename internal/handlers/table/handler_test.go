package table_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"resto/config"
	jwtMocks "resto/infras/jwt/mocks"
	otelMocks "resto/infras/otel/mocks"
	"resto/internal/domains/table/model"
	"resto/internal/domains/table/model/dto"
	serviceMocks "resto/internal/domains/table/service/mocks"
	"resto/internal/handlers/table"
	"resto/permissions"
	"resto/transport/http/middleware"
	"resto/transport/http/response"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	service *serviceMocks.MockTable
	jwt     *jwtMocks.MockJWT
	router  chi.Router
}

func newFixture(t *testing.T, authEnabled bool) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	otl := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.Auth.Enable = authEnabled

	f := fixture{
		service: serviceMocks.NewMockTable(ctrl),
		jwt:     jwtMocks.NewMockJWT(ctrl),
		router:  chi.NewRouter(),
	}

	auth := middleware.NewAuthRoleMiddleware(f.jwt, otl, permissions.Get(), cfg)
	handler := table.New(f.service, otl, auth)
	handler.Router(f.router)

	return f
}

func (f fixture) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()

	f.router.ServeHTTP(w, req)

	return w
}

func guests(n int) *int {
	return &n
}

func TestGetEmptyTablesCount(t *testing.T) {
	f := newFixture(t, false)
	f.service.EXPECT().CountByStatus(gomock.Any(), model.StatusEmpty).Return(3, nil)

	w := f.do(http.MethodGet, "/api/empty-tables-count", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"emptyTablesCount":3}`, w.Body.String())
}

func TestGetBusyTablesCount(t *testing.T) {
	f := newFixture(t, false)
	f.service.EXPECT().CountByStatus(gomock.Any(), model.StatusBusy).Return(1, nil)

	w := f.do(http.MethodGet, "/api/busy-tables-count", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"busyTablesCount":1}`, w.Body.String())
}

func TestGetAllTableCounts(t *testing.T) {
	f := newFixture(t, false)
	f.service.EXPECT().Counts(gomock.Any()).Return(dto.CountsResponse{EmptyTablesCount: 2, BusyTablesCount: 4}, nil)

	w := f.do(http.MethodGet, "/api/all-table-counts", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"emptyTablesCount":2,"busyTablesCount":4}`, w.Body.String())
}

func TestGetEmptyTables_EmptyListing(t *testing.T) {
	f := newFixture(t, false)
	f.service.EXPECT().ListByStatus(gomock.Any(), model.StatusEmpty).Return([]dto.TableResponse{}, nil)

	w := f.do(http.MethodGet, "/api/empty-tables", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"emptyTables":[]}`, w.Body.String())
}

func TestGetBusyTables(t *testing.T) {
	f := newFixture(t, false)
	f.service.EXPECT().ListByStatus(gomock.Any(), model.StatusBusy).Return([]dto.TableResponse{
		{TableName: "A1", SeatCapacity: 4, GuestCount: guests(3)},
	}, nil)

	w := f.do(http.MethodGet, "/api/busy-tables", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"busyTables":[{"table_name":"A1","seat_capacity":4,"guest_count":3}]}`, w.Body.String())
}

func TestGetOverview(t *testing.T) {
	f := newFixture(t, false)
	f.service.EXPECT().Overview(gomock.Any()).Return(dto.OverviewResponse{
		CountsResponse: dto.CountsResponse{EmptyTablesCount: 1},
		EmptyTables:    []dto.TableResponse{{TableName: "B2", SeatCapacity: 2}},
	}, nil)

	w := f.do(http.MethodGet, "/resto-tables", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"emptyTablesCount":1,"busyTablesCount":0,"emptyTables":[{"table_name":"B2","seat_capacity":2}]}`,
		w.Body.String(),
	)
}

func TestReadError_HidesDetails(t *testing.T) {
	f := newFixture(t, false)
	f.service.EXPECT().Counts(gomock.Any()).Return(dto.CountsResponse{}, errors.New("pq: connection refused"))

	w := f.do(http.MethodGet, "/api/all-table-counts", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "pq")
	assert.Contains(t, w.Body.String(), http.StatusText(http.StatusInternalServerError))
}

func TestAssignTable(t *testing.T) {
	f := newFixture(t, false)

	snapshot := dto.TransitionResponse{
		Success: true,
		Message: dto.MessageAssigned,
		Snapshot: dto.Snapshot{
			CountsResponse: dto.CountsResponse{BusyTablesCount: 1},
			EmptyTables:    []dto.TableResponse{},
			BusyTables:     []dto.TableResponse{{TableName: "A1", SeatCapacity: 4, GuestCount: guests(2)}},
		},
	}

	f.service.EXPECT().Assign(gomock.Any(), dto.AssignTableRequest{TableName: "A1", GuestCount: 2}).Return(snapshot, nil)

	w := f.do(http.MethodPost, "/api/assign-table", `{"tableName":"A1","guestCount":2}`)

	require.Equal(t, http.StatusOK, w.Code)

	var got dto.TransitionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, snapshot, got)
}

func TestAssignTable_InvalidBody(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantField  string
	}{
		{name: "malformed json", body: `{"tableName":`, wantStatus: http.StatusBadRequest},
		{name: "zero guests", body: `{"tableName":"A1","guestCount":0}`, wantStatus: http.StatusUnprocessableEntity, wantField: "guestCount"},
		{name: "guest count not a number", body: `{"tableName":"A1","guestCount":"two"}`, wantStatus: http.StatusUnprocessableEntity, wantField: "guestCount"},
		{name: "missing table name", body: `{"guestCount":2}`, wantStatus: http.StatusUnprocessableEntity, wantField: "tableName"},
		{name: "blank table name", body: `{"tableName":"   ","guestCount":2}`, wantStatus: http.StatusUnprocessableEntity, wantField: "tableName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, false)

			w := f.do(http.MethodPost, "/api/assign-table", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)

			var body response.Error
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.NotNil(t, body.Error)

			if tt.wantField != "" {
				require.NotEmpty(t, body.Fields)
				assert.Equal(t, tt.wantField, body.Fields[0].Field)
			}
		})
	}
}

func TestReleaseTable(t *testing.T) {
	f := newFixture(t, false)
	f.service.EXPECT().Release(gomock.Any(), dto.ReleaseTableRequest{TableName: "A1"}).Return(dto.TransitionResponse{
		Success: true,
		Message: dto.MessageReleased,
	}, nil)

	w := f.do(http.MethodPost, "/api/release-table", `{"tableName":"A1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), dto.MessageReleased)
}

func TestReleaseTable_ServiceError(t *testing.T) {
	f := newFixture(t, false)
	f.service.EXPECT().Release(gomock.Any(), gomock.Any()).Return(dto.TransitionResponse{}, errors.New("tx aborted"))

	w := f.do(http.MethodPost, "/api/release-table", `{"tableName":"A1"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "success")
}

func TestAssignTable_RequiresTokenWhenAuthEnabled(t *testing.T) {
	f := newFixture(t, true)

	w := f.do(http.MethodPost, "/api/assign-table", `{"tableName":"A1","guestCount":2}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReadRoutes_OpenWhenAuthEnabled(t *testing.T) {
	f := newFixture(t, true)
	f.service.EXPECT().CountByStatus(gomock.Any(), model.StatusEmpty).Return(0, nil)

	w := f.do(http.MethodGet, "/api/empty-tables-count", "")

	assert.Equal(t, http.StatusOK, w.Code)
}
