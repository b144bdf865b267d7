package table

import (
	"net/http"
	"resto/infras/otel"
	"resto/internal/domains/table/model"
	"resto/internal/domains/table/model/dto"
	"resto/internal/domains/table/service"
	"resto/shared/constant"
	"resto/shared/validator"
	"resto/transport/http/middleware"
	"resto/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Table
	otel    otel.Otel
	auth    middleware.AuthRole
}

func New(service service.Table, otel otel.Otel, auth middleware.AuthRole) Handler {
	return Handler{
		service: service,
		otel:    otel,
		auth:    auth,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Get("/empty-tables-count", handler.GetEmptyTablesCount)
		routerGroup.Get("/busy-tables-count", handler.GetBusyTablesCount)
		routerGroup.Get("/all-table-counts", handler.GetAllTableCounts)
		routerGroup.Get("/empty-tables", handler.GetEmptyTables)
		routerGroup.Get("/busy-tables", handler.GetBusyTables)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(handler.auth.APIKey, handler.auth.Auth, handler.auth.RBAC)

			protected.Post("/assign-table", handler.AssignTable)
			protected.Post("/release-table", handler.ReleaseTable)
		})
	})

	router.Get("/resto-tables", handler.GetOverview)
}

// GetEmptyTablesCount returns the number of tables that became empty today.
// @Summary Count empty tables
// @Description Number of tables whose state was set to empty today.
// @Tags Table
// @Produce json
// @Success 200 {object} dto.EmptyCountResponse
// @Failure 500 {object} response.Error
// @Router /api/empty-tables-count [get]
func (handler *Handler) GetEmptyTablesCount(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmptyTablesCount")
	defer scope.End()

	count, err := handler.service.CountByStatus(ctx, model.StatusEmpty)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to count empty tables")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.EmptyCountResponse{EmptyTablesCount: count})
}

// GetBusyTablesCount returns the number of tables that became busy today.
// @Summary Count busy tables
// @Description Number of tables whose state was set to busy today.
// @Tags Table
// @Produce json
// @Success 200 {object} dto.BusyCountResponse
// @Failure 500 {object} response.Error
// @Router /api/busy-tables-count [get]
func (handler *Handler) GetBusyTablesCount(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBusyTablesCount")
	defer scope.End()

	count, err := handler.service.CountByStatus(ctx, model.StatusBusy)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to count busy tables")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.BusyCountResponse{BusyTablesCount: count})
}

// GetAllTableCounts returns both counts.
// @Summary Count tables by status
// @Tags Table
// @Produce json
// @Success 200 {object} dto.CountsResponse
// @Failure 500 {object} response.Error
// @Router /api/all-table-counts [get]
func (handler *Handler) GetAllTableCounts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllTableCounts")
	defer scope.End()

	counts, err := handler.service.Counts(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to count tables")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, counts)
}

// GetEmptyTables lists the tables that became empty today.
// @Summary List empty tables
// @Tags Table
// @Produce json
// @Success 200 {object} dto.EmptyTablesResponse
// @Failure 500 {object} response.Error
// @Router /api/empty-tables [get]
func (handler *Handler) GetEmptyTables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmptyTables")
	defer scope.End()

	tables, err := handler.service.ListByStatus(ctx, model.StatusEmpty)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list empty tables")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.EmptyTablesResponse{EmptyTables: tables})
}

// GetBusyTables lists the tables that became busy today with their guest count.
// @Summary List busy tables
// @Tags Table
// @Produce json
// @Success 200 {object} dto.BusyTablesResponse
// @Failure 500 {object} response.Error
// @Router /api/busy-tables [get]
func (handler *Handler) GetBusyTables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBusyTables")
	defer scope.End()

	tables, err := handler.service.ListByStatus(ctx, model.StatusBusy)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list busy tables")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.BusyTablesResponse{BusyTables: tables})
}

// AssignTable marks a table busy with the given number of guests.
// @Summary Assign a table
// @Description Seat guests at a table and return the refreshed table snapshot.
// @Tags Table
// @Accept json
// @Produce json
// @Param request body dto.AssignTableRequest true "Table and guest count"
// @Success 200 {object} dto.TransitionResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/assign-table [post]
// @Security BearerAuth
func (handler *Handler) AssignTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignTable")
	defer scope.End()

	var req dto.AssignTableRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid assign table request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Assign(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("tableName", req.TableName).Msg("failed to assign table")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Table " + req.TableName + " assigned by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// ReleaseTable marks a table empty.
// @Summary Release a table
// @Description Free a table and return the refreshed table snapshot.
// @Tags Table
// @Accept json
// @Produce json
// @Param request body dto.ReleaseTableRequest true "Table to release"
// @Success 200 {object} dto.TransitionResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/release-table [post]
// @Security BearerAuth
func (handler *Handler) ReleaseTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReleaseTable")
	defer scope.End()

	var req dto.ReleaseTableRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid release table request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Release(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("tableName", req.TableName).Msg("failed to release table")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Table " + req.TableName + " released by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// GetOverview returns the counts and the empty tables in one payload.
// @Summary Table overview
// @Tags Table
// @Produce json
// @Success 200 {object} dto.OverviewResponse
// @Failure 500 {object} response.Error
// @Router /resto-tables [get]
func (handler *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOverview")
	defer scope.End()

	overview, err := handler.service.Overview(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load table overview")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, overview)
}
