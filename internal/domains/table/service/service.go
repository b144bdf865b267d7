package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"resto/config"
	"resto/infras/kafka"
	"resto/infras/otel"
	"resto/infras/postgres"
	"resto/internal/domains/table/model"
	"resto/internal/domains/table/model/dto"
	"resto/internal/domains/table/repository"
	"resto/shared"
	"resto/shared/cache"
	"resto/shared/constant"
	"resto/shared/failure"
	"resto/shared/timezone"
	"resto/shared/validator"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cachePrefix = "table"
	cacheCount  = "count"
	cacheList   = "list"

	// cacheGeneration lives outside the table:* pattern so clearing never resets it.
	cacheGeneration = "table_generation"
)

var errInvalidStatus = failure.Validation("", failure.FieldError{
	Field:   "status",
	Message: "status must be one of empty busy",
})

type Table interface {
	CountByStatus(ctx context.Context, status model.Status) (int, error)
	ListByStatus(ctx context.Context, status model.Status) ([]dto.TableResponse, error)
	Counts(ctx context.Context) (dto.CountsResponse, error)
	Overview(ctx context.Context) (dto.OverviewResponse, error)
	Assign(ctx context.Context, req dto.AssignTableRequest) (dto.TransitionResponse, error)
	Release(ctx context.Context, req dto.ReleaseTableRequest) (dto.TransitionResponse, error)
}

type serviceImpl struct {
	repo  repository.Table
	tx    postgres.Transactor
	cfg   *config.Config
	cache cache.RedisCache
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Table, tx postgres.Transactor, cfg *config.Config, cache cache.RedisCache, kafka kafka.Client, otel otel.Otel) Table {
	return &serviceImpl{
		repo:  repo,
		tx:    tx,
		cfg:   cfg,
		cache: cache,
		kafka: kafka,
		otel:  otel,
	}
}

func (s *serviceImpl) cacheEnabled() bool {
	return s.cache != nil && s.cfg.Cache.TTL > 0
}

func (s *serviceImpl) saveCache(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save table read model to cache")
		}
	}()
}

// cacheKey returns the read-model key under the current generation. Transitions bump the
// generation, so a read that started before a commit saves under a key nobody reads again.
// It reports false when the cache must be bypassed.
func (s *serviceImpl) cacheKey(ctx context.Context, kind string, status model.Status, day time.Time) (string, bool) {
	if !s.cacheEnabled() {
		return "", false
	}

	var generation int64

	if err := s.cache.Get(ctx, cacheGeneration, &generation); err != nil && !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Msg("table cache generation unavailable, reading from database")

		return "", false
	}

	return shared.BuildCacheKey(cachePrefix, kind, status.String(), day.Format(constant.DateOnlyFormat), "g"+strconv.FormatInt(generation, 10)), true
}

func (s *serviceImpl) CountByStatus(ctx context.Context, status model.Status) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountByStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !status.Valid() {
		return 0, errInvalidStatus
	}

	start, end := timezone.DayRange(timezone.Now())
	cacheKey, cached := s.cacheKey(ctx, cacheCount, status, start)

	if cached {
		if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
			log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for table count")

			return res, nil
		}
	}

	res, err = s.repo.CountByStatus(ctx, status, start, end)
	if err != nil {
		log.Error().Err(err).Str("status", status.String()).Msg("failed to count tables")

		return 0, fmt.Errorf("failed to count %s tables: %w", status, err)
	}

	if cached {
		s.saveCache(ctx, cacheKey, res)
	}

	return res, nil
}

func (s *serviceImpl) ListByStatus(ctx context.Context, status model.Status) (res []dto.TableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !status.Valid() {
		return nil, errInvalidStatus
	}

	start, end := timezone.DayRange(timezone.Now())
	cacheKey, cached := s.cacheKey(ctx, cacheList, status, start)

	if cached {
		if err = s.cache.Get(ctx, cacheKey, &res); err == nil && res != nil {
			log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for table listing")

			return res, nil
		}
	}

	listings, err := s.repo.ListByStatus(ctx, status, start, end)
	if err != nil {
		log.Error().Err(err).Str("status", status.String()).Msg("failed to list tables")

		return nil, fmt.Errorf("failed to list %s tables: %w", status, err)
	}

	res = dto.FromModels(listings)

	if cached {
		s.saveCache(ctx, cacheKey, res)
	}

	return res, nil
}

func (s *serviceImpl) Counts(ctx context.Context) (res dto.CountsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Counts")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res.EmptyTablesCount, err = s.CountByStatus(ctx, model.StatusEmpty)
	if err != nil {
		return res, err
	}

	res.BusyTablesCount, err = s.CountByStatus(ctx, model.StatusBusy)
	if err != nil {
		return res, err
	}

	return res, nil
}

func (s *serviceImpl) Overview(ctx context.Context) (res dto.OverviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Overview")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res.CountsResponse, err = s.Counts(ctx)
	if err != nil {
		return res, err
	}

	res.EmptyTables, err = s.ListByStatus(ctx, model.StatusEmpty)
	if err != nil {
		return res, err
	}

	return res, nil
}

func (s *serviceImpl) Assign(ctx context.Context, req dto.AssignTableRequest) (res dto.TransitionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Assign")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = s.transition(ctx, req.ToModel(userFromContext(ctx), timezone.Now()))
	if err != nil {
		return res, err
	}

	res.Message = dto.MessageAssigned

	return res, nil
}

func (s *serviceImpl) Release(ctx context.Context, req dto.ReleaseTableRequest) (res dto.TransitionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Release")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = s.transition(ctx, req.ToModel(userFromContext(ctx), timezone.Now()))
	if err != nil {
		return res, err
	}

	res.Message = dto.MessageReleased

	return res, nil
}

// transition writes state for a catalogued table and reads the snapshot in the same
// transaction. Unknown tables are left untouched and still get a snapshot.
func (s *serviceImpl) transition(ctx context.Context, state model.TableState) (res dto.TransitionResponse, err error) {
	changed := false
	start, end := timezone.DayRange(state.Timestamp)

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		exist, err := s.repo.CatalogExistTx(ctx, tx, state.TableName)
		if err != nil {
			return fmt.Errorf("failed to check table catalog: %w", err)
		}

		if exist {
			if err = s.repo.UpsertStateTx(ctx, tx, state); err != nil {
				return fmt.Errorf("failed to save table state: %w", err)
			}

			if err = s.repo.InsertHistoryTx(ctx, tx, dto.HistoryFromState(state)); err != nil {
				return fmt.Errorf("failed to record table history: %w", err)
			}

			changed = true
		} else {
			log.Warn().Str("tableName", state.TableName).Msg("table is not in the catalog, state left unchanged")
		}

		res.Snapshot, err = s.snapshotTx(ctx, tx, start, end)

		return err
	})
	if err != nil {
		log.Error().Err(err).Str("tableName", state.TableName).Str("status", state.TableStatus.String()).Msg("failed to change table state")

		return dto.TransitionResponse{}, fmt.Errorf("failed to %s table: %w", transitionVerb(state.TableStatus), err)
	}

	res.Success = true

	if changed {
		s.invalidate(ctx)
		s.publish(ctx, state)
	}

	return res, nil
}

func (s *serviceImpl) snapshotTx(ctx context.Context, tx *sqlx.Tx, start, end time.Time) (res dto.Snapshot, err error) {
	res.EmptyTablesCount, err = s.repo.CountByStatusTx(ctx, tx, model.StatusEmpty, start, end)
	if err != nil {
		return res, fmt.Errorf("failed to count empty tables: %w", err)
	}

	res.BusyTablesCount, err = s.repo.CountByStatusTx(ctx, tx, model.StatusBusy, start, end)
	if err != nil {
		return res, fmt.Errorf("failed to count busy tables: %w", err)
	}

	emptyTables, err := s.repo.ListByStatusTx(ctx, tx, model.StatusEmpty, start, end)
	if err != nil {
		return res, fmt.Errorf("failed to list empty tables: %w", err)
	}

	busyTables, err := s.repo.ListByStatusTx(ctx, tx, model.StatusBusy, start, end)
	if err != nil {
		return res, fmt.Errorf("failed to list busy tables: %w", err)
	}

	res.EmptyTables = dto.FromModels(emptyTables)
	res.BusyTables = dto.FromModels(busyTables)

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	if !s.cacheEnabled() {
		return
	}

	if _, err := s.cache.Incr(ctx, cacheGeneration); err != nil {
		log.Warn().Err(err).Msg("failed to bump table cache generation")
	}

	pattern := shared.BuildCacheKey(cachePrefix, constant.Asterix)

	if err := shared.InvalidateCaches(ctx, s.cache, pattern); err != nil {
		log.Warn().Err(err).Str("pattern", pattern).Msg("table read models may be stale until they expire")
	}
}

func (s *serviceImpl) publish(ctx context.Context, state model.TableState) {
	if s.kafka == nil || !s.cfg.Kafka.Enable {
		return
	}

	var event dto.TableStateChangedEvent
	event.FromModel(state)

	go func() {
		c := context.WithoutCancel(ctx)

		c, scope := s.otel.NewScope(c, constant.OtelEventScopeName, constant.OtelEventScopeName+".TableStateChanged")
		defer scope.End()

		err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic, kafka.Message{Key: state.TableName, Value: event})
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("tableName", state.TableName).Msg("failed to publish table state change")
		}
	}()
}

func userFromContext(ctx context.Context) string {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		return constant.ContextGuest
	}

	return user
}

func transitionVerb(status model.Status) string {
	if status == model.StatusBusy {
		return "assign"
	}

	return "release"
}
