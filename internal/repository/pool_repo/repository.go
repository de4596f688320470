package pool_repo

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"wagerpool_backend/internal/gameerr"
	"wagerpool_backend/internal/model"
	"wagerpool_backend/internal/repository"
)

const (
	table = "pools"

	colID               = "id"
	colAuthority        = "authority"
	colUnderlyingAsset  = "underlying_asset"
	colLPSupply         = "lp_supply"
	colTotalLiquidity   = "total_liquidity"
	colJackpotBalance   = "jackpot_balance"
	colBonusBalance     = "bonus_balance"
	colMinWager         = "min_wager"
	colMaxWager         = "max_wager"
	colPlaysCount       = "plays_count"
	colCustomPoolFee    = "custom_pool_fee"
	colCustomPoolFeeBps = "custom_pool_fee_bps"
	colCustomProtoFee   = "custom_proto_fee"
	colCustomProtoBps   = "custom_proto_fee_bps"
	colCustomMaxPayout  = "custom_max_payout"
	colCustomMaxPayBps  = "custom_max_payout_bps"
	colIsActive         = "is_active"
	colCreatedAt        = "created_at"
)

var allColumns = []string{
	colID, colAuthority, colUnderlyingAsset, colLPSupply, colTotalLiquidity,
	colJackpotBalance, colBonusBalance, colMinWager, colMaxWager,
	colPlaysCount, colCustomPoolFee, colCustomPoolFeeBps, colCustomProtoFee,
	colCustomProtoBps, colCustomMaxPayout, colCustomMaxPayBps,
	colIsActive, colCreatedAt,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewPoolRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.PoolRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

func (r *repo) CreatePool(ctx context.Context, pool *model.Pool) error {
	query := sq.Insert(table).
		Columns(allColumns...).
		Values(
			pool.ID, pool.Authority, pool.UnderlyingAsset, pool.LPSupply,
			pool.TotalLiquidity, pool.JackpotBalance, pool.BonusBalance,
			pool.MinWager, pool.MaxWager, pool.PlaysCount,
			pool.CustomPoolFee, pool.CustomPoolFeeBps,
			pool.CustomProtoFee, pool.CustomProtoFeeBps,
			pool.CustomMaxPayout, pool.CustomMaxPayoutBps,
			pool.IsActive, pool.CreatedAt,
		).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// GetPool - loads a pool record without locking it.
func (r *repo) GetPool(ctx context.Context, id uuid.UUID) (*model.Pool, error) {
	return r.get(ctx, id, false)
}

// GetPoolForUpdate loads a pool record with SELECT ... FOR UPDATE. Must be
// called inside a transaction; concurrent settlements against the same pool
// serialize on this row lock.
func (r *repo) GetPoolForUpdate(ctx context.Context, id uuid.UUID) (*model.Pool, error) {
	return r.get(ctx, id, true)
}

func (r *repo) get(ctx context.Context, id uuid.UUID, forUpdate bool) (*model.Pool, error) {
	query := sq.Select(allColumns...).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	row := r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...)
	return scanPool(row)
}

// UpdatePool writes back the mutable balance and counter columns.
func (r *repo) UpdatePool(ctx context.Context, pool *model.Pool) error {
	query := sq.Update(table).
		Set(colLPSupply, pool.LPSupply).
		Set(colTotalLiquidity, pool.TotalLiquidity).
		Set(colJackpotBalance, pool.JackpotBalance).
		Set(colBonusBalance, pool.BonusBalance).
		Set(colPlaysCount, pool.PlaysCount).
		Set(colIsActive, pool.IsActive).
		Where(sq.Eq{colID: pool.ID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return gameerr.ErrPoolNotFound
	}

	return nil
}

func scanPool(row pgx.Row) (*model.Pool, error) {
	var pool model.Pool

	err := row.Scan(
		&pool.ID, &pool.Authority, &pool.UnderlyingAsset, &pool.LPSupply,
		&pool.TotalLiquidity, &pool.JackpotBalance, &pool.BonusBalance,
		&pool.MinWager, &pool.MaxWager, &pool.PlaysCount,
		&pool.CustomPoolFee, &pool.CustomPoolFeeBps,
		&pool.CustomProtoFee, &pool.CustomProtoFeeBps,
		&pool.CustomMaxPayout, &pool.CustomMaxPayoutBps,
		&pool.IsActive, &pool.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return nil, gameerr.ErrPoolNotFound
		}
		return nil, err
	}

	return &pool, nil
}
