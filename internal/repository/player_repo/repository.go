package player_repo

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"wagerpool_backend/internal/gameerr"
	"wagerpool_backend/internal/model"
	"wagerpool_backend/internal/repository"
)

const (
	table = "players"

	colOwner           = "owner"
	colNonce           = "nonce"
	colPendingSeedHash = "pending_seed_hash"
	colTotalWagered    = "total_wagered"
	colTotalWon        = "total_won"
	colGamesPlayed     = "games_played"
	colCreatedAt       = "created_at"
	colUpdatedAt       = "updated_at"
)

var allColumns = []string{
	colOwner, colNonce, colPendingSeedHash, colTotalWagered,
	colTotalWon, colGamesPlayed, colCreatedAt, colUpdatedAt,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewPlayerRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.PlayerRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// CreatePlayer inserts a fresh player record. Existing records are left
// untouched so a racing create is harmless.
func (r *repo) CreatePlayer(ctx context.Context, player *model.Player) error {
	query := sq.Insert(table).
		Columns(allColumns...).
		Values(
			player.Owner, player.Nonce, player.PendingSeedHash,
			player.TotalWagered, player.TotalWon, player.GamesPlayed,
			player.CreatedAt, player.UpdatedAt,
		).
		Suffix("ON CONFLICT (" + colOwner + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// GetPlayer - loads a player record without locking it.
func (r *repo) GetPlayer(ctx context.Context, owner string) (*model.Player, error) {
	return r.get(ctx, owner, false)
}

// GetPlayerForUpdate loads a player record with SELECT ... FOR UPDATE so the
// nonce increment serializes across concurrent rounds of the same player.
func (r *repo) GetPlayerForUpdate(ctx context.Context, owner string) (*model.Player, error) {
	return r.get(ctx, owner, true)
}

func (r *repo) get(ctx context.Context, owner string, forUpdate bool) (*model.Player, error) {
	query := sq.Select(allColumns...).
		From(table).
		Where(sq.Eq{colOwner: owner}).
		PlaceholderFormat(sq.Dollar)
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var player model.Player
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&player.Owner, &player.Nonce, &player.PendingSeedHash,
		&player.TotalWagered, &player.TotalWon, &player.GamesPlayed,
		&player.CreatedAt, &player.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return nil, gameerr.ErrPlayerNotFound
		}
		return nil, err
	}

	return &player, nil
}

// UpdatePlayer writes back the nonce, commitment and lifetime counters.
func (r *repo) UpdatePlayer(ctx context.Context, player *model.Player) error {
	query := sq.Update(table).
		Set(colNonce, player.Nonce).
		Set(colPendingSeedHash, player.PendingSeedHash).
		Set(colTotalWagered, player.TotalWagered).
		Set(colTotalWon, player.TotalWon).
		Set(colGamesPlayed, player.GamesPlayed).
		Set(colUpdatedAt, player.UpdatedAt).
		Where(sq.Eq{colOwner: player.Owner}).
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
		return gameerr.ErrPlayerNotFound
	}

	return nil
}

// SetPendingSeedHash swaps the player's pending commitment from old to next
// with a compare-and-set on the current value. Returns false when the stored
// commitment no longer matches old.
func (r *repo) SetPendingSeedHash(ctx context.Context, owner, old, next string) (bool, error) {
	query := sq.Update(table).
		Set(colPendingSeedHash, next).
		Where(sq.Eq{
			colOwner:           owner,
			colPendingSeedHash: old,
		}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return false, err
	}

	return res.RowsAffected() > 0, nil
}
