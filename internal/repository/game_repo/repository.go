package game_repo

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
	table = "games"

	colID                = "id"
	colOwner             = "owner"
	colCreator           = "creator"
	colPoolID            = "pool_id"
	colNonce             = "nonce"
	colStatus            = "status"
	colWager             = "wager"
	colBet               = "bet"
	colClientSeed        = "client_seed"
	colMetadata          = "metadata"
	colCreatorFee        = "creator_fee"
	colProtocolFee       = "protocol_fee"
	colPoolFee           = "pool_fee"
	colJackpotFee        = "jackpot_fee"
	colNetWager          = "net_wager"
	colPayoutReserve     = "payout_reserve"
	colCommittedSeedHash = "committed_seed_hash"
	colRevealedSeed      = "revealed_seed"
	colNextSeedHash      = "next_seed_hash"
	colJackpotProbUbps   = "jackpot_probability_ubps"
	colResultIndex       = "result_index"
	colMultiplierBps     = "multiplier_bps"
	colPayout            = "payout"
	colJackpotWon        = "jackpot_won"
	colJackpotPayout     = "jackpot_payout"
	colCreatedAt         = "created_at"
	colSettledAt         = "settled_at"
)

var allColumns = []string{
	colID, colOwner, colCreator, colPoolID, colNonce, colStatus, colWager, colBet,
	colClientSeed, colMetadata, colCreatorFee, colProtocolFee, colPoolFee,
	colJackpotFee, colNetWager, colPayoutReserve, colCommittedSeedHash,
	colRevealedSeed, colNextSeedHash, colJackpotProbUbps, colResultIndex,
	colMultiplierBps, colPayout, colJackpotWon, colJackpotPayout,
	colCreatedAt, colSettledAt,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewGameRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.GameRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// CreateGame inserts a new game record in result_requested status.
func (r *repo) CreateGame(ctx context.Context, game *model.Game) error {
	bet := make([]int64, len(game.Bet))
	for i, w := range game.Bet {
		bet[i] = int64(w)
	}

	query := sq.Insert(table).
		Columns(allColumns...).
		Values(
			game.ID, game.Owner, game.Creator, game.PoolID, game.Nonce, string(game.Status),
			game.Wager, bet, game.ClientSeed, game.Metadata,
			game.CreatorFee, game.ProtocolFee, game.PoolFee,
			game.JackpotFee, game.NetWager, game.PayoutReserve,
			game.CommittedSeedHash, game.RevealedSeed, game.NextSeedHash,
			game.JackpotProbabilityUbps, game.ResultIndex,
			game.MultiplierBps, game.Payout, game.JackpotWon,
			game.JackpotPayout, game.CreatedAt, settledAtArg(game),
		).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// GetGame - loads a game record by its identifier.
func (r *repo) GetGame(ctx context.Context, id uuid.UUID) (*model.Game, error) {
	query := sq.Select(allColumns...).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	row := r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...)
	return scanGame(row)
}

// SettleGame writes the outcome with a compare-and-set on the status column.
// Two concurrent settlements of the same game cannot both observe
// rowsAffected > 0.
func (r *repo) SettleGame(ctx context.Context, game *model.Game) (bool, error) {
	query := sq.Update(table).
		Set(colStatus, string(model.GameStatusReady)).
		Set(colRevealedSeed, game.RevealedSeed).
		Set(colNextSeedHash, game.NextSeedHash).
		Set(colResultIndex, game.ResultIndex).
		Set(colMultiplierBps, game.MultiplierBps).
		Set(colPayout, game.Payout).
		Set(colJackpotWon, game.JackpotWon).
		Set(colJackpotPayout, game.JackpotPayout).
		Set(colSettledAt, game.SettledAt).
		Where(sq.Eq{
			colID:     game.ID,
			colStatus: string(model.GameStatusResultRequested),
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

func settledAtArg(game *model.Game) interface{} {
	if game.SettledAt.IsZero() {
		return nil
	}
	return game.SettledAt
}

func scanGame(row pgx.Row) (*model.Game, error) {
	var (
		game      model.Game
		status    string
		bet       []int64
		settledAt sql.NullTime
	)

	err := row.Scan(
		&game.ID, &game.Owner, &game.Creator, &game.PoolID, &game.Nonce, &status,
		&game.Wager, &bet, &game.ClientSeed, &game.Metadata,
		&game.CreatorFee, &game.ProtocolFee, &game.PoolFee,
		&game.JackpotFee, &game.NetWager, &game.PayoutReserve,
		&game.CommittedSeedHash, &game.RevealedSeed, &game.NextSeedHash,
		&game.JackpotProbabilityUbps, &game.ResultIndex,
		&game.MultiplierBps, &game.Payout, &game.JackpotWon,
		&game.JackpotPayout, &game.CreatedAt, &settledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return nil, gameerr.ErrGameNotFound
		}
		return nil, err
	}

	game.Status = model.GameStatus(status)
	game.Bet = make([]uint32, len(bet))
	for i, w := range bet {
		game.Bet[i] = uint32(w)
	}
	if settledAt.Valid {
		game.SettledAt = settledAt.Time
	}

	return &game, nil
}
