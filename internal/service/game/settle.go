package game

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"wagerpool_backend/internal/gameerr"
	"wagerpool_backend/internal/model"
	"wagerpool_backend/pkg/fair"
)

// SettleRound reveals the committed seed for a game, resolves the outcome
// deterministically and applies all balance movements in one transaction.
// The conditional status update in the game repository guarantees a game
// settles at most once even under concurrent reveals.
func (s *serv) SettleRound(ctx context.Context, gameID uuid.UUID, revealedSeed, nextSeedHash string) (*model.SettleResult, error) {
	if !fair.ValidSeedHash(nextSeedHash) {
		return nil, gameerr.ErrInvalidSeedHash
	}

	var res *model.SettleResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		game, err := s.gameRepo.GetGame(txCtx, gameID)
		if err != nil {
			return err
		}

		switch game.Status {
		case model.GameStatusResultRequested:
		case model.GameStatusReady:
			return gameerr.ErrResultAlreadyProvided
		default:
			return gameerr.ErrRngNotReady
		}

		// The fairness gate. A failed reveal leaves the round untouched and
		// retriable with the correct seed.
		if err := fair.VerifySeed(revealedSeed, game.CommittedSeedHash); err != nil {
			log.Printf("seed reveal rejected: game=%s owner=%s committed=%s",
				game.ID, game.Owner, game.CommittedSeedHash)
			return err
		}

		digest := fair.GameDigest(revealedSeed, game.ClientSeed, game.Nonce)

		resultIndex, err := fair.ResultIndex(digest, game.Bet)
		if err != nil {
			return err
		}
		multiplier, err := fair.Multiplier(game.Bet, resultIndex)
		if err != nil {
			return err
		}
		payout, err := fair.Payout(game.NetWager, multiplier)
		if err != nil {
			return err
		}

		pool, err := s.poolRepo.GetPoolForUpdate(txCtx, game.PoolID)
		if err != nil {
			return err
		}

		jackpotWon, err := fair.JackpotWon(digest, game.JackpotProbabilityUbps)
		if err != nil {
			return err
		}

		totalPayout := payout
		var jackpot fair.JackpotPayout
		if jackpotWon {
			// The jackpot pays from the balance as it stood before this
			// round's own fee accrues.
			jackpot, err = fair.SplitJackpot(pool.JackpotBalance, s.cfg.JackpotSplit)
			if err != nil {
				return err
			}
			totalPayout, err = fair.AddChecked(totalPayout, jackpot.ToUser)
			if err != nil {
				return err
			}
			pool.JackpotBalance = jackpot.Residue
		}

		// Part of the jackpot fee seeds the bonus balance, the rest grows
		// the jackpot itself.
		bonusShare, err := fair.Fee(game.JackpotFee, s.cfg.BonusToJackpotRatioBps)
		if err != nil {
			return err
		}
		pool.BonusBalance, err = fair.AddChecked(pool.BonusBalance, bonusShare)
		if err != nil {
			return err
		}
		pool.JackpotBalance, err = fair.AddChecked(pool.JackpotBalance, game.JackpotFee-bonusShare)
		if err != nil {
			return err
		}

		// Release the reserve, credit the pool's share of the wager, debit
		// the bet payout. The payout never exceeds the reserve.
		liquidity := pool.TotalLiquidity
		for _, credit := range []uint64{game.PayoutReserve, game.NetWager, game.PoolFee, jackpot.ToPool} {
			liquidity, err = fair.AddChecked(liquidity, credit)
			if err != nil {
				return err
			}
		}
		liquidity, err = fair.SubChecked(liquidity, payout)
		if err != nil {
			return gameerr.ErrInsufficientLiquidity
		}
		pool.TotalLiquidity = liquidity
		pool.PlaysCount++

		player, err := s.playerRepo.GetPlayerForUpdate(txCtx, game.Owner)
		if err != nil {
			return err
		}
		player.TotalWon, err = fair.AddChecked(player.TotalWon, totalPayout)
		if err != nil {
			return err
		}
		player.GamesPlayed++
		// Rotate the commitment chain. If a concurrent settlement already
		// rotated it, the stored hash no longer matches and the chain is
		// left as is.
		if player.PendingSeedHash == game.CommittedSeedHash {
			player.PendingSeedHash = nextSeedHash
		}
		player.UpdatedAt = time.Now().UTC()

		game.Status = model.GameStatusReady
		game.RevealedSeed = revealedSeed
		game.NextSeedHash = nextSeedHash
		game.ResultIndex = resultIndex
		game.MultiplierBps = multiplier
		game.Payout = payout
		game.JackpotWon = jackpotWon
		game.JackpotPayout = jackpot.ToUser
		game.SettledAt = time.Now().UTC()

		ok, err := s.gameRepo.SettleGame(txCtx, game)
		if err != nil {
			return err
		}
		if !ok {
			return gameerr.ErrResultAlreadyProvided
		}

		if err := s.playerRepo.UpdatePlayer(txCtx, player); err != nil {
			return err
		}
		if err := s.poolRepo.UpdatePool(txCtx, pool); err != nil {
			return err
		}

		res = &model.SettleResult{
			Game:             game,
			TotalPayout:      totalPayout,
			JackpotToUser:    jackpot.ToUser,
			JackpotToCreator: jackpot.ToCreator,
			JackpotToPool:    jackpot.ToPool,
			JackpotToProto:   jackpot.ToProtocol,
			PoolLiquidity:    pool.TotalLiquidity,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.statsRepo.RecordSettlement(res.Game.Wager, res.TotalPayout, res.Game.JackpotWon)

	log.Printf("game settled: game=%s owner=%s result=%d multiplier=%d payout=%d jackpot=%t",
		res.Game.ID, res.Game.Owner, res.Game.ResultIndex, res.Game.MultiplierBps,
		res.TotalPayout, res.Game.JackpotWon)

	return res, nil
}
