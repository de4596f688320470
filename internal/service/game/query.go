package game

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"wagerpool_backend/internal/gameerr"
	"wagerpool_backend/internal/model"
	"wagerpool_backend/pkg/fair"
)

func (s *serv) Game(ctx context.Context, gameID uuid.UUID) (*model.Game, error) {
	return s.gameRepo.GetGame(ctx, gameID)
}

func (s *serv) Player(ctx context.Context, owner string) (*model.Player, error) {
	return s.playerRepo.GetPlayer(ctx, owner)
}

// ProvideSeedHash installs the first commitment for a player. Once a
// commitment is pending it only rotates through settlement, so a stale or
// duplicate provide can never overwrite a live chain.
func (s *serv) ProvideSeedHash(ctx context.Context, owner, seedHash string) error {
	if !fair.ValidSeedHash(seedHash) {
		return gameerr.ErrInvalidSeedHash
	}

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		_, err := s.playerRepo.GetPlayer(txCtx, owner)
		if err != nil {
			if !errors.Is(err, gameerr.ErrPlayerNotFound) {
				return err
			}
			if err := s.playerRepo.CreatePlayer(txCtx, model.NewPlayer(owner)); err != nil {
				return err
			}
		}

		ok, err := s.playerRepo.SetPendingSeedHash(txCtx, owner, "", seedHash)
		if err != nil {
			return err
		}
		if !ok {
			return gameerr.ErrCommitmentPending
		}
		return nil
	})
}
