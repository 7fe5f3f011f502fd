package skills

import (
	"context"
	"errors"
	"strings"

	"emberside/internal/app/ports"
	"emberside/internal/domain/survival"
)

var ErrInvalidRequest = errors.New("invalid skills request")

// UseCase serves the static skill guides and the live per-world ledger.
// The guides are content files; the ledger reads the world aggregate.
type UseCase struct {
	Provider  ports.SkillsProvider
	WorldRepo ports.WorldRepository
}

type LedgerEntry struct {
	Name   string `json:"name"`
	Level  int    `json:"level"`
	XP     int    `json:"xp"`
	ToNext int    `json:"to_next"`
}

type LedgerResponse struct {
	WorldID string        `json:"world_id"`
	Skills  []LedgerEntry `json:"skills"`
}

func (u UseCase) Index(ctx context.Context) ([]byte, error) {
	return u.Provider.Index(ctx)
}

func (u UseCase) File(ctx context.Context, path string) ([]byte, error) {
	return u.Provider.File(ctx, path)
}

func (u UseCase) Ledger(ctx context.Context, worldID string) (LedgerResponse, error) {
	if strings.TrimSpace(worldID) == "" {
		return LedgerResponse{}, ErrInvalidRequest
	}
	state, err := u.WorldRepo.Get(ctx, worldID)
	if err != nil {
		return LedgerResponse{}, err
	}
	out := LedgerResponse{WorldID: state.ID}
	for _, name := range state.Player.Skills.Names() {
		p := state.Player.Skills.Get(name)
		out.Skills = append(out.Skills, LedgerEntry{
			Name:   name,
			Level:  p.Level,
			XP:     p.XP,
			ToNext: survival.XPToNext(p.Level),
		})
	}
	return out, nil
}
