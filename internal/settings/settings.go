package settings

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/urbanlaundrydahej/laundry-app/internal/apperr"
	"github.com/urbanlaundrydahej/laundry-app/internal/logx"
)

const (
	KeyLaundryName     = "laundry_name"
	DefaultLaundryName = "Urban Laundry"
)

type Repository interface {
	// Seed inserts key=value unless key already exists.
	Seed(ctx context.Context, key, value string) error
	// Get returns apperr.ErrNotFound for an unknown key.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type Service struct {
	repo        Repository
	defaultName string
	log         *zap.Logger
}

// NewService uses defaultName as the seeded laundry name; blank means
// DefaultLaundryName.
func NewService(repo Repository, defaultName string, log *zap.Logger) *Service {
	if strings.TrimSpace(defaultName) == "" {
		defaultName = DefaultLaundryName
	}
	return &Service{repo: repo, defaultName: defaultName, log: logx.OrNop(log).Named("settings")}
}

// Seed stores the default laundry name if none is stored yet.
func (s *Service) Seed(ctx context.Context) error {
	if err := s.repo.Seed(ctx, KeyLaundryName, s.defaultName); err != nil {
		return fmt.Errorf("seed %s: %w", KeyLaundryName, err)
	}
	return nil
}

func (s *Service) GetLaundryName(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, KeyLaundryName)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", KeyLaundryName, err)
	}
	return v, nil
}

func (s *Service) SetLaundryName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperr.Invalid("laundry_name", "required")
	}
	if err := s.repo.Set(ctx, KeyLaundryName, name); err != nil {
		return fmt.Errorf("set %s: %w", KeyLaundryName, err)
	}
	s.log.Info("laundry name updated", zap.String("laundry_name", name))
	return nil
}
