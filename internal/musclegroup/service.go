// Package musclegroup は部位参照データのドメインロジックを提供する。
package musclegroup

import (
	"context"
	"fmt"

	"github.com/hitoshi/liftlog/internal/model"
	"github.com/hitoshi/liftlog/internal/repository"
)

// Service は部位参照データのサービス層。
// 部位は全ユーザー共有の参照データのため、一覧取得のみを提供する。
type Service struct {
	repo repository.MuscleGroupRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(repo repository.MuscleGroupRepository) *Service {
	return &Service{repo: repo}
}

// ListMuscleGroups は全部位を名前昇順で返す。
func (s *Service) ListMuscleGroups(ctx context.Context) ([]*model.MuscleGroup, error) {
	groups, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("部位一覧の取得に失敗しました: %w", err)
	}
	return groups, nil
}
