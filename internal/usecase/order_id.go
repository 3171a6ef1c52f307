package usecase

import (
	"context"
	"strconv"

	repo "pos/internal/repository"
)

// ランダムトークンを作る約束（実体はmainのuuid）
type IDGenerator interface {
	NewID() string
}

// 注文IDの採番方法。デプロイごとにどちらか一方を選ぶ。
type OrderIDGenerator interface {
	NextID(ctx context.Context) (string, error)
}

// ランダム方式。uuidの先頭8桁。順序は保証しないが同時チェックアウトに安全。
type RandomOrderIDGenerator struct {
	idGen IDGenerator
}

func NewRandomOrderIDGenerator(idGen IDGenerator) *RandomOrderIDGenerator {
	return &RandomOrderIDGenerator{idGen: idGen}
}

func (g *RandomOrderIDGenerator) NextID(ctx context.Context) (string, error) {
	id := g.idGen.NewID()
	if len(id) > 8 {
		id = id[:8]
	}
	return id, nil
}

// 連番方式。台帳を全走査して数値IDの最大+1。
// 採番と追記の間に他の書き手が入ると重複するので、単一プロセス運用のみ。
type SequentialOrderIDGenerator struct {
	salesRepo repo.SalesRepository
}

func NewSequentialOrderIDGenerator(salesRepo repo.SalesRepository) *SequentialOrderIDGenerator {
	return &SequentialOrderIDGenerator{salesRepo: salesRepo}
}

func (g *SequentialOrderIDGenerator) NextID(ctx context.Context) (string, error) {
	max, err := g.salesRepo.MaxNumericOrderID(ctx)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(max+1, 10), nil
}
