package service

import (
	"context"
	"time"
)

// OnlineStore 在线状态存储
type OnlineStore interface {
	Touch(ctx context.Context, userID uint64) error
	LastActive(ctx context.Context, userID uint64) (time.Time, bool, error)
	Logout(ctx context.Context, userID uint64) error
}

type OnlineUserService interface {
	MarkOnline(ctx context.Context, userID uint64) error
	IsOnline(ctx context.Context, userID uint64) (bool, error)
	Logout(ctx context.Context, userID uint64) error
}

type OnlineUserServiceImpl struct {
	store OnlineStore
}

func NewOnlineUserService(store OnlineStore) OnlineUserService {
	return &OnlineUserServiceImpl{store: store}
}

func (s *OnlineUserServiceImpl) MarkOnline(ctx context.Context, userID uint64) error {
	return s.store.Touch(ctx, userID)
}

func (s *OnlineUserServiceImpl) IsOnline(ctx context.Context, userID uint64) (bool, error) {
	_, ok, err := s.store.LastActive(ctx, userID)
	return ok, err
}

func (s *OnlineUserServiceImpl) Logout(ctx context.Context, userID uint64) error {
	return s.store.Logout(ctx, userID)
}
