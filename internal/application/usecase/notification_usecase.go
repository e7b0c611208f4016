// internal/application/usecase/notification_usecase.go
package usecase

import (
	"context"

	notificationdom "storefront/internal/domain/notification"
)

type NotificationList struct {
	Items       []notificationdom.Notification `json:"items"`
	UnreadCount int                            `json:"unreadCount"`
}

type NotificationUsecase struct {
	repo notificationdom.Repository
}

func NewNotificationUsecase(repo notificationdom.Repository) *NotificationUsecase {
	return &NotificationUsecase{repo: repo}
}

func (uc *NotificationUsecase) List(ctx context.Context) (NotificationList, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return NotificationList{}, err
	}
	if items == nil {
		items = []notificationdom.Notification{}
	}
	return NotificationList{Items: items, UnreadCount: notificationdom.UnreadCount(items)}, nil
}

func (uc *NotificationUsecase) MarkRead(ctx context.Context, id int) (NotificationList, error) {
	if err := uc.repo.MarkRead(ctx, id); err != nil {
		return NotificationList{}, err
	}
	return uc.List(ctx)
}

func (uc *NotificationUsecase) MarkAllRead(ctx context.Context) (NotificationList, error) {
	if _, err := uc.repo.MarkAllRead(ctx); err != nil {
		return NotificationList{}, err
	}
	return uc.List(ctx)
}
