package service

import (
	"context"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/ws"
)

type Broadcaster interface {
	Broadcast(msgType ws.MessageType, payload interface{})
}

// NotificationService stores admin panel notifications and pushes them to
// connected admins.
type NotificationService struct {
	Store *ContentService[entities.Notification]
	hub   Broadcaster
}

func NewNotificationService(store *ContentService[entities.Notification], hub Broadcaster) *NotificationService {
	return &NotificationService{Store: store, hub: hub}
}

func (s *NotificationService) Notify(ctx context.Context, kind, title, message, link string) (*entities.Notification, error) {
	n, err := s.Store.Create(ctx, &entities.Notification{
		Kind:    kind,
		Title:   title,
		Message: message,
		Link:    link,
	})
	if err != nil {
		return nil, err
	}
	if s.hub != nil {
		s.hub.Broadcast(ws.MessageTypeNotification, n)
	}
	return n, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) (*entities.Notification, error) {
	return s.Store.Edit(ctx, id, func(n *entities.Notification) error {
		n.Read = true
		return nil
	})
}

func (s *NotificationService) Unread(ctx context.Context) ([]entities.Notification, error) {
	return s.Store.List(ctx, map[string]interface{}{"read": false})
}
