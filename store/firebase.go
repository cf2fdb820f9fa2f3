package store

import (
	"context"

	"firebase.google.com/go/db"
)

// FirebaseStore implements TreeStore on the Firebase Realtime Database.
//
// The Admin SDK has no change-listener API, so subscriptions are served by the
// in-process Hub: every mutation goes through this type and notifies after the
// write lands. That covers all writers in this deployment, since the database
// is only ever mutated through this service.
type FirebaseStore struct {
	client *db.Client
	hub    *Hub
}

func NewFirebaseStore(client *db.Client) *FirebaseStore {
	return &FirebaseStore{client: client, hub: NewHub()}
}

func (s *FirebaseStore) Get(ctx context.Context, path string, v interface{}) error {
	return s.client.NewRef(path).Get(ctx, v)
}

func (s *FirebaseStore) Set(ctx context.Context, path string, v interface{}) error {
	if err := s.client.NewRef(path).Set(ctx, v); err != nil {
		return err
	}
	s.hub.Notify(path)
	return nil
}

func (s *FirebaseStore) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	if err := s.client.NewRef(path).Update(ctx, fields); err != nil {
		return err
	}
	s.hub.Notify(path)
	return nil
}

func (s *FirebaseStore) Delete(ctx context.Context, path string) error {
	if err := s.client.NewRef(path).Delete(ctx); err != nil {
		return err
	}
	s.hub.Notify(path)
	return nil
}

func (s *FirebaseStore) Push(ctx context.Context, path string, v interface{}) (string, error) {
	ref, err := s.client.NewRef(path).Push(ctx, v)
	if err != nil {
		return "", err
	}
	s.hub.Notify(path)
	return ref.Key, nil
}

func (s *FirebaseStore) Subscribe(path string, fn func()) func() {
	return s.hub.Subscribe(path, fn)
}
