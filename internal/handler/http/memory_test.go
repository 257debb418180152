// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-adv-board/internal/store"
	"github.com/MKhiriev/go-adv-board/models"
)

// memoryStore keeps users and advertisements in maps and follows the
// error contract of the PostgreSQL repositories.
type memoryStore struct {
	mu sync.Mutex

	users          map[int64]models.User
	advertisements map[int64]models.Advertisement
	lastUserID     int64
	lastAdvID      int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:          make(map[int64]models.User),
		advertisements: make(map[int64]models.Advertisement),
	}
}

func (m *memoryStore) storages() *store.Storages {
	return &store.Storages{
		UserRepository:          memoryUsers{m},
		AdvertisementRepository: memoryAdvertisements{m},
	}
}

type memoryUsers struct{ *memoryStore }

func (m memoryUsers) CreateUser(_ context.Context, user models.User) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Email == user.Email {
			return 0, store.ErrEmailAlreadyExists
		}
	}

	m.lastUserID++
	user.ID = m.lastUserID
	user.Created = time.Now()
	m.users[user.ID] = user

	return user.ID, nil
}

func (m memoryUsers) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}

	return models.User{}, store.ErrUserNotFound
}

type memoryAdvertisements struct{ *memoryStore }

func (m memoryAdvertisements) CreateAdvertisement(_ context.Context, adv models.Advertisement) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[adv.OwnerID]; !ok {
		return 0, store.ErrAdvertisementConflict
	}

	m.lastAdvID++
	adv.ID = m.lastAdvID
	adv.Created = time.Now().UTC().Truncate(time.Second)
	m.advertisements[adv.ID] = adv

	return adv.ID, nil
}

func (m memoryAdvertisements) GetAdvertisement(_ context.Context, id int64) (models.Advertisement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	adv, ok := m.advertisements[id]
	if !ok {
		return models.Advertisement{}, store.ErrAdvertisementNotFound
	}

	return adv, nil
}

func (m memoryAdvertisements) UpdateAdvertisement(_ context.Context, id int64, update models.AdvertisementUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	adv, ok := m.advertisements[id]
	if !ok {
		return store.ErrAdvertisementNotFound
	}
	if update.Title.Set && update.Title.Null {
		return store.ErrAdvertisementConflict
	}

	m.advertisements[id] = applyUpdate(adv, update)
	return nil
}

func (m memoryAdvertisements) DeleteAdvertisement(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.advertisements[id]; !ok {
		return false, nil
	}

	delete(m.advertisements, id)
	return true, nil
}

// applyUpdate returns a copy of adv with the present fields of update
// replaced. Callers reject a null title first.
func applyUpdate(adv models.Advertisement, update models.AdvertisementUpdate) models.Advertisement {
	if update.Title.Set {
		adv.Title = update.Title.Value
	}
	if update.Description.Set {
		adv.Description = update.Description.Ptr()
	}

	return adv
}
