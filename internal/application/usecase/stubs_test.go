package usecase_test

import (
	"context"
	"sort"

	"github.com/jhoicas/stoqr-api/internal/domain"
	"github.com/jhoicas/stoqr-api/internal/domain/entity"
)

type memCatalogRepo struct {
	items map[string]entity.CatalogItem
}

func newMemCatalogRepo() *memCatalogRepo {
	return &memCatalogRepo{items: map[string]entity.CatalogItem{}}
}

func (r *memCatalogRepo) Create(_ context.Context, item *entity.CatalogItem) error {
	for _, it := range r.items {
		if it.Name == item.Name {
			return domain.ErrConflict
		}
	}
	r.items[item.ID] = *item
	return nil
}

func (r *memCatalogRepo) GetByID(_ context.Context, id string) (*entity.CatalogItem, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *memCatalogRepo) GetByName(_ context.Context, name string) (*entity.CatalogItem, error) {
	for _, it := range r.items {
		if it.Name == name {
			found := it
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memCatalogRepo) Update(_ context.Context, item *entity.CatalogItem) error {
	r.items[item.ID] = *item
	return nil
}

func (r *memCatalogRepo) List(_ context.Context, status string) ([]*entity.CatalogItem, error) {
	var out []*entity.CatalogItem
	for _, it := range r.items {
		if status != "" && it.Status != status {
			continue
		}
		item := it
		out = append(out, &item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type memUserRepo struct {
	users map[string]entity.User
}

func newMemUserRepo(users ...entity.User) *memUserRepo {
	r := &memUserRepo{users: map[string]entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) List(context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		user := u
		out = append(out, &user)
	}
	return out, nil
}
