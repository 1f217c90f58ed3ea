package usecase_test

import (
	"context"

	"github.com/ovi-dev/geslab/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Gateways falsos para los tests de casos de uso
// ──────────────────────────────────────────────────────────────────────────────

type fakeClienteGateway struct {
	fetchAll func(ctx context.Context, force bool) ([]entity.Cliente, error)
	create   func(ctx context.Context, c entity.Cliente) (*entity.Cliente, error)
	update   func(ctx context.Context, c entity.Cliente) (*entity.Cliente, error)
	remove   func(ctx context.Context, id int) error
}

func (f *fakeClienteGateway) FetchAll(ctx context.Context, force bool) ([]entity.Cliente, error) {
	return f.fetchAll(ctx, force)
}

func (f *fakeClienteGateway) GetByID(ctx context.Context, id int) (*entity.Cliente, error) {
	lista, err := f.fetchAll(ctx, false)
	if err != nil {
		return nil, err
	}
	for _, c := range lista {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeClienteGateway) Create(ctx context.Context, c entity.Cliente) (*entity.Cliente, error) {
	return f.create(ctx, c)
}

func (f *fakeClienteGateway) Update(ctx context.Context, c entity.Cliente) (*entity.Cliente, error) {
	return f.update(ctx, c)
}

func (f *fakeClienteGateway) Remove(ctx context.Context, id int) error {
	return f.remove(ctx, id)
}

type fakeMuestraGateway struct {
	fetchAll func(ctx context.Context, force bool) ([]entity.Muestra, error)
	create   func(ctx context.Context, m entity.Muestra) (*entity.Muestra, error)
	update   func(ctx context.Context, id int, m entity.Muestra) (*entity.Muestra, error)
	remove   func(ctx context.Context, id int) error
}

func (f *fakeMuestraGateway) FetchAll(ctx context.Context, force bool) ([]entity.Muestra, error) {
	return f.fetchAll(ctx, force)
}

func (f *fakeMuestraGateway) GetByID(ctx context.Context, id int) (*entity.Muestra, error) {
	lista, err := f.fetchAll(ctx, false)
	if err != nil {
		return nil, err
	}
	for _, m := range lista {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, nil
}

func (f *fakeMuestraGateway) Create(ctx context.Context, m entity.Muestra) (*entity.Muestra, error) {
	return f.create(ctx, m)
}

func (f *fakeMuestraGateway) Update(ctx context.Context, id int, m entity.Muestra) (*entity.Muestra, error) {
	return f.update(ctx, id, m)
}

func (f *fakeMuestraGateway) Remove(ctx context.Context, id int) error {
	return f.remove(ctx, id)
}

type fakeAuthGateway struct {
	login  func(ctx context.Context, usuario, password string) (string, error)
	me     func(ctx context.Context) (*entity.Usuario, error)
	logout func(ctx context.Context) error
}

func (f *fakeAuthGateway) Login(ctx context.Context, usuario, password string) (string, error) {
	return f.login(ctx, usuario, password)
}

func (f *fakeAuthGateway) Me(ctx context.Context) (*entity.Usuario, error) {
	return f.me(ctx)
}

func (f *fakeAuthGateway) Logout(ctx context.Context) error {
	return f.logout(ctx)
}
