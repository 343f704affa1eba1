package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-engine/library/internal/errs"
	"github.com/Astemirdum/library-engine/library/internal/model"
	"github.com/Astemirdum/library-engine/pkg/auth"
)

func (s *Service) RegisterStudent(ctx context.Context, req model.RegisterRequest) error {
	return s.register(ctx, auth.RoleStudent, req)
}

func (s *Service) RegisterStaff(ctx context.Context, req model.RegisterRequest) error {
	return s.register(ctx, auth.RoleStaff, req)
}

func (s *Service) register(ctx context.Context, role auth.Role, req model.RegisterRequest) error {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return err
	}
	acc := model.Account{
		ID:           req.ID,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.repo.CreateAccount(ctx, acc); err != nil {
		return err
	}
	s.log.Info("account registered", zap.String("role", string(role)), zap.String("id", req.ID))
	return nil
}

func (s *Service) AuthenticateStudent(ctx context.Context, req model.LoginRequest) (model.Account, error) {
	return s.authenticate(ctx, auth.RoleStudent, req)
}

func (s *Service) AuthenticateStaff(ctx context.Context, req model.LoginRequest) (model.Account, error) {
	return s.authenticate(ctx, auth.RoleStaff, req)
}

// authenticate returns the account only when id, name and password all
// match, errs.ErrNotFound otherwise.
func (s *Service) authenticate(ctx context.Context, role auth.Role, req model.LoginRequest) (model.Account, error) {
	acc, err := s.repo.GetAccount(ctx, role, req.ID)
	if err != nil {
		return model.Account{}, err
	}
	if acc.Name != req.Name || !s.hasher.Match(acc.PasswordHash, req.Password) {
		return model.Account{}, errs.ErrNotFound
	}
	return acc, nil
}

func (s *Service) ListStudents(ctx context.Context, sess auth.Session) ([]model.Student, error) {
	if !sess.IsStaff() {
		return nil, errs.ErrForbidden
	}
	return s.repo.ListStudents(ctx)
}

var demoStudents = []model.RegisterRequest{
	{ID: "S001", Name: "Alice", Password: "password123"},
	{ID: "S002", Name: "Bob", Password: "password456"},
	{ID: "S003", Name: "Charlie", Password: "password789"},
}

// SeedDemoStudents registers the demo accounts, leaving existing ones untouched.
func (s *Service) SeedDemoStudents(ctx context.Context) error {
	for _, req := range demoStudents {
		if err := s.RegisterStudent(ctx, req); err != nil && !errors.Is(err, errs.ErrDuplicateKey) {
			return errors.Wrapf(err, "seed %s", req.ID)
		}
	}
	return nil
}
