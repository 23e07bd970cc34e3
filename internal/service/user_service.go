package service

import (
	"go-product-select/internal/domain"
	"go-product-select/internal/repo"
	"go-product-select/pkg/utils"
)

type UserService struct {
	users domain.UserRepository
}

func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// Signup 直接插入，用户名唯一索引兜底并发，冲突映射为 ErrDuplicate。
func (s *UserService) Signup(username, email, password string) (*domain.User, error) {
	u := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: utils.HashPassword(password),
		Role:         "user",
	}
	if err := s.users.Create(u); err != nil {
		if repo.IsDupKey(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, err
	}
	return u, nil
}

// Authenticate 用户不存在和密码错误返回同一个错误，不泄露存在性。
func (s *UserService) Authenticate(username, password string) (*domain.User, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) FindByID(id uint) (*domain.User, error) {
	return s.users.FindByID(id)
}

func (s *UserService) List(q string, offset, limit int) ([]domain.User, int64, error) {
	return s.users.List(q, offset, limit)
}
