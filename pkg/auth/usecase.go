package auth

import (
	"context"
	"strings"

	"github.com/skillmentor/backend/pkg/identity"
)

// UseCase describes authentication/registration behavior. Credential
// verification is delegated wholesale to the external identity provider;
// this service never stores passwords.
type UseCase interface {
	Register(ctx context.Context, email, password string) (Result, error)
	Login(ctx context.Context, email, password string) (Result, error)
}

type Result struct {
	Account identity.Account
	Token   string
}

type authService struct {
	gateway identity.Gateway
	tokens  TokenGenerator
}

// NewService returns default implementation of UseCase.
func NewService(gateway identity.Gateway, tokens TokenGenerator) UseCase {
	return &authService{gateway: gateway, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, email, password string) (Result, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Result{}, identity.ErrInvalidCredentials
	}
	acc, err := s.gateway.SignUp(ctx, email, password)
	if err != nil {
		return Result{}, err
	}
	token, err := s.tokens.Generate(ctx, acc)
	if err != nil {
		return Result{}, err
	}
	return Result{Account: acc, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (Result, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Result{}, identity.ErrInvalidCredentials
	}
	acc, err := s.gateway.SignIn(ctx, email, password)
	if err != nil {
		return Result{}, err
	}
	token, err := s.tokens.Generate(ctx, acc)
	if err != nil {
		return Result{}, err
	}
	return Result{Account: acc, Token: token}, nil
}
