package account

import (
	"context"
	"strings"

	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/auth"
	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/httperr"
)

type Service struct {
	users  UserRepository
	policy auth.PasswordPolicy
	issuer *auth.Issuer
}

func NewService(users UserRepository, policy auth.PasswordPolicy, issuer *auth.Issuer) *Service {
	return &Service{users: users, policy: policy, issuer: issuer}
}

// Register validates the registration payload, hashes the password and
// persists the user. Duplicate username/email is rejected by the store.
func (s *Service) Register(ctx context.Context, in RegistrationInput) (*User, error) {
	fields := map[string]string{}
	for field, value := range map[string]string{
		"username":   in.Username,
		"email":      in.Email,
		"first_name": in.FirstName,
		"last_name":  in.LastName,
		"password":   in.Password,
	} {
		if strings.TrimSpace(value) == "" {
			fields[field] = "This field is required."
		}
	}
	if len(fields) > 0 {
		return nil, httperr.ValidationFields(fields)
	}

	if in.Password != in.PasswordConfirm {
		return nil, httperr.Validation("password", "Password fields didn't match.")
	}
	if err := s.policy.Check(in.Password, in.Username, in.Email); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns a signed access token. The same
// error is returned for unknown usernames and wrong passwords.
func (s *Service) Login(ctx context.Context, creds Credentials) (*TokenResponse, error) {
	user, err := s.users.GetByUsername(ctx, creds.Username)
	if err != nil {
		return nil, httperr.Unauthorized("invalid username or password")
	}
	if !auth.CheckPassword(user.PasswordHash, creds.Password) {
		return nil, httperr.Unauthorized("invalid username or password")
	}

	token, err := s.issuer.Issue(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{
		Access:    token,
		TokenType: "Bearer",
		ExpiresIn: int(s.issuer.TTL().Seconds()),
	}, nil
}
