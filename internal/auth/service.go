package auth

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// RoleAdmin sees every group; leader roles are scoped to their own group
const RoleAdmin = "Admin"

// Common errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// User is the authenticated identity attached to requests. Group is empty
// for the admin role.
type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Group    string `json:"group,omitempty"`
}

// IsAdmin reports whether the user may see and edit all groups
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type credential struct {
	username     string
	passwordHash []byte
	role         string
	group        string
}

// Service checks the static credential list and issues session tokens.
// There is no user registry: the account set is fixed, one admin plus one
// leader per sub-chapter.
type Service struct {
	creds    []credential
	secret   []byte
	tokenTTL time.Duration
}

// staticUsers is the fixed (username, password, role) list. Passwords are
// hashed once at construction so plaintext does not stay resident.
var staticUsers = []struct {
	username, password, role, group string
}{
	{"admin", "dsnew26", RoleAdmin, ""},
	{"ketua1", "wk1", "Ketua MM Wonokusumo 1", "Wonokusumo 1"},
	{"ketua2", "wk2", "Ketua MM Wonokusumo 2", "Wonokusumo 2"},
	{"ketua3", "kemang", "Ketua MM Kedung Mangu", "Kedung Mangu"},
	{"ketua4", "kj", "Ketua MM Kapas Jaya", "Kapas Jaya"},
}

// NewService creates the auth service with the built-in account list
func NewService(secret string) *Service {
	s := &Service{secret: []byte(secret), tokenTTL: 24 * time.Hour}
	for _, u := range staticUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("auth: failed to hash password for %s: %v", u.username, err)
			continue
		}
		s.creds = append(s.creds, credential{
			username:     u.username,
			passwordHash: hash,
			role:         u.role,
			group:        u.group,
		})
	}
	return s
}

// Login checks the credentials by exact username match and password
// comparison, returning a signed token and the user identity.
func (s *Service) Login(username, password string) (string, User, error) {
	for _, c := range s.creds {
		if c.username != username {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(c.passwordHash, []byte(password)); err != nil {
			return "", User{}, ErrInvalidCredentials
		}
		user := User{Username: c.username, Role: c.role, Group: c.group}
		token, err := s.issueToken(user)
		if err != nil {
			return "", User{}, err
		}
		return token, user, nil
	}
	return "", User{}, ErrInvalidCredentials
}

// ParseToken validates a token and recovers the user identity from its claims
func (s *Service) ParseToken(tokenString string) (User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return User{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return User{}, ErrInvalidToken
	}

	user := User{}
	if sub, ok := claims["sub"].(string); ok {
		user.Username = sub
	}
	if role, ok := claims["role"].(string); ok {
		user.Role = role
	}
	if group, ok := claims["group"].(string); ok {
		user.Group = group
	}
	if user.Username == "" || user.Role == "" {
		return User{}, ErrInvalidToken
	}
	return user, nil
}

func (s *Service) issueToken(user User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.Username,
		"role":  user.Role,
		"group": user.Group,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
