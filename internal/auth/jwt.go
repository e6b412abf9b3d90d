package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleOwner = "owner"
	RoleGuest = "guest"
)

type TokenManager struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenManager(secret, issuer string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Claims carries the resolved identity. TreeID/MemberID are the guest
// binding and stay zero for owner tokens.
type Claims struct {
	UserID   string `json:"uid"`
	Role     string `json:"role"`
	Type     string `json:"typ"` // "access" | "refresh"
	TreeID   int64  `json:"tree_id,omitempty"`
	MemberID int64  `json:"member_id,omitempty"`
	jwt.RegisteredClaims
}

// GeneratePair mints an access+refresh token pair for an owner session.
func (tm *TokenManager) GeneratePair(userID string) (access, refresh string, accessExp time.Time, err error) {
	return tm.generate(userID, RoleOwner, 0, 0)
}

// GenerateGuestPair mints a pair scoped to one member of one tree.
func (tm *TokenManager) GenerateGuestPair(userID string, treeID, memberID int64) (access, refresh string, accessExp time.Time, err error) {
	return tm.generate(userID, RoleGuest, treeID, memberID)
}

func (tm *TokenManager) generate(userID, role string, treeID, memberID int64) (string, string, time.Time, error) {
	now := time.Now()

	accClaims := Claims{
		UserID:   userID,
		Role:     role,
		Type:     "access",
		TreeID:   treeID,
		MemberID: memberID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tm.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.accessTTL)),
		},
	}
	refClaims := accClaims
	refClaims.Type = "refresh"
	refClaims.ExpiresAt = jwt.NewNumericDate(now.Add(tm.refreshTTL))

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accClaims).SignedString(tm.secret)
	if err != nil {
		return "", "", time.Time{}, err
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refClaims).SignedString(tm.secret)
	if err != nil {
		return "", "", time.Time{}, err
	}
	return access, refresh, accClaims.ExpiresAt.Time, nil
}

// ParseAny validates either token type and reports whether it was a refresh.
func (tm *TokenManager) ParseAny(tokenStr string) (*Claims, bool, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, false, errors.New("invalid token")
	}
	switch claims.Type {
	case "access":
		return claims, false, nil
	case "refresh":
		return claims, true, nil
	}
	return nil, false, errors.New("invalid token")
}
