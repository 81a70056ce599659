package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	helper "sekolahku_backend/internals/helpers"
)

// TokenClaims is the JWT payload. Subject carries the user id; SchoolID is
// present only for school-bound roles.
type TokenClaims struct {
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	SchoolID *string `json:"school_id,omitempty"`
	jwt.RegisteredClaims
}

// SignAccessToken issues an HS256 bearer token for the claim.
func SignAccessToken(cl *Claim, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	tc := TokenClaims{
		Email: cl.Email,
		Role:  cl.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   cl.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if cl.SchoolID != nil {
		s := cl.SchoolID.String()
		tc.SchoolID = &s
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, tc).SignedString([]byte(secret))
}

// VerifyAccessToken checks signature and expiry and rebuilds the claim.
// Expiry is reported distinctly from every other verification failure.
func VerifyAccessToken(raw, secret string) (*Claim, *helper.ApiError) {
	tc := &TokenClaims{}
	token, err := jwt.ParseWithClaims(raw, tc, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, helper.NewTokenExpiredError()
		}
		return nil, helper.NewAuthenticationError("invalid access token")
	}
	if !token.Valid {
		return nil, helper.NewAuthenticationError("invalid access token")
	}

	userID, err := uuid.Parse(tc.Subject)
	if err != nil {
		return nil, helper.NewAuthenticationError("invalid access token")
	}
	cl := &Claim{
		UserID: userID,
		Email:  tc.Email,
		Role:   tc.Role,
	}
	if tc.SchoolID != nil {
		sid, err := uuid.Parse(*tc.SchoolID)
		if err != nil {
			return nil, helper.NewAuthenticationError("invalid access token")
		}
		cl.SchoolID = &sid
	}
	return cl, nil
}
