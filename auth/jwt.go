package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang-jwt/jwt/v5/request"
	"github.com/google/uuid"
)

type TeamClaims struct {
	TeamID      string `json:"team_id,omitempty"`
	ChallengeID string `json:"challenge_id,omitempty"`
	TeamName    string `json:"team_name,omitempty"`
	jwt.RegisteredClaims
}

type ClaimsKeyType string

var CtxTeamClaimsKey ClaimsKeyType = "teamClaims"

func GenerateJWT(teamID uuid.UUID, challengeID uuid.UUID, teamName string, jwtKey []byte) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	claims := &TeamClaims{
		TeamID:           teamID.String(),
		ChallengeID:      challengeID.String(),
		TeamName:         teamName,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expirationTime)},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func ValidateJWT(tokenStr string, jwtKey []byte) (*TeamClaims, error) {
	claims := &TeamClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrSignatureInvalid) {
			return nil, errors.New("invalid token signature")
		}
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// GetJwtAuthMiddleware validates the JWT token and adds the team claims to
// the request context. Requests without a token pass through with nil claims
// so that public endpoints keep working.
func GetJwtAuthMiddleware(jwtKey []byte) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, err := request.BearerExtractor{}.ExtractToken(r)
			if err != nil {
				if errors.Is(err, request.ErrNoTokenInRequest) {
					ctx := context.WithValue(r.Context(), CtxTeamClaimsKey, (*TeamClaims)(nil))
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			claims, err := ValidateJWT(token, jwtKey)
			if err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), CtxTeamClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// TeamClaimsFromContext returns the claims stored by the middleware, or nil
// for an unauthenticated request.
func TeamClaimsFromContext(ctx context.Context) *TeamClaims {
	claims, ok := ctx.Value(CtxTeamClaimsKey).(*TeamClaims)
	if !ok {
		return nil
	}
	return claims
}
