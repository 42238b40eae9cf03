package statictoken

import (
	"context"
	"strings"

	"pet-clinic-types/internal/ports/auth"

	"github.com/pkg/errors"
)

var (
	ErrTokenEmpty   = errors.New("token is empty")
	ErrTokenUnknown = errors.New("token unknown")
)

// Entry es un token configurado a mano (config yaml, sección auth.tokens).
type Entry struct {
	Token  string
	UserID string
	Roles  []string
}

// Verifier implementa auth.AuthVerifier con una tabla fija de tokens.
// Pensado para despliegues internos sin IAM.
type Verifier struct {
	byToken map[string]auth.Claims
}

func NewVerifier(entries []Entry) (*Verifier, error) {
	v := &Verifier{byToken: make(map[string]auth.Claims, len(entries))}
	for i, e := range entries {
		tok := strings.TrimSpace(e.Token)
		uid := strings.TrimSpace(e.UserID)
		if tok == "" || uid == "" {
			return nil, errors.Errorf("auth token #%d: token and user_id are required", i)
		}
		if _, dup := v.byToken[tok]; dup {
			return nil, errors.Errorf("auth token #%d: duplicated token", i)
		}
		v.byToken[tok] = auth.Claims{UserID: uid, Roles: append([]string(nil), e.Roles...)}
	}
	return v, nil
}

func (v *Verifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}
	c, ok := v.byToken[token]
	if !ok {
		return auth.Claims{}, ErrTokenUnknown
	}
	return c, nil
}
