package service

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/codebabbler/SemesterSaat/service/i"
)

const operatorTokenTTL = 12 * time.Hour

// Operator exchanges the configured operator key for a short-lived signed
// token accepted by the protected routes. There are no user accounts; a
// single shared key gates the operational endpoints.
type Operator struct {
	key       string
	tokenizer i.Tokenizer
}

// NewOperator creates an Operator service.
func NewOperator(key string, tokenizer i.Tokenizer) (*Operator, error) {
	if key == "" {
		return nil, errors.New("operator key must not be empty")
	}
	if tokenizer == nil {
		return nil, errors.New("operator requires a tokenizer")
	}
	return &Operator{key: key, tokenizer: tokenizer}, nil
}

// IssueToken validates the presented key and returns a signed token.
func (o *Operator) IssueToken(key string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(key), []byte(o.key)) != 1 {
		return "", errors.New("invalid operator key")
	}

	return o.tokenizer.Generate(map[string]interface{}{
		"role": "operator",
	}, operatorTokenTTL)
}
