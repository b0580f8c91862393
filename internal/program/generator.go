package program

import (
	"context"
	"errors"
	"strings"

	"github.com/meltforce/fitcoach/internal/models"
)

// ErrMissingProfile is returned when a user has no onboarding profile yet.
// Callers should send the user back to onboarding.
var ErrMissingProfile = errors.New("onboarding profile missing")

// Generator produces a program for a request, or a blocked result when the
// request fails validation.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
}

// GenerateResult holds either a program or the reasons generation was blocked.
type GenerateResult struct {
	Program *models.TrainingProgram `json:"program,omitempty"`
	Blocked *Blocked                `json:"blocked,omitempty"`
}

// Blocked carries the validation messages of a rejected request.
type Blocked struct {
	Errors []string `json:"errors"`
}

// BlockedError is returned when the generator refused the request.
type BlockedError struct {
	Messages []string
}

func (e *BlockedError) Error() string {
	return "program generation blocked: " + strings.Join(e.Messages, "; ")
}
