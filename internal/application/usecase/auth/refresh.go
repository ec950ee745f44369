package auth

import (
	"context"

	"github.com/shop-khata/backend/internal/application/adapter"
)

// RefreshInput represents the input for refreshing a token pair.
type RefreshInput struct {
	RefreshToken string
}

// RefreshOutput represents the output of a token refresh.
type RefreshOutput struct {
	Tokens *adapter.TokenPair
}

// RefreshUseCase exchanges a valid refresh token for a new pair.
type RefreshUseCase struct {
	tokenService adapter.TokenService
}

// NewRefreshUseCase creates a new RefreshUseCase instance.
func NewRefreshUseCase(tokenService adapter.TokenService) *RefreshUseCase {
	return &RefreshUseCase{tokenService: tokenService}
}

// Execute refreshes the pair.
func (uc *RefreshUseCase) Execute(ctx context.Context, input RefreshInput) (*RefreshOutput, error) {
	tokens, err := uc.tokenService.Refresh(input.RefreshToken)
	if err != nil {
		return nil, err
	}
	return &RefreshOutput{Tokens: tokens}, nil
}
