package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campaign-space-api/internal/domain"
	"campaign-space-api/internal/repository"
	"campaign-space-api/internal/response"
)

// ownedCharacter loads a character and verifies the requesting account owns
// it. Every mutating operation resolves authorization through here: acting
// "as" a character requires owning it, and touching a character's resources
// requires owning that character.
func ownedCharacter(ctx context.Context, characterRepo repository.CharacterRepository, userID, characterID uuid.UUID) (*domain.Character, error) {
	character, err := characterRepo.FindByID(ctx, characterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Character not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load character", err.Error())
	}
	if character.OwnerID != userID {
		return nil, response.NewAppError(response.ErrCodeForbidden, "You do not own this character", "")
	}
	return character, nil
}

// characterOwnedBy reports whether the account owns the character, without
// failing the request. Used for either-side checks like comment deletion.
func characterOwnedBy(ctx context.Context, characterRepo repository.CharacterRepository, userID, characterID uuid.UUID) bool {
	character, err := characterRepo.FindByID(ctx, characterID)
	if err != nil {
		return false
	}
	return character.OwnerID == userID
}
