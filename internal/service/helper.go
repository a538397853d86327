package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"campaign-space-api/internal/domain"
	"campaign-space-api/internal/dto"
	"campaign-space-api/internal/response"
)

// S3Client is the subset of the storage client used by the services
type S3Client interface {
	GenerateFileKey(folder, characterID, fileExt string) (string, error)
	UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteFile(ctx context.Context, key string) error
	GetFileURL(key string) string
}

const slugSuffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// generateSlug builds a URL slug from a character name: the lowercased
// alphanumeric characters of the name plus a random 6-character suffix.
// Generated once at creation; never regenerated on rename.
func generateSlug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	base := b.String()
	if base == "" {
		base = "character"
	}

	suffix := make([]byte, 6)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(slugSuffixAlphabet))))
		if err != nil {
			// crypto/rand only fails when the platform entropy source is broken
			suffix[i] = slugSuffixAlphabet[i]
			continue
		}
		suffix[i] = slugSuffixAlphabet[n.Int64()]
	}

	return base + "-" + string(suffix)
}

// removeDuplicateUUIDs removes duplicate UUIDs from a slice
func removeDuplicateUUIDs(uuids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	result := make([]uuid.UUID, 0, len(uuids))

	for _, id := range uuids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}

	return result
}

// marshalStats converts validated ability scores to their JSONB column form
func marshalStats(stats dto.StatsPayload) (datatypes.JSON, error) {
	scores := domain.Stats{
		Strength:     stats.Strength,
		Dexterity:    stats.Dexterity,
		Constitution: stats.Constitution,
		Intelligence: stats.Intelligence,
		Wisdom:       stats.Wisdom,
		Charisma:     stats.Charisma,
	}
	if !scores.Valid() {
		return nil, response.NewAppError(response.ErrCodeValidation,
			fmt.Sprintf("Ability scores must be between %d and %d", domain.StatMin, domain.StatMax), "")
	}
	jsonBytes, err := json.Marshal(scores)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to marshal stats", err.Error())
	}
	return datatypes.JSON(jsonBytes), nil
}

// unmarshalStats reads the JSONB stats column back into the response form
func unmarshalStats(raw datatypes.JSON) dto.StatsPayload {
	var stats domain.Stats
	if len(raw) > 0 {
		// A decode failure leaves zero scores rather than failing the read
		_ = json.Unmarshal(raw, &stats)
	}
	return dto.StatsPayload{
		Strength:     stats.Strength,
		Dexterity:    stats.Dexterity,
		Constitution: stats.Constitution,
		Intelligence: stats.Intelligence,
		Wisdom:       stats.Wisdom,
		Charisma:     stats.Charisma,
	}
}

// toCharacterPreview converts a character to its compact embedded form
func toCharacterPreview(character *domain.Character) dto.CharacterPreview {
	if character == nil {
		return dto.CharacterPreview{}
	}
	return dto.CharacterPreview{
		CharacterID:     character.ID,
		Name:            character.Name,
		ProfileImageURL: character.ProfileImageURL,
		Slug:            character.Slug,
	}
}

// toCharacterPreviews converts a character slice to preview form
func toCharacterPreviews(characters []domain.Character) []dto.CharacterPreview {
	previews := make([]dto.CharacterPreview, 0, len(characters))
	for i := range characters {
		previews = append(previews, toCharacterPreview(&characters[i]))
	}
	return previews
}

// toCharacterResponse converts a character to its full response form
func toCharacterResponse(character *domain.Character) *dto.CharacterResponse {
	return &dto.CharacterResponse{
		CharacterID:     character.ID,
		OwnerID:         character.OwnerID,
		Name:            character.Name,
		Race:            character.Race,
		Class:           character.Class,
		Level:           character.Level,
		Stats:           unmarshalStats(character.Stats),
		Background:      character.Background,
		Alignment:       string(character.Alignment),
		Bio:             character.Bio,
		ProfileImageURL: character.ProfileImageURL,
		BannerImageURL:  character.BannerImageURL,
		ProfileViews:    character.ProfileViews,
		Slug:            character.Slug,
		TopFriends:      toCharacterPreviews(character.TopFriends),
		CreatedAt:       character.CreatedAt,
		UpdatedAt:       character.UpdatedAt,
	}
}
