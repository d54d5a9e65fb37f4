package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Rakifeller/idea-approval/internal/apperr"
	"github.com/Rakifeller/idea-approval/internal/models"
	"github.com/Rakifeller/idea-approval/internal/repository"
	"github.com/Rakifeller/idea-approval/internal/transfer"
	"github.com/h2non/filetype"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type CharacterService interface {
	Create(ctx context.Context, cc *transfer.CharacterCreation) (*models.InfluencerCharacter, error)
	Get(ctx context.Context, id string) (*models.InfluencerCharacter, error)
	List(ctx context.Context) ([]*models.InfluencerCharacter, error)
	Update(ctx context.Context, id string, cc *transfer.CharacterCreation) (*models.InfluencerCharacter, error)
	Stats(ctx context.Context, characterID string) (*transfer.CharacterStats, error)
	Content(ctx context.Context, characterID string) ([]*models.ApprovedContent, error)
	UploadReferenceImage(ctx context.Context, id string, file []byte) (string, error)
}

type characterService struct {
	chr repository.CharacterRepository
	ir  repository.IdeaRepository
	cr  repository.ContentRepository
	r2  *R2Service
}

func NewCharacterService(
	chr repository.CharacterRepository,
	ir repository.IdeaRepository,
	cr repository.ContentRepository,
	r2 *R2Service) CharacterService {
	return &characterService{chr: chr, ir: ir, cr: cr, r2: r2}
}

func (s *characterService) Create(ctx context.Context, cc *transfer.CharacterCreation) (*models.InfluencerCharacter, error) {
	if cc.Name == "" {
		return nil, apperr.Validation("name")
	}
	if cc.Niche == "" {
		return nil, apperr.Validation("niche")
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("error generating character id: %w", err)
	}

	character := applyCharacterFields(&models.InfluencerCharacter{ID: id}, cc)
	if err := s.chr.Create(ctx, character); err != nil {
		return nil, fmt.Errorf("error creating character: %w", err)
	}

	return character, nil
}

func (s *characterService) Get(ctx context.Context, id string) (*models.InfluencerCharacter, error) {
	character, err := s.chr.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading character: %w", err)
	}
	if character == nil {
		return nil, apperr.NotFound("character", id)
	}
	return character, nil
}

func (s *characterService) List(ctx context.Context) ([]*models.InfluencerCharacter, error) {
	characters, err := s.chr.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing characters: %w", err)
	}
	return characters, nil
}

func (s *characterService) Update(ctx context.Context, id string, cc *transfer.CharacterCreation) (*models.InfluencerCharacter, error) {
	if cc.Name == "" {
		return nil, apperr.Validation("name")
	}
	if cc.Niche == "" {
		return nil, apperr.Validation("niche")
	}

	character := applyCharacterFields(&models.InfluencerCharacter{ID: id}, cc)
	found, err := s.chr.Update(ctx, character)
	if err != nil {
		return nil, fmt.Errorf("error updating character: %w", err)
	}
	if !found {
		return nil, apperr.NotFound("character", id)
	}

	return character, nil
}

func (s *characterService) Stats(ctx context.Context, characterID string) (*transfer.CharacterStats, error) {
	if characterID == "" {
		return nil, apperr.Validation("character_id")
	}

	pending, err := s.ir.CountPendingByCharacter(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("error counting pending ideas: %w", err)
	}
	approved, err := s.cr.CountByCharacter(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("error counting approved content: %w", err)
	}
	photos, err := s.ir.CountApprovedByContentType(ctx, characterID, models.ContentTypePhoto)
	if err != nil {
		return nil, fmt.Errorf("error counting photo ideas: %w", err)
	}
	videos, err := s.ir.CountApprovedByContentType(ctx, characterID, models.ContentTypeVideo)
	if err != nil {
		return nil, fmt.Errorf("error counting video ideas: %w", err)
	}

	return &transfer.CharacterStats{
		PendingIdeas:    pending,
		ApprovedContent: approved,
		PhotoContent:    photos,
		VideoContent:    videos,
	}, nil
}

func (s *characterService) Content(ctx context.Context, characterID string) ([]*models.ApprovedContent, error) {
	if characterID == "" {
		return nil, apperr.Validation("character_id")
	}

	content, err := s.cr.ListByCharacter(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("error listing character content: %w", err)
	}
	return content, nil
}

func (s *characterService) UploadReferenceImage(ctx context.Context, id string, file []byte) (string, error) {
	character, err := s.chr.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("error loading character: %w", err)
	}
	if character == nil {
		return "", apperr.NotFound("character", id)
	}

	kind, err := filetype.Match(file)
	if err != nil {
		return "", fmt.Errorf("error detecting file type: %w", err)
	}
	if kind.Extension != "jpg" && kind.Extension != "png" {
		return "", apperr.Validation("file")
	}

	key, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("error generating asset key: %w", err)
	}

	if err := s.r2.Upload(ctx, key, file, kind.MIME.Value); err != nil {
		slog.Info(err.Error())
		return "", fmt.Errorf("error uploading reference image: %w", err)
	}

	url := s.r2.PublicURL(key)
	if _, err := s.chr.SetReferenceImage(ctx, id, url); err != nil {
		return "", fmt.Errorf("error saving reference image url: %w", err)
	}

	return url, nil
}

func applyCharacterFields(c *models.InfluencerCharacter, cc *transfer.CharacterCreation) *models.InfluencerCharacter {
	c.Name = cc.Name
	c.Niche = cc.Niche
	c.Bio = cc.Bio
	c.ReferenceImageURL = cc.ReferenceImageURL
	c.Age = cc.Age
	c.HeightCm = cc.HeightCm
	c.WeightKg = cc.WeightKg
	c.Ethnicity = cc.Ethnicity
	c.HairColor = cc.HairColor
	c.EyeColor = cc.EyeColor
	c.SkinTone = cc.SkinTone
	c.BodyType = cc.BodyType
	c.PersonalityTraits = cc.PersonalityTraits
	c.VisualStyle = cc.VisualStyle
	return c
}
