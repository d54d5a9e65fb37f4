package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/Rakifeller/idea-approval/internal/models"
)

type CharacterRepository interface {
	Create(ctx context.Context, character *models.InfluencerCharacter) error
	GetByID(ctx context.Context, id string) (*models.InfluencerCharacter, error)
	List(ctx context.Context) ([]*models.InfluencerCharacter, error)
	Update(ctx context.Context, character *models.InfluencerCharacter) (bool, error)
	SetReferenceImage(ctx context.Context, id, url string) (bool, error)
}

type characterRepository struct {
	db *sql.DB
}

func NewCharacterRepository(db *sql.DB) CharacterRepository {
	return &characterRepository{db: db}
}

const characterColumns = `id, name, niche, bio, reference_image_url, age, height_cm, weight_kg, ethnicity, hair_color, eye_color, skin_tone, body_type, personality_traits, visual_style, created_at, updated_at`

func (r *characterRepository) Create(ctx context.Context, c *models.InfluencerCharacter) error {
	query := `
		INSERT INTO influencer_characters (id, name, niche, bio, reference_image_url, age, height_cm, weight_kg, ethnicity, hair_color, eye_color, skin_tone, body_type, personality_traits, visual_style)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		c.ID, c.Name, c.Niche, c.Bio, c.ReferenceImageURL,
		c.Age, c.HeightCm, c.WeightKg, c.Ethnicity, c.HairColor, c.EyeColor, c.SkinTone, c.BodyType,
		rawOrEmpty(c.PersonalityTraits), rawOrEmpty(c.VisualStyle),
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return nil
}

func (r *characterRepository) GetByID(ctx context.Context, id string) (*models.InfluencerCharacter, error) {
	query := `SELECT ` + characterColumns + ` FROM influencer_characters WHERE id = $1`

	c, err := scanCharacter(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return c, nil
}

func (r *characterRepository) List(ctx context.Context) ([]*models.InfluencerCharacter, error) {
	query := `SELECT ` + characterColumns + ` FROM influencer_characters ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var characters []*models.InfluencerCharacter
	for rows.Next() {
		c, err := scanCharacter(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		characters = append(characters, c)
	}
	return characters, rows.Err()
}

func (r *characterRepository) Update(ctx context.Context, c *models.InfluencerCharacter) (bool, error) {
	query := `
		UPDATE influencer_characters
		SET name = $2, niche = $3, bio = $4, reference_image_url = $5, age = $6, height_cm = $7,
			weight_kg = $8, ethnicity = $9, hair_color = $10, eye_color = $11, skin_tone = $12,
			body_type = $13, personality_traits = $14, visual_style = $15, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		c.ID, c.Name, c.Niche, c.Bio, c.ReferenceImageURL,
		c.Age, c.HeightCm, c.WeightKg, c.Ethnicity, c.HairColor, c.EyeColor, c.SkinTone, c.BodyType,
		rawOrEmpty(c.PersonalityTraits), rawOrEmpty(c.VisualStyle),
	).Scan(&c.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		slog.Info(err.Error())
		return false, err
	}

	return true, nil
}

func (r *characterRepository) SetReferenceImage(ctx context.Context, id, url string) (bool, error) {
	query := `UPDATE influencer_characters SET reference_image_url = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, url)
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func scanCharacter(row rowScanner) (*models.InfluencerCharacter, error) {
	var c models.InfluencerCharacter
	err := row.Scan(&c.ID, &c.Name, &c.Niche, &c.Bio, &c.ReferenceImageURL,
		&c.Age, &c.HeightCm, &c.WeightKg, &c.Ethnicity, &c.HairColor, &c.EyeColor, &c.SkinTone, &c.BodyType,
		&c.PersonalityTraits, &c.VisualStyle, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func rawOrEmpty(raw []byte) []byte {
	if len(raw) == 0 {
		return []byte("{}")
	}
	return raw
}
