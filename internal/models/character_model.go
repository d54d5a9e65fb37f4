package models

import (
	"encoding/json"
	"time"
)

type InfluencerCharacter struct {
	ID                string          `db:"id" json:"id"`
	Name              string          `db:"name" json:"name"`
	Niche             string          `db:"niche" json:"niche"`
	Bio               string          `db:"bio" json:"bio"`
	ReferenceImageURL *string         `db:"reference_image_url" json:"reference_image_url,omitempty"`
	Age               *int            `db:"age" json:"age,omitempty"`
	HeightCm          *int            `db:"height_cm" json:"height_cm,omitempty"`
	WeightKg          *int            `db:"weight_kg" json:"weight_kg,omitempty"`
	Ethnicity         *string         `db:"ethnicity" json:"ethnicity,omitempty"`
	HairColor         *string         `db:"hair_color" json:"hair_color,omitempty"`
	EyeColor          *string         `db:"eye_color" json:"eye_color,omitempty"`
	SkinTone          *string         `db:"skin_tone" json:"skin_tone,omitempty"`
	BodyType          *string         `db:"body_type" json:"body_type,omitempty"`
	PersonalityTraits json.RawMessage `db:"personality_traits" json:"personality_traits"`
	VisualStyle       json.RawMessage `db:"visual_style" json:"visual_style"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updated_at"`
}
