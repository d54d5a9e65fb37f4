package transfer

import "encoding/json"

// CharacterCreation covers both POST /characters and PUT /characters/:id.
// Only Name and Niche are required; the physical attributes stay nil when the
// caller leaves them out.
type CharacterCreation struct {
	Name              string          `json:"name"`
	Niche             string          `json:"niche"`
	Bio               string          `json:"bio"`
	ReferenceImageURL *string         `json:"reference_image_url"`
	Age               *int            `json:"age"`
	HeightCm          *int            `json:"height_cm"`
	WeightKg          *int            `json:"weight_kg"`
	Ethnicity         *string         `json:"ethnicity"`
	HairColor         *string         `json:"hair_color"`
	EyeColor          *string         `json:"eye_color"`
	SkinTone          *string         `json:"skin_tone"`
	BodyType          *string         `json:"body_type"`
	PersonalityTraits json.RawMessage `json:"personality_traits"`
	VisualStyle       json.RawMessage `json:"visual_style"`
}

type CharacterStats struct {
	PendingIdeas    int `json:"pendingIdeas"`
	ApprovedContent int `json:"approvedContent"`
	PhotoContent    int `json:"photoContent"`
	VideoContent    int `json:"videoContent"`
}

type LoginRequest struct {
	Password string `json:"password"`
}
