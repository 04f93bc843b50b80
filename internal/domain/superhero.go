package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Character is a catalog entry as seen by the rest of the app
type Character interface {
	Name() (string, bool)
	Description() (string, bool)
	Thumbnail() Image
}

// Superhero is a character record decoded from the Marvel API.
// It has no constructor: values only come from JSON.
type Superhero struct {
	name        *string
	description *string
	thumbnail   Image
}

type superheroJSON struct {
	Name        *string `json:"name"`        // The name of the character.
	Description *string `json:"description"` // A short bio or description of the character.
	Thumbnail   *Image  `json:"thumbnail"`   // The representative image for this character.
}

var errMissingThumbnail = errors.New("superhero: thumbnail is required")

func (s *Superhero) UnmarshalJSON(data []byte) error {
	var raw superheroJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Thumbnail == nil {
		return errMissingThumbnail
	}

	*s = Superhero{
		name:        raw.Name,
		description: raw.Description,
		thumbnail:   *raw.Thumbnail,
	}
	return nil
}

func (s Superhero) MarshalJSON() ([]byte, error) {
	return json.Marshal(superheroJSON{
		Name:        s.name,
		Description: s.description,
		Thumbnail:   &s.thumbnail,
	})
}

func (s Superhero) Name() (string, bool) {
	if s.name == nil {
		return "", false
	}
	return *s.name, true
}

func (s Superhero) Description() (string, bool) {
	if s.description == nil {
		return "", false
	}
	return *s.description, true
}

func (s Superhero) Thumbnail() Image {
	return s.thumbnail
}

// Image is a Marvel image reference: a path without extension plus the extension
type Image struct {
	Path      string
	Extension string
}

type imageJSON struct {
	Path      *string `json:"path"`
	Extension *string `json:"extension"`
}

func (i *Image) UnmarshalJSON(data []byte) error {
	var raw imageJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Path == nil || raw.Extension == nil {
		return fmt.Errorf("image: path and extension are required")
	}

	*i = Image{Path: *raw.Path, Extension: *raw.Extension}
	return nil
}

func (i Image) MarshalJSON() ([]byte, error) {
	return json.Marshal(imageJSON{Path: &i.Path, Extension: &i.Extension})
}

// URL builds the image address for a Marvel size variant such as
// "standard_medium" or "portrait_xlarge". An empty variant gives the full-size image.
func (i Image) URL(variant string) string {
	if variant == "" {
		return i.Path + "." + i.Extension
	}
	return i.Path + "/" + variant + "." + i.Extension
}
