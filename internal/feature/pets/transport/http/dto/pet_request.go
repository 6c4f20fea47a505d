// Package dto defines data transfer objects for the pets feature's HTTP
// transport layer.
package dto

import openapi_types "github.com/oapi-codegen/runtime/types"

// PetCreateReq represents the request body for POST /pets.
type PetCreateReq struct {
	Name      string              `json:"name" binding:"required,min=1"`
	Species   string              `json:"species" binding:"required,min=1"`
	Breed     string              `json:"breed"`
	Sex       string              `json:"sex"`
	Birthdate *openapi_types.Date `json:"birthdate"`
	Weight    *float64            `json:"weight"`
	AvatarURL string              `json:"avatar_url"`
}

// PetUpdateReq represents the request body for PUT /pets/:id.
// Absent fields are left unchanged.
type PetUpdateReq struct {
	Name      *string             `json:"name" binding:"omitempty,min=1"`
	Species   *string             `json:"species" binding:"omitempty,min=1"`
	Breed     *string             `json:"breed"`
	Sex       *string             `json:"sex"`
	Birthdate *openapi_types.Date `json:"birthdate"`
	Weight    *float64            `json:"weight"`
	AvatarURL *string             `json:"avatar_url"`
}
