package dto

// GoogleCallbackReq represents the request body for
// POST /auth/google/callback.
type GoogleCallbackReq struct {
	IDToken string `json:"id_token" binding:"required"`
}
