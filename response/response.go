package response

import "github.com/pelayanandata/portal-go/models"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

type RequestStatsResponse struct {
	Counts map[models.RequestStatus]int64 `json:"counts"`
}
