package response

import "github.com/freelancenexus/nexus-go/src/models"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string          `json:"token"`
	UID      uint            `json:"user_id"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type PortfolioDownloadResponse struct {
	URL string `json:"url"`
}
