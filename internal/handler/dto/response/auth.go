package response

import "venue-booking/internal/usecase/queries"

type LoginResponse struct {
	User *queries.AuthorizedUserView `json:"user"`
}

type RefreshResponse struct {
	Message string `json:"message"`
}
