package handlers

import "time"

// UserInfo is the public view of a user account.
type UserInfo struct {
	ID       string `doc:"The user id"  example:"6f1f9db0-6f2b-4f5a-9f50-1c9a2f6f9db0" json:"id"`
	Email    string `doc:"The email"    example:"alice@example.com"                    json:"email"`
	Username string `doc:"The username" example:"alice"                               json:"username"`
}

// LoginRequest is the request body for authenticating a user.
type LoginRequest struct {
	Body struct {
		Email    string `doc:"The account email" example:"alice@example.com" json:"email"    minLength:"1"`
		Password string `doc:"The password"      example:"pw123456"          json:"password" minLength:"1"`
	}
}

// LoginResponse is the response for a successful login.
type LoginResponse struct {
	Body struct {
		User  UserInfo `doc:"The authenticated user" json:"user"`
		Token string   `doc:"The signed bearer token" json:"token"`
	}
}

// RegisterUserRequest is the request body for creating a user.
type RegisterUserRequest struct {
	Body struct {
		Email    string `doc:"The email of the user"         example:"alice@example.com" json:"email"`
		Username string `doc:"The username of the user"      example:"alice"             json:"username"`
		Password string `doc:"The password for the account"  example:"pw123456"          json:"password"`
	}
}

// RegisterUserResponse is the response for a successfully created user.
type RegisterUserResponse struct {
	Body UserInfo
}

// CreateShortURLRequest is the request body for creating a short URL.
type CreateShortURLRequest struct {
	Body struct {
		OriginalURL string `doc:"The original URL to be shortened" example:"https://example.com" json:"originalUrl"`
	}
}

// CreateShortURLResponse is the response for a successfully created short URL.
type CreateShortURLResponse struct {
	Body struct {
		OriginalURL string `doc:"The normalized original URL" example:"https://example.com"          json:"originalUrl"`
		ShortCode   string `doc:"The short code"              example:"aB3dE9xZ"                     json:"shortCode"`
		ShortURL    string `doc:"The full short URL"          example:"http://localhost:8888/aB3dE9xZ" json:"shortUrl"`
		Clicks      int64  `doc:"The click counter"           example:"0"                            json:"clicks"`
	}
}

// RedirectRequest is the request for resolving a short code.
type RedirectRequest struct {
	Code string `doc:"The short code of the URL" example:"aB3dE9xZ" path:"shortCode"`
}

// RedirectResponse redirects the client to the original URL.
type RedirectResponse struct {
	Status  int
	Headers struct {
		Location string `doc:"The original URL" header:"Location"`
	}
}

// URLInfo is one entry in a user's URL listing.
type URLInfo struct {
	ID          string    `doc:"The record id"      json:"id"`
	OriginalURL string    `doc:"The original URL"   json:"originalUrl"`
	ShortCode   string    `doc:"The short code"     json:"shortCode"`
	ShortURL    string    `doc:"The full short URL" json:"shortUrl"`
	Clicks      int64     `doc:"The click counter"  json:"clicks"`
	CreatedAt   time.Time `doc:"Creation time"      json:"createdAt"`
}

// ListURLsRequest is the request for listing the caller's URLs.
type ListURLsRequest struct {
	Page  int `doc:"Page number, starting at 1" example:"1" query:"page"`
	Limit int `doc:"Page size"                  example:"5" query:"limit"`
}

// ListURLsResponse is one page of the caller's URLs with pagination metadata.
type ListURLsResponse struct {
	Body struct {
		Total      int64     `doc:"Total records owned by the caller" json:"total"`
		Page       int       `doc:"Current page"                      json:"page"`
		Limit      int       `doc:"Page size"                         json:"limit"`
		TotalPages int64     `doc:"Total number of pages"             json:"totalPages"`
		Data       []URLInfo `doc:"The records on this page"          json:"data"`
	}
}

// StatsRequest is the request for reading a short URL's stats.
type StatsRequest struct {
	Code string `doc:"The short code of the URL" example:"aB3dE9xZ" path:"shortCode"`
}

// StatsResponse is the stats view of a short URL.
type StatsResponse struct {
	Body struct {
		Clicks      int64     `doc:"The click counter" json:"clicks"`
		OriginalURL string    `doc:"The original URL"  json:"originalUrl"`
		CreatedAt   time.Time `doc:"Creation time"     json:"createdAt"`
	}
}

// DeleteURLRequest is the request for deleting a short URL.
type DeleteURLRequest struct {
	Code string `doc:"The short code of the URL" example:"aB3dE9xZ" path:"shortCode"`
}

// DeleteURLResponse confirms a deletion.
type DeleteURLResponse struct {
	Body struct {
		Message string `doc:"Confirmation message" json:"message"`
	}
}
