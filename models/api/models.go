package api

import (
	"time"
)

// UserModel represents the user data returned by the API
type UserModel struct {
	ID      int     `json:"id"`
	Email   string  `json:"email"`
	Name    string  `json:"name"`
	Picture *string `json:"picture"`
}

// DustbinModel represents the dustbin data returned by the API.
// Coordinates are serialized as JSON numbers.
type DustbinModel struct {
	ID          int       `json:"id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Address     *string   `json:"address"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	ReportedBy  *string   `json:"reportedBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DustbinListModel is the response body for the list endpoint.
type DustbinListModel struct {
	Count    int             `json:"count"`
	Dustbins []*DustbinModel `json:"dustbins"`
}

// SignInModel is the response body for a successful Google sign-in.
type SignInModel struct {
	Success bool       `json:"success"`
	Token   string     `json:"token"`
	User    *UserModel `json:"user"`
}

// CurrentUserModel is the response body for the current-user endpoint.
type CurrentUserModel struct {
	User *UserModel `json:"user"`
}

// DatabaseHealthModel reports database reachability inside the health response.
type DatabaseHealthModel struct {
	Status  string  `json:"status"`
	Version *string `json:"version"`
}

// HealthModel is the response body for the health endpoint.
type HealthModel struct {
	Status      string              `json:"status"`
	Timestamp   time.Time           `json:"timestamp"`
	Environment string              `json:"environment"`
	Database    DatabaseHealthModel `json:"database"`
	Error       string              `json:"error,omitempty"`
}
