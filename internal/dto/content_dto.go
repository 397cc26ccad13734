package dto

import "github.com/animalfamily/animal-family-backend/internal/models"

type CreatePostRequest struct {
	Caption  string `json:"caption"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type CreateAdoptionRequest struct {
	Title       string `json:"title"`
	Species     string `json:"species"`
	Description string `json:"description"`
	City        string `json:"city"`
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}

type FeedResponse struct {
	Items      []models.Post `json:"items"`
	NextCursor *int64        `json:"nextCursor"`
}
