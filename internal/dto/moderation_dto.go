package dto

// Bodies mirror the wire format the mobile client already ships with.

type CreateReportRequest struct {
	TargetType string `json:"targetType"`
	TargetID   string `json:"targetId"`
	Reason     string `json:"reason"`
}

type LikeRequest struct {
	PostID string `json:"postId"`
}

type BlockRequest struct {
	BlockedUID string `json:"blockedUid"`
}

type SetVisibilityRequest struct {
	TargetType string `json:"targetType"`
	TargetID   string `json:"targetId"`
	Hidden     *bool  `json:"hidden"`
}

type BanUserRequest struct {
	UID     string `json:"uid"`
	Blocked *bool  `json:"blocked"`
}

type ApproveAdoptionRequest struct {
	AdoptionID string `json:"adoptionId"`
	Approved   *bool  `json:"approved"`
}

type DeleteContentRequest struct {
	TargetType string `json:"targetType"`
	TargetID   string `json:"targetId"`
	OwnerID    string `json:"ownerId"`
	Reason     string `json:"reason"`
}

type UpdateStatusRequest struct {
	TargetType string `json:"targetType"`
	TargetID   string `json:"targetId"`
	OwnerID    string `json:"ownerId"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
}

type IgnoreContentReportsRequest struct {
	TargetType string `json:"targetType"`
	TargetID   string `json:"targetId"`
}
