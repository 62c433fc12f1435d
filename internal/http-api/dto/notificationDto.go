package dto

// SendNotificationRequest for the admin bulk fan-out endpoint. An empty
// UserIDs list targets every registered user.
type SendNotificationRequest struct {
	Title   string  `json:"title" binding:"required,max=200"`
	Content string  `json:"content" binding:"required"`
	UserIDs []int64 `json:"user_ids"`
}
