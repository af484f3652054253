package dto

type CreateMessageRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

type UpdateMessageStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ReplyMessageRequest struct {
	ReplyText string `json:"replyText" binding:"required"`
}
