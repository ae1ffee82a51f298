package dto

import "encoding/json"

// Notification endpoint error codes
const (
	NotificationCodeValidationFailed = "VALIDATION_FAILED"
	NotificationCodeFailed           = "NOTIFICATION_FAILED"
)

// NotificationRequest is the payload of the notification dispatcher. Shape
// is validated server-side; malformed input gets a structured 400.
type NotificationRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100" example:"Jo"`
	Email    string `json:"email" binding:"required,email,max=255" example:"hr@acme.com"`
	UserType string `json:"userType" binding:"required,oneof=student recruiter" example:"recruiter"`
	Company  string `json:"company" binding:"omitempty,max=200" example:"Acme"`
}

// NotificationResponse reports the provider payloads of the two dispatched
// emails (submitter confirmation and operator alert).
type NotificationResponse struct {
	Success    bool            `json:"success"`
	UserEmail  json.RawMessage `json:"userEmail,omitempty"`
	AdminEmail json.RawMessage `json:"adminEmail,omitempty"`
}

// NotificationErrorResponse is the structured error envelope of the
// notification endpoint. Internal error detail is logged, never included.
type NotificationErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
