package api

// Common request/response structures

// LoginRequest defines the payload for the login endpoint. The username is
// an opaque principal identifier; it is not checked against any registry.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	// Token is the signed bearer token used for API authorization
	Token string `json:"token"`
}

// CreateTaskRequest defines the payload for the task creation endpoint.
type CreateTaskRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description *string `json:"description"`
}

// CreateTaskResponse defines the successful response for the task creation endpoint.
type CreateTaskResponse struct {
	ID int64 `json:"id"`
}

// UpdateTaskStatusRequest defines the payload for the status update endpoint.
// The status value is validated against the domain enum in the service, not
// here, so an out-of-enum value produces the domain error rather than a
// struct-validation message.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// MessageResponse defines the generic success response for mutations that
// return no entity.
type MessageResponse struct {
	Message string `json:"message"`
}
