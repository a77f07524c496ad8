package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// MsgUserExists is returned instead of an insert when the email is taken
const MsgUserExists = "user already exists"

// InsertResult acknowledges a single insert
type InsertResult struct {
	Acknowledged bool                `json:"acknowledged"`
	InsertedID   *primitive.ObjectID `json:"insertedId"`
}

// NewInsertResult builds an acknowledged InsertResult for id
func NewInsertResult(id primitive.ObjectID) *InsertResult {
	return &InsertResult{Acknowledged: true, InsertedID: &id}
}

// UserInsertResult is the response of user creation. On a duplicate email
// Message is set and InsertedID is null.
type UserInsertResult struct {
	Acknowledged bool                `json:"acknowledged,omitempty"`
	Message      string              `json:"message,omitempty"`
	InsertedID   *primitive.ObjectID `json:"insertedId"`
}

// UpdateResult reports the outcome of a single-document $set
type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse wraps informational responses
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func NewErrorResponse(msg, details string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg, Details: details}
}

func NewSuccessResponse(msg string, data interface{}) SuccessResponse {
	return SuccessResponse{Success: true, Message: msg, Data: data}
}
