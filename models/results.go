package models

// InsertResult mirrors the driver's insertOne acknowledgement.
// Message is only set on the user-exists sentinel, where InsertedID is null.
type InsertResult struct {
	Acknowledged bool        `json:"acknowledged,omitempty"`
	InsertedID   interface{} `json:"insertedId"`
	Message      string      `json:"message,omitempty"`
}

// UserExistsMessage accompanies the sentinel returned by a duplicate registration.
const UserExistsMessage = "user already exists"

// UserExistsResult is returned instead of inserting when the email is taken.
func UserExistsResult() *InsertResult {
	return &InsertResult{Message: UserExistsMessage, InsertedID: nil}
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

// AdminStatus is the body of GET /users/admin/:email.
type AdminStatus struct {
	Admin bool `json:"admin"`
}

// TokenResponse is the body of POST /jwt.
type TokenResponse struct {
	Token string `json:"token"`
}
