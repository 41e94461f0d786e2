package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Roles a user can sign up with. Every post and every chatroom side is
// keyed by one of these.
const (
	RoleClient     = "client"
	RoleFreelancer = "freelancer"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Role         string             `bson:"role" json:"role"` // client, freelancer

	// Room ids of every chatroom the user participates in. Grown with
	// $addToSet when a chat is initiated; never shrinks.
	Chatrooms []string `bson:"chatrooms" json:"chatrooms"`

	CreatedAt int64 `bson:"createdAt" json:"createdAt"`
}
