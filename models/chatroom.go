package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Chatroom pairs one client with one freelancer. Messages are kept in two
// arrays, one per side; which array a message lands in is decided by
// comparing the sender id against FreelancerID (anything else counts as
// the client). Chatrooms grow monotonically and are never deleted.
type Chatroom struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"roomId"`
	ClientID           string             `bson:"clientId" json:"clientId"`
	FreelancerID       string             `bson:"freelancerId" json:"freelancerId"`
	ClientMessages     []ChatMessage      `bson:"clientMessages" json:"clientMessages"`
	FreelancerMessages []ChatMessage      `bson:"freelancerMessages" json:"freelancerMessages"`
	CreatedAt          int64              `bson:"createdAt" json:"createdAt"`
}

type ChatMessage struct {
	Sender     string `bson:"sender" json:"sender"` // user id
	SenderName string `bson:"senderName" json:"senderName"`
	Message    string `bson:"message" json:"message"`
	Timestamp  int64  `bson:"timestamp" json:"timestamp"`
}
