package database

import (
	"context"
	"errors"
	"time"

	"freelanceconnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrRoomNotFound = errors.New("chatroom not found")

// ChatStore persists relayed chat messages into the chatroom document.
// Each append is a single atomic $push; ordering across concurrent
// senders is whatever MongoDB serializes.
type ChatStore struct{}

// AppendMessage stores the message in the array matching the sender's
// side of the room and returns the stored record. The sender id is
// compared against the stored freelancerId; anything else is treated as
// the client.
func (ChatStore) AppendMessage(ctx context.Context, roomID, senderID, senderName, text string) (models.ChatMessage, error) {
	id, err := primitive.ObjectIDFromHex(roomID)
	if err != nil {
		return models.ChatMessage{}, ErrRoomNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var room models.Chatroom
	err = Chatrooms.FindOne(ctx, bson.M{"_id": id}).Decode(&room)
	if err == mongo.ErrNoDocuments {
		return models.ChatMessage{}, ErrRoomNotFound
	}
	if err != nil {
		return models.ChatMessage{}, err
	}

	msg := models.ChatMessage{
		Sender:     senderID,
		SenderName: senderName,
		Message:    text,
		Timestamp:  time.Now().Unix(),
	}

	result, err := Chatrooms.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{messageField(senderID, room.FreelancerID): msg}})
	if err != nil {
		return models.ChatMessage{}, err
	}
	if result.MatchedCount == 0 {
		return models.ChatMessage{}, ErrRoomNotFound
	}

	return msg, nil
}

// messageField picks the array the message belongs to. Only an exact
// match on the stored freelancer id lands on the freelancer side;
// anything else is treated as the client.
func messageField(senderID, freelancerID string) string {
	if senderID == freelancerID {
		return "freelancerMessages"
	}
	return "clientMessages"
}
