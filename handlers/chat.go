package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"freelanceconnect/database"
	"freelanceconnect/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type StartChatRequest struct {
	OtherUsername string `json:"otherUsername" binding:"required"`
}

var errSameRole = errors.New("participants hold the same role")

// chatSides pins the room's client and freelancer ids from the two
// participants' roles. The freelancer id drives which message array a
// relayed message lands in, so two same-role users cannot share a room.
func chatSides(callerID, callerRole, otherID, otherRole string) (clientID, freelancerID string, err error) {
	if callerRole == otherRole {
		return "", "", errSameRole
	}
	if callerRole == models.RoleFreelancer {
		return otherID, callerID, nil
	}
	return callerID, otherID, nil
}

// StartChat creates (or returns) the chatroom between the caller and the
// named user. The room id lands in both users' chatroom sets.
func StartChat(c *gin.Context) {
	var req StartChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "otherUsername is required"})
		return
	}

	callerID := c.GetString("userId")
	callerRole := c.GetString("role")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var other models.User
	err := database.Users.FindOne(ctx, bson.M{"username": req.OtherUsername}).Decode(&other)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	otherID := other.ID.Hex()
	if otherID == callerID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot start a chat with yourself"})
		return
	}

	clientID, freelancerID, err := chatSides(callerID, callerRole, otherID, other.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Chats are between a client and a freelancer"})
		return
	}

	// One room per pair: a second initiation joins the existing room.
	var existing models.Chatroom
	err = database.Chatrooms.FindOne(ctx, bson.M{
		"clientId":     clientID,
		"freelancerId": freelancerID,
	}).Decode(&existing)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"roomId": existing.ID.Hex()})
		return
	}
	if err != mongo.ErrNoDocuments {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	room := models.Chatroom{
		ID:                 primitive.NewObjectID(),
		ClientID:           clientID,
		FreelancerID:       freelancerID,
		ClientMessages:     []models.ChatMessage{},
		FreelancerMessages: []models.ChatMessage{},
		CreatedAt:          time.Now().Unix(),
	}

	if _, err := database.Chatrooms.InsertOne(ctx, room); err != nil {
		log.Error("create chatroom", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create chatroom"})
		return
	}

	roomID := room.ID.Hex()
	for _, participant := range []string{callerID, otherID} {
		id, err := primitive.ObjectIDFromHex(participant)
		if err != nil {
			continue
		}
		_, err = database.Users.UpdateOne(ctx,
			bson.M{"_id": id},
			bson.M{"$addToSet": bson.M{"chatrooms": roomID}},
		)
		if err != nil {
			log.Warn("record chatroom membership",
				zap.String("userId", participant),
				zap.Error(err),
			)
		}
	}

	c.JSON(http.StatusCreated, gin.H{"roomId": roomID})
}

// GetChatrooms lists the caller's rooms with partner identity.
func GetChatrooms(c *gin.Context) {
	callerID := c.GetString("userId")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.Chatrooms.Find(ctx, bson.M{"$or": bson.A{
		bson.M{"clientId": callerID},
		bson.M{"freelancerId": callerID},
	}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chatrooms"})
		return
	}
	defer cursor.Close(ctx)

	var rooms []models.Chatroom
	if err := cursor.All(ctx, &rooms); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode chatrooms"})
		return
	}

	response := make([]gin.H, 0, len(rooms))
	for _, room := range rooms {
		partnerID := room.ClientID
		if partnerID == callerID {
			partnerID = room.FreelancerID
		}

		partner := gin.H{"id": partnerID, "username": "Unknown"}
		if id, err := primitive.ObjectIDFromHex(partnerID); err == nil {
			var user models.User
			if err := database.Users.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err == nil {
				partner["username"] = user.Username
				partner["role"] = user.Role
			}
		}

		response = append(response, gin.H{
			"roomId":    room.ID.Hex(),
			"createdAt": room.CreatedAt,
			"partner":   partner,
		})
	}

	c.JSON(http.StatusOK, response)
}

// GetChatHistory returns both message arrays of a room. Participants
// only.
func GetChatHistory(c *gin.Context) {
	roomID, err := primitive.ObjectIDFromHex(c.Param("roomId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	callerID := c.GetString("userId")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var room models.Chatroom
	err = database.Chatrooms.FindOne(ctx, bson.M{"_id": roomID}).Decode(&room)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chatroom not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if callerID != room.ClientID && callerID != room.FreelancerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied to chatroom"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"roomId":             room.ID.Hex(),
		"clientId":           room.ClientID,
		"freelancerId":       room.FreelancerID,
		"clientMessages":     room.ClientMessages,
		"freelancerMessages": room.FreelancerMessages,
	})
}
