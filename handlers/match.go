package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"freelanceconnect/database"
	"freelanceconnect/matching"
	"freelanceconnect/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type MatchRequest struct {
	PostID string `json:"postid" binding:"required"`
}

// MatchFreelancers ranks freelancer postings against a client job
// posting's required skills. Clients only; pure read, no side effects.
func MatchFreelancers(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	postID, err := primitive.ObjectIDFromHex(req.PostID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var post models.Post
	err = database.Posts.FindOne(ctx, bson.M{"_id": postID, "role": models.RoleClient}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	cursor, err := database.Posts.Find(ctx, bson.M{"role": models.RoleFreelancer})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch freelancer posts"})
		return
	}
	defer cursor.Close(ctx)

	var freelancerPosts []models.Post
	if err := cursor.All(ctx, &freelancerPosts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode freelancer posts"})
		return
	}

	candidates := make([]matching.Candidate, 0, len(freelancerPosts))
	for _, fp := range freelancerPosts {
		candidates = append(candidates, matching.Candidate{
			FreelancerID: fp.UserID.Hex(),
			Skills:       fp.Skills,
		})
	}

	matches, avg, err := matching.Rank(post.Skills, candidates)
	if errors.Is(err, matching.ErrNoRequirements) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No required skills found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Matching failed"})
		return
	}

	matched := make([]gin.H, 0, len(matches))
	for _, m := range matches {
		freelancerID, err := primitive.ObjectIDFromHex(m.FreelancerID)
		if err != nil {
			continue
		}

		var freelancer models.User
		err = database.Users.FindOne(ctx, bson.M{"_id": freelancerID}).Decode(&freelancer)
		if err != nil {
			// The posting outlived the account; keep its weight in the
			// average but leave it out of the list.
			log.Debug("matched freelancer not found", zap.String("freelancerId", m.FreelancerID))
			continue
		}

		matched = append(matched, gin.H{
			"freelancer_id": m.FreelancerID,
			"name":          freelancer.Username,
			"email":         freelancer.Email,
			"skills":        m.Skills,
			"match_percent": m.Percent,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"matched_freelancers": matched,
		"avg_match_percent":   avg,
	})
}
