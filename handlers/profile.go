package handlers

import (
	"context"
	"net/http"
	"time"

	"freelanceconnect/database"
	"freelanceconnect/models"
	"freelanceconnect/storage"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// GetProfile returns a profile. Users may only read their own.
func GetProfile(c *gin.Context) {
	requested := c.Param("id")
	if requested != c.GetString("userId") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	userID, err := primitive.ObjectIDFromHex(requested)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var profile models.Profile
	err = database.Profiles.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateMyProfile upserts the caller's profile from a multipart form.
// The profile picture replaces the previous one; a freelancer resume
// replaces any earlier upload.
func UpdateMyProfile(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
		return
	}
	role := c.GetString("role")

	if err := c.Request.ParseMultipartForm(10 << 20); err != nil && err != http.ErrNotMultipart {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse form data"})
		return
	}

	set := bson.M{"userId": userID}
	for form, field := range map[string]string{
		"name":            "name",
		"bio":             "bio",
		"education":       "education",
		"work_experience": "workExperience",
	} {
		if v := c.PostForm(form); v != "" {
			set[field] = v
		}
	}
	if role == models.RoleFreelancer {
		if v := c.PostForm("hobbies"); v != "" {
			set["hobbies"] = v
		}
	}

	if file, fh, err := c.Request.FormFile("profile_pic"); err == nil {
		path, err := uploads.SaveProfilePicture(role, userID.Hex(), fh.Filename, file)
		file.Close()
		if err == storage.ErrUnsupportedType {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported profile picture type"})
			return
		}
		if err != nil {
			log.Error("save profile picture", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile picture"})
			return
		}
		set["profilePicture"] = path
	}

	if role == models.RoleFreelancer {
		if file, fh, err := c.Request.FormFile("resume"); err == nil {
			path, err := uploads.SaveResume(userID.Hex(), fh.Filename, file)
			file.Close()
			if err == storage.ErrUnsupportedType {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported resume type"})
				return
			}
			if err != nil {
				log.Error("save resume", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save resume"})
				return
			}
			set["resume"] = path
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err = database.Profiles.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Error("upsert profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}
