package handlers

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"freelanceconnect/database"
	"freelanceconnect/models"
	"freelanceconnect/storage"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// CreateJobPost creates a client job posting from a multipart form.
// Attachments are stored on the local filesystem and their paths pushed
// onto the post.
func CreateJobPost(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
		return
	}

	title := c.PostForm("title")
	content := c.PostForm("description")
	if title == "" || content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing title or description"})
		return
	}

	post := models.Post{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		Role:       models.RoleClient,
		Title:      title,
		Content:    content,
		Location:   c.PostForm("location"),
		Budget:     c.PostForm("budget"),
		Skills:     splitSkills(c.PostForm("skills")),
		Multimedia: []string{},
		Comments:   []models.Comment{},
		CreatedAt:  time.Now().Unix(),
	}

	insertPostWithAttachments(c, post)
}

// CreateServicePost creates a freelancer service posting. Same shape as a
// job post plus category and delivery time.
func CreateServicePost(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
		return
	}

	title := c.PostForm("title")
	content := c.PostForm("description")
	if title == "" || content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing title or description"})
		return
	}

	post := models.Post{
		ID:           primitive.NewObjectID(),
		UserID:       userID,
		Role:         models.RoleFreelancer,
		Title:        title,
		Content:      content,
		Location:     c.PostForm("location"),
		Budget:       c.PostForm("budget"),
		Category:     c.PostForm("category"),
		DeliveryTime: c.PostForm("delivery_time"),
		Skills:       splitSkills(c.PostForm("skills")),
		Multimedia:   []string{},
		Comments:     []models.Comment{},
		CreatedAt:    time.Now().Unix(),
	}

	insertPostWithAttachments(c, post)
}

func insertPostWithAttachments(c *gin.Context, post models.Post) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := database.Posts.InsertOne(ctx, post); err != nil {
		log.Error("insert post", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	var saved []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["documents"] {
			file, err := fh.Open()
			if err != nil {
				continue
			}
			path, err := uploads.SavePostAttachment(post.Role, post.UserID.Hex(), post.ID.Hex(), fh.Filename, file)
			file.Close()
			if err == storage.ErrUnsupportedType {
				continue
			}
			if err != nil {
				log.Warn("save attachment", zap.String("file", fh.Filename), zap.Error(err))
				continue
			}
			saved = append(saved, path)
		}
	}

	if len(saved) > 0 {
		_, err := database.Posts.UpdateOne(ctx,
			bson.M{"_id": post.ID},
			bson.M{"$push": bson.M{"multimedia": bson.M{"$each": saved}}},
		)
		if err != nil {
			log.Warn("attach multimedia", zap.Error(err))
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Post created successfully",
		"postId":     post.ID.Hex(),
		"multimedia": saved,
	})
}

// GetFeed lists every posting, newest first. Both roles see the full
// feed.
func GetFeed(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := database.Posts.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

func GetMyPosts(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := database.Posts.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// SearchPosts matches post titles case-insensitively. An empty query
// returns the full feed.
func SearchPosts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		GetFeed(c)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.Posts.Find(ctx, bson.M{"title": searchFilter(query)})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search posts"})
		return
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// AddComment appends one comment to a post with an atomic $push.
func AddComment(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	userID, err := primitive.ObjectIDFromHex(c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
		return
	}

	var req struct {
		Comment string `json:"comment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	comment := models.Comment{
		UserID:    userID,
		Username:  c.GetString("username"),
		Comment:   req.Comment,
		CreatedAt: time.Now().Unix(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.Posts.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$push": bson.M{"comments": comment}},
	)
	if err != nil {
		log.Error("add comment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment added successfully"})
}

// searchFilter matches titles containing the query literally, case
// insensitive. Metacharacters are escaped so user input cannot form its
// own pattern.
func searchFilter(query string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(query), "$options": "i"}
}

func splitSkills(raw string) []string {
	out := []string{}
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
