package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Post is a job posting (client) or a service posting (freelancer).
// Both roles share the single "skills" field: on client posts it holds
// the required skills, on freelancer posts the offered ones.
type Post struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   primitive.ObjectID `bson:"userId" json:"userId"`
	Role     string             `bson:"role" json:"role"` // role of the author
	Title    string             `bson:"title" json:"title"`
	Content  string             `bson:"content" json:"content"`
	Location string             `bson:"location" json:"location"`
	Budget   string             `bson:"budget" json:"budget"`

	// Freelancer-only fields.
	Category     string `bson:"category,omitempty" json:"category,omitempty"`
	DeliveryTime string `bson:"deliveryTime,omitempty" json:"deliveryTime,omitempty"`

	Skills     []string  `bson:"skills" json:"skills"`
	Multimedia []string  `bson:"multimedia" json:"multimedia"`
	Comments   []Comment `bson:"comments" json:"comments"`
	CreatedAt  int64     `bson:"createdAt" json:"createdAt"`
}

type Comment struct {
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Username  string             `bson:"username" json:"username"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`
}
