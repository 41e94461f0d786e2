package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Profile is upserted per user; one document in the profiles collection.
type Profile struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	Name           string             `bson:"name" json:"name"`
	Bio            string             `bson:"bio" json:"bio"`
	Education      string             `bson:"education" json:"education"`
	WorkExperience string             `bson:"workExperience" json:"workExperience"`
	ProfilePicture string             `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`

	// Freelancer-only fields.
	Resume  string `bson:"resume,omitempty" json:"resume,omitempty"`
	Hobbies string `bson:"hobbies,omitempty" json:"hobbies,omitempty"`
}
