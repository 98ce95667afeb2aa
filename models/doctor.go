package models

// Doctor is a staff record managed through the admin surface.
type Doctor struct {
	ID         string `bson:"id" json:"id"`
	Name       string `bson:"name" json:"name"`
	Email      string `bson:"email" json:"email"`
	Speciality string `bson:"speciality" json:"speciality"`
	Image      string `bson:"image,omitempty" json:"image,omitempty"`
}
