package models

// Treatment is a bookable service from the appointment catalog. Its slot list
// is the full daily schedule; availability lookups return a copy with the
// booked slots filtered out.
type Treatment struct {
	ID    string   `bson:"id" json:"id"`
	Name  string   `bson:"name" json:"name"`
	Price float64  `bson:"price" json:"price"`
	Slots []string `bson:"slots" json:"slots"`
}

// Speciality is the name-only projection of a treatment, served where the
// caller just needs the list of treatment names.
type Speciality struct {
	Name string `bson:"name" json:"name"`
}
