package models

import "time"

// ContactCollection is the logical collection that stores contact form submissions.
const ContactCollection = "contactsubmission"

// ContactSubmission stores an inbound enquiry from the public contact form.
type ContactSubmission struct {
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     *string   `bson:"phone" json:"phone"`
	Subject   *string   `bson:"subject" json:"subject"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Stamp sets the creation and update timestamps to now.
func (s *ContactSubmission) Stamp(now time.Time) {
	now = now.UTC()
	s.CreatedAt = now
	s.UpdatedAt = now
}
