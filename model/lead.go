package models

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrMissingEmail  = errors.New("missing email address")
)

// ContactRequest is a message sent through the contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// CustomRequest asks the design team for a made-to-order piece.
type CustomRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	FurnitureType string `json:"furnitureType"`
	WoodType      string `json:"woodType"`
	Fabric        string `json:"fabric,omitempty"`
	Size          string `json:"size"`
	Budget        string `json:"budget"`
	Description   string `json:"description"`
}

type Subscription struct {
	Email string `json:"email"`
}

// Receipt acknowledges an accepted submission.
type Receipt struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func present(fields ...string) bool {
	for _, f := range fields {
		if f == "" {
			return false
		}
	}
	return true
}

// Normalize trims every field.
func (r *ContactRequest) Normalize() {
	for _, f := range []*string{&r.Name, &r.Email, &r.Phone, &r.Subject, &r.Message} {
		*f = strings.TrimSpace(*f)
	}
}

// Validate requires name, email, subject and message; phone is optional.
func (r ContactRequest) Validate() error {
	if !present(r.Name, r.Email, r.Subject, r.Message) {
		return ErrMissingFields
	}
	return nil
}

func (r *CustomRequest) Normalize() {
	for _, f := range []*string{&r.Name, &r.Email, &r.Phone, &r.FurnitureType, &r.WoodType, &r.Fabric, &r.Size, &r.Budget, &r.Description} {
		*f = strings.TrimSpace(*f)
	}
}

// Validate requires every field except fabric.
func (r CustomRequest) Validate() error {
	if !present(r.Name, r.Email, r.Phone, r.FurnitureType, r.WoodType, r.Size, r.Budget, r.Description) {
		return ErrMissingFields
	}
	return nil
}

func (s *Subscription) Normalize() {
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
}

func (s Subscription) Validate() error {
	if s.Email == "" {
		return ErrMissingEmail
	}
	return nil
}
