package controller

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const dateLayout = "2006-01-02"

type AuthorRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
}

func (r AuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.BirthDate, validation.Required, validation.By(pastDate)),
	)
}

// parsedBirthDate is only valid after Validate has passed.
func (r AuthorRequest) parsedBirthDate() time.Time {
	t, _ := time.Parse(dateLayout, r.BirthDate)
	return t
}

func pastDate(value any) error {
	s, _ := value.(string)

	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return errors.New("must be a valid date in format " + dateLayout)
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !d.Before(today) {
		return errors.New("must be before today")
	}

	return nil
}

type BookRequest struct {
	Title         string  `json:"title"`
	Price         int64   `json:"price"`
	PublishStatus string  `json:"publishStatus"`
	AuthorIDs     []int64 `json:"authorIds"`
}

func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Price, validation.Min(0)),
		validation.Field(&r.PublishStatus, validation.Required),
		validation.Field(&r.AuthorIDs, validation.Required),
	)
}
