package handler

import (
	"net/http"
	"strings"
	"time"

	domainerrors "devconnector/internal/domain/errors"
	"devconnector/internal/errors"
	"devconnector/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Request bodies. The validate and msg tags together form the validation table.
// Length caps mirror the varchar columns of the schema; max counts characters
// like varchar does.

type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required,max=100" msg:"Name is required" msg_max:"Name must be 100 characters or fewer"`
	Email    string `json:"email" form:"email" validate:"required,email,max=255" msg:"Please include a valid email" msg_max:"Email must be 255 characters or fewer"`
	Password string `json:"password" form:"password" validate:"required,min=6,maxbytes=72" msg:"Please enter a password with 6 or more characters" msg_maxbytes:"Password must be 72 bytes or fewer"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email" msg:"Please include a valid email"`
	Password string `json:"password" form:"password" validate:"required" msg:"Password is required"`
}

type ProfileRequest struct {
	Company        string `json:"company" form:"company" validate:"max=255" msg:"Company must be 255 characters or fewer"`
	Website        string `json:"website" form:"website" validate:"max=255" msg:"Website must be 255 characters or fewer"`
	Location       string `json:"location" form:"location" validate:"max=255" msg:"Location must be 255 characters or fewer"`
	Status         string `json:"status" form:"status" validate:"required,max=255" msg:"Status is required" msg_max:"Status must be 255 characters or fewer"`
	Skills         string `json:"skills" form:"skills" validate:"required" msg:"Skills is required"`
	Bio            string `json:"bio" form:"bio"`
	GitHubUsername string `json:"githubusername" form:"githubusername" validate:"max=100" msg:"Github username must be 100 characters or fewer"`
	YouTube        string `json:"youtube" form:"youtube" validate:"max=255" msg:"YouTube link must be 255 characters or fewer"`
	Twitter        string `json:"twitter" form:"twitter" validate:"max=255" msg:"Twitter link must be 255 characters or fewer"`
	Facebook       string `json:"facebook" form:"facebook" validate:"max=255" msg:"Facebook link must be 255 characters or fewer"`
	LinkedIn       string `json:"linkedin" form:"linkedin" validate:"max=255" msg:"LinkedIn link must be 255 characters or fewer"`
	Instagram      string `json:"instagram" form:"instagram" validate:"max=255" msg:"Instagram link must be 255 characters or fewer"`
}

type ExperienceRequest struct {
	Title       string `json:"title" form:"title" validate:"required,max=255" msg:"Title is required" msg_max:"Title must be 255 characters or fewer"`
	Company     string `json:"company" form:"company" validate:"required,max=255" msg:"Company is required" msg_max:"Company must be 255 characters or fewer"`
	Location    string `json:"location" form:"location" validate:"max=255" msg:"Location must be 255 characters or fewer"`
	From        string `json:"from" form:"from" validate:"required" msg:"From date is required"`
	To          string `json:"to" form:"to"`
	Current     bool   `json:"current" form:"current"`
	Description string `json:"description" form:"description"`
}

type EducationRequest struct {
	School       string `json:"school" form:"school" validate:"required,max=255" msg:"School is required" msg_max:"School must be 255 characters or fewer"`
	Degree       string `json:"degree" form:"degree" validate:"required,max=255" msg:"Degree is required" msg_max:"Degree must be 255 characters or fewer"`
	FieldOfStudy string `json:"fieldofstudy" form:"fieldofstudy" validate:"required,max=255" msg:"Field of Study is required" msg_max:"Field of Study must be 255 characters or fewer"`
	From         string `json:"from" form:"from" validate:"required" msg:"From date is required"`
	To           string `json:"to" form:"to"`
	Current      bool   `json:"current" form:"current"`
	Description  string `json:"description" form:"description"`
}

// TextRequest is the body of a post or a comment.
type TextRequest struct {
	Text string `json:"text" form:"text" validate:"required" msg:"Text is required"`
}

// bindAndValidate decodes the body into req and runs the registered validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
	}

	return errors.WithStack(c.Validate(req))
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05.000Z", "2006-01-02"}

// parseDate accepts the formats a date input or JSON encoder produces.
func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// entryPeriod parses from and the optional to of a profile entry.
func entryPeriod(from, to string) (time.Time, *time.Time, error) {
	start, ok := parseDate(from)
	if !ok {
		return time.Time{}, nil, domainerrors.NewValidationError(domainerrors.FieldError{Msg: "From date is invalid", Param: "from"})
	}

	if strings.TrimSpace(to) == "" {
		return start, nil, nil
	}
	end, ok := parseDate(to)
	if !ok {
		return time.Time{}, nil, domainerrors.NewValidationError(domainerrors.FieldError{Msg: "To date is invalid", Param: "to"})
	}

	return start, &end, nil
}

func (r *ExperienceRequest) toInput() (*usecase.EntryInput, error) {
	from, to, err := entryPeriod(r.From, r.To)
	if err != nil {
		return nil, err
	}

	return &usecase.EntryInput{
		Title:       r.Title,
		Company:     r.Company,
		Location:    r.Location,
		From:        from,
		To:          to,
		Current:     r.Current,
		Description: r.Description,
	}, nil
}

func (r *EducationRequest) toInput() (*usecase.EntryInput, error) {
	from, to, err := entryPeriod(r.From, r.To)
	if err != nil {
		return nil, err
	}

	return &usecase.EntryInput{
		School:       r.School,
		Degree:       r.Degree,
		FieldOfStudy: r.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      r.Current,
		Description:  r.Description,
	}, nil
}

func (r *ProfileRequest) toInput() *usecase.UpsertProfileInput {
	return &usecase.UpsertProfileInput{
		Company:        r.Company,
		Website:        r.Website,
		Location:       r.Location,
		Status:         r.Status,
		Skills:         r.Skills,
		Bio:            r.Bio,
		GitHubUsername: r.GitHubUsername,
		YouTube:        r.YouTube,
		Twitter:        r.Twitter,
		Facebook:       r.Facebook,
		LinkedIn:       r.LinkedIn,
		Instagram:      r.Instagram,
	}
}

// pathID parses the named path parameter, answering notFound when it is not a uuid.
func pathID(c echo.Context, name string, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.Wrapf(notFound, "malformed %s", name)
	}

	return id, nil
}
