package dto

import (
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"roomcal/internal/domains/booking/model"
	"roomcal/shared/constant"
	"roomcal/shared/failure"
	"roomcal/shared/validator"
	"strconv"
	"strings"
)

const (
	SubmitResultSuccess = "success"

	// MessageSubmitFallback is shown when the backend rejects a booking without saying why.
	MessageSubmitFallback = "an error occurred"
	MessageSubmitted      = "booking submitted successfully"
)

type CreateBookingRequest struct {
	FullName       string `json:"full_name"       validate:"required,max=200"`
	Email          string `json:"email"           validate:"omitempty,email,max=200"`
	Department     string `json:"department"      validate:"omitempty,max=200"`
	Participants   int    `json:"participants"    validate:"gt=0"`
	BookingDate    string `json:"booking_date"    validate:"required,isodate"`
	StartTime      string `json:"start_time"      validate:"required,clock"`
	EndTime        string `json:"end_time"        validate:"required,clock"`
	Purpose        string `json:"purpose"         validate:"omitempty,max=500"`
	Room           string `json:"room"            validate:"required,max=200"`
	AdditionalInfo string `json:"additional_info" validate:"omitempty,max=1000"`
	BreakTime      string `json:"break_time"      validate:"omitempty,max=100"`
}

// FromForm reads a form-encoded submission using the same keys the backend expects.
func (c *CreateBookingRequest) FromForm(form url.Values) error {
	c.FullName = strings.TrimSpace(form.Get(model.FieldFullName))
	c.Email = strings.TrimSpace(form.Get(model.FieldEmail))
	c.Department = strings.TrimSpace(form.Get(model.FieldDepartment))
	c.BookingDate = strings.TrimSpace(form.Get(model.FieldBookingDate))
	c.StartTime = strings.TrimSpace(form.Get(model.FieldStartTime))
	c.EndTime = strings.TrimSpace(form.Get(model.FieldEndTime))
	c.Purpose = strings.TrimSpace(form.Get(model.FieldPurpose))
	c.Room = strings.TrimSpace(form.Get(model.FieldRoom))
	c.AdditionalInfo = strings.TrimSpace(form.Get(model.FieldAdditionalInfo))
	c.BreakTime = strings.TrimSpace(form.Get(model.FieldBreakTime))

	participants := strings.TrimSpace(form.Get(model.FieldParticipants))
	if participants == constant.Empty {
		return nil
	}

	n, err := strconv.Atoi(participants)
	if err != nil {
		return failure.BadRequestFromString("participants must be a whole number") // nolint:wrapcheck
	}

	c.Participants = n

	return nil
}

// FromRequest decodes a form-encoded or JSON submission and validates it.
func (c *CreateBookingRequest) FromRequest(r *http.Request) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get(constant.RequestHeaderContentType))
	if mediaType == constant.ContentTypeJSON {
		return validator.Validate(r.Body, c) // nolint:wrapcheck
	}

	if err := r.ParseForm(); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to parse form: %w", err)) // nolint:wrapcheck
	}

	if err := c.FromForm(r.PostForm); err != nil {
		return err
	}

	return validator.ValidateStruct(c) // nolint:wrapcheck
}

// ToForm encodes the request as the form body of the submit endpoint.
func (c CreateBookingRequest) ToForm() url.Values {
	form := url.Values{}
	form.Set(model.FieldFullName, c.FullName)
	form.Set(model.FieldEmail, c.Email)
	form.Set(model.FieldDepartment, c.Department)
	form.Set(model.FieldParticipants, strconv.Itoa(c.Participants))
	form.Set(model.FieldBookingDate, c.BookingDate)
	form.Set(model.FieldStartTime, c.StartTime)
	form.Set(model.FieldEndTime, c.EndTime)
	form.Set(model.FieldPurpose, c.Purpose)
	form.Set(model.FieldRoom, c.Room)
	form.Set(model.FieldAdditionalInfo, c.AdditionalInfo)
	form.Set(model.FieldBreakTime, c.BreakTime)

	return form
}

// SubmitResult is the submit endpoint's reply.
type SubmitResult struct {
	Result  string `json:"result"`
	Message string `json:"message"`
}

func (r SubmitResult) Succeeded() bool {
	return r.Result == SubmitResultSuccess
}

// RejectionMessage is the backend's reason, or the generic fallback.
func (r SubmitResult) RejectionMessage() string {
	if strings.TrimSpace(r.Message) == constant.Empty {
		return MessageSubmitFallback
	}

	return r.Message
}

type SubmitResponse struct {
	Message string `json:"message"`
}

// SubmittedEvent is published after the backend accepted a booking.
type SubmittedEvent struct {
	Room         string `json:"room"`
	Date         string `json:"date"`
	Participants int    `json:"participants"`
	SubmittedAt  string `json:"submitted_at"`
}

type BookingResponse struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Department     string `json:"department"`
	Participants   int    `json:"participants"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Purpose        string `json:"purpose"`
	Room           string `json:"room"`
	AdditionalInfo string `json:"additional_info"`
	BreakTime      string `json:"break_time"`
	Status         string `json:"status"`
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.Name = m.Name
	r.Email = m.Email
	r.Department = m.Department
	r.Participants = m.Participants
	r.Date = m.Date
	r.StartTime = m.StartTime
	r.EndTime = m.EndTime
	r.Purpose = m.Purpose
	r.Room = m.Room
	r.AdditionalInfo = m.AdditionalInfo
	r.BreakTime = m.BreakTime
	r.Status = m.Status
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.TotalData = len(models)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
