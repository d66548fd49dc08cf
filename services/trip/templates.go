package trip

import (
	"time"

	"roamly/models"
)

// ListTemplates returns the curated trip templates.
func (s *DefaultTripService) ListTemplates() ([]models.TripTemplate, error) {
	return s.TemplateRepo.GetAll()
}

// CreateFromTemplate instantiates a trip from a template. The trip starts at
// startDate and spans the template's duration; it is created as a private
// draft so the owner can adjust it before sharing.
func (s *DefaultTripService) CreateFromTemplate(ownerID, templateID string, startDate time.Time) (*models.Trip, error) {
	tpl, err := s.TemplateRepo.GetByID(templateID)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, ValidationError{Msg: "unknown trip template"}
	}

	duration := tpl.DurationDays
	if duration < 1 {
		duration = 1
	}

	req := CreateTripRequest{
		Title:       tpl.Name,
		Destination: tpl.Destination,
		Description: tpl.Description,
		StartDate:   startDate,
		EndDate:     startDate.AddDate(0, 0, duration),
		Visibility:  models.TripVisibilityPrivate,
		Status:      models.TripStatusDraft,
		Tags:        tpl.Tags,
	}
	if tpl.Location != nil && len(tpl.Location.Coordinates) == 2 {
		req.Longitude = &tpl.Location.Coordinates[0]
		req.Latitude = &tpl.Location.Coordinates[1]
	}
	return s.CreateTrip(ownerID, req)
}
