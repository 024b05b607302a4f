// Package submit runs the add-news flow: validate the form, obtain the
// submitter's location, build the fixed-shape payload, and post it
// fire-and-forget.
package submit

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"click4news/geocode"
	"click4news/moderation"
	"click4news/types"
)

// Geolocator answers the browser's geolocation query. Denial or failure
// aborts the submission before any network call.
type Geolocator interface {
	CurrentPosition(ctx context.Context) (types.Coordinates, error)
}

// Notifier posts the finished submission, best effort.
type Notifier interface {
	NotifySubmission(sub types.Submission)
}

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrSummaryRequired = errors.New("summary is required")
	ErrNoLocation      = errors.New("location permission is required to submit news")
)

const submissionLanguage = "en"

// Submitter owns the add-news modal's backend interactions.
type Submitter struct {
	geo      Geolocator
	notifier Notifier
	checker  *moderation.Checker
	now      func() time.Time
	newID    func() string
}

func NewSubmitter(geo Geolocator, notifier Notifier, checker *moderation.Checker) *Submitter {
	return &Submitter{
		geo:      geo,
		notifier: notifier,
		checker:  checker,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Validate enforces the form's required fields before anything else runs.
func Validate(form types.SubmissionForm) error {
	if form.Title == "" {
		return ErrTitleRequired
	}
	if form.Summary == "" {
		return ErrSummaryRequired
	}
	return nil
}

// Submit validates, geolocates, builds the payload and fires it off.
// The returned submission is what was posted; the caller closes the
// modal without waiting for the request to resolve. Validation or
// geolocation failure returns before any network traffic.
func (s *Submitter) Submit(ctx context.Context, user *types.User, form types.SubmissionForm) (types.Submission, error) {
	if err := Validate(form); err != nil {
		return types.Submission{}, err
	}

	pos, err := s.geo.CurrentPosition(ctx)
	if err != nil {
		log.Printf("Geolocation failed: %v", err)
		return types.Submission{}, ErrNoLocation
	}

	now := s.now().UTC()
	sub := types.Submission{
		MessageID: s.newID(),
		Title:     form.Title,
		Summary:   form.Summary,
		Link:      form.Link,
		Category:  types.CategoryUserGenerated,
		Language:  submissionLanguage,
		Date:      now.Format("2006-01-02"),
		Time:      now.Format("15:04:05Z07:00"),
		Latitude:  pos.Latitude,
		Longitude: pos.Longitude,
	}
	if user != nil {
		sub.UserID = user.UID
	}

	// Best-effort enrichment; neither failure blocks the submission.
	if place, err := geocode.ReversePlaceName(ctx, pos.Latitude, pos.Longitude); err == nil {
		sub.PlaceName = place
	} else {
		log.Printf("Reverse geocoding skipped: %v", err)
	}
	if _, err := s.checker.Review(ctx, form.Title, form.Summary); err != nil {
		log.Printf("Moderation check skipped: %v", err)
	}

	s.notifier.NotifySubmission(sub)
	return sub, nil
}
