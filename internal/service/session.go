package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/ledger"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/model"
	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/store"
)

// PersistenceError reports a failed document load or save. After a failed
// save the in-memory change is kept so the user can retry.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s user data: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsPersistence reports whether err is a failed load or save.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}

// Session owns one user's document for the lifetime of a command. Every
// mutation validates, applies the change, then saves the whole document.
type Session struct {
	store  store.DocumentStore
	userID string
	data   *model.UserData
	log    logrus.FieldLogger
	now    func() time.Time
}

// OpenSession loads userID's document, creating and saving an empty one for a
// first-time user. When that first save fails the session is still returned
// together with a *PersistenceError.
func OpenSession(ctx context.Context, st store.DocumentStore, userID string, logger logrus.FieldLogger) (*Session, error) {
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = l
	}
	s := &Session{
		store:  st,
		userID: userID,
		log:    logger.WithField("user_id", userID),
		now:    time.Now,
	}
	data, ok, err := st.Load(ctx, userID)
	if err != nil {
		s.log.WithError(err).Warn("load user document failed")
		return nil, &PersistenceError{Op: "load", Err: err}
	}
	if ok {
		s.data = data
		s.log.WithField("profiles", len(data.Profiles)).Debug("loaded user document")
		return s, nil
	}
	s.data = model.NewUserData()
	s.log.Debug("initialising empty user document")
	return s, s.save(ctx)
}

// SetClock overrides the session clock, for tests.
func (s *Session) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Session) UserID() string {
	return s.userID
}

// Data exposes the live document for read-only use.
func (s *Session) Data() *model.UserData {
	return s.data
}

// Save persists the current document as is.
func (s *Session) Save(ctx context.Context) error {
	return s.save(ctx)
}

func (s *Session) save(ctx context.Context) error {
	if err := s.store.Save(ctx, s.userID, s.data); err != nil {
		s.log.WithError(err).Warn("save user document failed; keeping in-memory changes")
		return &PersistenceError{Op: "save", Err: err}
	}
	s.log.Debug("saved user document")
	return nil
}

func (s *Session) today() string {
	return s.now().Format(ledger.DateLayout)
}

// resolveDate defaults an empty date to today and rejects anything that is
// not YYYY-MM-DD.
func (s *Session) resolveDate(date string) (string, error) {
	if date == "" {
		return s.today(), nil
	}
	if _, err := time.Parse(ledger.DateLayout, date); err != nil {
		return "", ledger.Invalidf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return date, nil
}

func (s *Session) requireProfile() (*model.Profile, error) {
	p, ok := s.CurrentProfile()
	if !ok {
		return nil, ledger.Invalidf("no profile selected (create one with `caltrack profile add` or pick one with `caltrack profile use`)")
	}
	return p, nil
}
