package session

import (
	"context"
	"time"

	"golang.org/x/exp/slog"

	"legaldesk/internal/domain/draft"
	"legaldesk/internal/domain/user"
)

type Controller struct {
	users user.Servicer
	log   *slog.Logger
	now   func() time.Time
}

func NewController(users user.Servicer, log *slog.Logger) *Controller {
	return &Controller{
		users: users,
		log:   log.With("component", "session_controller"),
		now:   time.Now,
	}
}

func (c *Controller) Register(ctx context.Context, username, password, enrollmentID string) error {
	return c.users.Register(ctx, username, password, enrollmentID)
}

// Login authenticates against the credential store. The session changes only
// when the credentials match; a failed attempt leaves it as it was.
func (c *Controller) Login(ctx context.Context, s *Session, username, password string) (Identity, error) {
	u, err := c.users.Authenticate(ctx, username, password)
	if err != nil {
		c.log.Info("login failed", "username", username, "error", err)
		return Identity{}, err
	}

	id := Identity{Username: u.Username, EnrollmentID: u.EnrollmentID}

	s.mu.Lock()
	s.state = Authenticated
	s.identity = id
	s.buffer = emptyBuffer()
	s.mu.Unlock()

	c.log.Info("login", "username", id.Username)
	return id, nil
}

// Logout drops the identity and the unsaved buffer.
func (c *Controller) Logout(s *Session) {
	s.mu.Lock()
	username := s.identity.Username
	s.state = Anonymous
	s.identity = Identity{}
	s.buffer = emptyBuffer()
	s.mu.Unlock()

	if username != "" {
		c.log.Info("logout", "username", username)
	}
}

// LoadTemplate replaces the buffer with the boilerplate for category/docType.
// An empty docType picks the first type of the category.
func (c *Controller) LoadTemplate(s *Session, category draft.Category, docType string) (Buffer, error) {
	if docType == "" {
		docType = draft.DefaultDocType(category)
	}

	id, err := s.Identity()
	if err != nil {
		return Buffer{}, err
	}

	content, err := draft.Template(draft.TemplateInput{
		Category:     category,
		DocType:      docType,
		Advocate:     id.Username,
		EnrollmentID: id.EnrollmentID,
		Date:         c.now(),
	})
	if err != nil {
		return Buffer{}, err
	}

	buf := Buffer{Category: category, DocType: docType, Content: content}
	if err := s.withAuth(func() { s.buffer = buf }); err != nil {
		return Buffer{}, err
	}
	return buf, nil
}

// SetDocType changes the selection without touching the content.
func (c *Controller) SetDocType(s *Session, category draft.Category, docType string) (Buffer, error) {
	if err := draft.Validate(category, docType); err != nil {
		return Buffer{}, err
	}

	var buf Buffer
	err := s.withAuth(func() {
		s.buffer.Category = category
		s.buffer.DocType = docType
		buf = s.buffer
	})
	return buf, err
}

// Edit overwrites the buffer content.
func (c *Controller) Edit(s *Session, content string) (Buffer, error) {
	var buf Buffer
	err := s.withAuth(func() {
		s.buffer.Content = content
		buf = s.buffer
	})
	return buf, err
}

// Buffer returns the current buffer of an authenticated session.
func (c *Controller) Buffer(s *Session) (Buffer, error) {
	var buf Buffer
	err := s.withAuth(func() { buf = s.buffer })
	return buf, err
}
