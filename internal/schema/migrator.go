package schema

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/p3rf/explorer/pkg/types"
)

// Report describes one migration run.
type Report struct {
	// RunID is a UUID v7 that tags every log line of the run.
	RunID string `json:"run_id"`

	// From is the version the document started at. A document without a
	// version field starts at the earliest registered version.
	From types.VersionID `json:"from"`

	// To is the latest registered version.
	To types.VersionID `json:"to"`

	// Applied lists the versions whose Update and Verify both completed, in
	// chain order. It is never nil.
	Applied []types.VersionID `json:"applied"`
}

// Option configures a Migrator.
type Option func(*Migrator)

// WithLogger sets the logger used for step diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(m *Migrator) { m.log = l }
}

// Migrator walks documents along a Registry's chain.
type Migrator struct {
	registry *Registry
	log      logrus.FieldLogger
}

// NewMigrator returns a Migrator over registry.
func NewMigrator(registry *Registry, opts ...Option) *Migrator {
	m := &Migrator{registry: registry, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Migrate brings doc to the latest registered version in place.
//
// Every version after the document's declared version runs Update and then
// Verify. The first failing Verify returns a *types.InvalidDocumentError
// naming that version, and no later step runs. Changes made by earlier
// steps are kept. On success the document's version field is set to the
// latest id; a document already at the latest version is otherwise left
// untouched.
func (m *Migrator) Migrate(doc types.Document) (Report, error) {
	report := Report{RunID: newRunID(), Applied: make([]types.VersionID, 0)}

	latest, err := m.registry.Latest()
	if err != nil {
		return report, err
	}
	report.To = latest

	from, declared, err := doc.Version()
	if err != nil {
		return report, err
	}
	if !declared {
		from, _ = m.registry.Earliest()
	}
	report.From = from

	start, err := m.registry.Index(from)
	if err != nil {
		return report, err
	}

	log := m.log.WithField("run", report.RunID)
	for _, step := range m.registry.after(start) {
		id := step.ID()
		step.Update(doc)
		if !step.Verify(doc) {
			return report, &types.InvalidDocumentError{Version: id}
		}
		report.Applied = append(report.Applied, id)
		log.WithField("version", id).Debug("schema step applied")
	}

	doc.SetVersion(latest)
	log.WithFields(logrus.Fields{"from": from, "to": latest}).Debugf("migrated document through %d step(s)", len(report.Applied))
	return report, nil
}

// Check reports whether doc verifies at its declared version without
// mutating it. A document without a version is checked against the
// earliest registered version.
func (m *Migrator) Check(doc types.Document) (types.VersionID, error) {
	id, declared, err := doc.Version()
	if err != nil {
		return "", err
	}
	if !declared {
		if id, err = m.registry.Earliest(); err != nil {
			return "", err
		}
	}
	v, err := m.registry.Get(id)
	if err != nil {
		return id, err
	}
	if !v.Verify(doc) {
		return id, &types.InvalidDocumentError{Version: id}
	}
	return id, nil
}

// Current reports whether doc is already at the latest version.
func (m *Migrator) Current(doc types.Document) (bool, error) {
	latest, err := m.registry.Latest()
	if err != nil {
		return false, err
	}
	id, declared, err := doc.Version()
	if err != nil {
		return false, fmt.Errorf("read version: %w", err)
	}
	return declared && id == latest, nil
}

// newRunID generates a UUID v7 for a migration run.
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
