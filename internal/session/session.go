package session

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/pixil98/go-saveinject/internal/catalog"
	"github.com/pixil98/go-saveinject/internal/inventory"
	"github.com/pixil98/go-saveinject/internal/queue"
	"github.com/pixil98/go-saveinject/internal/storage"
)

// ErrConflictDeclined is returned when the confirmer refuses to overwrite
// occupied slots. Nothing is written and the queue is kept.
var ErrConflictDeclined = errors.New("overwrite of occupied slots declined")

// Session owns one user's pending injections and the catalog they draw from.
// It is not safe for concurrent use.
type Session struct {
	items        catalog.Catalog
	queue        queue.Queue
	guids        inventory.GUIDGenerator
	backupSuffix string
}

// New creates a session over a read-only catalog.
func New(items catalog.Catalog, opts ...Option) *Session {
	s := &Session{
		items:        items,
		guids:        inventory.UUIDGenerator{},
		backupSuffix: storage.DefaultBackupSuffix,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Catalog returns the session's item catalog.
func (s *Session) Catalog() catalog.Catalog {
	return s.items
}

// QueueAdd validates req against the catalog and appends it. The queued
// request names the item by its display name.
func (s *Session) QueueAdd(req queue.Request) error {
	if err := req.Validate(); err != nil {
		return err
	}

	rec, err := catalog.Resolve(s.items, req.Item)
	if err != nil {
		return err
	}
	req.Item = rec.Name

	return s.queue.Add(req)
}

// QueueAddForm parses typed input for the named item and queues it.
func (s *Session) QueueAddForm(f queue.Form) error {
	rec, err := catalog.Resolve(s.items, f.Item)
	if err != nil {
		return err
	}

	req, err := queue.ParseRequest(rec, f)
	if err != nil {
		return err
	}

	return s.queue.Add(req)
}

// QueueClear drops every pending request.
func (s *Session) QueueClear() {
	s.queue.Clear()
}

// QueueRender returns the pending requests as display lines.
func (s *Session) QueueRender() []string {
	return s.queue.Render()
}

// Pending returns a copy of the queued requests.
func (s *Session) Pending() []queue.Request {
	return s.queue.Requests()
}

// CommitReport describes a successful commit.
type CommitReport struct {
	Path          string
	SlotsWritten  int
	Conflicts     []int
	MaxSlotIndex  int
	BackupPath    string
	BackupCreated bool
	// Discarded lists non-slot inventory keys that were dropped.
	Discarded []string
}

// Commit writes the queued requests into the save at path.
//
// The inventory is merged in memory first. When the merge would overwrite
// occupied slots, confirm decides whether to continue. The backup is taken
// from the bytes on disk before the first write, and the save is replaced
// atomically. The queue is cleared only after the save succeeds; on any
// error the save file and the queue are left as they were.
func (s *Session) Commit(path string, confirm Confirmer) (CommitReport, error) {
	rep := CommitReport{Path: path}

	doc, err := storage.Load(path)
	if err != nil {
		return rep, err
	}

	current, err := doc.Inventory()
	if err != nil {
		return rep, fmt.Errorf("loading %s: %w", path, err)
	}

	requests := s.queue.Requests()

	merged, written, err := inventory.Merge(current, requests, s.items, s.guids)
	if err != nil {
		return rep, err
	}

	rep.Conflicts = inventory.Conflicts(current, requests)
	if len(rep.Conflicts) > 0 {
		if confirm == nil {
			confirm = NeverConfirm
		}
		ok, err := confirm.Confirm(rep.Conflicts)
		if err != nil {
			return rep, fmt.Errorf("confirming overwrite: %w", err)
		}
		if !ok {
			return rep, fmt.Errorf("%w: slots %v", ErrConflictDeclined, rep.Conflicts)
		}
	}

	rep.BackupPath, rep.BackupCreated, err = storage.EnsureBackup(path, s.backupSuffix)
	if err != nil {
		return rep, err
	}

	if err := doc.SetInventory(merged); err != nil {
		return rep, err
	}

	if err := storage.Save(doc, path); err != nil {
		return rep, fmt.Errorf("saving %s: %w", path, err)
	}

	rep.SlotsWritten = written
	rep.MaxSlotIndex = merged.MaxSlotIndex
	rep.Discarded = merged.Discarded()

	s.queue.Clear()

	slog.Info("injected items", "path", path, "slots", written, "conflicts", len(rep.Conflicts))
	return rep, nil
}
