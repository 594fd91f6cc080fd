package command

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pixil98/go-saveinject/internal"
	"github.com/pixil98/go-saveinject/internal/queue"
	"github.com/pixil98/go-saveinject/internal/report"
	"github.com/pixil98/go-saveinject/internal/session"
	"github.com/pixil98/go-service"
	"github.com/sirupsen/logrus"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	items, err := cfg.Catalog.BuildCatalog()
	if err != nil {
		return nil, fmt.Errorf("creating catalog: %w", err)
	}
	logrus.WithField("items", items.Len()).Info("loaded catalog")

	s := session.New(items, session.WithBackupSuffix(cfg.BackupSuffix))

	err = queueRequests(s, cfg.Requests)
	if err != nil {
		return nil, fmt.Errorf("queueing requests: %w", err)
	}

	return service.WorkerList{
		"injector": NewInjector(cfg, s, internal.NewTerminal(os.Stdin, os.Stdout), logrus.StandardLogger()),
	}, nil
}

// Injector commits a session's queue to the configured save file once.
type Injector struct {
	cfg     *Config
	session *session.Session
	term    io.ReadWriter
	logger  logrus.FieldLogger
}

func NewInjector(cfg *Config, s *session.Session, term io.ReadWriter, logger logrus.FieldLogger) *Injector {
	return &Injector{
		cfg:     cfg,
		session: s,
		term:    term,
		logger:  logger.WithField("save", cfg.SavePath),
	}
}

func (w *Injector) confirmer() session.Confirmer {
	switch w.cfg.Conflicts {
	case ConflictOverwrite:
		return session.AlwaysConfirm
	case ConflictAbort:
		return session.NeverConfirm
	default:
		return session.NewPromptConfirmer(w.term)
	}
}

func (w *Injector) Start(ctx context.Context) error {
	if w.cfg.Interactive {
		if err := w.collect(); err != nil {
			return fmt.Errorf("collecting requests: %w", err)
		}
	}

	pending := w.session.QueueRender()
	if len(pending) == 0 {
		w.logger.Warn("no requests queued, normalizing inventory only")
	} else {
		_, err := fmt.Fprintf(w.term, "Queued:\n%s", queue.Columns(pending))
		if err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	rep, err := w.session.Commit(w.cfg.SavePath, w.confirmer())
	if err != nil {
		w.logger.WithError(err).Error("injection failed")
		return fmt.Errorf("committing queue: %w", err)
	}

	if len(rep.Discarded) > 0 {
		w.logger.WithField("keys", rep.Discarded).Warn("dropped non-slot inventory keys")
	}

	summary, err := report.Summarize(w.cfg.ReportTemplate, rep)
	if err != nil {
		return fmt.Errorf("rendering summary: %w", err)
	}

	_, err = fmt.Fprintln(w.term, summary)
	if err != nil {
		return err
	}

	w.logger.WithFields(logrus.Fields{
		"slots":          rep.SlotsWritten,
		"max_slot_index": rep.MaxSlotIndex,
	}).Info("injection complete")

	return nil
}
