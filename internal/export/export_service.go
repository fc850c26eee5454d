package export

import (
	"context"
	"fmt"
	"time"

	exporterrors "github.com/SirTuppy/route-setter-scheduler/internal/export/errors"
	"github.com/SirTuppy/route-setter-scheduler/internal/gym"
	"github.com/SirTuppy/route-setter-scheduler/internal/schedule"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/apperror"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/dateutil"

	"go.uber.org/zap"
)

const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
	FormatJSON = "json"

	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// GymDirectory resolves a gym and its wall catalog.
type GymDirectory interface {
	GetByID(ctx context.Context, id string) (gym.GymResponse, error)
	Catalog(ctx context.Context, gymID string) ([]gym.Wall, error)
}

// EntrySource lists schedule entries of every gym between two dates.
type EntrySource interface {
	FindBetween(ctx context.Context, from, to string) ([]schedule.Entry, error)
}

// File is a rendered download.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

//go:generate mockgen -source=export_service.go -destination=mock/export_service_mock.go -package=mock
type Service interface {
	YellowPage(ctx context.Context, gymID string, start time.Time) (YellowPage, error)
	RenderYellowPage(ctx context.Context, gymID string, start time.Time, format string) (File, error)
}

type service struct {
	gyms    GymDirectory
	entries EntrySource
	logger  *zap.Logger
}

func NewService(gyms GymDirectory, entries EntrySource, logger ...*zap.Logger) Service {
	l := zap.L().Named("export.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("export.service")
	}
	return &service{gyms: gyms, entries: entries, logger: l}
}

func (s *service) YellowPage(ctx context.Context, gymID string, start time.Time) (YellowPage, error) {
	if gymID == gym.VacationGymID {
		return YellowPage{}, exporterrors.ErrVacationGym
	}
	if err := dateutil.ValidateExportStart(start); err != nil {
		return YellowPage{}, err
	}

	g, err := s.gyms.GetByID(ctx, gymID)
	if err != nil {
		return YellowPage{}, err
	}
	walls, err := s.gyms.Catalog(ctx, gymID)
	if err != nil {
		return YellowPage{}, err
	}

	from := dateutil.Standardize(start)
	to := from.AddDate(0, 0, PeriodDays-1)
	entries, err := s.entries.FindBetween(ctx, dateutil.DBDate(from), dateutil.DBDate(to))
	if err != nil {
		s.logger.Error("yellow page entries fetch failed", zap.String("gym_id", gymID), zap.Error(err))
		return YellowPage{}, apperror.FetchFailed(err)
	}

	return BuildYellowPage(g.ID, g.Name, from, walls, entries)
}

func (s *service) RenderYellowPage(ctx context.Context, gymID string, start time.Time, format string) (File, error) {
	if format == "" {
		format = FormatPDF
	}
	if format != FormatPDF && format != FormatXLSX {
		return File{}, exporterrors.ErrUnsupportedFormat
	}

	page, err := s.YellowPage(ctx, gymID, start)
	if err != nil {
		return File{}, err
	}

	name := fmt.Sprintf("%s-schedule-%s.%s", page.GymID, page.Start, format)
	var data []byte
	var ctype string
	switch format {
	case FormatXLSX:
		data, err = RenderXLSX(page)
		ctype = ContentTypeXLSX
	default:
		data, err = RenderPDF(page)
		ctype = ContentTypePDF
	}
	if err != nil {
		s.logger.Error("yellow page render failed",
			zap.String("gym_id", gymID),
			zap.String("format", format),
			zap.Error(err),
		)
		return File{}, apperror.Wrap(err, exporterrors.ErrRenderFailed.Code, exporterrors.ErrRenderFailed.Message, exporterrors.ErrRenderFailed.HTTPStatus)
	}

	s.logger.Info("yellow page rendered",
		zap.String("gym_id", gymID),
		zap.String("start", page.Start),
		zap.String("format", format),
		zap.Int("bytes", len(data)),
	)
	return File{Name: name, ContentType: ctype, Data: data}, nil
}
