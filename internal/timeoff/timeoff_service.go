package timeoff

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SirTuppy/route-setter-scheduler/internal/domain"
	"github.com/SirTuppy/route-setter-scheduler/internal/events"
	"github.com/SirTuppy/route-setter-scheduler/internal/messaging/kafka"
	"github.com/SirTuppy/route-setter-scheduler/internal/schedule"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/apperror"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/dateutil"
	timeofferrors "github.com/SirTuppy/route-setter-scheduler/internal/timeoff/errors"
	"github.com/SirTuppy/route-setter-scheduler/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const aggregateType = "time_off"

// ScheduleWriter is the part of the schedule service approval touches.
type ScheduleWriter interface {
	EntriesWithSetter(ctx context.Context, userID, from, to string) ([]schedule.SetterEntry, error)
	RemoveSetterFromEntries(ctx context.Context, tx *sql.Tx, actorID, userID string, entryIDs []string) error
	UpsertVacation(ctx context.Context, tx *sql.Tx, actorID, userID, date, comment string) error
}

// CrewScope resolves the setters a head setter is responsible for.
type CrewScope interface {
	MemberIDsLedBy(ctx context.Context, userID string) ([]string, error)
}

//go:generate mockgen -source=timeoff_service.go -destination=mock/timeoff_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor domain.Actor, req CreateTimeOffRequest) (TimeOffResponse, error)
	List(ctx context.Context, actor domain.Actor, status string) ([]TimeOffResponse, error)
	GetByID(ctx context.Context, actor domain.Actor, id string) (TimeOffResponse, error)
	CheckConflicts(ctx context.Context, actor domain.Actor, id string) (ConflictsResponse, error)
	Approve(ctx context.Context, actor domain.Actor, id string, acknowledged bool) (TimeOffResponse, error)
	Deny(ctx context.Context, actor domain.Actor, id, reason string) (TimeOffResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	schedule ScheduleWriter
	crews    CrewScope
	calendar *dateutil.Calendar
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	schedule ScheduleWriter,
	crews CrewScope,
	calendar *dateutil.Calendar,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("timeoff.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timeoff.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		schedule: schedule,
		crews:    crews,
		calendar: calendar,
		outbox:   outbox,
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, actor domain.Actor, req CreateTimeOffRequest) (TimeOffResponse, error) {
	s.logger.Debug("create time off requested",
		zap.String("actor_id", actor.UserID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
		zap.String("type", req.Type),
	)

	userID, err := uuid.Parse(actor.UserID)
	if err != nil {
		return TimeOffResponse{}, timeofferrors.ErrInvalidActorID
	}
	if !validType(req.Type) {
		return TimeOffResponse{}, timeofferrors.ErrInvalidType
	}
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("create time off validation failed", zap.Error(err))
		return TimeOffResponse{}, err
	}

	r := &Request{
		ID:        uuid.New(),
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
		Hours:     req.Hours,
		Reason:    strings.TrimSpace(req.Reason),
		Type:      req.Type,
		Status:    StatusPending,
		Requester: &user.User{ID: userID, Name: actor.Name, Email: actor.Email},
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create time off begin tx failed", zap.Error(err))
		return TimeOffResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, r); err != nil {
		s.logger.Error("create time off persist failed", zap.Error(err))
		return TimeOffResponse{}, apperror.UpdateFailed(err)
	}
	if err := s.emit(ctx, tx, events.TimeOffCreated, r, actor.UserID); err != nil {
		return TimeOffResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create time off commit failed", zap.Error(err))
		return TimeOffResponse{}, err
	}
	s.logger.Info("create time off success",
		zap.String("timeoff_id", r.ID.String()),
		zap.String("user_id", actor.UserID),
	)
	return mapToResponse(*r), nil
}

func (s *service) List(ctx context.Context, actor domain.Actor, status string) ([]TimeOffResponse, error) {
	scope, err := s.scope(ctx, actor)
	if err != nil {
		return nil, err
	}

	requests, err := s.repo.FindAll(ctx, Filter{UserIDs: scope, Status: status})
	if err != nil {
		return nil, apperror.FetchFailed(err)
	}
	return mapToListResponse(requests), nil
}

func (s *service) GetByID(ctx context.Context, actor domain.Actor, id string) (TimeOffResponse, error) {
	r, err := s.find(ctx, s.repo, actor, id)
	if err != nil {
		return TimeOffResponse{}, err
	}
	return mapToResponse(*r), nil
}

func (s *service) CheckConflicts(ctx context.Context, actor domain.Actor, id string) (ConflictsResponse, error) {
	r, err := s.find(ctx, s.repo, actor, id)
	if err != nil {
		return ConflictsResponse{}, err
	}
	return s.conflicts(ctx, r)
}

// Approve strips the requester from conflicting entries, marks the request
// approved and books them on the vacation gym for every working day of the
// range. Approving an approved request repeats the schedule steps, which
// change nothing the second time.
func (s *service) Approve(ctx context.Context, actor domain.Actor, id string, acknowledged bool) (TimeOffResponse, error) {
	s.logger.Debug("approve time off requested",
		zap.String("timeoff_id", id),
		zap.String("actor_id", actor.UserID),
		zap.Bool("acknowledged", acknowledged),
	)

	actorUUID, err := uuid.Parse(actor.UserID)
	if err != nil {
		return TimeOffResponse{}, timeofferrors.ErrInvalidActorID
	}

	r, err := s.find(ctx, s.repo, actor, id)
	if err != nil {
		return TimeOffResponse{}, err
	}
	if !isAllowedStatusTransition(r.Status, StatusApproved) {
		s.logger.Warn("approve time off invalid transition",
			zap.String("timeoff_id", id),
			zap.String("from_status", r.Status),
		)
		return TimeOffResponse{}, timeofferrors.ErrInvalidStatusTransition
	}

	conflicts, err := s.conflicts(ctx, r)
	if err != nil {
		return TimeOffResponse{}, err
	}
	if len(conflicts.Conflicts) > 0 && !acknowledged {
		s.logger.Info("approve time off blocked by conflicts",
			zap.String("timeoff_id", id),
			zap.Int("conflicts", len(conflicts.Conflicts)),
		)
		return TimeOffResponse{}, timeofferrors.ErrUnacknowledgedConflicts.WithDetails(conflicts)
	}

	days, err := dateutil.Weekdays(r.StartDate, r.EndDate)
	if err != nil {
		return TimeOffResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("approve time off begin tx failed", zap.Error(err))
		return TimeOffResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	userID := r.UserID.String()

	r.Status = StatusApproved
	r.ApprovedBy = &actorUUID
	r.DenialReason = nil
	ok, err := qtx.Transition(ctx, r, StatusPending, StatusApproved)
	if err != nil {
		s.logger.Error("approve time off persist failed", zap.String("timeoff_id", id), zap.Error(err))
		return TimeOffResponse{}, apperror.UpdateFailed(err)
	}
	if !ok {
		s.logger.Warn("approve time off lost race", zap.String("timeoff_id", id))
		return TimeOffResponse{}, timeofferrors.ErrInvalidStatusTransition
	}

	if len(conflicts.Conflicts) > 0 {
		entryIDs := make([]string, 0, len(conflicts.Conflicts))
		for _, c := range conflicts.Conflicts {
			entryIDs = append(entryIDs, c.EntryID)
		}
		if err := s.schedule.RemoveSetterFromEntries(ctx, tx, actor.UserID, userID, entryIDs); err != nil {
			s.logger.Error("approve time off remove setter failed", zap.String("timeoff_id", id), zap.Error(err))
			return TimeOffResponse{}, err
		}
	}

	comment := vacationComment(*r)
	for _, d := range days {
		if s.calendar.IsHoliday(d) {
			continue
		}
		if err := s.schedule.UpsertVacation(ctx, tx, actor.UserID, userID, dateutil.DBDate(d), comment); err != nil {
			s.logger.Error("approve time off vacation upsert failed",
				zap.String("timeoff_id", id),
				zap.String("date", dateutil.DBDate(d)),
				zap.Error(err),
			)
			return TimeOffResponse{}, err
		}
	}

	if err := s.emit(ctx, tx, events.TimeOffApproved, r, actor.UserID); err != nil {
		return TimeOffResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("approve time off commit failed", zap.String("timeoff_id", id), zap.Error(err))
		return TimeOffResponse{}, err
	}
	s.logger.Info("approve time off success",
		zap.String("timeoff_id", id),
		zap.Int("removed_from", len(conflicts.Conflicts)),
		zap.Int("vacation_days", len(days)),
	)
	return mapToResponse(*r), nil
}

func (s *service) Deny(ctx context.Context, actor domain.Actor, id, reason string) (TimeOffResponse, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return TimeOffResponse{}, timeofferrors.ErrDenialReasonRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("deny time off begin tx failed", zap.Error(err))
		return TimeOffResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	r, err := s.find(ctx, qtx, actor, id)
	if err != nil {
		return TimeOffResponse{}, err
	}
	if !isAllowedStatusTransition(r.Status, StatusDenied) {
		s.logger.Warn("deny time off invalid transition",
			zap.String("timeoff_id", id),
			zap.String("from_status", r.Status),
		)
		return TimeOffResponse{}, timeofferrors.ErrInvalidStatusTransition
	}

	r.Status = StatusDenied
	r.ApprovedBy = nil
	r.DenialReason = &reason
	ok, err := qtx.Transition(ctx, r, StatusPending)
	if err != nil {
		s.logger.Error("deny time off persist failed", zap.String("timeoff_id", id), zap.Error(err))
		return TimeOffResponse{}, apperror.UpdateFailed(err)
	}
	if !ok {
		s.logger.Warn("deny time off lost race", zap.String("timeoff_id", id))
		return TimeOffResponse{}, timeofferrors.ErrInvalidStatusTransition
	}
	if err := s.emit(ctx, tx, events.TimeOffDenied, r, actor.UserID); err != nil {
		return TimeOffResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("deny time off commit failed", zap.String("timeoff_id", id), zap.Error(err))
		return TimeOffResponse{}, err
	}
	s.logger.Info("deny time off success", zap.String("timeoff_id", id))
	return mapToResponse(*r), nil
}

// scope returns the user ids whose requests actor may see, or nil for all.
func (s *service) scope(ctx context.Context, actor domain.Actor) ([]string, error) {
	switch actor.Role {
	case domain.RoleAdmin:
		return nil, nil
	case domain.RoleHeadSetter:
		members, err := s.crews.MemberIDsLedBy(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		ids := []string{actor.UserID}
		for _, m := range members {
			if m != actor.UserID {
				ids = append(ids, m)
			}
		}
		return ids, nil
	default:
		return []string{actor.UserID}, nil
	}
}

// find loads a request the actor is allowed to see. Requests outside the
// actor's scope read as not found.
func (s *service) find(ctx context.Context, repo Repository, actor domain.Actor, id string) (*Request, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, timeofferrors.ErrInvalidRequestID
	}
	r, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, timeofferrors.ErrRequestNotFound
		}
		return nil, apperror.FetchFailed(err)
	}

	scope, err := s.scope(ctx, actor)
	if err != nil {
		return nil, err
	}
	if scope == nil {
		return r, nil
	}
	owner := r.UserID.String()
	for _, uid := range scope {
		if uid == owner {
			return r, nil
		}
	}
	return nil, timeofferrors.ErrRequestNotFound
}

func (s *service) conflicts(ctx context.Context, r *Request) (ConflictsResponse, error) {
	entries, err := s.schedule.EntriesWithSetter(ctx, r.UserID.String(), dateutil.DBDate(r.StartDate), dateutil.DBDate(r.EndDate))
	if err != nil {
		return ConflictsResponse{}, err
	}
	return ConflictsResponse{
		RequestID: r.ID.String(),
		UserID:    r.UserID.String(),
		Conflicts: entries,
	}, nil
}

func (s *service) emit(ctx context.Context, tx *sql.Tx, eventType string, r *Request, actorID string) error {
	if s.outbox == nil {
		return nil
	}
	evt, err := kafka.NewOutboxEvent(ctx, events.TimeOffChangesTopic, aggregateType, r.ID.String(), eventType, events.TimeOffChangedEvent{
		EventType:  eventType,
		RequestID:  r.ID.String(),
		UserID:     r.UserID.String(),
		Status:     r.Status,
		StartDate:  dateutil.DBDate(r.StartDate),
		EndDate:    dateutil.DBDate(r.EndDate),
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return apperror.UpdateFailed(err)
	}
	if err := s.outbox.WithTx(tx).Create(ctx, evt); err != nil {
		return apperror.UpdateFailed(err)
	}
	return nil
}

func isAllowedStatusTransition(current, target string) bool {
	switch target {
	case StatusApproved:
		return current == StatusPending || current == StatusApproved
	case StatusDenied:
		return current == StatusPending
	default:
		return false
	}
}

func validType(t string) bool {
	switch t {
	case TypeVacation, TypeSick, TypeOther:
		return true
	}
	return false
}

func parseRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := dateutil.ParseDBDate(startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := dateutil.ParseDBDate(endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, timeofferrors.ErrInvalidDateRange
	}
	return start, end, nil
}

// vacationComment labels the requester's line on a vacation entry, for
// example "Alice: family trip (4h)".
func vacationComment(r Request) string {
	label := r.Reason
	if label == "" {
		label = r.Type
	}
	if r.Hours > 0 {
		label = fmt.Sprintf("%s (%sh)", label, strconv.FormatFloat(r.Hours, 'f', -1, 64))
	}
	if name := r.RequesterName(); name != "" {
		return name + ": " + label
	}
	return label
}

func mapToResponse(r Request) TimeOffResponse {
	resp := TimeOffResponse{
		ID:           r.ID.String(),
		UserID:       r.UserID.String(),
		StartDate:    dateutil.DBDate(r.StartDate),
		EndDate:      dateutil.DBDate(r.EndDate),
		Hours:        r.Hours,
		Reason:       r.Reason,
		Type:         r.Type,
		Status:       r.Status,
		DenialReason: r.DenialReason,
	}
	if r.Requester != nil {
		resp.UserName = r.Requester.Name
		resp.UserEmail = r.Requester.Email
	}
	if r.ApprovedBy != nil {
		v := r.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if !r.CreatedAt.IsZero() {
		resp.CreatedAt = r.CreatedAt.Format(time.RFC3339)
	}
	if !r.UpdatedAt.IsZero() {
		resp.UpdatedAt = r.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(requests []Request) []TimeOffResponse {
	resp := make([]TimeOffResponse, len(requests))
	for i, r := range requests {
		resp[i] = mapToResponse(r)
	}
	return resp
}
