package schedule

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/SirTuppy/route-setter-scheduler/internal/domain"
	"github.com/SirTuppy/route-setter-scheduler/internal/events"
	"github.com/SirTuppy/route-setter-scheduler/internal/gym"
	"github.com/SirTuppy/route-setter-scheduler/internal/messaging/kafka"
	scheduleerrors "github.com/SirTuppy/route-setter-scheduler/internal/schedule/errors"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/apperror"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/contextutil"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/dateutil"
	"github.com/SirTuppy/route-setter-scheduler/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const aggregateType = "schedule_entry"

//go:generate mockgen -source=schedule_service.go -destination=mock/schedule_service_mock.go -package=mock
type WallCatalog interface {
	GetByID(ctx context.Context, id string) (gym.GymResponse, error)
	Catalog(ctx context.Context, gymID string) ([]gym.Wall, error)
}

type SetterDirectory interface {
	Lookup(ctx context.Context, ids []string) (map[string]user.UserResponse, error)
}

type Service interface {
	GetWindow(ctx context.Context, start time.Time) (WindowResponse, error)
	Mine(ctx context.Context, actor domain.Actor, start time.Time) (MineResponse, error)
	GetEntry(ctx context.Context, id string) (Cell, error)
	SaveCell(ctx context.Context, actor domain.Actor, req SaveCellRequest) (SaveCellResponse, error)
	ClearCell(ctx context.Context, actor domain.Actor, gymID, date string) error
	ClearWeek(ctx context.Context, actor domain.Actor, start time.Time) (ClearWeekResponse, error)
	Conflicts(ctx context.Context, gymID, date string) (ConflictsResponse, error)

	// Transaction-scoped operations used by time-off approval.
	EntriesWithSetter(ctx context.Context, userID, from, to string) ([]SetterEntry, error)
	RemoveSetterFromEntries(ctx context.Context, tx *sql.Tx, actorID, userID string, entryIDs []string) error
	UpsertVacation(ctx context.Context, tx *sql.Tx, actorID, userID, date, comment string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	walls    WallCatalog
	setters  SetterDirectory
	calendar *dateutil.Calendar
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	walls WallCatalog,
	setters SetterDirectory,
	calendar *dateutil.Calendar,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("schedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		walls:    walls,
		setters:  setters,
		calendar: calendar,
		outbox:   outbox,
		logger:   l,
	}
}

func (s *service) GetWindow(ctx context.Context, start time.Time) (WindowResponse, error) {
	days := dateutil.Window(start)
	if len(days) == 0 {
		return WindowResponse{}, dateutil.ErrInvalidDate
	}
	from, to := dateutil.DBDate(days[0]), dateutil.DBDate(days[len(days)-1])

	entries, err := s.repo.FindBetween(ctx, from, to)
	if err != nil {
		s.logger.Error("load schedule window failed", zap.String("from", from), zap.Error(err))
		return WindowResponse{}, mapFetchError(err)
	}

	resp := WindowResponse{
		Start: from,
		Days:  s.windowDays(days),
		Cells: make(Window, len(entries)),
	}

	catalogs := make(map[string][]gym.Wall)
	for _, e := range entries {
		walls, err := s.catalog(ctx, catalogs, e.GymID)
		if err != nil {
			return WindowResponse{}, err
		}
		cell := s.toCell(e, walls)
		resp.Cells[NewCellKey(e.GymID, e.ScheduleDate)] = cell
	}

	return resp, nil
}

// Mine lists the entries actor is booked on across the window starting at
// start, vacation days included, in date order.
func (s *service) Mine(ctx context.Context, actor domain.Actor, start time.Time) (MineResponse, error) {
	days := dateutil.Window(start)
	if len(days) == 0 {
		return MineResponse{}, dateutil.ErrInvalidDate
	}
	from, to := dateutil.DBDate(days[0]), dateutil.DBDate(days[len(days)-1])

	resp := MineResponse{
		Start: from,
		Days:  s.windowDays(days),
		Cells: []Cell{},
	}
	if parseActorID(actor) == nil {
		return resp, nil
	}

	entries, err := s.repo.FindWithSetterBetween(ctx, actor.UserID, from, to)
	if err != nil {
		s.logger.Error("load own schedule failed",
			zap.String("user_id", actor.UserID),
			zap.String("from", from),
			zap.Error(err),
		)
		return MineResponse{}, mapFetchError(err)
	}

	catalogs := make(map[string][]gym.Wall)
	for _, e := range entries {
		walls, err := s.catalog(ctx, catalogs, e.GymID)
		if err != nil {
			return MineResponse{}, err
		}
		cell := s.toCell(e, walls)
		resp.Cells = append(resp.Cells, cell)
		if e.GymID == gym.VacationGymID {
			resp.VacationDays++
			continue
		}
		resp.Climbs += cell.Metrics.Climbs
	}
	sort.SliceStable(resp.Cells, func(i, j int) bool { return resp.Cells[i].Date < resp.Cells[j].Date })

	return resp, nil
}

func (s *service) windowDays(days []time.Time) []Day {
	out := make([]Day, len(days))
	for i, d := range days {
		day := Day{Date: dateutil.DBDate(d), Key: dateutil.Key(d)}
		if h, ok := s.calendar.Holiday(d); ok {
			day.Holiday = h.Name
		}
		out[i] = day
	}
	return out
}

// catalog returns a gym's walls from cache, filling it on a miss.
func (s *service) catalog(ctx context.Context, cache map[string][]gym.Wall, gymID string) ([]gym.Wall, error) {
	if walls, ok := cache[gymID]; ok {
		return walls, nil
	}
	walls, err := s.walls.Catalog(ctx, gymID)
	if err != nil {
		return nil, err
	}
	cache[gymID] = walls
	return walls, nil
}

func (s *service) GetEntry(ctx context.Context, id string) (Cell, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Cell{}, scheduleerrors.ErrEntryNotFound
	}
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Cell{}, mapFetchError(err)
	}
	walls, err := s.walls.Catalog(ctx, e.GymID)
	if err != nil {
		return Cell{}, err
	}
	return s.toCell(*e, walls), nil
}

// SaveCell creates or updates the entry for one gym and day. Catalog
// validation happens before the transaction opens. Setters that cannot be
// assigned are reported back while the rest of the cell is still saved.
func (s *service) SaveCell(ctx context.Context, actor domain.Actor, req SaveCellRequest) (SaveCellResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := s.logger.With(
		zap.String("request_id", rid),
		zap.String("gym_id", req.GymID),
		zap.String("date", req.Date),
	)

	date, err := s.writableDate(req.Date)
	if err != nil {
		return SaveCellResponse{}, err
	}

	if _, err := s.walls.GetByID(ctx, req.GymID); err != nil {
		log.Warn("save cell unknown gym", zap.Error(err))
		return SaveCellResponse{}, err
	}
	catalog, err := s.walls.Catalog(ctx, req.GymID)
	if err != nil {
		return SaveCellResponse{}, err
	}
	wallIDs, err := validateWalls(req.Walls, catalog)
	if err != nil {
		return SaveCellResponse{}, err
	}

	setterIDs := dedupe(req.Setters)
	if _, err := s.setters.Lookup(ctx, setterIDs); err != nil {
		return SaveCellResponse{}, err
	}

	actorID := parseActorID(actor)
	dbDate := dateutil.DBDate(date)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("save cell begin tx failed", zap.Error(err))
		return SaveCellResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	entry, err := qtx.FindByGymAndDate(ctx, req.GymID, dbDate)
	eventType := events.ChangeUpdate
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if req.Version != nil && *req.Version != 0 {
			return SaveCellResponse{}, scheduleerrors.ErrVersionConflict
		}
		entry = &Entry{
			ID:           uuid.New(),
			GymID:        req.GymID,
			ScheduleDate: date,
			Comments:     req.Comments,
			Version:      1,
			CreatedBy:    actorID,
			UpdatedBy:    actorID,
		}
		if err := qtx.Create(ctx, entry); err != nil {
			log.Error("save cell create entry failed", zap.Error(err))
			return SaveCellResponse{}, mapWriteError(err)
		}
		eventType = events.ChangeInsert
	case err != nil:
		log.Error("save cell lookup failed", zap.Error(err))
		return SaveCellResponse{}, mapFetchError(err)
	default:
		if req.Version == nil || *req.Version != entry.Version {
			return SaveCellResponse{}, scheduleerrors.ErrVersionConflict
		}
		entry.Comments = req.Comments
		entry.UpdatedBy = actorID
		ok, err := qtx.UpdateHeader(ctx, entry, *req.Version)
		if err != nil {
			log.Error("save cell update entry failed", zap.Error(err))
			return SaveCellResponse{}, mapWriteError(err)
		}
		if !ok {
			return SaveCellResponse{}, scheduleerrors.ErrVersionConflict
		}
	}

	if err := qtx.ReplaceWalls(ctx, entry.ID, wallIDs); err != nil {
		log.Error("save cell replace walls failed", zap.Error(err))
		return SaveCellResponse{}, apperror.UpdateFailed(err)
	}

	kept, failed, err := s.applySetters(ctx, qtx, entry, req.GymID, dbDate, setterIDs)
	if err != nil {
		log.Error("save cell assign setters failed", zap.Error(err))
		return SaveCellResponse{}, err
	}

	if err := s.emit(ctx, tx, eventType, entry.ID.String(), req.GymID, dbDate, actor.UserID); err != nil {
		log.Error("save cell outbox failed", zap.Error(err))
		return SaveCellResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("save cell commit failed", zap.Error(err))
		return SaveCellResponse{}, err
	}

	entry.Walls = make([]EntryWall, len(wallIDs))
	for i, id := range wallIDs {
		entry.Walls[i] = EntryWall{EntryID: entry.ID, WallID: id}
	}
	entry.Setters = kept
	log.Info("save cell success",
		zap.String("entry_id", entry.ID.String()),
		zap.Int("version", entry.Version),
		zap.Int("failed_setters", len(failed)),
	)

	return SaveCellResponse{
		Cell:          s.toCell(*entry, catalog),
		FailedSetters: failed,
	}, nil
}

// applySetters brings the entry's assignments in line with desired, one
// setter at a time.
func (s *service) applySetters(
	ctx context.Context,
	qtx Repository,
	entry *Entry,
	gymID, dbDate string,
	desired []string,
) ([]EntrySetter, []FailedSetter, error) {
	want := make(map[string]struct{}, len(desired))
	for _, id := range desired {
		want[id] = struct{}{}
	}

	kept := make([]EntrySetter, 0, len(desired))
	for _, cur := range entry.Setters {
		id := cur.UserID.String()
		if _, ok := want[id]; ok {
			kept = append(kept, cur)
			delete(want, id)
			continue
		}
		if _, err := qtx.RemoveSetter(ctx, entry.ID, id); err != nil {
			return nil, nil, apperror.UpdateFailed(err)
		}
	}

	failed := []FailedSetter{}
	if len(want) == 0 {
		return kept, failed, nil
	}

	adds := make([]string, 0, len(want))
	for _, id := range desired {
		if _, ok := want[id]; ok {
			adds = append(adds, id)
		}
	}

	away := map[string]struct{}{}
	if gymID != gym.VacationGymID {
		ids, err := qtx.SettersOnTimeOff(ctx, adds, dbDate)
		if err != nil {
			return nil, nil, apperror.FetchFailed(err)
		}
		for _, id := range ids {
			away[id] = struct{}{}
		}
	}

	for _, id := range adds {
		if _, ok := away[id]; ok {
			failed = append(failed, FailedSetter{SetterID: id, Reason: scheduleerrors.ReasonOnTimeOff})
			continue
		}
		uid := uuid.MustParse(id)
		if err := qtx.AddSetter(ctx, entry.ID, uid); err != nil {
			reason := setterFailureReason(err)
			if reason == "" {
				return nil, nil, apperror.UpdateFailed(err)
			}
			s.logger.Warn("setter not assigned",
				zap.String("entry_id", entry.ID.String()),
				zap.String("setter_id", id),
				zap.String("reason", reason),
			)
			failed = append(failed, FailedSetter{SetterID: id, Reason: reason})
			continue
		}
		kept = append(kept, EntrySetter{EntryID: entry.ID, UserID: uid})
	}

	return kept, failed, nil
}

// ClearCell removes the entry for one gym and day. Clearing an empty cell
// is not an error.
func (s *service) ClearCell(ctx context.Context, actor domain.Actor, gymID, date string) error {
	d, err := dateutil.ParseDBDate(date)
	if err != nil {
		return err
	}
	dbDate := dateutil.DBDate(d)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("clear cell begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	entry, err := qtx.FindByGymAndDate(ctx, gymID, dbDate)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return mapFetchError(err)
	}

	if err := qtx.Delete(ctx, entry.ID); err != nil {
		s.logger.Error("clear cell delete failed", zap.String("entry_id", entry.ID.String()), zap.Error(err))
		return apperror.UpdateFailed(err)
	}
	if err := s.emit(ctx, tx, events.ChangeDelete, entry.ID.String(), gymID, dbDate, actor.UserID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("clear cell commit failed", zap.Error(err))
		return err
	}
	s.logger.Info("clear cell success", zap.String("gym_id", gymID), zap.String("date", dbDate))
	return nil
}

// ClearWeek removes every gym entry in the Monday to Friday week starting at
// start. Vacation entries are kept since they mirror approved time off.
func (s *service) ClearWeek(ctx context.Context, actor domain.Actor, start time.Time) (ClearWeekResponse, error) {
	monday := dateutil.MondayOf(start)
	from := dateutil.DBDate(monday)
	to := dateutil.DBDate(monday.AddDate(0, 0, 4))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("clear week begin tx failed", zap.Error(err))
		return ClearWeekResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	entries, err := qtx.FindBetween(ctx, from, to)
	if err != nil {
		return ClearWeekResponse{}, mapFetchError(err)
	}

	cleared := 0
	for _, e := range entries {
		if e.GymID == gym.VacationGymID {
			continue
		}
		if err := qtx.Delete(ctx, e.ID); err != nil {
			s.logger.Error("clear week delete failed", zap.String("entry_id", e.ID.String()), zap.Error(err))
			return ClearWeekResponse{}, apperror.UpdateFailed(err)
		}
		if err := s.emit(ctx, tx, events.ChangeDelete, e.ID.String(), e.GymID, dateutil.DBDate(e.ScheduleDate), actor.UserID); err != nil {
			return ClearWeekResponse{}, err
		}
		cleared++
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("clear week commit failed", zap.Error(err))
		return ClearWeekResponse{}, err
	}
	s.logger.Info("clear week success", zap.String("start", from), zap.Int("cleared", cleared))

	return ClearWeekResponse{Start: from, Cleared: cleared}, nil
}

func (s *service) Conflicts(ctx context.Context, gymID, date string) (ConflictsResponse, error) {
	d, err := dateutil.ParseDBDate(date)
	if err != nil {
		return ConflictsResponse{}, err
	}
	dbDate := dateutil.DBDate(d)

	entries, err := s.repo.FindBetween(ctx, dbDate, dbDate)
	if err != nil {
		return ConflictsResponse{}, mapFetchError(err)
	}

	window := make(Window, len(entries))
	for _, e := range entries {
		window[NewCellKey(e.GymID, e.ScheduleDate)] = Cell{
			GymID:   e.GymID,
			Setters: e.SetterIDs(),
		}
	}

	return ConflictsResponse{
		GymID:     gymID,
		Date:      dbDate,
		SetterIDs: ConflictingSetters(gymID, d, window),
	}, nil
}

// EntriesWithSetter lists the gym entries in [from, to] that include the
// user. Vacation entries are not conflicts and are left out.
func (s *service) EntriesWithSetter(ctx context.Context, userID, from, to string) ([]SetterEntry, error) {
	entries, err := s.repo.FindWithSetterBetween(ctx, userID, from, to)
	if err != nil {
		return nil, mapFetchError(err)
	}

	out := make([]SetterEntry, 0, len(entries))
	for _, e := range entries {
		if e.GymID == gym.VacationGymID {
			continue
		}
		out = append(out, SetterEntry{
			EntryID: e.ID.String(),
			GymID:   e.GymID,
			Date:    dateutil.DBDate(e.ScheduleDate),
		})
	}
	return out, nil
}

// RemoveSetterFromEntries drops the user from each entry inside tx. The
// entries themselves are kept.
func (s *service) RemoveSetterFromEntries(ctx context.Context, tx *sql.Tx, actorID, userID string, entryIDs []string) error {
	qtx := s.repo.WithTx(tx)
	for _, id := range entryIDs {
		entry, err := qtx.FindByID(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return mapFetchError(err)
		}

		n, err := qtx.RemoveSetter(ctx, entry.ID, userID)
		if err != nil {
			return apperror.UpdateFailed(err)
		}
		if n == 0 {
			continue
		}
		if err := s.emit(ctx, tx, events.ChangeUpdate, id, entry.GymID, dateutil.DBDate(entry.ScheduleDate), actorID); err != nil {
			return err
		}
	}
	return nil
}

// UpsertVacation books the user on the vacation pseudo-gym for date inside
// tx. Calling it again for the same user and date changes nothing.
func (s *service) UpsertVacation(ctx context.Context, tx *sql.Tx, actorID, userID, date, comment string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return apperror.InvalidField("user_id")
	}

	qtx := s.repo.WithTx(tx)
	entry, err := qtx.FindByGymAndDate(ctx, gym.VacationGymID, date)
	eventType := events.ChangeUpdate
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		d, perr := dateutil.ParseDBDate(date)
		if perr != nil {
			return perr
		}
		by := parseID(actorID)
		entry = &Entry{
			ID:           uuid.New(),
			GymID:        gym.VacationGymID,
			ScheduleDate: d,
			Comments:     comment,
			Version:      1,
			CreatedBy:    by,
			UpdatedBy:    by,
		}
		if err := qtx.Create(ctx, entry); err != nil {
			return mapWriteError(err)
		}
		eventType = events.ChangeInsert
	case err != nil:
		return mapFetchError(err)
	default:
		if entry.HasSetter(userID) {
			return nil
		}
		if comment != "" && !strings.Contains(entry.Comments, comment) {
			entry.Comments = appendComment(entry.Comments, comment)
			entry.UpdatedBy = parseID(actorID)
			ok, err := qtx.UpdateHeader(ctx, entry, entry.Version)
			if err != nil {
				return mapWriteError(err)
			}
			if !ok {
				return scheduleerrors.ErrVersionConflict
			}
		}
	}

	if err := qtx.AddSetter(ctx, entry.ID, uid); err != nil {
		if setterFailureReason(err) == scheduleerrors.ReasonAlreadyScheduled {
			return nil
		}
		return apperror.UpdateFailed(err)
	}

	return s.emit(ctx, tx, eventType, entry.ID.String(), gym.VacationGymID, date, actorID)
}

// writableDate rejects days that cannot hold schedule changes.
func (s *service) writableDate(raw string) (time.Time, error) {
	d, err := dateutil.ParseDBDate(raw)
	if err != nil {
		return time.Time{}, err
	}
	if dateutil.IsWeekend(d) {
		return time.Time{}, scheduleerrors.ErrWeekend
	}
	if h, ok := s.calendar.Holiday(d); ok {
		return time.Time{}, scheduleerrors.ErrHolidayReadOnly.WithDetails(map[string]any{"holiday": h.Name})
	}
	return d, nil
}

func (s *service) emit(ctx context.Context, tx *sql.Tx, eventType, entryID, gymID, date, actorID string) error {
	if s.outbox == nil {
		return nil
	}
	evt, err := kafka.NewOutboxEvent(ctx, events.ScheduleChangesTopic, aggregateType, entryID, eventType, events.ScheduleChangedEvent{
		EventType:    eventType,
		Table:        Entry{}.TableName(),
		EntryID:      entryID,
		GymID:        gymID,
		ScheduleDate: date,
		ActorID:      actorID,
		OccurredAt:   time.Now().UTC(),
	})
	if err != nil {
		return apperror.UpdateFailed(err)
	}
	if err := s.outbox.WithTx(tx).Create(ctx, evt); err != nil {
		return apperror.UpdateFailed(err)
	}
	return nil
}

func (s *service) toCell(e Entry, walls []gym.Wall) Cell {
	wallIDs := e.WallIDs()
	setterIDs := e.SetterIDs()
	sort.Strings(setterIDs)

	c := Cell{
		EntryID:  e.ID.String(),
		GymID:    e.GymID,
		Date:     dateutil.DBDate(e.ScheduleDate),
		DateKey:  dateutil.Key(e.ScheduleDate),
		Walls:    wallIDs,
		Setters:  setterIDs,
		Comments: e.Comments,
		Version:  e.Version,
		Metrics:  CalculateMetrics(wallIDs, setterIDs, walls),
	}
	if !e.UpdatedAt.IsZero() {
		c.UpdatedAt = e.UpdatedAt.UTC().Format(time.RFC3339)
	}
	if c.Metrics.Difficulty > 0 {
		c.Color = DifficultyColor(c.Metrics.Difficulty)
	}
	if h, ok := s.calendar.Holiday(e.ScheduleDate); ok {
		c.HolidayFor = h.Name
	}
	return c
}

// validateWalls checks every requested wall belongs to the gym's active
// catalog and returns them as ids.
func validateWalls(requested []string, catalog []gym.Wall) ([]uuid.UUID, error) {
	known := make(map[string]struct{}, len(catalog))
	for _, w := range catalog {
		known[w.ID.String()] = struct{}{}
	}

	ids := make([]uuid.UUID, 0, len(requested))
	seen := make(map[string]struct{}, len(requested))
	var missing []string
	for _, raw := range requested {
		if _, dup := seen[raw]; dup {
			continue
		}
		seen[raw] = struct{}{}
		if _, ok := known[raw]; !ok {
			missing = append(missing, raw)
			continue
		}
		ids = append(ids, uuid.MustParse(raw))
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, scheduleerrors.ErrWallNotFound.WithDetails(map[string]any{"wall_ids": missing})
	}
	return ids, nil
}

func appendComment(existing, comment string) string {
	if existing == "" {
		return comment
	}
	return existing + "\n" + comment
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func parseActorID(actor domain.Actor) *uuid.UUID {
	return parseID(actor.UserID)
}

func parseID(raw string) *uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
