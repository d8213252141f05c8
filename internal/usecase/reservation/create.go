package reservation

import (
	"context"
	"time"

	"github.com/BruksfildServices01/reservation-api/internal/audit"
	"github.com/BruksfildServices01/reservation-api/internal/auth"
	domain "github.com/BruksfildServices01/reservation-api/internal/domain/reservation"
	"github.com/BruksfildServices01/reservation-api/internal/httperr"
	"github.com/BruksfildServices01/reservation-api/internal/metrics"
	"github.com/BruksfildServices01/reservation-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	RestaurantID uint
	StartTime    time.Time
	EndTime      time.Time
	Phone        string
	GuestCount   int
	MenuIDs      []uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	policy domain.Policy
	now    func() time.Time
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	policy domain.Policy,
) *CreateReservation {
	return &CreateReservation{
		repo:   repo,
		audit:  audit,
		policy: policy,
		now:    time.Now,
	}
}

// WithClock replaces the clock used for the "starts in the future" check.
func (uc *CreateReservation) WithClock(now func() time.Time) *CreateReservation {
	uc.now = now
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	actor auth.Principal,
	in CreateReservationInput,
) (*models.Reservation, error) {

	if !actor.IsCustomer() {
		return nil, httperr.ErrForbidden
	}

	res, err := uc.create(ctx, actor, in)
	if err != nil {
		metrics.IncReservationCreate(outcomeOf(err))
		return nil, err
	}
	metrics.IncReservationCreate(metrics.OutcomeCreated)

	uc.audit.Dispatch(audit.Event{
		RestaurantID: res.RestaurantID,
		ActorID:      &actor.ID,
		ActorRole:    string(actor.Role),
		Action:       audit.ActionReservationCreated,
		Entity:       "reservation",
		EntityID:     &res.ID,
		Metadata: map[string]any{
			"startTime":  res.StartTime,
			"endTime":    res.EndTime,
			"guestCount": res.GuestCount,
			"menuIds":    in.MenuIDs,
		},
	})

	return res, nil
}

func (uc *CreateReservation) create(
	ctx context.Context,
	actor auth.Principal,
	in CreateReservationInput,
) (*models.Reservation, error) {

	// --------------------------------------------------
	// 1. Time window
	// --------------------------------------------------
	window, err := domain.NewWindow(in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}
	if err := uc.policy.Check(window, uc.now()); err != nil {
		return nil, err
	}

	menuIDs := uniqueIDs(in.MenuIDs)

	var created *models.Reservation

	// Steps 2 to 6 share one transaction. The restaurant row lock taken in
	// step 3 serializes concurrent creates for that restaurant until commit.
	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		// --------------------------------------------------
		// 2. Customer
		// --------------------------------------------------
		if _, err := tx.GetCustomer(ctx, actor.ID); err != nil {
			return err
		}

		// --------------------------------------------------
		// 3. Restaurant (locked)
		// --------------------------------------------------
		restaurant, err := tx.LockRestaurant(ctx, in.RestaurantID)
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// 4. Menus of that restaurant
		// --------------------------------------------------
		if err := resolveMenus(ctx, tx, restaurant.ID, menuIDs); err != nil {
			return err
		}

		// --------------------------------------------------
		// 5. Conflict
		// --------------------------------------------------
		conflict, err := tx.HasTimeConflict(ctx, restaurant.ID, window)
		if err != nil {
			return err
		}
		if conflict {
			return domain.ErrTimeConflict
		}

		// --------------------------------------------------
		// 6. Persist
		// --------------------------------------------------
		res := &models.Reservation{
			GuestCount:   in.GuestCount,
			StartTime:    window.Start,
			EndTime:      window.End,
			Phone:        in.Phone,
			CustomerID:   actor.ID,
			RestaurantID: restaurant.ID,
		}
		if err := tx.Create(ctx, res, menuIDs); err != nil {
			return err
		}

		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7. Reload with relations
	// --------------------------------------------------
	return uc.repo.GetDetail(ctx, created.ID)
}

// ======================================================
// HELPERS
// ======================================================

// resolveMenus fails unless every id names a live menu of the restaurant.
func resolveMenus(ctx context.Context, repo domain.Repository, restaurantID uint, menuIDs []uint) error {
	if len(menuIDs) == 0 {
		return domain.ErrMenuNotFound
	}

	menus, err := repo.FindMenus(ctx, restaurantID, menuIDs)
	if err != nil {
		return err
	}
	if len(menus) != len(menuIDs) {
		return domain.ErrMenuNotFound
	}
	return nil
}

// uniqueIDs drops repeats. Nil stays nil, which update reads as "menus
// unchanged".
func uniqueIDs(ids []uint) []uint {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func outcomeOf(err error) string {
	switch httperr.KindOf(err) {
	case httperr.KindConflict:
		return metrics.OutcomeConflict
	case httperr.KindInternal:
		return metrics.OutcomeFailed
	default:
		return metrics.OutcomeRejected
	}
}
