package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	bookingRepo "github.com/blue9kamrul/SkillBridge-backend/database/repository/booking"
	"github.com/blue9kamrul/SkillBridge-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo is an in-memory BookingRepository. CreateIfFree re-checks
// overlaps under the same lock as the insert, mirroring the transactional
// guarantee of the mongo implementation.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
	order    []string
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *fakeBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Booking, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.bookings[id])
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByStudent(ctx context.Context, studentID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, id := range r.order {
		if b := r.bookings[id]; b.StudentID == studentID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByTutor(ctx context.Context, tutorID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, id := range r.order {
		if b := r.bookings[id]; b.TutorID == tutorID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) findOverlappingLocked(tutorID string, start, end time.Time) []models.Booking {
	var out []models.Booking
	for _, id := range r.order {
		b := r.bookings[id]
		if b.TutorID != tutorID || b.Status != models.BookingConfirmed {
			continue
		}
		if b.StartTime.Before(end) && start.Before(b.EndTime) {
			out = append(out, b)
		}
	}
	return out
}

func (r *fakeBookingRepo) FindOverlapping(ctx context.Context, tutorID string, start, end time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findOverlappingLocked(tutorID, start, end), nil
}

func (r *fakeBookingRepo) CreateIfFree(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.findOverlappingLocked(booking.TutorID, booking.StartTime, booking.EndTime)) > 0 {
		return bookingRepo.ErrSlotTaken
	}
	r.bookings[booking.ID] = *booking
	r.order = append(r.order, booking.ID)
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := r.bookings[id]
	b.Status = status
	b.UpdatedAt = time.Now()
	r.bookings[id] = b
	return nil
}

func (r *fakeBookingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bookings, id)
	for i, o := range r.order {
		if o == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeBookingRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.bookings)), nil
}

func (r *fakeBookingRepo) CountByStatus(ctx context.Context) (map[models.BookingStatus]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[models.BookingStatus]int64)
	for _, b := range r.bookings {
		out[b.Status]++
	}
	return out, nil
}

func (r *fakeBookingRepo) ListRecent(ctx context.Context, limit int64) ([]models.Booking, error) {
	all, _ := r.ListAll(ctx)
	if int64(len(all)) > limit {
		all = all[int64(len(all))-limit:]
	}
	return all, nil
}

// fakeTutorRepo is an in-memory TutorRepository keyed by profile ID.
type fakeTutorRepo struct {
	profiles map[string]models.TutorProfile
}

func newFakeTutorRepo(profiles ...models.TutorProfile) *fakeTutorRepo {
	r := &fakeTutorRepo{profiles: make(map[string]models.TutorProfile)}
	for _, p := range profiles {
		r.profiles[p.ID] = p
	}
	return r
}

func (r *fakeTutorRepo) GetByID(ctx context.Context, id string) (*models.TutorProfile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeTutorRepo) GetByUserID(ctx context.Context, userID string) (*models.TutorProfile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTutorRepo) GetAll(ctx context.Context) ([]models.TutorProfile, error) {
	out := make([]models.TutorProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeTutorRepo) CreateWithRoleFlip(ctx context.Context, profile *models.TutorProfile) error {
	r.profiles[profile.ID] = *profile
	return nil
}

func (r *fakeTutorRepo) DeleteWithRoleFlip(ctx context.Context, userID string, role models.Role) error {
	for id, p := range r.profiles {
		if p.UserID == userID {
			delete(r.profiles, id)
		}
	}
	return nil
}

func (r *fakeTutorRepo) Update(ctx context.Context, profile *models.TutorProfile) error {
	r.profiles[profile.ID] = *profile
	return nil
}

func (r *fakeTutorRepo) Delete(ctx context.Context, id string) error {
	delete(r.profiles, id)
	return nil
}

func (r *fakeTutorRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.profiles)), nil
}

// fakeUserRepo is an in-memory UserRepository keyed by user ID.
type fakeUserRepo struct {
	users map[string]models.User
}

func newFakeUserRepo(users ...models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cu := u
			return &cu, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByIDs(ctx context.Context, ids []string) (map[string]models.User, error) {
	out := make(map[string]models.User)
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (r *fakeUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) UpdateStatus(ctx context.Context, id string, status models.UserStatus) error {
	u := r.users[id]
	u.Status = status
	r.users[id] = u
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) CountByRole(ctx context.Context) (map[models.Role]int64, error) {
	out := make(map[models.Role]int64)
	for _, u := range r.users {
		out[u.Role]++
	}
	return out, nil
}

// newTestService wires a booking service against in-memory fakes with a
// fixed clock at 2025-01-01 12:00 UTC.
func newTestService() (*DefaultBookingService, *fakeBookingRepo) {
	repo := newFakeBookingRepo()
	tutors := newFakeTutorRepo(
		models.TutorProfile{ID: "tutor-1", UserID: "tutor-user-1", Availability: ""},
		models.TutorProfile{ID: "tutor-2", UserID: "tutor-user-2", Availability: "Mon-Thu, 9am-5pm"},
	)
	users := newFakeUserRepo(
		models.User{ID: "student-1", Name: "Alice", Email: "alice@example.com", Role: models.RoleStudent},
		models.User{ID: "student-2", Name: "Bob", Email: "bob@example.com", Role: models.RoleStudent},
		models.User{ID: "tutor-user-1", Name: "Carol", Email: "carol@example.com", Role: models.RoleTutor},
		models.User{ID: "tutor-user-2", Name: "Dave", Email: "dave@example.com", Role: models.RoleTutor},
	)

	fixed, _ := time.Parse(time.RFC3339, "2025-01-01T12:00:00Z")
	svc := &DefaultBookingService{
		Repo:      repo,
		TutorRepo: tutors,
		UserRepo:  users,
		Clock:     func() time.Time { return fixed },
	}
	return svc, repo
}

func slotInput(t *testing.T, tutorID, start, end string) models.BookingInput {
	t.Helper()
	r := mkRange(t, start, end)
	return models.BookingInput{TutorID: tutorID, StartTime: r.Start, EndTime: r.End}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	// 2025-01-06 is a Monday.
	detail, err := svc.Create(ctx, "student-1", slotInput(t, "tutor-1", "2025-01-06T14:00:00Z", "2025-01-06T15:00:00Z"))
	require.NoError(t, err)

	assert.NotEmpty(t, detail.ID)
	assert.Equal(t, models.BookingConfirmed, detail.Status)
	assert.Equal(t, "student-1", detail.StudentID)
	assert.Equal(t, "tutor-1", detail.TutorID)
	assert.Equal(t, "Alice", detail.Student.Name)
	assert.Equal(t, "Carol", detail.TutorUser.Name)

	count, _ := repo.Count(ctx)
	assert.EqualValues(t, 1, count)
}

func TestCreateBookingTutorNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), "student-1", slotInput(t, "no-such-tutor", "2025-01-06T14:00:00Z", "2025-01-06T15:00:00Z"))
	require.Error(t, err)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Tutor not found", err.Error())
}

func TestCreateBookingInvalidRange(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), "student-1", slotInput(t, "tutor-1", "2025-01-06T15:00:00Z", "2025-01-06T14:00:00Z"))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "End time must be after start time", err.Error())
}

func TestCreateBookingMustBeFuture(t *testing.T) {
	svc, _ := newTestService()

	// Clock is fixed at 2025-01-01 12:00.
	_, err := svc.Create(context.Background(), "student-1", slotInput(t, "tutor-1", "2024-12-31T14:00:00Z", "2024-12-31T15:00:00Z"))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Booking must be in the future", err.Error())
}

func TestCreateBookingConflict(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Create(ctx, "student-1", slotInput(t, "tutor-1", "2025-01-06T14:00:00Z", "2025-01-06T15:00:00Z"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, "student-2", slotInput(t, "tutor-1", "2025-01-06T14:30:00Z", "2025-01-06T15:30:00Z"))
	require.Error(t, err)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t,
		"This tutor is already booked from Jan 6, 2025, 2:00 PM to 3:00 PM. Please choose a different time slot.",
		err.Error())
}

func TestCreateBookingAdjacentSlotsDoNotConflict(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Create(ctx, "student-1", slotInput(t, "tutor-1", "2025-01-06T14:00:00Z", "2025-01-06T15:00:00Z"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, "student-2", slotInput(t, "tutor-1", "2025-01-06T15:00:00Z", "2025-01-06T16:00:00Z"))
	assert.NoError(t, err)
}

func TestCreateBookingCancelledSlotIsFree(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	first, err := svc.Create(ctx, "student-1", slotInput(t, "tutor-1", "2025-01-06T14:00:00Z", "2025-01-06T15:00:00Z"))
	require.NoError(t, err)

	_, err = svc.ChangeStatus(ctx, first.ID, models.Actor{ID: "student-1", Role: models.RoleStudent}, models.BookingCancelled)
	require.NoError(t, err)

	_, err = svc.Create(ctx, "student-2", slotInput(t, "tutor-1", "2025-01-06T14:00:00Z", "2025-01-06T15:00:00Z"))
	assert.NoError(t, err)
}

func TestCreateBookingAvailabilityHeuristic(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	// tutor-2 lists "Mon-Thu, 9am-5pm"; 2025-01-04 is a Saturday.
	_, err := svc.Create(ctx, "student-1", slotInput(t, "tutor-2", "2025-01-04T10:00:00Z", "2025-01-04T11:00:00Z"))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "not available on weekends")
}

func TestCreateBookingConcurrentRace(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()
	input := slotInput(t, "tutor-1", "2025-01-06T14:00:00Z", "2025-01-06T15:00:00Z")

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(ctx, "student-1", input)
		}(i)
	}
	wg.Wait()

	var successes int
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		var conflict *ConflictError
		assert.ErrorAs(t, err, &conflict)
	}
	assert.Equal(t, 1, successes)

	count, _ := repo.Count(ctx)
	assert.EqualValues(t, 1, count)
}

func TestGetBooking(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Create(ctx, "student-1", slotInput(t, "tutor-1", "2025-01-06T14:00:00Z", "2025-01-06T15:00:00Z"))
	require.NoError(t, err)

	t.Run("owning student", func(t *testing.T) {
		got, err := svc.Get(ctx, created.ID, models.Actor{ID: "student-1", Role: models.RoleStudent})
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("owning tutor", func(t *testing.T) {
		got, err := svc.Get(ctx, created.ID, models.Actor{ID: "tutor-user-1", Role: models.RoleTutor})
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("unrelated student is forbidden, not hidden", func(t *testing.T) {
		_, err := svc.Get(ctx, created.ID, models.Actor{ID: "student-2", Role: models.RoleStudent})
		require.Error(t, err)

		var ferr *ForbiddenError
		require.ErrorAs(t, err, &ferr)
	})

	t.Run("missing booking is not found", func(t *testing.T) {
		_, err := svc.Get(ctx, "no-such-booking", models.Actor{ID: "student-2", Role: models.RoleStudent})
		require.Error(t, err)

		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "Booking not found", err.Error())
	})
}

func TestListBookingsPerRole(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Create(ctx, "student-1", slotInput(t, "tutor-1", "2025-01-06T14:00:00Z", "2025-01-06T15:00:00Z"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, "student-2", slotInput(t, "tutor-1", "2025-01-06T16:00:00Z", "2025-01-06T17:00:00Z"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, "student-1", slotInput(t, "tutor-2", "2025-01-06T10:00:00Z", "2025-01-06T11:00:00Z"))
	require.NoError(t, err)

	t.Run("admin sees all", func(t *testing.T) {
		got, err := svc.List(ctx, models.Actor{ID: "admin-1", Role: models.RoleAdmin})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("student sees own", func(t *testing.T) {
		got, err := svc.List(ctx, models.Actor{ID: "student-1", Role: models.RoleStudent})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("tutor sees profile's sessions", func(t *testing.T) {
		got, err := svc.List(ctx, models.Actor{ID: "tutor-user-1", Role: models.RoleTutor})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("tutor without profile is not found", func(t *testing.T) {
		_, err := svc.List(ctx, models.Actor{ID: "tutor-user-9", Role: models.RoleTutor})
		require.Error(t, err)

		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "Tutor profile not found", err.Error())
	})
}

func TestChangeStatus(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	created, err := svc.Create(ctx, "student-1", slotInput(t, "tutor-1", "2025-01-06T14:00:00Z", "2025-01-06T15:00:00Z"))
	require.NoError(t, err)

	t.Run("tutor completes", func(t *testing.T) {
		got, err := svc.ChangeStatus(ctx, created.ID, models.Actor{ID: "tutor-user-1", Role: models.RoleTutor}, models.BookingCompleted)
		require.NoError(t, err)
		assert.Equal(t, models.BookingCompleted, got.Status)

		stored, _ := repo.GetByID(ctx, created.ID)
		assert.Equal(t, models.BookingCompleted, stored.Status)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		_, err := svc.ChangeStatus(ctx, created.ID, models.Actor{ID: "student-1", Role: models.RoleStudent}, models.BookingCancelled)
		require.Error(t, err)

		var terr *InvalidTransitionError
		require.ErrorAs(t, err, &terr)
	})

	t.Run("missing booking", func(t *testing.T) {
		_, err := svc.ChangeStatus(ctx, "no-such-booking", models.Actor{ID: "admin-1", Role: models.RoleAdmin}, models.BookingCancelled)
		require.Error(t, err)

		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
	})
}

func TestDeleteBooking(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	created, err := svc.Create(ctx, "student-1", slotInput(t, "tutor-1", "2025-01-06T14:00:00Z", "2025-01-06T15:00:00Z"))
	require.NoError(t, err)

	t.Run("tutor cannot delete", func(t *testing.T) {
		err := svc.Delete(ctx, created.ID, models.Actor{ID: "tutor-user-1", Role: models.RoleTutor})
		require.Error(t, err)

		var ferr *ForbiddenError
		require.ErrorAs(t, err, &ferr)
	})

	t.Run("owning student deletes", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, created.ID, models.Actor{ID: "student-1", Role: models.RoleStudent}))

		stored, _ := repo.GetByID(ctx, created.ID)
		assert.Nil(t, stored)
	})

	t.Run("completed booking is retained", func(t *testing.T) {
		b, err := svc.Create(ctx, "student-1", slotInput(t, "tutor-1", "2025-01-07T14:00:00Z", "2025-01-07T15:00:00Z"))
		require.NoError(t, err)
		_, err = svc.ChangeStatus(ctx, b.ID, models.Actor{ID: "tutor-user-1", Role: models.RoleTutor}, models.BookingCompleted)
		require.NoError(t, err)

		err = svc.Delete(ctx, b.ID, models.Actor{ID: "admin-1", Role: models.RoleAdmin})
		require.Error(t, err)

		var terr *InvalidTransitionError
		require.ErrorAs(t, err, &terr)
		assert.Equal(t, "Only confirmed bookings can be deleted", err.Error())
	})
}

func TestListByTutor(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Create(ctx, "student-1", slotInput(t, "tutor-1", "2025-01-06T14:00:00Z", "2025-01-06T15:00:00Z"))
	require.NoError(t, err)

	got, err := svc.ListByTutor(ctx, "tutor-1")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.ListByTutor(ctx, "no-such-tutor")
	require.Error(t, err)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}
