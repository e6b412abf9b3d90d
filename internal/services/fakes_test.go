package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/ecetopal/familytree-backend/internal/auth"
	"github.com/ecetopal/familytree-backend/internal/models"
	repo "github.com/ecetopal/familytree-backend/internal/repository"
)

// In-memory repository fakes backing the service tests.

type fakeTrees struct {
	rows   map[int64]models.FamilyTree
	nextID int64
}

func newFakeTrees() *fakeTrees { return &fakeTrees{rows: map[int64]models.FamilyTree{}} }

func (f *fakeTrees) Create(_ context.Context, t models.FamilyTree) (models.FamilyTree, error) {
	f.nextID++
	t.ID = f.nextID
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	f.rows[t.ID] = t
	return t, nil
}

func (f *fakeTrees) GetOwned(_ context.Context, id int64, ownerID string) (models.FamilyTree, error) {
	t, ok := f.rows[id]
	if !ok || t.OwnerID != ownerID {
		return models.FamilyTree{}, repo.ErrNotFound
	}
	return t, nil
}

func (f *fakeTrees) GetByID(_ context.Context, id int64) (models.FamilyTree, error) {
	t, ok := f.rows[id]
	if !ok {
		return models.FamilyTree{}, repo.ErrNotFound
	}
	return t, nil
}

func (f *fakeTrees) ListByOwner(_ context.Context, ownerID string) ([]models.FamilyTree, error) {
	var out []models.FamilyTree
	for _, t := range f.rows {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTrees) Update(_ context.Context, t models.FamilyTree) (models.FamilyTree, error) {
	if _, ok := f.rows[t.ID]; !ok {
		return models.FamilyTree{}, repo.ErrNotFound
	}
	t.UpdatedAt = time.Now()
	f.rows[t.ID] = t
	return t, nil
}

func (f *fakeTrees) Delete(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeMembers struct {
	rows   map[int64]models.FamilyMember
	nextID int64
}

func newFakeMembers() *fakeMembers { return &fakeMembers{rows: map[int64]models.FamilyMember{}} }

func (f *fakeMembers) Create(_ context.Context, m models.FamilyMember) (models.FamilyMember, error) {
	f.nextID++
	m.ID = f.nextID
	f.rows[m.ID] = m
	return m, nil
}

func (f *fakeMembers) GetByID(_ context.Context, id int64) (models.FamilyMember, error) {
	m, ok := f.rows[id]
	if !ok {
		return models.FamilyMember{}, repo.ErrNotFound
	}
	return m, nil
}

func (f *fakeMembers) ListByTree(_ context.Context, treeID int64) ([]models.FamilyMember, error) {
	var out []models.FamilyMember
	for _, m := range f.rows {
		if m.TreeID == treeID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeMembers) Update(_ context.Context, m models.FamilyMember) (models.FamilyMember, error) {
	if _, ok := f.rows[m.ID]; !ok {
		return models.FamilyMember{}, repo.ErrNotFound
	}
	f.rows[m.ID] = m
	return m, nil
}

func (f *fakeMembers) Delete(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeMembers) AllInTree(_ context.Context, treeID int64, ids ...int64) (bool, error) {
	for _, id := range ids {
		m, ok := f.rows[id]
		if !ok || m.TreeID != treeID {
			return false, nil
		}
	}
	return true, nil
}

type fakeMarriages struct {
	rows   map[int64]models.Marriage
	nextID int64
}

func newFakeMarriages() *fakeMarriages { return &fakeMarriages{rows: map[int64]models.Marriage{}} }

func (f *fakeMarriages) Create(_ context.Context, m models.Marriage) (models.Marriage, error) {
	f.nextID++
	m.ID = f.nextID
	f.rows[m.ID] = m
	return m, nil
}

func (f *fakeMarriages) GetByID(_ context.Context, id int64) (models.Marriage, error) {
	m, ok := f.rows[id]
	if !ok {
		return models.Marriage{}, repo.ErrNotFound
	}
	return m, nil
}

func (f *fakeMarriages) ListByTree(_ context.Context, treeID int64) ([]models.Marriage, error) {
	var out []models.Marriage
	for _, m := range f.rows {
		if m.TreeID == treeID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMarriages) SetDivorceDate(_ context.Context, id int64, date time.Time) (models.Marriage, error) {
	m, ok := f.rows[id]
	if !ok {
		return models.Marriage{}, repo.ErrNotFound
	}
	m.DivorceDate = &date
	f.rows[id] = m
	return m, nil
}

type fakeBirths struct {
	rows   map[int64]models.Birth
	nextID int64
}

func newFakeBirths() *fakeBirths { return &fakeBirths{rows: map[int64]models.Birth{}} }

func (f *fakeBirths) Create(_ context.Context, b models.Birth) (models.Birth, error) {
	f.nextID++
	b.ID = f.nextID
	f.rows[b.ID] = b
	return b, nil
}

func (f *fakeBirths) ListByTree(_ context.Context, treeID int64) ([]models.Birth, error) {
	var out []models.Birth
	for _, b := range f.rows {
		if b.TreeID == treeID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakePassings struct {
	rows   map[int64]models.Passing // keyed by member id
	nextID int64
}

func newFakePassings() *fakePassings { return &fakePassings{rows: map[int64]models.Passing{}} }

func (f *fakePassings) Create(_ context.Context, p models.Passing) (models.Passing, error) {
	if _, ok := f.rows[p.MemberID]; ok {
		return models.Passing{}, repo.ErrDuplicate
	}
	f.nextID++
	p.ID = f.nextID
	f.rows[p.MemberID] = p
	return p, nil
}

type fakeAchievements struct {
	rows   map[int64]models.Achievement
	nextID int64
}

func newFakeAchievements() *fakeAchievements {
	return &fakeAchievements{rows: map[int64]models.Achievement{}}
}

func (f *fakeAchievements) Create(_ context.Context, a models.Achievement) (models.Achievement, error) {
	f.nextID++
	a.ID = f.nextID
	f.rows[a.ID] = a
	return a, nil
}

func (f *fakeAchievements) GetByID(_ context.Context, id int64) (models.Achievement, error) {
	a, ok := f.rows[id]
	if !ok {
		return models.Achievement{}, repo.ErrNotFound
	}
	return a, nil
}

func (f *fakeAchievements) ListByMember(_ context.Context, memberID int64) ([]models.Achievement, error) {
	var out []models.Achievement
	for _, a := range f.rows {
		if a.MemberID == memberID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAchievements) Update(_ context.Context, a models.Achievement) (models.Achievement, error) {
	if _, ok := f.rows[a.ID]; !ok {
		return models.Achievement{}, repo.ErrNotFound
	}
	f.rows[a.ID] = a
	return a, nil
}

func (f *fakeAchievements) Delete(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeGuests struct {
	rows   map[int64]models.GuestEditor // keyed by member id
	nextID int64
	now    func() time.Time
}

func newFakeGuests() *fakeGuests {
	return &fakeGuests{rows: map[int64]models.GuestEditor{}, now: time.Now}
}

func (f *fakeGuests) IssueCode(_ context.Context, treeID, memberID int64, code string) (models.GuestEditor, error) {
	if g, ok := f.rows[memberID]; ok && g.Active(f.now()) {
		return g, nil
	}
	f.nextID++
	g := models.GuestEditor{ID: f.nextID, TreeID: treeID, MemberID: memberID, Code: code, CreatedAt: f.now()}
	f.rows[memberID] = g
	return g, nil
}

func (f *fakeGuests) GetByCode(_ context.Context, code string) (models.GuestEditor, error) {
	for _, g := range f.rows {
		if g.Code == code {
			return g, nil
		}
	}
	return models.GuestEditor{}, repo.ErrNotFound
}

type fakeLogs struct {
	rows []models.ChangeLog
	fail bool
}

func (f *fakeLogs) Create(_ context.Context, l models.ChangeLog) error {
	if f.fail {
		return errors.New("log store down")
	}
	l.ID = int64(len(f.rows) + 1)
	l.CreatedAt = time.Now()
	f.rows = append(f.rows, l)
	return nil
}

func (f *fakeLogs) ListByTree(_ context.Context, treeID int64, limit, offset int) ([]models.ChangeLog, error) {
	var out []models.ChangeLog
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].TreeID == treeID {
			out = append(out, f.rows[i])
		}
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fixture wires every service over the fakes.
type fixture struct {
	trees        *fakeTrees
	members      *fakeMembers
	marriages    *fakeMarriages
	births       *fakeBirths
	passings     *fakePassings
	achievements *fakeAchievements
	guests       *fakeGuests
	logs         *fakeLogs

	tm *auth.TokenManager

	treeSvc   *TreeService
	memberSvc *MemberService
	marrySvc  *MarriageService
	recordSvc *RecordService
	guestSvc  *GuestService
}

func newFixture() *fixture {
	f := &fixture{
		trees:        newFakeTrees(),
		members:      newFakeMembers(),
		marriages:    newFakeMarriages(),
		births:       newFakeBirths(),
		passings:     newFakePassings(),
		achievements: newFakeAchievements(),
		guests:       newFakeGuests(),
		logs:         &fakeLogs{},
		tm:           auth.NewTokenManager("test-secret", "test", time.Minute, time.Hour),
	}
	guard := NewGuard(f.trees)
	rec := NewChangeRecorder(f.logs)
	f.treeSvc = NewTreeService(f.trees, f.logs, guard, rec)
	f.memberSvc = NewMemberService(f.members, guard, rec)
	f.marrySvc = NewMarriageService(f.marriages, f.members, guard, rec)
	f.recordSvc = NewRecordService(f.births, f.passings, f.achievements, f.members, guard, rec)
	f.guestSvc = NewGuestService(f.guests, f.members, guard, f.tm)
	return f
}

func (f *fixture) addTree(ownerID string) models.FamilyTree {
	t, _ := f.trees.Create(context.Background(), models.FamilyTree{OwnerID: ownerID, Name: "tree"})
	return t
}

func (f *fixture) addMember(treeID int64, name string) models.FamilyMember {
	m, _ := f.members.Create(context.Background(), models.FamilyMember{TreeID: treeID, FirstName: name})
	return m
}

func owner(id string) auth.Principal {
	return auth.Principal{UserID: id, Role: auth.RoleOwner}
}

func guest(treeID, memberID int64) auth.Principal {
	return auth.Principal{UserID: "guest:1", Role: auth.RoleGuest, TreeID: treeID, MemberID: memberID}
}
