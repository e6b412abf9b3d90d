package services

import (
	"context"
	"testing"
	"time"

	"github.com/ecetopal/familytree-backend/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (f *fixture) addMarriage(t *testing.T, treeID, p1, p2 int64, wed time.Time) models.Marriage {
	t.Helper()
	m, err := f.marrySvc.Record(context.Background(), owner("alice"), models.Marriage{
		TreeID:       treeID,
		PartnerOneID: p1,
		PartnerTwoID: p2,
		MarriageDate: wed,
	})
	if err != nil {
		t.Fatalf("record marriage: %v", err)
	}
	return m
}

func TestMarriagePartnersMustBelongToTree(t *testing.T) {
	f := newFixture()
	tree := f.addTree("alice")
	foreign := f.addTree("alice")
	a := f.addMember(tree.ID, "Deniz")
	b := f.addMember(foreign.ID, "Murat")

	_, err := f.marrySvc.Record(context.Background(), owner("alice"), models.Marriage{
		TreeID:       tree.ID,
		PartnerOneID: a.ID,
		PartnerTwoID: b.ID,
		MarriageDate: date(2001, time.June, 10),
	})
	if KindOf(err) != KindValidation {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestMarriageSelfPartnerRejected(t *testing.T) {
	f := newFixture()
	tree := f.addTree("alice")
	a := f.addMember(tree.ID, "Deniz")

	_, err := f.marrySvc.Record(context.Background(), owner("alice"), models.Marriage{
		TreeID:       tree.ID,
		PartnerOneID: a.ID,
		PartnerTwoID: a.ID,
		MarriageDate: date(2001, time.June, 10),
	})
	if KindOf(err) != KindValidation {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestDivorceDateOrdering(t *testing.T) {
	cases := []struct {
		name string
		when time.Time
		want Kind
	}{
		{"day before marriage", date(2001, time.June, 9), KindValidation},
		{"same day", date(2001, time.June, 10), KindValidation},
		{"day after", date(2001, time.June, 11), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			tree := f.addTree("alice")
			a := f.addMember(tree.ID, "Deniz")
			b := f.addMember(tree.ID, "Murat")
			m := f.addMarriage(t, tree.ID, a.ID, b.ID, date(2001, time.June, 10))

			_, err := f.marrySvc.Divorce(context.Background(), owner("alice"), m.ID, tc.when)
			if KindOf(err) != tc.want {
				t.Fatalf("want kind %v, got %v", tc.want, err)
			}
		})
	}
}

func TestDivorceTwiceConflicts(t *testing.T) {
	f := newFixture()
	tree := f.addTree("alice")
	a := f.addMember(tree.ID, "Deniz")
	b := f.addMember(tree.ID, "Murat")
	m := f.addMarriage(t, tree.ID, a.ID, b.ID, date(2001, time.June, 10))

	if _, err := f.marrySvc.Divorce(context.Background(), owner("alice"), m.ID, date(2010, time.March, 1)); err != nil {
		t.Fatalf("first divorce: %v", err)
	}
	_, err := f.marrySvc.Divorce(context.Background(), owner("alice"), m.ID, date(2011, time.March, 1))
	if KindOf(err) != KindConflict {
		t.Fatalf("second divorce: want conflict, got %v", err)
	}
}

func TestDivorceIsOwnerOnly(t *testing.T) {
	f := newFixture()
	tree := f.addTree("alice")
	a := f.addMember(tree.ID, "Deniz")
	b := f.addMember(tree.ID, "Murat")
	m := f.addMarriage(t, tree.ID, a.ID, b.ID, date(2001, time.June, 10))

	_, err := f.marrySvc.Divorce(context.Background(), guest(tree.ID, a.ID), m.ID, date(2010, time.March, 1))
	if KindOf(err) != KindForbidden {
		t.Fatalf("guest divorce: want forbidden, got %v", err)
	}
}

func TestDivorceLogsUpdate(t *testing.T) {
	f := newFixture()
	tree := f.addTree("alice")
	a := f.addMember(tree.ID, "Deniz")
	b := f.addMember(tree.ID, "Murat")
	m := f.addMarriage(t, tree.ID, a.ID, b.ID, date(2001, time.June, 10))
	before := len(f.logs.rows)

	if _, err := f.marrySvc.Divorce(context.Background(), owner("alice"), m.ID, date(2010, time.March, 1)); err != nil {
		t.Fatalf("divorce: %v", err)
	}
	if len(f.logs.rows) != before+1 {
		t.Fatalf("want one new log row, got %d", len(f.logs.rows)-before)
	}
	l := f.logs.rows[len(f.logs.rows)-1]
	if l.EntityType != models.EntityMarriage || l.Operation != models.ChangeUpdate {
		t.Fatalf("unexpected log row: %+v", l)
	}
}
