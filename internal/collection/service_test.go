package collection

import (
	"strings"
	"testing"

	"github.com/tcwang/elemental-cards/internal/card"
	"github.com/tcwang/elemental-cards/internal/storage"
)

type mockRepo struct {
	cards []card.Card
}

func (m *mockRepo) GetCards() ([]card.Card, error) {
	return append([]card.Card(nil), m.cards...), nil
}

func (m *mockRepo) GetCardByName(name string) (*card.Card, error) {
	for i := range m.cards {
		if m.cards[i].Name == name {
			c := m.cards[i]
			return &c, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *mockRepo) UpsertCard(c card.Card) (bool, error) {
	for i := range m.cards {
		if m.cards[i].Name == c.Name {
			m.cards[i] = c
			return false, nil
		}
	}
	m.cards = append(m.cards, c)
	return true, nil
}

func (m *mockRepo) DeleteCardByName(name string) (bool, error) {
	for i := range m.cards {
		if m.cards[i].Name == name {
			m.cards = append(m.cards[:i], m.cards[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRepo) CountCards() (int64, error) { return int64(len(m.cards)), nil }

func (m *mockRepo) TopCardsByScore(limit int) ([]card.Card, error) {
	out := append([]card.Card(nil), m.cards...)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Score > out[i].Score {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockRepo) SaveDuel(*storage.DuelRecord) error              { return nil }
func (m *mockRepo) GetDuels(int) ([]storage.DuelRecord, error)      { return nil, nil }
func (m *mockRepo) GetDuelByID(string) (*storage.DuelRecord, error) { return nil, storage.ErrNotFound }

func TestUpsert_RejectsEmptyName(t *testing.T) {
	s := NewService(&mockRepo{})
	if _, err := s.Upsert(card.Card{}); err != ErrNameRequired {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}

func TestUpsert_OverwritesSameName(t *testing.T) {
	s := NewService(&mockRepo{})
	if created, err := s.Upsert(card.New("Tidecaller", 50, 10, 5, "water", "rare")); err != nil || !created {
		t.Fatalf("expected first upsert to create, got created=%v err=%v", created, err)
	}
	if created, err := s.Upsert(card.New("Tidecaller", 60, 11, 6, "water", "epic")); err != nil || created {
		t.Fatalf("expected second upsert to overwrite, got created=%v err=%v", created, err)
	}
	n, _ := s.Count()
	if n != 1 {
		t.Fatalf("expected a single card after overwrite, got %d", n)
	}
}

func TestUpdate_PatchRederivesScore(t *testing.T) {
	repo := &mockRepo{}
	s := NewService(repo)
	if _, err := s.Upsert(card.New("Tidecaller", 50, 10, 5, "water", "rare")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	atk := 20
	updated, err := s.Update("Tidecaller", card.Patch{Attack: &atk})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Attack != 20 || updated.HP != 50 {
		t.Fatalf("expected patched attack with other stats kept, got %+v", updated)
	}
	if updated.Score != 50+4*20+4*5 {
		t.Fatalf("expected re-derived score, got %d", updated.Score)
	}
	stored, err := s.Find("Tidecaller")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored != updated {
		t.Fatalf("expected update to persist, stored %+v", stored)
	}
}

func TestUpdate_UnknownCard(t *testing.T) {
	s := NewService(&mockRepo{})
	hp := 1
	if _, err := s.Update("Ghost", card.Patch{HP: &hp}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	s := NewService(&mockRepo{})
	if _, err := s.Upsert(card.New("Tidecaller", 50, 10, 5, "water", "rare")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Delete("Tidecaller"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Delete("Tidecaller"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestImport_IsIdempotentOnCount(t *testing.T) {
	s := NewService(&mockRepo{})
	data := "Tidecaller,50,10,5,water,rare\nEmberling,40,12,3,fire,common\n"

	if _, err := s.Import(strings.NewReader(data)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	report, err := s.Import(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Imported != 0 || report.Updated != 2 {
		t.Fatalf("expected second import to update in place, got %+v", report)
	}
	n, _ := s.Count()
	if n != 2 {
		t.Fatalf("expected count unchanged after re-import, got %d", n)
	}
}

func TestExport_WritesCollectionOrder(t *testing.T) {
	s := NewService(&mockRepo{})
	if _, err := s.Upsert(card.New("Tidecaller", 50, 10, 5, "water", "rare")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Upsert(card.New("Emberling", 40, 12, 3, "fire", "common")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var sb strings.Builder
	if err := s.Export(&sb); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Tidecaller,50,10,5,water,rare\nEmberling,40,12,3,fire,common\n"
	if sb.String() != want {
		t.Fatalf("unexpected export:\n%q\nwant:\n%q", sb.String(), want)
	}
}
