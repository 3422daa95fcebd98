package doctor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/auth"
	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/httperr"
)

type mockDoctorRepo struct {
	store map[uuid.UUID]*Doctor
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{store: make(map[uuid.UUID]*Doctor)}
}

func (m *mockDoctorRepo) Create(_ context.Context, d *Doctor) error {
	for _, existing := range m.store {
		if existing.LicenseNumber == d.LicenseNumber {
			return httperr.Validation("license_number", "doctor with this license number already exists.")
		}
	}
	d.ID = uuid.New()
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	cp := *d
	m.store[d.ID] = &cp
	return nil
}

func (m *mockDoctorRepo) GetByID(_ context.Context, id uuid.UUID) (*Doctor, error) {
	d, ok := m.store[id]
	if !ok {
		return nil, httperr.NotFound("doctor not found")
	}
	cp := *d
	return &cp, nil
}

func (m *mockDoctorRepo) List(_ context.Context, search string, limit, offset int) ([]*Doctor, int, error) {
	var out []*Doctor
	for _, d := range m.store {
		if search != "" && !strings.Contains(strings.ToLower(d.FirstName+" "+d.LastName+" "+d.Specialization), strings.ToLower(search)) {
			continue
		}
		cp := *d
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (m *mockDoctorRepo) Update(_ context.Context, d *Doctor) error {
	if _, ok := m.store[d.ID]; !ok {
		return httperr.NotFound("doctor not found")
	}
	for _, existing := range m.store {
		if existing.ID != d.ID && existing.LicenseNumber == d.LicenseNumber {
			return httperr.Validation("license_number", "doctor with this license number already exists.")
		}
	}
	cp := *d
	cp.UpdatedAt = time.Now()
	m.store[d.ID] = &cp
	return nil
}

func (m *mockDoctorRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.store[id]; !ok {
		return httperr.NotFound("doctor not found")
	}
	delete(m.store, id)
	return nil
}

func validDoctor() *Doctor {
	return &Doctor{
		FirstName:      "Gregory",
		LastName:       "House",
		Specialization: "Diagnostics",
		LicenseNumber:  "MD-12345",
		PhoneNumber:    "+14155550123",
		Email:          "g.house@example.com",
		Hospital:       "Princeton-Plainsboro",
	}
}

func TestCreateDoctor_Success(t *testing.T) {
	svc := NewService(newMockDoctorRepo())
	principal := auth.Principal{ID: uuid.New(), Username: "alice"}

	d := validDoctor()
	if err := svc.Create(context.Background(), principal, d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.CreatedBy != principal.ID {
		t.Errorf("created_by must come from the authenticated user, got %s", d.CreatedBy)
	}
}

func TestCreateDoctor_RequiredFields(t *testing.T) {
	svc := NewService(newMockDoctorRepo())
	err := svc.Create(context.Background(), auth.Principal{ID: uuid.New()}, &Doctor{})
	var appErr *httperr.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"first_name", "last_name", "specialization", "license_number", "phone_number", "email"} {
		if appErr.Fields[field] == "" {
			t.Errorf("expected required-field error on %q", field)
		}
	}
}

func TestCreateDoctor_DuplicateLicense(t *testing.T) {
	svc := NewService(newMockDoctorRepo())
	alice := auth.Principal{ID: uuid.New(), Username: "alice"}
	bob := auth.Principal{ID: uuid.New(), Username: "bob"}

	if err := svc.Create(context.Background(), alice, validDoctor()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	// The license number is unique across all users, not per owner.
	dup := validDoctor()
	dup.Email = "other@example.com"
	err := svc.Create(context.Background(), bob, dup)
	var appErr *httperr.Error
	if !errors.As(err, &appErr) || appErr.Fields["license_number"] == "" {
		t.Fatalf("expected duplicate license error, got %v", err)
	}
}

func TestGetDoctor_VisibleToEveryone(t *testing.T) {
	svc := NewService(newMockDoctorRepo())
	alice := auth.Principal{ID: uuid.New(), Username: "alice"}

	d := validDoctor()
	if err := svc.Create(context.Background(), alice, d); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.Get(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got.CreatedBy != alice.ID {
		t.Errorf("unexpected owner: %s", got.CreatedBy)
	}

	list, total, err := svc.List(context.Background(), "", 20, 0)
	if err != nil || total != 1 || len(list) != 1 {
		t.Fatalf("expected one doctor for any caller, got total=%d err=%v", total, err)
	}
}

func TestUpdateDoctor_NonOwnerForbidden(t *testing.T) {
	svc := NewService(newMockDoctorRepo())
	alice := auth.Principal{ID: uuid.New(), Username: "alice"}
	bob := auth.Principal{ID: uuid.New(), Username: "bob"}

	d := validDoctor()
	if err := svc.Create(context.Background(), alice, d); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	hosp := "Elsewhere General"
	_, err := svc.Update(context.Background(), bob, d.ID, Update{Hospital: &hosp}, true)
	if !httperr.IsKind(err, httperr.KindForbidden) {
		t.Fatalf("expected forbidden for non-owner update, got %v", err)
	}
}

func TestUpdateDoctor_PatchMerges(t *testing.T) {
	svc := NewService(newMockDoctorRepo())
	alice := auth.Principal{ID: uuid.New(), Username: "alice"}

	d := validDoctor()
	if err := svc.Create(context.Background(), alice, d); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	hosp := "Elsewhere General"
	updated, err := svc.Update(context.Background(), alice, d.ID, Update{Hospital: &hosp}, true)
	if err != nil {
		t.Fatalf("patch failed: %v", err)
	}
	if updated.Hospital != hosp {
		t.Errorf("expected updated hospital, got %q", updated.Hospital)
	}
	if updated.LicenseNumber != "MD-12345" {
		t.Errorf("absent fields must keep stored values, got %q", updated.LicenseNumber)
	}
	if updated.CreatedBy != alice.ID {
		t.Errorf("created_by changed on update: %s", updated.CreatedBy)
	}
}

func TestUpdateDoctor_PutRequiresAllFields(t *testing.T) {
	svc := NewService(newMockDoctorRepo())
	alice := auth.Principal{ID: uuid.New(), Username: "alice"}

	d := validDoctor()
	if err := svc.Create(context.Background(), alice, d); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	hosp := "Elsewhere General"
	_, err := svc.Update(context.Background(), alice, d.ID, Update{Hospital: &hosp}, false)
	var appErr *httperr.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if appErr.Fields["license_number"] != "This field is required." {
		t.Errorf("expected required license_number error, got %q", appErr.Fields["license_number"])
	}
}

func TestDeleteDoctor_NonOwnerForbidden(t *testing.T) {
	repo := newMockDoctorRepo()
	svc := NewService(repo)
	alice := auth.Principal{ID: uuid.New(), Username: "alice"}
	bob := auth.Principal{ID: uuid.New(), Username: "bob"}

	d := validDoctor()
	if err := svc.Create(context.Background(), alice, d); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), bob, d.ID); !httperr.IsKind(err, httperr.KindForbidden) {
		t.Fatalf("expected forbidden for non-owner delete, got %v", err)
	}
	if _, ok := repo.store[d.ID]; !ok {
		t.Error("row must survive a non-owner delete attempt")
	}
	if err := svc.Delete(context.Background(), alice, d.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
}

func TestDisplayName(t *testing.T) {
	d := validDoctor()
	if got := d.DisplayName(); got != "Dr. Gregory House (Diagnostics)" {
		t.Errorf("unexpected display name: %q", got)
	}
}
