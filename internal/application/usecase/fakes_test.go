package usecase_test

import (
	"github.com/ceasahub/intake-api/internal/domain"
	"github.com/ceasahub/intake-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repos en memoria para los tests de casos de uso. Reproducen el contrato de
// las implementaciones Postgres: (nil, nil) cuando no existe, ErrDuplicate /
// ErrAlreadyAudited / ErrNotFound en las violaciones de constraint.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.products {
		if existing.Code == p.Code {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.products = append(r.products, &cp)
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	return r.products, nil
}

func (r *fakeProductRepo) ListCategories() ([]string, error) {
	seen := map[string]bool{}
	var cats []string
	for _, p := range r.products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	return cats, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	for i, existing := range r.products {
		if existing.ID == p.ID {
			cp := *p
			r.products[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeStoreRepo struct {
	stores []*entity.Store
}

func (r *fakeStoreRepo) GetByID(id string) (*entity.Store, error) {
	for _, s := range r.stores {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeStoreRepo) List() ([]*entity.Store, error) {
	return r.stores, nil
}

type fakeRegistrationRepo struct {
	registrations []*entity.Registration
	audits        *fakeAuditRepo // para derivar el estado "auditado"

	// catálogo mínimo para validar las FKs como lo hace Postgres
	knownProducts map[string]*entity.Product
	knownStores   map[string]*entity.Store
}

func (r *fakeRegistrationRepo) Create(reg *entity.Registration) error {
	if r.knownProducts != nil {
		if _, ok := r.knownProducts[reg.ProductID]; !ok {
			return domain.ErrNotFound
		}
	}
	if r.knownStores != nil {
		if _, ok := r.knownStores[reg.StoreID]; !ok {
			return domain.ErrNotFound
		}
	}
	cp := *reg
	r.registrations = append(r.registrations, &cp)
	return nil
}

func (r *fakeRegistrationRepo) GetByID(id string) (*entity.Registration, error) {
	for _, reg := range r.registrations {
		if reg.ID == id {
			cp := *reg
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRegistrationRepo) ListUnaudited() ([]*entity.UnauditedRegistration, error) {
	var out []*entity.UnauditedRegistration
	for _, reg := range r.registrations {
		if r.audits != nil && r.audits.hasAudit(reg.ID) {
			continue
		}
		row := &entity.UnauditedRegistration{Registration: *reg}
		if p, ok := r.knownProducts[reg.ProductID]; ok {
			row.ProductCode = p.Code
			row.ProductDescription = p.Description
			row.ProductUnit = p.Unit
		}
		if s, ok := r.knownStores[reg.StoreID]; ok {
			row.StoreName = s.Name
		}
		out = append(out, row)
	}
	return out, nil
}

type fakeAuditRepo struct {
	audits []*entity.Audit
}

func (r *fakeAuditRepo) hasAudit(registrationID string) bool {
	for _, a := range r.audits {
		if a.RegistrationID == registrationID {
			return true
		}
	}
	return false
}

func (r *fakeAuditRepo) Create(a *entity.Audit) error {
	if r.hasAudit(a.RegistrationID) {
		return domain.ErrAlreadyAudited
	}
	cp := *a
	r.audits = append(r.audits, &cp)
	return nil
}

func (r *fakeAuditRepo) GetByRegistrationID(registrationID string) (*entity.Audit, error) {
	for _, a := range r.audits {
		if a.RegistrationID == registrationID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	return r.users, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	for i, existing := range r.users {
		if existing.ID == u.ID {
			cp := *u
			r.users[i] = &cp
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *fakeUserRepo) Delete(id string) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type fakeReportRepo struct {
	rows       []*entity.DivergenceRow
	lastFilter entity.DivergenceFilter
	users      []string
}

func (r *fakeReportRepo) Divergent(filter entity.DivergenceFilter) ([]*entity.DivergenceRow, error) {
	r.lastFilter = filter
	return r.rows, nil
}

func (r *fakeReportRepo) ListRegisteredUsers() ([]string, error) {
	return r.users, nil
}
