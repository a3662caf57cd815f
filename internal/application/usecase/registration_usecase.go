package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ceasahub/intake-api/internal/application/dto"
	"github.com/ceasahub/intake-api/internal/domain"
	"github.com/ceasahub/intake-api/internal/domain/entity"
	"github.com/ceasahub/intake-api/internal/domain/repository"
)

// RegistrationUseCase registro a ciegas de recibimientos y listado de
// pendientes de auditoría.
type RegistrationUseCase struct {
	regRepo   repository.RegistrationRepository
	storeRepo repository.StoreRepository
}

// NewRegistrationUseCase construye el caso de uso.
func NewRegistrationUseCase(regRepo repository.RegistrationRepository, storeRepo repository.StoreRepository) *RegistrationUseCase {
	return &RegistrationUseCase{regRepo: regRepo, storeRepo: storeRepo}
}

// RegisterBlind crea un registro a ciegas inmutable con timestamp del
// servidor. La cantidad debe ser >= 0; producto y loja deben existir.
// El username del actor se guarda como snapshot para atribución histórica.
func (uc *RegistrationUseCase) RegisterBlind(actorID, actorName string, in dto.RegisterBlindRequest) (*dto.RegistrationResponse, error) {
	if in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductID == "" || in.StoreID == "" {
		return nil, domain.ErrInvalidInput
	}
	reg := &entity.Registration{
		ID:               uuid.New().String(),
		ProductID:        in.ProductID,
		StoreID:          in.StoreID,
		Quantity:         in.Quantity,
		RegisteredBy:     actorID,
		RegisteredByName: actorName,
		CreatedAt:        time.Now(),
	}
	if err := uc.regRepo.Create(reg); err != nil {
		return nil, err
	}
	return &dto.RegistrationResponse{
		ID:               reg.ID,
		ProductID:        reg.ProductID,
		StoreID:          reg.StoreID,
		Quantity:         reg.Quantity,
		RegisteredBy:     reg.RegisteredBy,
		RegisteredByName: reg.RegisteredByName,
		CreatedAt:        reg.CreatedAt,
	}, nil
}

// ListUnaudited devuelve los registros sin auditoría, con los campos de
// presentación que necesita la selección de candidatos.
func (uc *RegistrationUseCase) ListUnaudited() (*dto.UnauditedListResponse, error) {
	list, err := uc.regRepo.ListUnaudited()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UnauditedRegistrationResponse, 0, len(list))
	for _, r := range list {
		items = append(items, dto.UnauditedRegistrationResponse{
			ID:                 r.ID,
			ProductCode:        r.ProductCode,
			ProductDescription: r.ProductDescription,
			ProductUnit:        r.ProductUnit,
			StoreName:          r.StoreName,
			Quantity:           r.Quantity,
			RegisteredByName:   r.RegisteredByName,
			CreatedAt:          r.CreatedAt,
		})
	}
	return &dto.UnauditedListResponse{Items: items}, nil
}

// ListStores lista las lojas para el formulario de registro.
func (uc *RegistrationUseCase) ListStores() (*dto.StoreListResponse, error) {
	stores, err := uc.storeRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.StoreResponse, 0, len(stores))
	for _, s := range stores {
		items = append(items, dto.StoreResponse{ID: s.ID, Name: s.Name})
	}
	return &dto.StoreListResponse{Items: items}, nil
}
