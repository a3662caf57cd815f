package usecase

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ceasahub/intake-api/internal/application/dto"
	"github.com/ceasahub/intake-api/internal/domain"
	"github.com/ceasahub/intake-api/internal/domain/entity"
	"github.com/ceasahub/intake-api/internal/domain/repository"
)

// CategorySentinel entrada sintética "todas las categorías" para los filtros.
const CategorySentinel = "Todas"

// DefaultImportUnit unidad asignada a los productos importados: el archivo
// de importación no trae columna de unidad, se corrige después vía Update.
const DefaultImportUnit = "kg"

// CatalogUseCase catálogo de productos: alta puntual, consulta por código,
// listado, categorías e importación masiva.
type CatalogUseCase struct {
	repo repository.ProductRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// Create alta puntual (flujo "código desconocido" durante el registro).
func (uc *CatalogUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	code := strings.TrimSpace(in.Code)
	description := strings.TrimSpace(in.Description)
	unit := strings.TrimSpace(in.Unit)
	if code == "" || description == "" || unit == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Code:        code,
		Description: description,
		Category:    strings.TrimSpace(in.Category),
		Unit:        unit,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByCode obtiene un producto por código. Devuelve domain.ErrNotFound si
// no existe; el handler lo presenta como oportunidad de alta, no como fallo
// terminal.
func (uc *CatalogUseCase) GetByCode(code string) (*dto.ProductResponse, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista el catálogo completo ordenado por código (estable entre llamadas).
func (uc *CatalogUseCase) List() (*dto.ProductListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}, nil
}

// Categories devuelve las categorías distintas con el centinela "Todas" al frente.
func (uc *CatalogUseCase) Categories() (*dto.CategoriesResponse, error) {
	cats, err := uc.repo.ListCategories()
	if err != nil {
		return nil, err
	}
	items := make([]string, 0, len(cats)+1)
	items = append(items, CategorySentinel)
	items = append(items, cats...)
	return &dto.CategoriesResponse{Items: items}, nil
}

// Update edita descripción, categoría o unidad de un producto existente.
func (uc *CatalogUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Description = strings.TrimSpace(*in.Description)
	}
	if in.Category != nil {
		product.Category = strings.TrimSpace(*in.Category)
	}
	if in.Unit != nil {
		if strings.TrimSpace(*in.Unit) == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Unit = strings.TrimSpace(*in.Unit)
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// BulkImport procesa un CSV con columnas codigo, descricao, secao (cabecera
// obligatoria, orden libre). Cada fila es una unidad de trabajo independiente:
// las fallidas no abortan el lote. Códigos ya existentes se saltan, nunca se
// sobrescribe el catálogo curado.
func (uc *CatalogUseCase) BulkImport(r io.Reader) (*dto.ImportSummary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("leer cabecera: %w", domain.ErrInvalidInput)
	}
	codeIdx, descIdx, catIdx := -1, -1, -1
	for i, col := range header {
		switch normalizeHeader(col) {
		case "codigo":
			codeIdx = i
		case "descricao", "descripcion":
			descIdx = i
		case "secao", "seccion":
			catIdx = i
		}
	}
	if codeIdx < 0 || descIdx < 0 {
		return nil, fmt.Errorf("cabecera sin columnas codigo/descricao: %w", domain.ErrInvalidInput)
	}

	summary := &dto.ImportSummary{Errors: []dto.ImportRowError{}}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, dto.ImportRowError{Line: line, Message: "fila ilegible"})
			continue
		}
		code := fieldAt(record, codeIdx)
		description := fieldAt(record, descIdx)
		category := fieldAt(record, catIdx)

		if code == "" {
			summary.Failed++
			summary.Errors = append(summary.Errors, dto.ImportRowError{Line: line, Message: "código vacío"})
			continue
		}
		if description == "" {
			summary.Failed++
			summary.Errors = append(summary.Errors, dto.ImportRowError{Line: line, Message: "descripción vacía"})
			continue
		}

		existing, err := uc.repo.GetByCode(code)
		if err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, dto.ImportRowError{Line: line, Message: err.Error()})
			continue
		}
		if existing != nil {
			summary.Skipped++
			continue
		}

		now := time.Now()
		product := &entity.Product{
			ID:          uuid.New().String(),
			Code:        code,
			Description: description,
			Category:    category,
			Unit:        DefaultImportUnit,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := uc.repo.Create(product); err != nil {
			if err == domain.ErrDuplicate {
				// Otro proceso insertó el código entre el check y el insert.
				summary.Skipped++
				continue
			}
			summary.Failed++
			summary.Errors = append(summary.Errors, dto.ImportRowError{Line: line, Message: err.Error()})
			continue
		}
		summary.Inserted++
	}
	return summary, nil
}

func normalizeHeader(s string) string {
	s = strings.TrimPrefix(s, "\ufeff") // BOM de archivos exportados desde Excel
	return strings.ToLower(strings.TrimSpace(s))
}

func fieldAt(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Description: p.Description,
		Category:    p.Category,
		Unit:        p.Unit,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
