package usecase

import (
	"time"

	"github.com/ceasahub/intake-api/internal/application/dto"
	"github.com/ceasahub/intake-api/internal/domain"
	"github.com/ceasahub/intake-api/internal/domain/entity"
	"github.com/ceasahub/intake-api/internal/domain/repository"
)

// UserSentinel entrada sintética "todos los usuarios" para los filtros.
const UserSentinel = "Todos"

// DivergencePDFGenerator puerto de exportación PDF del reporte.
type DivergencePDFGenerator interface {
	Generate(rows []*entity.DivergenceRow, generatedAt time.Time) ([]byte, error)
}

// DivergenceXMLExporter puerto de exportación XML del reporte (intake del ERP).
type DivergenceXMLExporter interface {
	Export(rows []*entity.DivergenceRow, generatedAt time.Time) ([]byte, error)
}

// ReportUseCase reporte de divergencia entre cantidad registrada a ciegas y
// cantidad auditada. Solo registros auditados contribuyen filas.
type ReportUseCase struct {
	reportRepo  repository.ReportRepository
	productRepo repository.ProductRepository
	pdfGen      DivergencePDFGenerator
	xmlExporter DivergenceXMLExporter
	loc         *time.Location
}

// NewReportUseCase construye el caso de uso. loc define la zona horaria en
// que se interpretan los límites de fecha de los filtros.
func NewReportUseCase(
	reportRepo repository.ReportRepository,
	productRepo repository.ProductRepository,
	pdfGen DivergencePDFGenerator,
	xmlExporter DivergenceXMLExporter,
	loc *time.Location,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo:  reportRepo,
		productRepo: productRepo,
		pdfGen:      pdfGen,
		xmlExporter: xmlExporter,
		loc:         loc,
	}
}

// Divergent ejecuta el reporte con filtros conjuntivos. Sin coincidencias
// devuelve lista vacía, no error.
func (uc *ReportUseCase) Divergent(q dto.DivergenceQuery) (*dto.DivergenceReportResponse, error) {
	filter, err := uc.buildFilter(q)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.Divergent(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DivergenceRowResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.DivergenceRowResponse{
			ProductCode:        r.ProductCode,
			ProductDescription: r.ProductDescription,
			Category:           r.Category,
			StoreName:          r.StoreName,
			RegisteredQuantity: r.RegisteredQuantity,
			ActualQuantity:     r.ActualQuantity,
			Divergence:         r.Divergence,
			RegisteredBy:       r.RegisteredBy,
			RegisteredAt:       r.RegisteredAt,
		})
	}
	return &dto.DivergenceReportResponse{Items: items}, nil
}

// ExportPDF genera el reporte en PDF con los mismos filtros que Divergent.
func (uc *ReportUseCase) ExportPDF(q dto.DivergenceQuery) ([]byte, error) {
	filter, err := uc.buildFilter(q)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.Divergent(filter)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.Generate(rows, time.Now().In(uc.loc))
}

// ExportXML genera el reporte en XML con los mismos filtros que Divergent.
func (uc *ReportUseCase) ExportXML(q dto.DivergenceQuery) ([]byte, error) {
	filter, err := uc.buildFilter(q)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.Divergent(filter)
	if err != nil {
		return nil, err
	}
	return uc.xmlExporter.Export(rows, time.Now().In(uc.loc))
}

// FilterOptions opciones para los selectores del reporte, con centinelas al frente.
func (uc *ReportUseCase) FilterOptions() (*dto.ReportFiltersResponse, error) {
	cats, err := uc.productRepo.ListCategories()
	if err != nil {
		return nil, err
	}
	users, err := uc.reportRepo.ListRegisteredUsers()
	if err != nil {
		return nil, err
	}
	out := &dto.ReportFiltersResponse{
		Categories: append([]string{CategorySentinel}, cats...),
		Users:      append([]string{UserSentinel}, users...),
	}
	return out, nil
}

// buildFilter traduce los query params a un filtro de dominio. Los centinelas
// "Todas"/"Todos" equivalen a no filtrar. Las fechas YYYY-MM-DD son límites
// de día inclusivos: [start 00:00:00, end+1d) en la zona horaria del reporte.
func (uc *ReportUseCase) buildFilter(q dto.DivergenceQuery) (entity.DivergenceFilter, error) {
	filter := entity.DivergenceFilter{}
	if q.Category != "" && q.Category != CategorySentinel {
		filter.Category = q.Category
	}
	if q.User != "" && q.User != UserSentinel {
		filter.User = q.User
	}
	if q.Start != "" {
		start, err := time.ParseInLocation("2006-01-02", q.Start, uc.loc)
		if err != nil {
			return entity.DivergenceFilter{}, domain.ErrInvalidInput
		}
		filter.Start = &start
	}
	if q.End != "" {
		end, err := time.ParseInLocation("2006-01-02", q.End, uc.loc)
		if err != nil {
			return entity.DivergenceFilter{}, domain.ErrInvalidInput
		}
		endExclusive := end.AddDate(0, 0, 1)
		filter.End = &endExclusive
	}
	return filter, nil
}
