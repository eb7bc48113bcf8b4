package billing

import (
	"context"
	"fmt"

	"github.com/netpulse/netpulse-api/internal/domain"
	"github.com/netpulse/netpulse-api/internal/domain/repository"
)

// PDFUseCase renders a customer's billing statement (adjustment lines plus
// payment history) as a downloadable PDF.
type PDFUseCase struct {
	customerRepo   repository.CustomerRepository
	tenantRepo     repository.TenantRepository
	packageRepo    repository.PackageRepository
	adjustmentRepo repository.AdjustmentRepository
	paymentRepo    repository.PaymentRepository
	generator      StatementPDFGenerator
}

// NewPDFUseCase builds the use case with all its dependencies.
func NewPDFUseCase(
	customerRepo repository.CustomerRepository,
	tenantRepo repository.TenantRepository,
	packageRepo repository.PackageRepository,
	adjustmentRepo repository.AdjustmentRepository,
	paymentRepo repository.PaymentRepository,
	generator StatementPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		customerRepo:   customerRepo,
		tenantRepo:     tenantRepo,
		packageRepo:    packageRepo,
		adjustmentRepo: adjustmentRepo,
		paymentRepo:    paymentRepo,
		generator:      generator,
	}
}

// DownloadStatementPDF loads everything the statement needs and renders it.
//
// Returns:
//   - (pdfBytes, filename, nil) on success.
//   - domain.ErrNotFound  when the customer does not exist.
//   - domain.ErrForbidden when the customer belongs to another tenant.
func (uc *PDFUseCase) DownloadStatementPDF(
	ctx context.Context,
	tenantID, customerID string,
) (pdfBytes []byte, filename string, err error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load customer: %w", err)
	}
	if customer == nil {
		return nil, "", domain.ErrNotFound
	}
	if customer.TenantID != tenantID {
		return nil, "", domain.ErrForbidden
	}

	tenant, err := uc.tenantRepo.GetByID(tenantID)
	if err != nil || tenant == nil {
		return nil, "", fmt.Errorf("pdf: load tenant: %w", err)
	}

	// Package may be gone (archived); the statement renders without it.
	pkg, _ := uc.packageRepo.GetByID(customer.PackageID)

	adjustments, err := uc.adjustmentRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load adjustments: %w", err)
	}
	payments, err := uc.paymentRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load payments: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateStatementPDF(ctx, tenant, customer, pkg, adjustments, payments)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generate: %w", err)
	}

	filename = fmt.Sprintf("statement_%s.pdf", customer.PPPoEUsername)
	return pdfBytes, filename, nil
}
