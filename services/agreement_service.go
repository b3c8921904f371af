// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/scrmguard/database/models"
	"github.com/l3montree-dev/scrmguard/dtos"
	"github.com/l3montree-dev/scrmguard/monitoring"
	"github.com/l3montree-dev/scrmguard/shared"
	"github.com/l3montree-dev/scrmguard/transformer"
	"github.com/l3montree-dev/scrmguard/utils"
	"github.com/pkg/errors"
)

const (
	defaultReviewCadenceDays = 365
	// agreements expiring within this many days are flagged as expiring
	expiringWindowDays = 90
)

// DeriveStatus is the status of a non-terminated agreement on a given day.
func DeriveStatus(expiry time.Time, today time.Time) dtos.AgreementStatus {
	days := daysBetween(today, expiry)
	switch {
	case days < 0:
		return dtos.AgreementStatusExpired
	case days <= expiringWindowDays:
		return dtos.AgreementStatusExpiring
	default:
		return dtos.AgreementStatusActive
	}
}

// daysBetween counts calendar days from a to b, negative if b is before a.
func daysBetween(a, b time.Time) int {
	return int(math.Round(dtos.TruncateToDay(b).Sub(dtos.TruncateToDay(a)).Hours() / 24))
}

func urgencyFor(daysUntilExpiry int) dtos.Urgency {
	switch {
	case daysUntilExpiry <= 30:
		return dtos.UrgencyCritical
	case daysUntilExpiry <= 60:
		return dtos.UrgencyHigh
	case daysUntilExpiry <= 90:
		return dtos.UrgencyMedium
	default:
		return dtos.UrgencyLow
	}
}

type agreementService struct {
	projectRepository   shared.ProjectRepository
	agreementRepository shared.AgreementRepository
	auditService        shared.AuditService

	clock func() time.Time
}

func NewAgreementService(projectRepository shared.ProjectRepository, agreementRepository shared.AgreementRepository, auditService shared.AuditService) *agreementService {
	return &agreementService{
		projectRepository:   projectRepository,
		agreementRepository: agreementRepository,
		auditService:        auditService,
		clock:               time.Now,
	}
}

func (s *agreementService) today() time.Time {
	return dtos.TruncateToDay(s.clock())
}

func cleanDataTypes(dataTypes []string) []string {
	result := make([]string, 0, len(dataTypes))
	for _, d := range dataTypes {
		d = strings.TrimSpace(d)
		if d == "" || slices.Contains(result, d) {
			continue
		}
		result = append(result, d)
	}
	return result
}

func (s *agreementService) Create(ctx context.Context, projectID string, req dtos.AgreementCreateRequest) (dtos.AgreementDTO, error) {
	req.PartnerSystem = strings.TrimSpace(req.PartnerSystem)
	if err := shared.ValidateStruct(req); err != nil {
		return dtos.AgreementDTO{}, err
	}
	if req.AgreementType == "" {
		req.AgreementType = dtos.AgreementTypeISA
	}
	if !req.AgreementType.IsValid() {
		return dtos.AgreementDTO{}, shared.InvalidInput("unknown agreement type %q", req.AgreementType)
	}
	if req.SignedDate.IsZero() || req.ExpiryDate.IsZero() {
		return dtos.AgreementDTO{}, shared.InvalidInput("signedDate and expiryDate are required")
	}
	if !req.ExpiryDate.After(req.SignedDate.Time) {
		return dtos.AgreementDTO{}, shared.InvalidInput("expiryDate %s must be after signedDate %s", req.ExpiryDate, req.SignedDate)
	}
	if req.ReviewCadenceDays == 0 {
		req.ReviewCadenceDays = defaultReviewCadenceDays
	}
	if req.ReviewCadenceDays < 0 {
		return dtos.AgreementDTO{}, shared.InvalidInput("reviewCadenceDays must be positive")
	}
	if req.Classification == "" {
		req.Classification = defaultClassification
	}
	if err := ensureProject(ctx, s.projectRepository, projectID); err != nil {
		return dtos.AgreementDTO{}, err
	}

	agreement := models.IsaAgreement{
		ProjectID:         projectID,
		AgreementType:     req.AgreementType,
		PartnerSystem:     req.PartnerSystem,
		PartnerOrg:        strings.TrimSpace(req.PartnerOrg),
		Status:            DeriveStatus(req.ExpiryDate.Time, s.today()),
		SignedDate:        req.SignedDate.Time,
		ExpiryDate:        req.ExpiryDate.Time,
		DataTypesShared:   cleanDataTypes(req.DataTypes),
		ReviewCadenceDays: req.ReviewCadenceDays,
		NextReviewDate:    req.SignedDate.AddDate(0, 0, req.ReviewCadenceDays),
		Classification:    req.Classification,
	}

	if err := s.agreementRepository.Create(ctx, nil, &agreement); err != nil {
		return dtos.AgreementDTO{}, errors.Wrap(err, "could not save agreement")
	}

	s.auditService.Log(ctx, projectID, dtos.AuditEventAgreementCreated, fmt.Sprintf("created %s with %s", agreement.AgreementType, agreement.PartnerSystem), map[string]any{
		"agreementId":   agreement.ID.String(),
		"agreementType": string(agreement.AgreementType),
		"partnerSystem": agreement.PartnerSystem,
		"expiryDate":    req.ExpiryDate.String(),
		"status":        string(agreement.Status),
	})

	return transformer.AgreementModelToDTO(agreement), nil
}

func (s *agreementService) Get(ctx context.Context, agreementID uuid.UUID) (dtos.AgreementDTO, error) {
	agreement, err := s.agreementRepository.Read(ctx, agreementID)
	if err != nil {
		return dtos.AgreementDTO{}, errors.Wrapf(err, "could not read agreement %s", agreementID)
	}
	return transformer.AgreementModelToDTO(agreement), nil
}

func (s *agreementService) List(ctx context.Context, projectID string, status *dtos.AgreementStatus) ([]dtos.AgreementDTO, error) {
	if status != nil && !status.IsValid() {
		return nil, shared.InvalidInput("unknown agreement status %q", *status)
	}
	if err := ensureProject(ctx, s.projectRepository, projectID); err != nil {
		return nil, err
	}
	agreements, err := s.agreementRepository.FindByProject(ctx, projectID, status)
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch agreements")
	}
	return transformer.AgreementModelsToDTOs(agreements), nil
}

func (s *agreementService) Expiring(ctx context.Context, projectID string, daysAhead int) ([]dtos.ExpiringAgreementDTO, error) {
	if daysAhead < 0 {
		return nil, shared.InvalidInput("daysAhead must not be negative")
	}
	if err := ensureProject(ctx, s.projectRepository, projectID); err != nil {
		return nil, err
	}
	today := s.today()
	agreements, err := s.agreementRepository.FindExpiringBefore(ctx, projectID, today.AddDate(0, 0, daysAhead))
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch expiring agreements")
	}

	result := make([]dtos.ExpiringAgreementDTO, 0, len(agreements))
	for _, agreement := range agreements {
		days := daysBetween(today, agreement.ExpiryDate)
		result = append(result, dtos.ExpiringAgreementDTO{
			AgreementDTO:    transformer.AgreementModelToDTO(agreement),
			DaysUntilExpiry: days,
			Urgency:         urgencyFor(days),
		})
	}
	return result, nil
}

func (s *agreementService) ReviewDue(ctx context.Context, projectID string) ([]dtos.ReviewDueAgreementDTO, error) {
	if err := ensureProject(ctx, s.projectRepository, projectID); err != nil {
		return nil, err
	}
	today := s.today()
	agreements, err := s.agreementRepository.FindReviewDueBefore(ctx, projectID, today)
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch agreements due for review")
	}

	result := make([]dtos.ReviewDueAgreementDTO, 0, len(agreements))
	for _, agreement := range agreements {
		result = append(result, dtos.ReviewDueAgreementDTO{
			AgreementDTO: transformer.AgreementModelToDTO(agreement),
			DaysOverdue:  daysBetween(agreement.NextReviewDate, today),
		})
	}
	return result, nil
}

func (s *agreementService) Renew(ctx context.Context, agreementID uuid.UUID, req dtos.AgreementRenewRequest) (dtos.AgreementDTO, error) {
	if req.NewExpiry.IsZero() {
		return dtos.AgreementDTO{}, shared.InvalidInput("newExpiry is required")
	}
	today := s.today()
	if req.NewExpiry.Before(today) {
		return dtos.AgreementDTO{}, shared.InvalidInput("newExpiry %s is in the past", req.NewExpiry)
	}

	agreement, err := s.agreementRepository.Read(ctx, agreementID)
	if err != nil {
		return dtos.AgreementDTO{}, errors.Wrapf(err, "could not read agreement %s", agreementID)
	}
	if agreement.Status == dtos.AgreementStatusTerminated {
		return dtos.AgreementDTO{}, shared.InvalidInput("agreement %s is terminated and cannot be renewed", agreementID)
	}

	previousExpiry := dtos.NewDate(agreement.ExpiryDate)
	previousStatus := agreement.Status

	agreement.ExpiryDate = req.NewExpiry.Time
	agreement.Status = dtos.AgreementStatusActive
	agreement.NextReviewDate = today.AddDate(0, 0, agreement.ReviewCadenceDays)
	if req.Notes != nil {
		agreement.Notes = utils.EmptyThenNil(strings.TrimSpace(*req.Notes))
	}

	if err := s.agreementRepository.Save(ctx, nil, &agreement); err != nil {
		return dtos.AgreementDTO{}, errors.Wrap(err, "could not save agreement")
	}

	s.auditService.Log(ctx, agreement.ProjectID, dtos.AuditEventAgreementRenewed, fmt.Sprintf("renewed %s with %s until %s", agreement.AgreementType, agreement.PartnerSystem, req.NewExpiry), map[string]any{
		"agreementId":    agreement.ID.String(),
		"previousExpiry": previousExpiry.String(),
		"newExpiry":      req.NewExpiry.String(),
		"previousStatus": string(previousStatus),
	})

	return transformer.AgreementModelToDTO(agreement), nil
}

func (s *agreementService) Revoke(ctx context.Context, agreementID uuid.UUID, req dtos.AgreementRevokeRequest) (dtos.AgreementDTO, error) {
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return dtos.AgreementDTO{}, shared.InvalidInput("a reason is required to revoke an agreement")
	}

	agreement, err := s.agreementRepository.Read(ctx, agreementID)
	if err != nil {
		return dtos.AgreementDTO{}, errors.Wrapf(err, "could not read agreement %s", agreementID)
	}

	previousStatus := agreement.Status
	agreement.Status = dtos.AgreementStatusTerminated
	agreement.RevocationReason = &reason

	if err := s.agreementRepository.Save(ctx, nil, &agreement); err != nil {
		return dtos.AgreementDTO{}, errors.Wrap(err, "could not save agreement")
	}

	s.auditService.Log(ctx, agreement.ProjectID, dtos.AuditEventAgreementRevoked, fmt.Sprintf("revoked %s with %s", agreement.AgreementType, agreement.PartnerSystem), map[string]any{
		"agreementId":    agreement.ID.String(),
		"reason":         reason,
		"previousStatus": string(previousStatus),
	})

	return transformer.AgreementModelToDTO(agreement), nil
}

// Reconcile persists the derived status of every non-terminated agreement.
func (s *agreementService) Reconcile(ctx context.Context, projectID string) (dtos.ReconcileResult, error) {
	if err := ensureProject(ctx, s.projectRepository, projectID); err != nil {
		return dtos.ReconcileResult{}, err
	}
	agreements, err := s.agreementRepository.FindNotTerminatedByProject(ctx, projectID)
	if err != nil {
		return dtos.ReconcileResult{}, errors.Wrap(err, "could not fetch agreements")
	}

	today := s.today()
	changes := []dtos.AgreementStatusChange{}
	for _, agreement := range agreements {
		derived := DeriveStatus(agreement.ExpiryDate, today)
		if derived != agreement.Status {
			changes = append(changes, dtos.AgreementStatusChange{AgreementID: agreement.ID, From: agreement.Status, To: derived})
		}
	}

	if len(changes) > 0 {
		err = s.agreementRepository.Transaction(ctx, func(tx shared.DB) error {
			for _, change := range changes {
				if err := s.agreementRepository.UpdateStatus(ctx, tx, change.AgreementID, change.To); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return dtos.ReconcileResult{}, errors.Wrap(err, "could not persist agreement status")
		}
	}

	for _, change := range changes {
		monitoring.AgreementStatusChanges.WithLabelValues(string(change.To)).Inc()
		s.auditService.Log(ctx, projectID, dtos.AuditEventAgreementReconciled, fmt.Sprintf("status of %s changed from %s to %s", change.AgreementID, change.From, change.To), map[string]any{
			"agreementId": change.AgreementID.String(),
			"from":        string(change.From),
			"to":          string(change.To),
		})
	}
	slog.Info("reconciled agreement status", "projectID", projectID, "checked", len(agreements), "changed", len(changes))

	return dtos.ReconcileResult{
		ProjectID: projectID,
		Checked:   len(agreements),
		Changed:   changes,
	}, nil
}
