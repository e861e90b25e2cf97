package visiting

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/visita360-api/internal/domain"
	"github.com/vfg2006/visita360-api/internal/usecases/geocoding"
)

// Limite de fotos por visita no formulário de cadastro
const MaxPhotos = 6

func validateDate(value string) error {
	if _, err := time.Parse(time.DateOnly, strings.TrimSpace(value)); err != nil {
		return newValidationError(ErrInvalidDate, value)
	}
	return nil
}

func validateCoordinates(lat, lng *float64) error {
	if lat == nil && lng == nil {
		return nil
	}
	if lat == nil || lng == nil {
		return newValidationError(ErrCoordinatesIncomplete, "")
	}
	if !geocoding.ValidateCoordinates(*lat, *lng) {
		return newValidationError(ErrInvalidCoordinates, fmt.Sprintf("lat=%v lng=%v", *lat, *lng))
	}
	return nil
}

func validatePhotos(photos []string) error {
	if len(photos) > MaxPhotos {
		return newValidationError(ErrTooManyPhotos, fmt.Sprintf("%d de no máximo %d", len(photos), MaxPhotos))
	}
	return nil
}

func invalidEnum(field, value string) error {
	return newValidationError(ErrInvalidEnum, fmt.Sprintf("%s: %q", field, value))
}

func validateCreateVisit(req *domain.CreateVisitRequest) error {
	if err := validateDate(req.Date); err != nil {
		return err
	}
	if strings.TrimSpace(req.Address) == "" {
		return newValidationError(ErrAddressRequired, "")
	}
	if strings.TrimSpace(req.Company) == "" {
		return newValidationError(ErrCompanyRequired, "")
	}
	if !req.Segment.IsValid() {
		return invalidEnum("segmento", string(req.Segment))
	}
	if !req.Responsible.IsValid() {
		return invalidEnum("responsavel", string(req.Responsible))
	}
	if !req.Stage.IsValid() {
		return invalidEnum("estagio", string(req.Stage))
	}
	if !req.Classification.IsValid() {
		return invalidEnum("classificacao", string(req.Classification))
	}
	if err := validateCoordinates(req.Lat, req.Lng); err != nil {
		return err
	}
	return validatePhotos(req.Photos)
}

func validateUpdateVisit(req *domain.UpdateVisitRequest) error {
	if req.ID <= 0 {
		return newValidationError(ErrVisitIDRequired, "")
	}
	if !hasUpdates(req) {
		return newValidationError(ErrNoFieldsToUpdate, "")
	}
	if req.Date != nil {
		if err := validateDate(*req.Date); err != nil {
			return err
		}
	}
	if req.Address != nil && strings.TrimSpace(*req.Address) == "" {
		return newValidationError(ErrAddressRequired, "")
	}
	if req.Company != nil && strings.TrimSpace(*req.Company) == "" {
		return newValidationError(ErrCompanyRequired, "")
	}
	if req.Segment != nil && !req.Segment.IsValid() {
		return invalidEnum("segmento", string(*req.Segment))
	}
	if req.Responsible != nil && !req.Responsible.IsValid() {
		return invalidEnum("responsavel", string(*req.Responsible))
	}
	if req.Stage != nil && !req.Stage.IsValid() {
		return invalidEnum("estagio", string(*req.Stage))
	}
	if req.Classification != nil && !req.Classification.IsValid() {
		return invalidEnum("classificacao", string(*req.Classification))
	}
	if err := validateCoordinates(req.Lat, req.Lng); err != nil {
		return err
	}
	return validatePhotos(req.Photos)
}

func validateFollowUp(followUp *domain.FollowUp) error {
	if followUp.VisitID <= 0 {
		return newValidationError(ErrVisitIDRequired, "")
	}
	if err := validateDate(followUp.Date); err != nil {
		return err
	}
	if !followUp.Status.IsValid() {
		return invalidEnum("status", string(followUp.Status))
	}
	if followUp.Value != nil && *followUp.Value < 0 {
		return newValidationError(ErrNegativeValue, fmt.Sprintf("%v", *followUp.Value))
	}
	if followUp.LossReason != nil {
		if !followUp.LossReason.IsValid() {
			return invalidEnum("motivoPerda", string(*followUp.LossReason))
		}
		if followUp.IsClosed() {
			return newValidationError(ErrLossReasonOnClosed, string(*followUp.LossReason))
		}
	}
	return nil
}

func hasUpdates(req *domain.UpdateVisitRequest) bool {
	return req.Date != nil || req.Address != nil || req.Lat != nil || req.Lng != nil ||
		req.Company != nil || req.Segment != nil || req.Responsible != nil || req.Stage != nil ||
		req.Competition != nil || req.Classification != nil || req.Contact != nil ||
		req.Observation != nil || req.Photos != nil || req.Salesperson != nil
}
