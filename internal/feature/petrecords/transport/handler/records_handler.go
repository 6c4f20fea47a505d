// Package handler provides the HTTP handlers for pet health records.
//
// All routes are nested under /pets/:id; the pet ownership gate lives in
// the usecase, so a record under someone else's pet is indistinguishable
// from a missing one.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"petverse_backend/internal/api"
	"petverse_backend/internal/feature/petrecords/domain/entity"
	"petverse_backend/internal/feature/petrecords/transport/http/dto"
	"petverse_backend/internal/feature/petrecords/usecase"
	pethandler "petverse_backend/internal/feature/pets/transport/handler"
)

// RecordsUsecase defines the record operations consumed by the handlers.
type RecordsUsecase interface {
	ListHealthRecords(ctx context.Context, callerID, petID uint) ([]entity.HealthRecord, error)
	CreateHealthRecord(ctx context.Context, callerID uint, rec *entity.HealthRecord) (*entity.HealthRecord, error)
	UpdateHealthRecord(ctx context.Context, callerID uint, rec *entity.HealthRecord) (*entity.HealthRecord, error)
	DeleteHealthRecord(ctx context.Context, callerID, petID, id uint) error

	ListVaccines(ctx context.Context, callerID, petID uint) ([]entity.Vaccine, error)
	CreateVaccine(ctx context.Context, callerID uint, rec *entity.Vaccine) (*entity.Vaccine, error)
	UpdateVaccine(ctx context.Context, callerID uint, rec *entity.Vaccine) (*entity.Vaccine, error)
	DeleteVaccine(ctx context.Context, callerID, petID, id uint) error

	ListMedications(ctx context.Context, callerID, petID uint) ([]entity.Medication, error)
	CreateMedication(ctx context.Context, callerID uint, rec *entity.Medication) (*entity.Medication, error)
	UpdateMedication(ctx context.Context, callerID uint, rec *entity.Medication) (*entity.Medication, error)
	DeleteMedication(ctx context.Context, callerID, petID, id uint) error

	ListWeights(ctx context.Context, callerID, petID uint) ([]entity.WeightEntry, error)
	CreateWeight(ctx context.Context, callerID uint, rec *entity.WeightEntry) (*entity.WeightEntry, error)
	UpdateWeight(ctx context.Context, callerID uint, rec *entity.WeightEntry) (*entity.WeightEntry, error)
	DeleteWeight(ctx context.Context, callerID, petID, id uint) error

	ListMedicalVisits(ctx context.Context, callerID, petID uint) ([]entity.MedicalVisit, error)
	CreateMedicalVisit(ctx context.Context, callerID uint, rec *entity.MedicalVisit) (*entity.MedicalVisit, error)
	UpdateMedicalVisit(ctx context.Context, callerID uint, rec *entity.MedicalVisit) (*entity.MedicalVisit, error)
	DeleteMedicalVisit(ctx context.Context, callerID, petID, id uint) error
}

// RecordsHandler handles the HTTP requests for pet health records.
type RecordsHandler struct {
	records RecordsUsecase
}

// NewRecordsHandler creates a new RecordsHandler instance.
func NewRecordsHandler(records RecordsUsecase) *RecordsHandler {
	return &RecordsHandler{records: records}
}

func asDate(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	return &openapi_types.Date{Time: *t}
}

func asTime(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	return &d.Time
}

func healthRecordToResponse(r *entity.HealthRecord) api.HealthRecordResponse {
	return api.HealthRecordResponse{
		ID:          r.ID,
		PetID:       r.PetID,
		RecordDate:  asDate(r.RecordDate),
		Description: r.Description,
		VetID:       r.VetID,
	}
}

func vaccineToResponse(r *entity.Vaccine) api.VaccineResponse {
	return api.VaccineResponse{
		ID:          r.ID,
		PetID:       r.PetID,
		VaccineName: r.VaccineName,
		Date:        asDate(r.Date),
		NextDue:     asDate(r.NextDue),
		VetClinic:   r.VetClinic,
		Notes:       r.Notes,
	}
}

func medicationToResponse(r *entity.Medication) api.MedicationResponse {
	return api.MedicationResponse{
		ID:         r.ID,
		PetID:      r.PetID,
		Medication: r.Medication,
		Dose:       r.Dose,
		Frequency:  r.Frequency,
		StartDate:  asDate(r.StartDate),
		EndDate:    asDate(r.EndDate),
		Notes:      r.Notes,
	}
}

func weightToResponse(r *entity.WeightEntry) api.WeightResponse {
	return api.WeightResponse{
		ID:     r.ID,
		PetID:  r.PetID,
		Date:   asDate(r.Date),
		Weight: r.Weight,
	}
}

func visitToResponse(r *entity.MedicalVisit) api.MedicalVisitResponse {
	return api.MedicalVisitResponse{
		ID:        r.ID,
		PetID:     r.PetID,
		VetID:     r.VetID,
		VisitDate: asDate(r.VisitDate),
		Diagnosis: r.Diagnosis,
		Treatment: r.Treatment,
		Notes:     r.Notes,
	}
}

// params pulls the caller identity and pet ID out of the request, replying
// on failure. recordID is parsed only when withRecord is set.
func (h *RecordsHandler) params(c *gin.Context, withRecord bool) (callerID, petID, recordID uint, ok bool) {
	identity, ok := pethandler.CallerIdentity(c)
	if !ok {
		return 0, 0, 0, false
	}
	petID, ok = pethandler.ParseIDParam(c, "id")
	if !ok {
		return 0, 0, 0, false
	}
	if withRecord {
		recordID, ok = pethandler.ParseIDParam(c, "recordID")
		if !ok {
			return 0, 0, 0, false
		}
	}
	return identity.ID, petID, recordID, true
}

func replyRecordErr(c *gin.Context, err error, action string) {
	if errors.Is(err, usecase.ErrNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "record not found"})
		return
	}
	slog.Error("record operation failed", "action", action, "error", err)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to " + action})
}

// ----- health records -----

// ListHealthRecords handles GET /pets/:id/health-records.
func (h *RecordsHandler) ListHealthRecords(c *gin.Context) {
	callerID, petID, _, ok := h.params(c, false)
	if !ok {
		return
	}
	recs, err := h.records.ListHealthRecords(c.Request.Context(), callerID, petID)
	if err != nil {
		replyRecordErr(c, err, "list records")
		return
	}
	out := make([]api.HealthRecordResponse, 0, len(recs))
	for i := range recs {
		out = append(out, healthRecordToResponse(&recs[i]))
	}
	c.JSON(http.StatusOK, out)
}

// CreateHealthRecord handles POST /pets/:id/health-records.
func (h *RecordsHandler) CreateHealthRecord(c *gin.Context) {
	callerID, petID, _, ok := h.params(c, false)
	if !ok {
		return
	}
	var req dto.HealthRecordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	rec := &entity.HealthRecord{
		PetID:       petID,
		RecordDate:  asTime(req.RecordDate),
		Description: req.Description,
		VetID:       req.VetID,
	}
	created, err := h.records.CreateHealthRecord(c.Request.Context(), callerID, rec)
	if err != nil {
		replyRecordErr(c, err, "create record")
		return
	}
	c.JSON(http.StatusCreated, healthRecordToResponse(created))
}

// UpdateHealthRecord handles PUT /pets/:id/health-records/:recordID.
func (h *RecordsHandler) UpdateHealthRecord(c *gin.Context) {
	callerID, petID, recordID, ok := h.params(c, true)
	if !ok {
		return
	}
	var req dto.HealthRecordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	rec := &entity.HealthRecord{
		ID:          recordID,
		PetID:       petID,
		RecordDate:  asTime(req.RecordDate),
		Description: req.Description,
		VetID:       req.VetID,
	}
	updated, err := h.records.UpdateHealthRecord(c.Request.Context(), callerID, rec)
	if err != nil {
		replyRecordErr(c, err, "update record")
		return
	}
	c.JSON(http.StatusOK, healthRecordToResponse(updated))
}

// DeleteHealthRecord handles DELETE /pets/:id/health-records/:recordID.
func (h *RecordsHandler) DeleteHealthRecord(c *gin.Context) {
	callerID, petID, recordID, ok := h.params(c, true)
	if !ok {
		return
	}
	if err := h.records.DeleteHealthRecord(c.Request.Context(), callerID, petID, recordID); err != nil {
		replyRecordErr(c, err, "delete record")
		return
	}
	c.Status(http.StatusNoContent)
}

// ----- vaccines -----

// ListVaccines handles GET /pets/:id/vaccines.
func (h *RecordsHandler) ListVaccines(c *gin.Context) {
	callerID, petID, _, ok := h.params(c, false)
	if !ok {
		return
	}
	recs, err := h.records.ListVaccines(c.Request.Context(), callerID, petID)
	if err != nil {
		replyRecordErr(c, err, "list vaccines")
		return
	}
	out := make([]api.VaccineResponse, 0, len(recs))
	for i := range recs {
		out = append(out, vaccineToResponse(&recs[i]))
	}
	c.JSON(http.StatusOK, out)
}

// CreateVaccine handles POST /pets/:id/vaccines.
func (h *RecordsHandler) CreateVaccine(c *gin.Context) {
	callerID, petID, _, ok := h.params(c, false)
	if !ok {
		return
	}
	var req dto.VaccineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	rec := &entity.Vaccine{
		PetID:       petID,
		VaccineName: req.VaccineName,
		Date:        asTime(req.Date),
		NextDue:     asTime(req.NextDue),
		VetClinic:   req.VetClinic,
		Notes:       req.Notes,
	}
	created, err := h.records.CreateVaccine(c.Request.Context(), callerID, rec)
	if err != nil {
		replyRecordErr(c, err, "create vaccine")
		return
	}
	c.JSON(http.StatusCreated, vaccineToResponse(created))
}

// UpdateVaccine handles PUT /pets/:id/vaccines/:recordID.
func (h *RecordsHandler) UpdateVaccine(c *gin.Context) {
	callerID, petID, recordID, ok := h.params(c, true)
	if !ok {
		return
	}
	var req dto.VaccineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	rec := &entity.Vaccine{
		ID:          recordID,
		PetID:       petID,
		VaccineName: req.VaccineName,
		Date:        asTime(req.Date),
		NextDue:     asTime(req.NextDue),
		VetClinic:   req.VetClinic,
		Notes:       req.Notes,
	}
	updated, err := h.records.UpdateVaccine(c.Request.Context(), callerID, rec)
	if err != nil {
		replyRecordErr(c, err, "update vaccine")
		return
	}
	c.JSON(http.StatusOK, vaccineToResponse(updated))
}

// DeleteVaccine handles DELETE /pets/:id/vaccines/:recordID.
func (h *RecordsHandler) DeleteVaccine(c *gin.Context) {
	callerID, petID, recordID, ok := h.params(c, true)
	if !ok {
		return
	}
	if err := h.records.DeleteVaccine(c.Request.Context(), callerID, petID, recordID); err != nil {
		replyRecordErr(c, err, "delete vaccine")
		return
	}
	c.Status(http.StatusNoContent)
}

// ----- medications -----

// ListMedications handles GET /pets/:id/medications.
func (h *RecordsHandler) ListMedications(c *gin.Context) {
	callerID, petID, _, ok := h.params(c, false)
	if !ok {
		return
	}
	recs, err := h.records.ListMedications(c.Request.Context(), callerID, petID)
	if err != nil {
		replyRecordErr(c, err, "list medications")
		return
	}
	out := make([]api.MedicationResponse, 0, len(recs))
	for i := range recs {
		out = append(out, medicationToResponse(&recs[i]))
	}
	c.JSON(http.StatusOK, out)
}

// CreateMedication handles POST /pets/:id/medications.
func (h *RecordsHandler) CreateMedication(c *gin.Context) {
	callerID, petID, _, ok := h.params(c, false)
	if !ok {
		return
	}
	var req dto.MedicationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	rec := &entity.Medication{
		PetID:      petID,
		Medication: req.Medication,
		Dose:       req.Dose,
		Frequency:  req.Frequency,
		StartDate:  asTime(req.StartDate),
		EndDate:    asTime(req.EndDate),
		Notes:      req.Notes,
	}
	created, err := h.records.CreateMedication(c.Request.Context(), callerID, rec)
	if err != nil {
		replyRecordErr(c, err, "create medication")
		return
	}
	c.JSON(http.StatusCreated, medicationToResponse(created))
}

// UpdateMedication handles PUT /pets/:id/medications/:recordID.
func (h *RecordsHandler) UpdateMedication(c *gin.Context) {
	callerID, petID, recordID, ok := h.params(c, true)
	if !ok {
		return
	}
	var req dto.MedicationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	rec := &entity.Medication{
		ID:         recordID,
		PetID:      petID,
		Medication: req.Medication,
		Dose:       req.Dose,
		Frequency:  req.Frequency,
		StartDate:  asTime(req.StartDate),
		EndDate:    asTime(req.EndDate),
		Notes:      req.Notes,
	}
	updated, err := h.records.UpdateMedication(c.Request.Context(), callerID, rec)
	if err != nil {
		replyRecordErr(c, err, "update medication")
		return
	}
	c.JSON(http.StatusOK, medicationToResponse(updated))
}

// DeleteMedication handles DELETE /pets/:id/medications/:recordID.
func (h *RecordsHandler) DeleteMedication(c *gin.Context) {
	callerID, petID, recordID, ok := h.params(c, true)
	if !ok {
		return
	}
	if err := h.records.DeleteMedication(c.Request.Context(), callerID, petID, recordID); err != nil {
		replyRecordErr(c, err, "delete medication")
		return
	}
	c.Status(http.StatusNoContent)
}

// ----- weight history -----

// ListWeights handles GET /pets/:id/weights.
func (h *RecordsHandler) ListWeights(c *gin.Context) {
	callerID, petID, _, ok := h.params(c, false)
	if !ok {
		return
	}
	recs, err := h.records.ListWeights(c.Request.Context(), callerID, petID)
	if err != nil {
		replyRecordErr(c, err, "list weights")
		return
	}
	out := make([]api.WeightResponse, 0, len(recs))
	for i := range recs {
		out = append(out, weightToResponse(&recs[i]))
	}
	c.JSON(http.StatusOK, out)
}

// CreateWeight handles POST /pets/:id/weights.
func (h *RecordsHandler) CreateWeight(c *gin.Context) {
	callerID, petID, _, ok := h.params(c, false)
	if !ok {
		return
	}
	var req dto.WeightReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	rec := &entity.WeightEntry{
		PetID:  petID,
		Date:   asTime(req.Date),
		Weight: req.Weight,
	}
	created, err := h.records.CreateWeight(c.Request.Context(), callerID, rec)
	if err != nil {
		replyRecordErr(c, err, "create weight")
		return
	}
	c.JSON(http.StatusCreated, weightToResponse(created))
}

// UpdateWeight handles PUT /pets/:id/weights/:recordID.
func (h *RecordsHandler) UpdateWeight(c *gin.Context) {
	callerID, petID, recordID, ok := h.params(c, true)
	if !ok {
		return
	}
	var req dto.WeightReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	rec := &entity.WeightEntry{
		ID:     recordID,
		PetID:  petID,
		Date:   asTime(req.Date),
		Weight: req.Weight,
	}
	updated, err := h.records.UpdateWeight(c.Request.Context(), callerID, rec)
	if err != nil {
		replyRecordErr(c, err, "update weight")
		return
	}
	c.JSON(http.StatusOK, weightToResponse(updated))
}

// DeleteWeight handles DELETE /pets/:id/weights/:recordID.
func (h *RecordsHandler) DeleteWeight(c *gin.Context) {
	callerID, petID, recordID, ok := h.params(c, true)
	if !ok {
		return
	}
	if err := h.records.DeleteWeight(c.Request.Context(), callerID, petID, recordID); err != nil {
		replyRecordErr(c, err, "delete weight")
		return
	}
	c.Status(http.StatusNoContent)
}

// ----- medical visits -----

// ListMedicalVisits handles GET /pets/:id/medical-visits.
func (h *RecordsHandler) ListMedicalVisits(c *gin.Context) {
	callerID, petID, _, ok := h.params(c, false)
	if !ok {
		return
	}
	recs, err := h.records.ListMedicalVisits(c.Request.Context(), callerID, petID)
	if err != nil {
		replyRecordErr(c, err, "list visits")
		return
	}
	out := make([]api.MedicalVisitResponse, 0, len(recs))
	for i := range recs {
		out = append(out, visitToResponse(&recs[i]))
	}
	c.JSON(http.StatusOK, out)
}

// CreateMedicalVisit handles POST /pets/:id/medical-visits. The route carries the
// vet role guard; the caller's user ID becomes the recording vet.
func (h *RecordsHandler) CreateMedicalVisit(c *gin.Context) {
	callerID, petID, _, ok := h.params(c, false)
	if !ok {
		return
	}
	var req dto.MedicalVisitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	rec := &entity.MedicalVisit{
		PetID:     petID,
		VisitDate: asTime(req.VisitDate),
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
		Notes:     req.Notes,
	}
	created, err := h.records.CreateMedicalVisit(c.Request.Context(), callerID, rec)
	if err != nil {
		replyRecordErr(c, err, "create visit")
		return
	}
	c.JSON(http.StatusCreated, visitToResponse(created))
}

// UpdateMedicalVisit handles PUT /pets/:id/medical-visits/:recordID.
func (h *RecordsHandler) UpdateMedicalVisit(c *gin.Context) {
	callerID, petID, recordID, ok := h.params(c, true)
	if !ok {
		return
	}
	var req dto.MedicalVisitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	rec := &entity.MedicalVisit{
		ID:        recordID,
		PetID:     petID,
		VisitDate: asTime(req.VisitDate),
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
		Notes:     req.Notes,
	}
	updated, err := h.records.UpdateMedicalVisit(c.Request.Context(), callerID, rec)
	if err != nil {
		replyRecordErr(c, err, "update visit")
		return
	}
	c.JSON(http.StatusOK, visitToResponse(updated))
}

// DeleteMedicalVisit handles DELETE /pets/:id/medical-visits/:recordID.
func (h *RecordsHandler) DeleteMedicalVisit(c *gin.Context) {
	callerID, petID, recordID, ok := h.params(c, true)
	if !ok {
		return
	}
	if err := h.records.DeleteMedicalVisit(c.Request.Context(), callerID, petID, recordID); err != nil {
		replyRecordErr(c, err, "delete visit")
		return
	}
	c.Status(http.StatusNoContent)
}
