package handler

import (
	"net/http"

	"github.com/whaamkabaam/trust-skin-hub/internal/importer"
	"github.com/whaamkabaam/trust-skin-hub/internal/logger"
)

// maxImportSize caps an uploaded CSV feed at 32 MiB
const maxImportSize = 32 << 20

// HandleImportCSV ingests a provider CSV feed (admin)
// @Summary Import provider CSV
// @Description Imports a provider box feed from a multipart CSV upload; rows are validated individually
// @Tags admin
// @Accept mpfd
// @Produce json
// @Param provider query string true "Provider identifier"
// @Param file formData file true "CSV feed"
// @Success 200 {object} importer.Report
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/import/csv [post]
func HandleImportCSV(svc importer.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		provider, ok := GetQueryParam(r, w, "provider")
		if !ok {
			return
		}

		if err := r.ParseMultipartForm(maxImportSize); err != nil {
			log.Warn("Failed to parse import upload", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgMissingImportFile)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgMissingImportFile)
			return
		}
		defer file.Close()

		report, err := svc.ImportCSV(r.Context(), provider, header.Filename, file)
		if err != nil {
			log.Error("Import failed", "error", err, "provider", provider)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Import completed",
			"provider", provider,
			"file", header.Filename,
			"created", report.BoxesCreated,
			"updated", report.BoxesUpdated,
			"rejected", report.RowsRejected)
		respondJSON(w, http.StatusOK, report)
	}
}
