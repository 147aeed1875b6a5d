package handlers

import (
	"fmt"
	"time"

	"cinematic-vault/internal/metrics"
	"cinematic-vault/internal/services"
	"cinematic-vault/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ExportHandler struct {
	exporter services.ExportService
	logger   *logrus.Logger
}

func NewExportHandler(exporter services.ExportService, logger *logrus.Logger) *ExportHandler {
	return &ExportHandler{
		exporter: exporter,
		logger:   logger,
	}
}

// DownloadXLSX godoc
// @Summary Download the vault as a spreadsheet
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "XLSX workbook"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /export/xlsx [get]
func (h *ExportHandler) DownloadXLSX(c *fiber.Ctx) error {
	f, rows, err := h.exporter.BuildWorkbook(c.UserContext())
	if err != nil {
		metrics.RecordExport("download", err)
		h.logger.WithError(err).Error("Failed to build workbook")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to build workbook")
	}
	defer f.Close()

	filename := fmt.Sprintf("cinematic_vault_%s.xlsx", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))

	err = f.Write(c)
	metrics.RecordExport("download", err)
	if err != nil {
		h.logger.WithError(err).Error("Failed to write workbook")
		return err
	}

	h.logger.WithField("rows", rows).Info("Vault exported")
	return nil
}

// PublishXLSX godoc
// @Summary Upload the spreadsheet to object storage
// @Description Returns a presigned URL valid for the configured expiry
// @Tags export
// @Produce json
// @Success 201 {object} utils.StandardResponse "Export published"
// @Failure 503 {object} utils.StandardResponse "Object storage not configured"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /export/xlsx [post]
func (h *ExportHandler) PublishXLSX(c *fiber.Ctx) error {
	result, err := h.exporter.Publish(c.UserContext())
	if err != nil {
		code := statusFor(err)
		h.logger.WithError(err).Error("Failed to publish export")
		return utils.ErrorResponse(c, code, err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Export published successfully", result)
}
