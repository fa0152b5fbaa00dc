package handler

import (
	"context"
	"net/http"

	"api-technician/geo"
	"api-technician/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgGeoFailed = "ไม่สามารถดึงข้อมูลจังหวัดได้ กรุณาลองใหม่"

type ProvinceFetcher interface {
	FetchAll(ctx context.Context) ([]model.Province, error)
}

// GeoHandler ให้ข้อมูลจังหวัด/อำเภอสำหรับช่วยกรอกที่อยู่
type GeoHandler struct {
	Geo    ProvinceFetcher
	Logger *zap.Logger
}

func (h *GeoHandler) ListProvinces(c *gin.Context) {
	provinces, ok := h.fetch(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"provinces": provinces})
}

func (h *GeoHandler) ListAmphures(c *gin.Context) {
	provinces, ok := h.fetch(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"amphures": geo.AmphuresFor(provinces, c.Param("province"))})
}

func (h *GeoHandler) ListTambons(c *gin.Context) {
	provinces, ok := h.fetch(c)
	if !ok {
		return
	}
	amphures := geo.AmphuresFor(provinces, c.Param("province"))
	c.JSON(http.StatusOK, gin.H{"tambons": geo.TambonsFor(amphures, c.Param("amphure"))})
}

func (h *GeoHandler) fetch(c *gin.Context) ([]model.Province, bool) {
	provinces, err := h.Geo.FetchAll(c.Request.Context())
	if err != nil {
		h.Logger.Error("Error fetching location data", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": msgGeoFailed})
		return nil, false
	}
	return provinces, true
}
