package router

import (
	"net/http"

	"api-technician/handler"
	"api-technician/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Options คือส่วนเสริมของ router ที่ไม่บังคับ
type Options struct {
	Logger *zap.Logger
	// Verifier ถ้าไม่เป็น nil จะบังคับ Firebase ID Token กับ route ที่แก้ไขข้อมูล
	Verifier middleware.TokenVerifier
	// Metrics ถ้าไม่เป็น nil จะเปิด /metrics
	Metrics *prometheus.Registry
}

// SetupRouter ทำหน้าที่ตั้งค่า Routes ทั้งหมด
func SetupRouter(technicians *handler.TechnicianHandler, geo *handler.GeoHandler, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Metrics, promhttp.HandlerOpts{})))
	}

	router.GET("/skills", technicians.ListSkills)

	technicianRoutes := router.Group("/technicians")
	{
		technicianRoutes.GET("", technicians.ListTechnicians)
		technicianRoutes.GET("/:id", technicians.GetTechnician)
		technicianRoutes.GET("/:id/edit", technicians.EditForm)
	}

	writeRoutes := router.Group("/technicians")
	if opts.Verifier != nil {
		writeRoutes.Use(middleware.AuthMiddleware(opts.Verifier))
	}
	{
		writeRoutes.POST("", technicians.CreateTechnician)
		writeRoutes.PUT("/:id", technicians.UpdateTechnician)
		writeRoutes.DELETE("/:id", technicians.DeleteTechnician)
	}

	geoRoutes := router.Group("/geo")
	{
		geoRoutes.GET("/provinces", geo.ListProvinces)
		geoRoutes.GET("/provinces/:province/amphures", geo.ListAmphures)
		geoRoutes.GET("/provinces/:province/amphures/:amphure/tambons", geo.ListTambons)
	}

	return router
}
