package handler

import (
	"errors"
	"net/http"
	"strconv"

	"api-technician/model"
	"api-technician/store"
	"api-technician/view"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TechnicianHandler เปิด API ของหน้ารายการ หน้าเพิ่ม และหน้าแก้ไขช่าง
// ทุก request สร้าง view ใหม่ ไม่มี state ค้างข้าม request
type TechnicianHandler struct {
	Store        store.TechnicianStore
	Logger       *zap.Logger
	ImageBaseURL string
}

// ListTechnicians รองรับ ?q= (คำค้น), ?width= (ความกว้างจอ) และ ?expanded=true
func (h *TechnicianHandler) ListTechnicians(c *gin.Context) {
	recorder := &view.Recorder{}
	list := view.NewListView(h.Store, recorder, h.Logger)

	if raw := c.Query("width"); raw != "" {
		width, err := strconv.Atoi(raw)
		if err != nil || width < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "width must be a non-negative integer"})
			return
		}
		list.Resize(width)
	}

	if err := list.Load(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":         list.ErrorText(),
			"state":         list.State(),
			"notifications": recorder.Notifications(),
		})
		return
	}

	list.SetQuery(c.Query("q"))
	list.Search()
	if c.Query("expanded") == "true" {
		list.ToggleExpand()
	}

	c.JSON(http.StatusOK, gin.H{
		"state":       list.State(),
		"query":       c.Query("q"),
		"columns":     list.Columns(),
		"page_size":   list.PageSize(),
		"expanded":    list.Expanded(),
		"total":       len(list.All()),
		"matched":     len(list.Filtered()),
		"technicians": h.toViews(list.Displayed()),
	})
}

func (h *TechnicianHandler) GetTechnician(c *gin.Context) {
	technician, err := h.Store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": view.MsgTechnicianMissing})
			return
		}
		h.Logger.Error("Error fetching technician", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": view.MsgFetchFailed})
		return
	}
	c.JSON(http.StatusOK, model.TechnicianView{Technician: technician, ImageURL: technician.ImageURL(h.ImageBaseURL)})
}

// EditForm คืนค่าฟอร์มแก้ไขที่เติมข้อมูลไว้แล้ว (รวมช่อง "อื่นๆ")
func (h *TechnicianHandler) EditForm(c *gin.Context) {
	recorder := &view.Recorder{}
	nav := &view.BackRecorder{}
	edit := view.NewEditView(h.Store, recorder, nav, h.Logger)

	if err := edit.Mount(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, recorder, gin.H{"state": edit.State(), "back": nav.WentBack()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          edit.ID(),
		"state":       edit.State(),
		"form":        edit.Form(),
		"skills":      edit.Skills().Checked(),
		"other_skill": edit.Skills().Other(),
		"show_other":  edit.Skills().ShowOther(),
	})
}

func (h *TechnicianHandler) CreateTechnician(c *gin.Context) {
	var payload model.TechnicianPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	recorder := &view.Recorder{}
	create := view.NewCreateView(h.Store, recorder, h.Logger)
	create.Apply(payload)

	id, err := create.Submit(c.Request.Context())
	if err != nil {
		h.respondError(c, err, recorder, nil)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       view.MsgCreated,
		"id":            id,
		"notifications": recorder.Notifications(),
	})
}

func (h *TechnicianHandler) UpdateTechnician(c *gin.Context) {
	var payload model.TechnicianPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	recorder := &view.Recorder{}
	nav := &view.BackRecorder{}
	edit := view.NewEditView(h.Store, recorder, nav, h.Logger)

	if err := edit.Mount(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, recorder, gin.H{"state": edit.State(), "back": nav.WentBack()})
		return
	}

	edit.Apply(payload)
	if err := edit.Submit(c.Request.Context()); err != nil {
		h.respondError(c, err, recorder, gin.H{"state": edit.State()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       view.MsgUpdated,
		"id":            edit.ID(),
		"back":          nav.WentBack(),
		"notifications": recorder.Notifications(),
	})
}

// DeleteTechnician ตรวจว่ามีข้อมูลอยู่จริงก่อน แล้วจึงลบ
func (h *TechnicianHandler) DeleteTechnician(c *gin.Context) {
	recorder := &view.Recorder{}
	list := view.NewListView(h.Store, recorder, h.Logger)

	if err := list.RequestDelete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, recorder, nil)
		return
	}
	if err := list.ConfirmDelete(c.Request.Context()); err != nil {
		h.respondError(c, err, recorder, nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       view.MsgDeleted,
		"notifications": recorder.Notifications(),
	})
}

// ListSkills คืนรายการทักษะสำหรับสร้าง Checkbox
func (h *TechnicianHandler) ListSkills(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"skills": view.SkillCatalog, "other": view.OtherSkill})
}

func (h *TechnicianHandler) toViews(technicians []model.Technician) []model.TechnicianView {
	views := make([]model.TechnicianView, 0, len(technicians))
	for _, t := range technicians {
		views = append(views, model.TechnicianView{Technician: t, ImageURL: t.ImageURL(h.ImageBaseURL)})
	}
	return views
}

func (h *TechnicianHandler) respondError(c *gin.Context, err error, recorder *view.Recorder, extra gin.H) {
	body := gin.H{"error": err.Error(), "notifications": recorder.Notifications()}
	if last := recorder.Last(); last.Message != "" {
		body["error"] = last.Message
	}
	var validationErr *view.ValidationError
	if errors.As(err, &validationErr) {
		body["fields"] = validationErr.Fields
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(statusFor(err), body)
}

func statusFor(err error) int {
	var validationErr *view.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, view.ErrMissingID), errors.Is(err, view.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, view.ErrBusy), errors.Is(err, view.ErrNoPendingDelete), errors.Is(err, view.ErrNotReady):
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}
